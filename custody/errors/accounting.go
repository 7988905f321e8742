package errors

import (
	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

func NewNothingToRefundError(campaign crowdfund.Identifier, donor crowdfund.Identifier) CodedError {
	return NewCodedError(
		ErrCodeNothingToRefund,
		"donor %s has nothing to refund from campaign %s",
		donor, campaign)
}

func IsNothingToRefundError(err error) bool {
	return HasErrorCode(err, ErrCodeNothingToRefund)
}

// NewArithmeticOverflowError is returned when accumulating an amount would
// wrap around.
func NewArithmeticOverflowError(what string, current, delta uint64) CodedError {
	return NewCodedError(
		ErrCodeArithmeticOverflow,
		"%s overflows: %d + %d",
		what, current, delta)
}

func IsArithmeticOverflowError(err error) bool {
	return HasErrorCode(err, ErrCodeArithmeticOverflow)
}

func NewInsufficientBalanceError(slot crowdfund.Identifier, err error) CodedError {
	return WrapCodedError(
		ErrCodeInsufficientBalance,
		err,
		"insufficient balance in slot %s",
		slot)
}

func IsInsufficientBalanceError(err error) bool {
	return HasErrorCode(err, ErrCodeInsufficientBalance)
}

func NewInvalidArgumentErrorf(msg string, args ...interface{}) CodedError {
	return NewCodedError(
		ErrCodeInvalidArgument,
		"invalid argument: "+msg,
		args...)
}

func IsInvalidArgumentError(err error) bool {
	return HasErrorCode(err, ErrCodeInvalidArgument)
}
