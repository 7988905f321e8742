package errors

import (
	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

// NewUnAuthorizedError is returned when the caller of an operation is not the
// identity the operation is restricted to.
func NewUnAuthorizedError(caller crowdfund.Identifier, role string) CodedError {
	return NewCodedError(
		ErrCodeUnAuthorized,
		"caller %s is not the %s",
		caller, role)
}

func IsUnAuthorizedError(err error) bool {
	return HasErrorCode(err, ErrCodeUnAuthorized)
}

// NewStaleNonceError is returned when a signed request carries a nonce the
// signer already used, or one lower than it.
func NewStaleNonceError(signer crowdfund.Identifier, nonce uint64, last uint64) CodedError {
	return NewCodedError(
		ErrCodeStaleNonce,
		"nonce %d of signer %s is not above its last used nonce %d",
		nonce, signer, last)
}

func IsStaleNonceError(err error) bool {
	return HasErrorCode(err, ErrCodeStaleNonce)
}
