package errors

import (
	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

func NewTargetNotReachedError(campaign crowdfund.Identifier, donated, target uint64) CodedError {
	return NewCodedError(
		ErrCodeTargetNotReached,
		"campaign %s has %d donated of target %d",
		campaign, donated, target)
}

func IsTargetNotReachedError(err error) bool {
	return HasErrorCode(err, ErrCodeTargetNotReached)
}

// NewNotFailedError is returned by refunds on a campaign that is still running
// or that reached its target.
func NewNotFailedError(campaign crowdfund.Identifier) CodedError {
	return NewCodedError(
		ErrCodeNotFailed,
		"campaign %s has not failed",
		campaign)
}

func IsNotFailedError(err error) bool {
	return HasErrorCode(err, ErrCodeNotFailed)
}

func NewCampaignLockedError(campaign crowdfund.Identifier) CodedError {
	return NewCodedError(
		ErrCodeCampaignLocked,
		"campaign %s is locked",
		campaign)
}

func IsCampaignLockedError(err error) bool {
	return HasErrorCode(err, ErrCodeCampaignLocked)
}

func NewCampaignEndedError(campaign crowdfund.Identifier, endTime, now int64) CodedError {
	return NewCodedError(
		ErrCodeCampaignEnded,
		"campaign %s ended at %d (now %d)",
		campaign, endTime, now)
}

func IsCampaignEndedError(err error) bool {
	return HasErrorCode(err, ErrCodeCampaignEnded)
}

func NewCampaignNotFoundError(campaign crowdfund.Identifier) CodedError {
	return NewCodedError(
		ErrCodeCampaignNotFound,
		"campaign %s not found",
		campaign)
}

func IsCampaignNotFoundError(err error) bool {
	return HasErrorCode(err, ErrCodeCampaignNotFound)
}
