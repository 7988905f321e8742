package errors

import (
	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

// NewBadMilestoneErrorf is returned for a malformed milestone schedule, and for
// donations to a campaign whose last milestone is already released.
func NewBadMilestoneErrorf(msg string, args ...interface{}) CodedError {
	return NewCodedError(
		ErrCodeBadMilestone,
		"bad milestone: "+msg,
		args...)
}

func IsBadMilestoneError(err error) bool {
	return HasErrorCode(err, ErrCodeBadMilestone)
}

func NewInvalidMilestoneError(campaign crowdfund.Identifier, index uint8, count uint8) CodedError {
	return NewCodedError(
		ErrCodeInvalidMilestone,
		"milestone %d out of range for campaign %s with %d milestones",
		index, campaign, count)
}

func IsInvalidMilestoneError(err error) bool {
	return HasErrorCode(err, ErrCodeInvalidMilestone)
}

func NewMilestoneNotReadyError(campaign crowdfund.Identifier, index uint8) CodedError {
	return NewCodedError(
		ErrCodeMilestoneNotReady,
		"milestone %d of campaign %s requires milestone %d to be released first",
		index, campaign, index-1)
}

func IsMilestoneNotReadyError(err error) bool {
	return HasErrorCode(err, ErrCodeMilestoneNotReady)
}

func NewAlreadyReleasedError(campaign crowdfund.Identifier, index uint8) CodedError {
	return NewCodedError(
		ErrCodeAlreadyReleased,
		"milestone %d of campaign %s is already released",
		index, campaign)
}

func IsAlreadyReleasedError(err error) bool {
	return HasErrorCode(err, ErrCodeAlreadyReleased)
}

// NewDisputeWindowOpenError is returned when a release is attempted less than
// the dispute window after the reference time.
func NewDisputeWindowOpenError(campaign crowdfund.Identifier, reference, now, window int64) CodedError {
	return NewCodedError(
		ErrCodeDisputeWindowOpen,
		"dispute window of campaign %s open until %d (reference %d, now %d, window %ds)",
		campaign, reference+window, reference, now, window)
}

func IsDisputeWindowOpenError(err error) bool {
	return HasErrorCode(err, ErrCodeDisputeWindowOpen)
}
