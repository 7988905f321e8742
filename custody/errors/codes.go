package errors

import "fmt"

type ErrorCode uint16

func (ec ErrorCode) String() string {
	return fmt.Sprintf("[Error Code: %d]", ec)
}

const (
	// authorization errors 1000 - 1099
	ErrCodeUnAuthorized ErrorCode = 1000
	ErrCodeStaleNonce   ErrorCode = 1001

	// configuration errors 1100 - 1199
	ErrCodeConfigNotInitialized ErrorCode = 1100
	ErrCodeConfigInitialized    ErrorCode = 1101
	ErrCodeConfigLocked         ErrorCode = 1102

	// campaign lifecycle errors 1200 - 1299
	ErrCodeTargetNotReached ErrorCode = 1200
	ErrCodeNotFailed        ErrorCode = 1201
	ErrCodeCampaignLocked   ErrorCode = 1202
	ErrCodeCampaignEnded    ErrorCode = 1203
	ErrCodeCampaignNotFound ErrorCode = 1204

	// milestone sequencing errors 1300 - 1399
	ErrCodeBadMilestone      ErrorCode = 1300
	ErrCodeInvalidMilestone  ErrorCode = 1301
	ErrCodeMilestoneNotReady ErrorCode = 1302
	ErrCodeAlreadyReleased   ErrorCode = 1303

	// time gate errors 1400 - 1499
	ErrCodeDisputeWindowOpen ErrorCode = 1400

	// accounting errors 1500 - 1599
	ErrCodeNothingToRefund     ErrorCode = 1500
	ErrCodeArithmeticOverflow  ErrorCode = 1501
	ErrCodeInsufficientBalance ErrorCode = 1502

	// input errors 1600 - 1699
	ErrCodeInvalidArgument ErrorCode = 1600
)

var codeNames = map[ErrorCode]string{
	ErrCodeUnAuthorized:         "UnAuthorized",
	ErrCodeStaleNonce:           "StaleNonce",
	ErrCodeConfigNotInitialized: "ConfigNotInitialized",
	ErrCodeConfigInitialized:    "ConfigInitialized",
	ErrCodeConfigLocked:         "ConfigLocked",
	ErrCodeTargetNotReached:     "TargetNotReached",
	ErrCodeNotFailed:            "NotFailed",
	ErrCodeCampaignLocked:       "CampaignLocked",
	ErrCodeCampaignEnded:        "CampaignEnded",
	ErrCodeCampaignNotFound:     "CampaignNotFound",
	ErrCodeBadMilestone:         "BadMilestone",
	ErrCodeInvalidMilestone:     "InvalidMilestone",
	ErrCodeMilestoneNotReady:    "MilestoneNotReady",
	ErrCodeAlreadyReleased:      "AlreadyReleased",
	ErrCodeDisputeWindowOpen:    "DisputeWindowOpen",
	ErrCodeNothingToRefund:      "NothingToRefund",
	ErrCodeArithmeticOverflow:   "ArithmeticOverflow",
	ErrCodeInsufficientBalance:  "InsufficientBalance",
	ErrCodeInvalidArgument:      "InvalidArgument",
}

// Name returns the short name of the code, as used in metrics labels and API
// responses.
func (ec ErrorCode) Name() string {
	name, ok := codeNames[ec]
	if !ok {
		return "Unknown"
	}
	return name
}
