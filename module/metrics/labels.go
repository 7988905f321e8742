package metrics

const (
	LabelResource  = "resource"
	LabelOperation = "operation"
	LabelCode      = "code"
	LabelKind      = "kind"
	LabelIndex     = "index"
	LabelMethod    = "method"
	LabelRoute     = "route"
)

const (
	ResourceUndefined    = "undefined"
	ResourceCampaign     = "campaign"
	ResourceSystemConfig = "system_config"
)

const (
	OperationInitialize          = "initialize"
	OperationUpdateAuthority     = "update_authority"
	OperationUpdateDisputeWindow = "update_dispute_window"
	OperationCreateCampaign      = "create_campaign"
	OperationDonate              = "donate"
	OperationRelease             = "release"
	OperationRefund              = "refund"
	OperationLockCampaign        = "lock_campaign"
	OperationFundAccount         = "fund_account"
)

const (
	TransferDonation = "donation"
	TransferRelease  = "release"
	TransferRefund   = "refund"
	TransferFunding  = "funding"
)
