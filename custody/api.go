package custody

import (
	"context"

	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

// API is the surface of the custody engine exposed to front ends.
type API interface {
	Now() int64

	Initialize(ctx context.Context, authority crowdfund.Identifier, disputeWindowSeconds int64) error
	UpdateAuthority(ctx context.Context, caller crowdfund.Identifier, authority crowdfund.Identifier) error
	UpdateDisputeWindow(ctx context.Context, caller crowdfund.Identifier, seconds int64) error

	CreateCampaign(ctx context.Context, creator crowdfund.Identifier, spec CampaignSpec) (*crowdfund.Campaign, error)
	Donate(ctx context.Context, donor crowdfund.Identifier, campaignID crowdfund.Identifier, amount uint64) (*crowdfund.DonationReceipt, error)
	Release(ctx context.Context, caller crowdfund.Identifier, campaignID crowdfund.Identifier, index uint8) (*Payout, error)
	Refund(ctx context.Context, donor crowdfund.Identifier, campaignID crowdfund.Identifier) (*Payout, error)
	LockCampaign(ctx context.Context, caller crowdfund.Identifier, campaignID crowdfund.Identifier, locked bool) error
	FundAccount(ctx context.Context, caller crowdfund.Identifier, account crowdfund.Identifier, amount uint64) error

	Config(ctx context.Context) (*crowdfund.SystemConfig, error)
	Campaign(ctx context.Context, campaignID crowdfund.Identifier) (*crowdfund.Campaign, error)
	Campaigns(ctx context.Context, filter CampaignFilter) ([]*crowdfund.Campaign, error)
	Receipt(ctx context.Context, campaignID, donor crowdfund.Identifier) (*crowdfund.DonationReceipt, error)
	ReceiptsByDonor(ctx context.Context, donor crowdfund.Identifier) ([]*crowdfund.DonationReceipt, error)
	CampaignEvents(ctx context.Context, campaignID crowdfund.Identifier) ([]crowdfund.Event, error)
	VaultBalance(ctx context.Context, campaignID crowdfund.Identifier) (uint64, error)
	Balance(ctx context.Context, account crowdfund.Identifier) (uint64, error)
}

var _ API = (*Engine)(nil)
