package custody

import (
	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

//go:generate mockery --name Consumer --output ./mock --case underscore

// Consumer consumes outbound notifications produced by the custody engine.
// Notifications are delivered only after the operation that produced them
// committed, and are one-way: they carry no control flow meaning.
//
// Implementations must be concurrency safe and non-blocking, as notifications
// are delivered on the goroutine of the committing operation.
type Consumer interface {
	// OnConfigUpdated notifications are produced when the system
	// configuration was initialized or changed.
	OnConfigUpdated(cfg crowdfund.SystemConfig)

	// OnCampaignCreated notifications are produced by the campaign factory.
	OnCampaignCreated(campaign crowdfund.Campaign)

	// OnDonationReceived notifications are produced by the donation ledger.
	OnDonationReceived(campaignID crowdfund.Identifier, donor crowdfund.Identifier, amount uint64)

	// OnMilestoneReleased notifications are produced by the release engine.
	// amount is the value actually transferred to the creator.
	OnMilestoneReleased(campaignID crowdfund.Identifier, index uint8, amount uint64)

	// OnRefundIssued notifications are produced by the refund engine.
	OnRefundIssued(campaignID crowdfund.Identifier, donor crowdfund.Identifier, amount uint64)

	// OnCampaignLocked notifications are produced when the authority locks or
	// unlocks a campaign.
	OnCampaignLocked(campaignID crowdfund.Identifier, locked bool)
}
