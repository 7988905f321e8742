package notifications

import (
	"github.com/onflow/flow-crowdfund/custody"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

// NoopConsumer is an implementation of the notifications consumer that
// doesn't do anything.
type NoopConsumer struct{}

var _ custody.Consumer = (*NoopConsumer)(nil)

func NewNoopConsumer() *NoopConsumer {
	nc := &NoopConsumer{}
	return nc
}

func (*NoopConsumer) OnConfigUpdated(crowdfund.SystemConfig) {}

func (*NoopConsumer) OnCampaignCreated(crowdfund.Campaign) {}

func (*NoopConsumer) OnDonationReceived(crowdfund.Identifier, crowdfund.Identifier, uint64) {}

func (*NoopConsumer) OnMilestoneReleased(crowdfund.Identifier, uint8, uint64) {}

func (*NoopConsumer) OnRefundIssued(crowdfund.Identifier, crowdfund.Identifier, uint64) {}

func (*NoopConsumer) OnCampaignLocked(crowdfund.Identifier, bool) {}
