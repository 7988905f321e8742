package pubsub

import (
	"sync"

	"github.com/onflow/flow-crowdfund/custody"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

// Distributor distributes notifications to a list of subscribers (event
// consumers). It allows thread-safe subscription of multiple consumers to
// events.
type Distributor struct {
	subscribers []custody.Consumer
	lock        sync.RWMutex
}

var _ custody.Consumer = (*Distributor)(nil)

func NewDistributor() *Distributor {
	return &Distributor{}
}

// AddConsumer adds an event consumer to the Distributor
func (p *Distributor) AddConsumer(consumer custody.Consumer) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.subscribers = append(p.subscribers, consumer)
}

func (p *Distributor) OnConfigUpdated(cfg crowdfund.SystemConfig) {
	p.lock.RLock()
	defer p.lock.RUnlock()
	for _, subscriber := range p.subscribers {
		subscriber.OnConfigUpdated(cfg)
	}
}

func (p *Distributor) OnCampaignCreated(campaign crowdfund.Campaign) {
	p.lock.RLock()
	defer p.lock.RUnlock()
	for _, subscriber := range p.subscribers {
		subscriber.OnCampaignCreated(campaign)
	}
}

func (p *Distributor) OnDonationReceived(campaignID crowdfund.Identifier, donor crowdfund.Identifier, amount uint64) {
	p.lock.RLock()
	defer p.lock.RUnlock()
	for _, subscriber := range p.subscribers {
		subscriber.OnDonationReceived(campaignID, donor, amount)
	}
}

func (p *Distributor) OnMilestoneReleased(campaignID crowdfund.Identifier, index uint8, amount uint64) {
	p.lock.RLock()
	defer p.lock.RUnlock()
	for _, subscriber := range p.subscribers {
		subscriber.OnMilestoneReleased(campaignID, index, amount)
	}
}

func (p *Distributor) OnRefundIssued(campaignID crowdfund.Identifier, donor crowdfund.Identifier, amount uint64) {
	p.lock.RLock()
	defer p.lock.RUnlock()
	for _, subscriber := range p.subscribers {
		subscriber.OnRefundIssued(campaignID, donor, amount)
	}
}

func (p *Distributor) OnCampaignLocked(campaignID crowdfund.Identifier, locked bool) {
	p.lock.RLock()
	defer p.lock.RUnlock()
	for _, subscriber := range p.subscribers {
		subscriber.OnCampaignLocked(campaignID, locked)
	}
}
