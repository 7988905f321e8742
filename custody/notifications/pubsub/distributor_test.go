package pubsub_test

import (
	"sync"
	"testing"

	"github.com/onflow/flow-crowdfund/custody/mock"
	"github.com/onflow/flow-crowdfund/custody/notifications/pubsub"
	"github.com/onflow/flow-crowdfund/utils/unittest"
)

func TestDistributorFanOut(t *testing.T) {
	distributor := pubsub.NewDistributor()
	consumers := []*mock.Consumer{mock.NewConsumer(t), mock.NewConsumer(t)}

	campaign := unittest.CampaignFixture()
	donor := unittest.IdentifierFixture()
	cfg := unittest.SystemConfigFixture()
	for _, consumer := range consumers {
		consumer.On("OnConfigUpdated", *cfg).Once()
		consumer.On("OnCampaignCreated", *campaign).Once()
		consumer.On("OnDonationReceived", campaign.ID, donor, uint64(40)).Once()
		consumer.On("OnMilestoneReleased", campaign.ID, uint8(0), uint64(30)).Once()
		consumer.On("OnRefundIssued", campaign.ID, donor, uint64(40)).Once()
		consumer.On("OnCampaignLocked", campaign.ID, true).Once()
		distributor.AddConsumer(consumer)
	}

	distributor.OnConfigUpdated(*cfg)
	distributor.OnCampaignCreated(*campaign)
	distributor.OnDonationReceived(campaign.ID, donor, 40)
	distributor.OnMilestoneReleased(campaign.ID, 0, 30)
	distributor.OnRefundIssued(campaign.ID, donor, 40)
	distributor.OnCampaignLocked(campaign.ID, true)
}

func TestDistributorConcurrentSubscription(t *testing.T) {
	distributor := pubsub.NewDistributor()
	campaignID := unittest.IdentifierFixture()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		consumer := mock.NewConsumer(t)
		consumer.On("OnCampaignLocked", campaignID, false).Maybe()
		wg.Add(2)
		go func() {
			defer wg.Done()
			distributor.AddConsumer(consumer)
		}()
		go func() {
			defer wg.Done()
			distributor.OnCampaignLocked(campaignID, false)
		}()
	}
	wg.Wait()
}
