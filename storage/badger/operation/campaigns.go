package operation

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

// InsertCampaign stores a new campaign under its ID.
// Expected errors during normal operations:
//   - storage.ErrAlreadyExists if a campaign with the same ID exists
func InsertCampaign(campaign *crowdfund.Campaign) func(*badger.Txn) error {
	return insert(makePrefix(codeCampaign, campaign.ID), campaign)
}

// UpdateCampaign replaces an existing campaign.
// Expected errors during normal operations:
//   - storage.ErrNotFound if no campaign with the ID exists
func UpdateCampaign(campaign *crowdfund.Campaign) func(*badger.Txn) error {
	return update(makePrefix(codeCampaign, campaign.ID), campaign)
}

// RetrieveCampaign reads the campaign with the given ID.
// Expected errors during normal operations:
//   - storage.ErrNotFound if no campaign with the ID exists
func RetrieveCampaign(campaignID crowdfund.Identifier, campaign *crowdfund.Campaign) func(*badger.Txn) error {
	return retrieve(makePrefix(codeCampaign, campaignID), campaign)
}

// TraverseCampaigns collects every stored campaign in ID order.
func TraverseCampaigns(campaigns *[]*crowdfund.Campaign) func(*badger.Txn) error {
	iteration := func() (checkFunc, createFunc, handleFunc) {
		check := func(key []byte) bool {
			return true
		}
		var campaign crowdfund.Campaign
		create := func() interface{} {
			return &campaign
		}
		handle := func() error {
			c := campaign
			*campaigns = append(*campaigns, &c)
			return nil
		}
		return check, create, handle
	}
	return traverse(makePrefix(codeCampaign), iteration)
}

// RetrieveCampaignVersioned reads the campaign with the given ID together with
// the commit version of the record. The record is not decoded if cached
// reports the version as cached.
// Expected errors during normal operations:
//   - storage.ErrNotFound if no campaign with the ID exists
func RetrieveCampaignVersioned(campaignID crowdfund.Identifier, campaign *crowdfund.Campaign, version *uint64, cached func(uint64) bool) func(*badger.Txn) error {
	return retrieveVersioned(makePrefix(codeCampaign, campaignID), campaign, version, cached)
}
