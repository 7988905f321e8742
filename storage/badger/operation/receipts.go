package operation

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

// InsertReceipt stores the first receipt of a donor for a campaign.
// Expected errors during normal operations:
//   - storage.ErrAlreadyExists if the donor already holds a receipt
func InsertReceipt(receipt *crowdfund.DonationReceipt) func(*badger.Txn) error {
	return insert(makePrefix(codeReceipt, receipt.Campaign, receipt.Donor), receipt)
}

// UpdateReceipt replaces an existing receipt.
// Expected errors during normal operations:
//   - storage.ErrNotFound if the donor holds no receipt for the campaign
func UpdateReceipt(receipt *crowdfund.DonationReceipt) func(*badger.Txn) error {
	return update(makePrefix(codeReceipt, receipt.Campaign, receipt.Donor), receipt)
}

// RetrieveReceipt reads the receipt of a donor for a campaign.
// Expected errors during normal operations:
//   - storage.ErrNotFound if the donor holds no receipt for the campaign
func RetrieveReceipt(campaignID, donor crowdfund.Identifier, receipt *crowdfund.DonationReceipt) func(*badger.Txn) error {
	return retrieve(makePrefix(codeReceipt, campaignID, donor), receipt)
}

// IndexDonorReceipt indexes the campaign a donor holds a receipt for.
// Expected errors during normal operations:
//   - storage.ErrAlreadyExists if the index entry exists
func IndexDonorReceipt(donor, campaignID crowdfund.Identifier) func(*badger.Txn) error {
	return insert(makePrefix(codeDonorReceipts, donor, campaignID), campaignID)
}

// LookupDonorReceipts collects the IDs of the campaigns a donor holds
// receipts for.
func LookupDonorReceipts(donor crowdfund.Identifier, campaignIDs *[]crowdfund.Identifier) func(*badger.Txn) error {
	return traverse(makePrefix(codeDonorReceipts, donor), lookup(campaignIDs))
}
