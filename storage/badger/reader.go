package badger

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/onflow/flow-crowdfund/model/crowdfund"
	"github.com/onflow/flow-crowdfund/storage"
	"github.com/onflow/flow-crowdfund/storage/badger/operation"
)

const configKey = "config"

// reader implements storage.LedgerReader over one badger transaction. Records
// the transaction wrote itself are never served from or put into the caches.
type reader struct {
	ledger      *Ledger
	txn         *badger.Txn
	dirty       map[crowdfund.Identifier]struct{}
	dirtyConfig bool
}

var _ storage.LedgerReader = (*reader)(nil)

func newReader(ledger *Ledger, txn *badger.Txn) *reader {
	return &reader{
		ledger: ledger,
		txn:    txn,
		dirty:  make(map[crowdfund.Identifier]struct{}),
	}
}

func (r *reader) Config() (*crowdfund.SystemConfig, error) {
	var cfg crowdfund.SystemConfig
	var version uint64
	hit := false
	lookup := func(v uint64) bool {
		if r.dirtyConfig {
			return false
		}
		cfg, hit = r.ledger.configs.Get(configKey, v)
		return hit
	}

	err := operation.RetrieveSystemConfigVersioned(&cfg, &version, lookup)(r.txn)
	if errors.Is(err, storage.ErrNotFound) {
		r.ledger.configs.NotFound(configKey)
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("could not retrieve system config: %w", err)
	}
	if !hit && !r.dirtyConfig {
		r.ledger.configs.Insert(configKey, version, cfg)
	}
	return &cfg, nil
}

func (r *reader) Campaign(campaignID crowdfund.Identifier) (*crowdfund.Campaign, error) {
	_, dirty := r.dirty[campaignID]

	var campaign crowdfund.Campaign
	var version uint64
	hit := false
	lookup := func(v uint64) bool {
		if dirty {
			return false
		}
		campaign, hit = r.ledger.campaigns.Get(campaignID, v)
		return hit
	}

	err := operation.RetrieveCampaignVersioned(campaignID, &campaign, &version, lookup)(r.txn)
	if errors.Is(err, storage.ErrNotFound) {
		r.ledger.campaigns.NotFound(campaignID)
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("could not retrieve campaign %x: %w", campaignID, err)
	}
	if !hit && !dirty {
		r.ledger.campaigns.Insert(campaignID, version, campaign)
	}
	return &campaign, nil
}

func (r *reader) Campaigns() ([]*crowdfund.Campaign, error) {
	var campaigns []*crowdfund.Campaign
	err := operation.TraverseCampaigns(&campaigns)(r.txn)
	if err != nil {
		return nil, fmt.Errorf("could not traverse campaigns: %w", err)
	}
	return campaigns, nil
}

func (r *reader) Receipt(campaignID, donor crowdfund.Identifier) (*crowdfund.DonationReceipt, error) {
	var receipt crowdfund.DonationReceipt
	err := operation.RetrieveReceipt(campaignID, donor, &receipt)(r.txn)
	if err != nil {
		return nil, fmt.Errorf("could not retrieve receipt: %w", err)
	}
	return &receipt, nil
}

func (r *reader) ReceiptsByDonor(donor crowdfund.Identifier) ([]*crowdfund.DonationReceipt, error) {
	var campaignIDs []crowdfund.Identifier
	err := operation.LookupDonorReceipts(donor, &campaignIDs)(r.txn)
	if err != nil {
		return nil, fmt.Errorf("could not look up receipts of donor %x: %w", donor, err)
	}

	receipts := make([]*crowdfund.DonationReceipt, 0, len(campaignIDs))
	for _, campaignID := range campaignIDs {
		receipt, err := r.Receipt(campaignID, donor)
		if err != nil {
			return nil, fmt.Errorf("inconsistent receipt index for campaign %x: %w", campaignID, err)
		}
		receipts = append(receipts, receipt)
	}
	return receipts, nil
}

func (r *reader) Balance(slot crowdfund.Identifier) (uint64, error) {
	var balance uint64
	err := operation.RetrieveBalance(slot, &balance)(r.txn)
	if err != nil {
		return 0, fmt.Errorf("could not retrieve balance: %w", err)
	}
	return balance, nil
}

func (r *reader) Events(campaignID crowdfund.Identifier) ([]crowdfund.Event, error) {
	var events []crowdfund.Event
	err := operation.LookupEvents(campaignID, &events)(r.txn)
	if err != nil {
		return nil, fmt.Errorf("could not look up events of campaign %x: %w", campaignID, err)
	}
	return events, nil
}
