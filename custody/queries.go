package custody

import (
	"context"
	stdErrors "errors"
	"fmt"
	"sort"

	"github.com/onflow/flow-crowdfund/model/crowdfund"
	"github.com/onflow/flow-crowdfund/storage"
)

// CampaignFilter selects campaigns. Unset fields match every campaign.
type CampaignFilter struct {
	Creator *crowdfund.Identifier
	Status  *crowdfund.CampaignStatus
}

func (f CampaignFilter) matches(campaign *crowdfund.Campaign, now int64) bool {
	if f.Creator != nil && campaign.Creator != *f.Creator {
		return false
	}
	if f.Status != nil && campaign.Status(now) != *f.Status {
		return false
	}
	return true
}

// Now returns the time of the engine's clock.
func (e *Engine) Now() int64 {
	return e.clock.Now()
}

// Config returns the system configuration.
// Expected errors during normal operations:
//   - ConfigNotInitialized if the configuration was never initialized
func (e *Engine) Config(ctx context.Context) (*crowdfund.SystemConfig, error) {
	var cfg *crowdfund.SystemConfig
	err := e.ledger.View(ctx, func(r storage.LedgerReader) error {
		var err error
		cfg, err = readConfig(r)
		return err
	})
	return cfg, err
}

// Campaign returns the campaign with the given ID.
// Expected errors during normal operations:
//   - CampaignNotFound if no campaign with the ID exists
func (e *Engine) Campaign(ctx context.Context, campaignID crowdfund.Identifier) (*crowdfund.Campaign, error) {
	var campaign *crowdfund.Campaign
	err := e.ledger.View(ctx, func(r storage.LedgerReader) error {
		var err error
		campaign, err = readCampaign(r, campaignID)
		return err
	})
	return campaign, err
}

// Campaigns returns the campaigns matching the filter, oldest first.
func (e *Engine) Campaigns(ctx context.Context, filter CampaignFilter) ([]*crowdfund.Campaign, error) {
	now := e.clock.Now()
	var campaigns []*crowdfund.Campaign
	err := e.ledger.View(ctx, func(r storage.LedgerReader) error {
		all, err := r.Campaigns()
		if err != nil {
			return err
		}
		for _, campaign := range all {
			if filter.matches(campaign, now) {
				campaigns = append(campaigns, campaign)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not list campaigns: %w", err)
	}
	sort.SliceStable(campaigns, func(i, j int) bool {
		return campaigns[i].StartTime < campaigns[j].StartTime
	})
	return campaigns, nil
}

// Receipt returns the donor's receipt for the campaign.
// Expected errors during normal operations:
//   - storage.ErrNotFound if the donor never donated to the campaign
func (e *Engine) Receipt(ctx context.Context, campaignID, donor crowdfund.Identifier) (*crowdfund.DonationReceipt, error) {
	var receipt *crowdfund.DonationReceipt
	err := e.ledger.View(ctx, func(r storage.LedgerReader) error {
		var err error
		receipt, err = r.Receipt(campaignID, donor)
		return err
	})
	return receipt, err
}

// ReceiptsByDonor returns every receipt the donor holds.
func (e *Engine) ReceiptsByDonor(ctx context.Context, donor crowdfund.Identifier) ([]*crowdfund.DonationReceipt, error) {
	var receipts []*crowdfund.DonationReceipt
	err := e.ledger.View(ctx, func(r storage.LedgerReader) error {
		var err error
		receipts, err = r.ReceiptsByDonor(donor)
		return err
	})
	return receipts, err
}

// CampaignEvents returns the journal of the campaign in sequence order.
// Expected errors during normal operations:
//   - CampaignNotFound if no campaign with the ID exists
func (e *Engine) CampaignEvents(ctx context.Context, campaignID crowdfund.Identifier) ([]crowdfund.Event, error) {
	var events []crowdfund.Event
	err := e.ledger.View(ctx, func(r storage.LedgerReader) error {
		_, err := readCampaign(r, campaignID)
		if err != nil {
			return err
		}
		events, err = r.Events(campaignID)
		return err
	})
	return events, err
}

// VaultBalance returns the value held in the campaign's vault.
// Expected errors during normal operations:
//   - CampaignNotFound if no campaign with the ID exists
func (e *Engine) VaultBalance(ctx context.Context, campaignID crowdfund.Identifier) (uint64, error) {
	var balance uint64
	err := e.ledger.View(ctx, func(r storage.LedgerReader) error {
		campaign, err := readCampaign(r, campaignID)
		if err != nil {
			return err
		}
		balance, err = r.Balance(campaign.Vault)
		return err
	})
	return balance, err
}

// Balance returns the value held in an identity's own slot. Identities that
// never held value have a zero balance.
func (e *Engine) Balance(ctx context.Context, account crowdfund.Identifier) (uint64, error) {
	var balance uint64
	err := e.ledger.View(ctx, func(r storage.LedgerReader) error {
		var err error
		balance, err = r.Balance(account)
		if stdErrors.Is(err, storage.ErrNotFound) {
			balance = 0
			return nil
		}
		return err
	})
	return balance, err
}
