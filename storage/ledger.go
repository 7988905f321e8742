package storage

import (
	"context"

	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

// Ledger is the keyed record store backing the custody engine. Every call to
// Update runs the given function in one atomic read-write transaction: either
// all of its writes are committed or none are.
type Ledger interface {
	// Update runs fn in a read-write transaction. If fn returns an error the
	// transaction is discarded and the error returned unchanged. An
	// implementation may run fn more than once if the transaction conflicts
	// with a concurrent one, so fn must not have side effects outside of tx.
	Update(ctx context.Context, fn func(tx LedgerTx) error) error

	// View runs fn against a consistent read-only snapshot.
	View(ctx context.Context, fn func(r LedgerReader) error) error
}

// LedgerReader gives read access to the records of the store.
type LedgerReader interface {
	// Config returns the system configuration, or ErrNotFound if it was
	// never initialized.
	Config() (*crowdfund.SystemConfig, error)

	// Campaign returns the campaign with the given ID, or ErrNotFound.
	Campaign(campaignID crowdfund.Identifier) (*crowdfund.Campaign, error)

	// Campaigns returns all campaigns in the store.
	Campaigns() ([]*crowdfund.Campaign, error)

	// Receipt returns the receipt of the donor for the campaign, or ErrNotFound.
	Receipt(campaignID, donor crowdfund.Identifier) (*crowdfund.DonationReceipt, error)

	// ReceiptsByDonor returns every receipt held by the donor.
	ReceiptsByDonor(donor crowdfund.Identifier) ([]*crowdfund.DonationReceipt, error)

	// Balance returns the balance of a custody slot, or ErrNotFound if the
	// slot was never created.
	Balance(slot crowdfund.Identifier) (uint64, error)

	// Events returns the journal of the campaign in sequence order.
	Events(campaignID crowdfund.Identifier) ([]crowdfund.Event, error)
}

// LedgerTx is the read-write view of the store within one transaction.
type LedgerTx interface {
	LedgerReader

	// InsertConfig stores the configuration singleton. It returns
	// ErrAlreadyExists if the configuration is already stored.
	InsertConfig(cfg *crowdfund.SystemConfig) error

	// UpdateConfig replaces the configuration singleton. It returns
	// ErrNotFound if the configuration was never stored.
	UpdateConfig(cfg *crowdfund.SystemConfig) error

	// NextCampaignSequence returns a store-wide sequence number, unique for
	// every committed transaction that calls it.
	NextCampaignSequence() (uint64, error)

	// InsertCampaign stores a new campaign. It returns ErrAlreadyExists if a
	// campaign with the same ID exists.
	InsertCampaign(campaign *crowdfund.Campaign) error

	// UpdateCampaign replaces an existing campaign, or returns ErrNotFound.
	UpdateCampaign(campaign *crowdfund.Campaign) error

	// AccumulateReceipt creates the receipt of the donor with the given amount,
	// or adds the amount to the existing receipt. It returns ErrOverflow if
	// the receipt amount would wrap.
	AccumulateReceipt(campaignID, donor crowdfund.Identifier, amount uint64) (*crowdfund.DonationReceipt, error)

	// UpdateReceipt replaces an existing receipt, or returns ErrNotFound.
	UpdateReceipt(receipt *crowdfund.DonationReceipt) error

	// CreateSlot creates an empty custody slot. It returns ErrAlreadyExists
	// if the slot exists.
	CreateSlot(slot crowdfund.Identifier) error

	// Credit adds value to a slot from outside the system, creating the slot
	// if needed. It returns ErrOverflow if the balance would wrap.
	Credit(slot crowdfund.Identifier, amount uint64) error

	// Transfer moves amount from one slot to another. It returns
	// ErrInsufficientBalance if the source holds less than amount, and
	// ErrOverflow if the destination balance would wrap.
	Transfer(from, to crowdfund.Identifier, amount uint64) error

	// SignerNonce returns the highest request nonce the signer used, or 0.
	SignerNonce(signer crowdfund.Identifier) (uint64, error)

	// SetSignerNonce records the highest request nonce the signer used.
	SetSignerNonce(signer crowdfund.Identifier, nonce uint64) error

	// AppendEvent appends the event to its campaign's journal, assigning it
	// the next sequence number of that campaign.
	AppendEvent(event *crowdfund.Event) error

	// OnSucceed registers a callback that runs after the transaction
	// committed. Callbacks of discarded transactions never run.
	OnSucceed(callback func())
}
