package badger

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v2"
	"github.com/sethvargo/go-retry"

	"github.com/onflow/flow-crowdfund/model/crowdfund"
	"github.com/onflow/flow-crowdfund/module"
	"github.com/onflow/flow-crowdfund/module/metrics"
	"github.com/onflow/flow-crowdfund/storage"
	"github.com/onflow/flow-crowdfund/storage/badger/operation"
	"github.com/onflow/flow-crowdfund/storage/badger/transaction"
)

const (
	DefaultCacheSize       = 1000
	DefaultConflictTimeout = 10 * time.Second

	conflictBackoffCap    = 10 * time.Millisecond
	conflictJitterPercent = 50
)

type LedgerOption func(*Ledger)

// WithCacheSize sets the number of campaigns kept decoded in memory.
func WithCacheSize(size uint) LedgerOption {
	return func(l *Ledger) {
		l.cacheSize = size
	}
}

// WithConflictTimeout sets for how long a conflicting transaction is re-run
// before the conflict is returned to the caller. Cancelling the context of
// the update stops the retries earlier.
func WithConflictTimeout(timeout time.Duration) LedgerOption {
	return func(l *Ledger) {
		l.conflictTimeout = timeout
	}
}

func WithCacheMetrics(collector module.CacheMetrics) LedgerOption {
	return func(l *Ledger) {
		l.cacheMetrics = collector
	}
}

func WithStorageMetrics(collector module.StorageMetrics) LedgerOption {
	return func(l *Ledger) {
		l.storageMetrics = collector
	}
}

// Ledger implements storage.Ledger on top of badger. Badger's serializable
// snapshot isolation serializes transactions touching the same records: the
// later of two conflicting commits fails with badger.ErrConflict, upon which
// the whole transaction is re-run on a fresh snapshot until it commits, the
// conflict timeout passes or the context is cancelled.
type Ledger struct {
	db              *badger.DB
	cacheSize       uint
	conflictTimeout time.Duration
	backoff         time.Duration
	cacheMetrics    module.CacheMetrics
	storageMetrics  module.StorageMetrics
	campaigns       *Cache[crowdfund.Identifier, crowdfund.Campaign]
	configs         *Cache[string, crowdfund.SystemConfig]
}

var _ storage.Ledger = (*Ledger)(nil)

func NewLedger(db *badger.DB, options ...LedgerOption) *Ledger {
	noop := metrics.NewNoopCollector()
	l := &Ledger{
		db:              db,
		cacheSize:       DefaultCacheSize,
		conflictTimeout: DefaultConflictTimeout,
		backoff:         time.Millisecond,
		cacheMetrics:    noop,
		storageMetrics:  noop,
	}
	for _, apply := range options {
		apply(l)
	}

	l.campaigns = newCache[crowdfund.Identifier, crowdfund.Campaign](l.cacheMetrics,
		withLimit[crowdfund.Identifier, crowdfund.Campaign](l.cacheSize),
		withResource[crowdfund.Identifier, crowdfund.Campaign](metrics.ResourceCampaign))
	l.configs = newCache[string, crowdfund.SystemConfig](l.cacheMetrics,
		withLimit[string, crowdfund.SystemConfig](1),
		withResource[string, crowdfund.SystemConfig](metrics.ResourceSystemConfig))

	return l
}

func (l *Ledger) Update(ctx context.Context, fn func(storage.LedgerTx) error) error {
	backoff := retry.NewExponential(l.backoff)
	backoff = retry.WithCappedDuration(conflictBackoffCap, backoff)
	backoff = retry.WithJitterPercent(conflictJitterPercent, backoff)
	backoff = retry.WithMaxDuration(l.conflictTimeout, backoff)

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := transaction.Update(l.db, func(tx *transaction.Tx) error {
			return fn(newLedgerTx(l, tx))
		})
		if errors.Is(err, badger.ErrConflict) {
			l.storageMetrics.RetryOnConflict()
			return retry.RetryableError(err)
		}
		return terminateOnFullDisk(err)
	})
	if errors.Is(err, badger.ErrConflict) {
		l.storageMetrics.TransactionAborted()
	}
	return err
}

// terminateOnFullDisk crashes the process if a write failed because the disk
// is full. Panicking lets deferred functions run.
func terminateOnFullDisk(err error) error {
	if errors.Is(err, syscall.ENOSPC) {
		panic("disk full, terminating process...")
	}
	return err
}

func (l *Ledger) View(ctx context.Context, fn func(storage.LedgerReader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return transaction.View(l.db, transaction.WithTx(func(txn *badger.Txn) error {
		return fn(newReader(l, txn))
	}))
}

// ledgerTx implements storage.LedgerTx over one read-write transaction.
type ledgerTx struct {
	*reader
	tx *transaction.Tx
}

var _ storage.LedgerTx = (*ledgerTx)(nil)

func newLedgerTx(l *Ledger, tx *transaction.Tx) *ledgerTx {
	return &ledgerTx{
		reader: newReader(l, tx.DBTxn),
		tx:     tx,
	}
}

func (t *ledgerTx) InsertConfig(cfg *crowdfund.SystemConfig) error {
	t.dirtyConfig = true
	return operation.InsertSystemConfig(cfg)(t.txn)
}

func (t *ledgerTx) UpdateConfig(cfg *crowdfund.SystemConfig) error {
	t.dirtyConfig = true
	return operation.UpdateSystemConfig(cfg)(t.txn)
}

func (t *ledgerTx) NextCampaignSequence() (uint64, error) {
	var seq uint64
	err := operation.IncrementCampaignSequence(&seq)(t.txn)
	if err != nil {
		return 0, fmt.Errorf("could not increment campaign sequence: %w", err)
	}
	return seq, nil
}

func (t *ledgerTx) InsertCampaign(campaign *crowdfund.Campaign) error {
	t.dirty[campaign.ID] = struct{}{}
	return operation.InsertCampaign(campaign)(t.txn)
}

func (t *ledgerTx) UpdateCampaign(campaign *crowdfund.Campaign) error {
	t.dirty[campaign.ID] = struct{}{}
	return operation.UpdateCampaign(campaign)(t.txn)
}

func (t *ledgerTx) AccumulateReceipt(campaignID, donor crowdfund.Identifier, amount uint64) (*crowdfund.DonationReceipt, error) {
	receipt, err := t.Receipt(campaignID, donor)
	if errors.Is(err, storage.ErrNotFound) {
		receipt = &crowdfund.DonationReceipt{
			Campaign: campaignID,
			Donor:    donor,
			Amount:   amount,
		}
		err = operation.InsertReceipt(receipt)(t.txn)
		if err != nil {
			return nil, fmt.Errorf("could not insert receipt: %w", err)
		}
		err = operation.IndexDonorReceipt(donor, campaignID)(t.txn)
		if err != nil {
			return nil, fmt.Errorf("could not index receipt: %w", err)
		}
		return receipt, nil
	}
	if err != nil {
		return nil, err
	}

	total := receipt.Amount + amount
	if total < receipt.Amount {
		return nil, fmt.Errorf("receipt of donor %x holds %d, adding %d: %w", donor, receipt.Amount, amount, storage.ErrOverflow)
	}
	receipt.Amount = total
	err = operation.UpdateReceipt(receipt)(t.txn)
	if err != nil {
		return nil, fmt.Errorf("could not update receipt: %w", err)
	}
	return receipt, nil
}

func (t *ledgerTx) UpdateReceipt(receipt *crowdfund.DonationReceipt) error {
	return operation.UpdateReceipt(receipt)(t.txn)
}

func (t *ledgerTx) CreateSlot(slot crowdfund.Identifier) error {
	return operation.InsertBalance(slot, 0)(t.txn)
}

func (t *ledgerTx) Credit(slot crowdfund.Identifier, amount uint64) error {
	balance, err := t.balanceOrZero(slot)
	if err != nil {
		return err
	}
	total := balance + amount
	if total < balance {
		return fmt.Errorf("slot %x holds %d, crediting %d: %w", slot, balance, amount, storage.ErrOverflow)
	}
	return operation.UpsertBalance(slot, total)(t.txn)
}

func (t *ledgerTx) Transfer(from, to crowdfund.Identifier, amount uint64) error {
	fromBalance, err := t.balanceOrZero(from)
	if err != nil {
		return err
	}
	if fromBalance < amount {
		return fmt.Errorf("slot %x holds %d, transferring %d: %w", from, fromBalance, amount, storage.ErrInsufficientBalance)
	}
	if from == to {
		return nil
	}

	toBalance, err := t.balanceOrZero(to)
	if err != nil {
		return err
	}
	total := toBalance + amount
	if total < toBalance {
		return fmt.Errorf("slot %x holds %d, receiving %d: %w", to, toBalance, amount, storage.ErrOverflow)
	}

	err = operation.UpsertBalance(from, fromBalance-amount)(t.txn)
	if err != nil {
		return fmt.Errorf("could not debit slot %x: %w", from, err)
	}
	err = operation.UpsertBalance(to, total)(t.txn)
	if err != nil {
		return fmt.Errorf("could not credit slot %x: %w", to, err)
	}
	return nil
}

func (t *ledgerTx) SignerNonce(signer crowdfund.Identifier) (uint64, error) {
	var nonce uint64
	err := operation.RetrieveSignerNonce(signer, &nonce)(t.txn)
	if err != nil {
		return 0, fmt.Errorf("could not retrieve nonce of signer %x: %w", signer, err)
	}
	return nonce, nil
}

func (t *ledgerTx) SetSignerNonce(signer crowdfund.Identifier, nonce uint64) error {
	return operation.UpsertSignerNonce(signer, nonce)(t.txn)
}

func (t *ledgerTx) AppendEvent(event *crowdfund.Event) error {
	var seq uint64
	err := operation.IncrementEventSequence(event.Campaign, &seq)(t.txn)
	if err != nil {
		return fmt.Errorf("could not increment event sequence: %w", err)
	}
	event.Sequence = seq
	return operation.InsertEvent(event)(t.txn)
}

func (t *ledgerTx) OnSucceed(callback func()) {
	t.tx.OnSucceed(callback)
}

func (t *ledgerTx) balanceOrZero(slot crowdfund.Identifier) (uint64, error) {
	balance, err := t.Balance(slot)
	if errors.Is(err, storage.ErrNotFound) {
		return 0, nil
	}
	return balance, err
}
