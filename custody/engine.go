package custody

import (
	"context"
	stdErrors "errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/onflow/flow-crowdfund/custody/errors"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
	"github.com/onflow/flow-crowdfund/module"
	"github.com/onflow/flow-crowdfund/storage"
)

// Engine is the fund custody state machine. Every mutating operation runs as
// one atomic ledger transaction and either commits entirely or fails with an
// error and leaves no trace. Expected failures are errors.CodedError values;
// any other error is an unexpected storage exception.
type Engine struct {
	log      zerolog.Logger
	metrics  module.CustodyMetrics
	ledger   storage.Ledger
	clock    module.Clock
	consumer Consumer
}

func New(
	log zerolog.Logger,
	metrics module.CustodyMetrics,
	ledger storage.Ledger,
	clock module.Clock,
	consumer Consumer,
) *Engine {
	return &Engine{
		log:      log.With().Str("component", "custody").Logger(),
		metrics:  metrics,
		ledger:   ledger,
		clock:    clock,
		consumer: consumer,
	}
}

// update runs fn as one ledger transaction and records the outcome. fn may be
// run several times if the transaction conflicts with a concurrent one. If ctx
// carries an Authorization, its nonce is consumed in the same transaction, and
// in a transaction of its own if the operation is rejected.
func (e *Engine) update(ctx context.Context, operation string, fn func(tx storage.LedgerTx) error) error {
	start := time.Now()
	auth, signed := AuthorizationFromContext(ctx)
	err := e.ledger.Update(ctx, func(tx storage.LedgerTx) error {
		if signed {
			err := consumeNonce(tx, auth)
			if err != nil {
				return err
			}
		}
		return fn(tx)
	})
	if err != nil {
		coded, ok := errors.Find(err)
		if ok {
			e.metrics.OperationRejected(operation, coded.Code().Name())
			e.log.Debug().Str("operation", operation).Err(err).Msg("operation rejected")
			if signed && coded.Code() != errors.ErrCodeStaleNonce {
				e.burnNonce(ctx, auth)
			}
			return err
		}
		e.log.Error().Str("operation", operation).Err(err).Msg("operation failed")
		return fmt.Errorf("could not execute %s: %w", operation, err)
	}
	e.metrics.OperationExecuted(operation, time.Since(start))
	return nil
}

// burnNonce consumes the nonce of a rejected request, so that the request
// cannot be replayed once the state changed in its favour.
func (e *Engine) burnNonce(ctx context.Context, auth Authorization) {
	err := e.ledger.Update(ctx, func(tx storage.LedgerTx) error {
		err := consumeNonce(tx, auth)
		if errors.IsStaleNonceError(err) {
			return nil
		}
		return err
	})
	if err != nil {
		e.log.Error().Err(err).Str("signer", auth.Signer.String()).Msg("could not consume nonce of rejected request")
	}
}

// emit appends the event to its campaign's journal and schedules the
// notification for after the commit.
func (e *Engine) emit(tx storage.LedgerTx, event *crowdfund.Event, notify func()) error {
	err := tx.AppendEvent(event)
	if err != nil {
		return fmt.Errorf("could not journal %s: %w", event.Type, err)
	}
	tx.OnSucceed(notify)
	return nil
}

// readConfig loads the configuration singleton.
func readConfig(r storage.LedgerReader) (*crowdfund.SystemConfig, error) {
	cfg, err := r.Config()
	if stdErrors.Is(err, storage.ErrNotFound) {
		return nil, errors.NewConfigNotInitializedError()
	}
	if err != nil {
		return nil, fmt.Errorf("could not read system config: %w", err)
	}
	return cfg, nil
}

// readCampaign loads a campaign.
func readCampaign(r storage.LedgerReader, campaignID crowdfund.Identifier) (*crowdfund.Campaign, error) {
	campaign, err := r.Campaign(campaignID)
	if stdErrors.Is(err, storage.ErrNotFound) {
		return nil, errors.NewCampaignNotFoundError(campaignID)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read campaign: %w", err)
	}
	return campaign, nil
}

// transfer moves value between slots, turning the ledger's accounting
// sentinels into coded errors.
func transfer(tx storage.LedgerTx, from, to crowdfund.Identifier, amount uint64) error {
	err := tx.Transfer(from, to, amount)
	if stdErrors.Is(err, storage.ErrInsufficientBalance) {
		return errors.NewInsufficientBalanceError(from, err)
	}
	if stdErrors.Is(err, storage.ErrOverflow) {
		return errors.WrapCodedError(errors.ErrCodeArithmeticOverflow, err, "balance of slot %s", to)
	}
	if err != nil {
		return fmt.Errorf("could not transfer %d from %x to %x: %w", amount, from, to, err)
	}
	return nil
}

// authorize fails with UnAuthorized unless caller is the expected identity.
func authorize(caller, expected crowdfund.Identifier, role string) error {
	if caller.IsZero() || caller != expected {
		return errors.NewUnAuthorizedError(caller, role)
	}
	return nil
}
