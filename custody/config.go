package custody

import (
	"context"
	stdErrors "errors"
	"fmt"

	"github.com/onflow/flow-crowdfund/custody/errors"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
	"github.com/onflow/flow-crowdfund/module/metrics"
	"github.com/onflow/flow-crowdfund/storage"
	"github.com/onflow/flow-crowdfund/utils/logging"
)

// Initialize creates the system configuration with the given authority and
// dispute window. It can succeed only once per store.
func (e *Engine) Initialize(ctx context.Context, authority crowdfund.Identifier, disputeWindowSeconds int64) error {
	return e.update(ctx, metrics.OperationInitialize, func(tx storage.LedgerTx) error {
		_, err := tx.Config()
		if err == nil {
			return errors.NewConfigInitializedError()
		}
		if !stdErrors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("could not read system config: %w", err)
		}

		if authority.IsZero() {
			return errors.NewInvalidArgumentErrorf("authority must be set")
		}
		if disputeWindowSeconds < 0 {
			return errors.NewInvalidArgumentErrorf("dispute window must not be negative, got %d", disputeWindowSeconds)
		}

		cfg := crowdfund.SystemConfig{
			Authority:            authority,
			DisputeWindowSeconds: disputeWindowSeconds,
		}
		err = tx.InsertConfig(&cfg)
		if err != nil {
			return fmt.Errorf("could not insert system config: %w", err)
		}

		tx.OnSucceed(func() {
			e.log.Info().
				Hex("authority", logging.ID(authority)).
				Int64("dispute_window_seconds", disputeWindowSeconds).
				Msg("system configuration initialized")
			e.consumer.OnConfigUpdated(cfg)
		})
		return nil
	})
}

// UpdateAuthority hands the configuration authority over to another identity.
func (e *Engine) UpdateAuthority(ctx context.Context, caller crowdfund.Identifier, authority crowdfund.Identifier) error {
	return e.update(ctx, metrics.OperationUpdateAuthority, func(tx storage.LedgerTx) error {
		cfg, err := readConfig(tx)
		if err != nil {
			return err
		}
		err = authorize(caller, cfg.Authority, "configuration authority")
		if err != nil {
			return err
		}
		if authority.IsZero() {
			return errors.NewConfigLockedErrorf("authority cannot be reset")
		}

		cfg.Authority = authority
		return e.storeConfig(tx, cfg)
	})
}

// UpdateDisputeWindow changes the minimum time between two releases of the
// same campaign. It applies to every campaign, including running ones.
func (e *Engine) UpdateDisputeWindow(ctx context.Context, caller crowdfund.Identifier, seconds int64) error {
	return e.update(ctx, metrics.OperationUpdateDisputeWindow, func(tx storage.LedgerTx) error {
		cfg, err := readConfig(tx)
		if err != nil {
			return err
		}
		err = authorize(caller, cfg.Authority, "configuration authority")
		if err != nil {
			return err
		}
		if seconds < 0 {
			return errors.NewInvalidArgumentErrorf("dispute window must not be negative, got %d", seconds)
		}

		cfg.DisputeWindowSeconds = seconds
		return e.storeConfig(tx, cfg)
	})
}

func (e *Engine) storeConfig(tx storage.LedgerTx, cfg *crowdfund.SystemConfig) error {
	err := tx.UpdateConfig(cfg)
	if err != nil {
		return fmt.Errorf("could not update system config: %w", err)
	}
	updated := *cfg
	tx.OnSucceed(func() {
		e.log.Info().
			Hex("authority", logging.ID(updated.Authority)).
			Int64("dispute_window_seconds", updated.DisputeWindowSeconds).
			Msg("system configuration updated")
		e.consumer.OnConfigUpdated(updated)
	})
	return nil
}
