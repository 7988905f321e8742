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

// LockCampaign sets the administrative lock of a campaign. A locked campaign
// cannot release milestones; donations and refunds are unaffected.
func (e *Engine) LockCampaign(ctx context.Context, caller crowdfund.Identifier, campaignID crowdfund.Identifier, locked bool) error {
	return e.update(ctx, metrics.OperationLockCampaign, func(tx storage.LedgerTx) error {
		now := e.clock.Now()

		cfg, err := readConfig(tx)
		if err != nil {
			return err
		}
		err = authorize(caller, cfg.Authority, "configuration authority")
		if err != nil {
			return err
		}
		campaign, err := readCampaign(tx, campaignID)
		if err != nil {
			return err
		}

		campaign.Locked = locked
		err = tx.UpdateCampaign(campaign)
		if err != nil {
			return fmt.Errorf("could not update campaign: %w", err)
		}

		event := &crowdfund.Event{
			Type:      crowdfund.EventCampaignLocked,
			Campaign:  campaignID,
			Timestamp: now,
			Actor:     caller,
			Locked:    locked,
		}
		return e.emit(tx, event, func() {
			e.log.Warn().
				Hex("campaign_id", logging.ID(campaignID)).
				Bool("locked", locked).
				Msg("campaign lock changed")
			e.consumer.OnCampaignLocked(campaignID, locked)
		})
	})
}

// FundAccount credits an identity's slot with value entering the system from
// outside. Only the configuration authority can fund accounts.
func (e *Engine) FundAccount(ctx context.Context, caller crowdfund.Identifier, account crowdfund.Identifier, amount uint64) error {
	return e.update(ctx, metrics.OperationFundAccount, func(tx storage.LedgerTx) error {
		cfg, err := readConfig(tx)
		if err != nil {
			return err
		}
		err = authorize(caller, cfg.Authority, "configuration authority")
		if err != nil {
			return err
		}
		if account.IsZero() {
			return errors.NewInvalidArgumentErrorf("account must be set")
		}

		err = tx.Credit(account, amount)
		if stdErrors.Is(err, storage.ErrOverflow) {
			return errors.WrapCodedError(errors.ErrCodeArithmeticOverflow, err, "balance of account %s", account)
		}
		if err != nil {
			return fmt.Errorf("could not credit account: %w", err)
		}

		tx.OnSucceed(func() {
			e.metrics.FundsMoved(metrics.TransferFunding, amount)
			e.log.Info().
				Hex("account", logging.ID(account)).
				Uint64("amount", amount).
				Msg("account funded")
		})
		return nil
	})
}
