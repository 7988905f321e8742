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

// Refund returns the donor's contribution to a failed campaign. A campaign
// has failed once its end time passed without reaching the target. The
// receipt keeps its amount and is only flagged as refunded.
func (e *Engine) Refund(ctx context.Context, donor crowdfund.Identifier, campaignID crowdfund.Identifier) (*Payout, error) {
	var result *Payout
	err := e.update(ctx, metrics.OperationRefund, func(tx storage.LedgerTx) error {
		result = nil
		now := e.clock.Now()

		campaign, err := readCampaign(tx, campaignID)
		if err != nil {
			return err
		}
		if !campaign.HasFailed(now) {
			return errors.NewNotFailedError(campaignID)
		}

		receipt, err := tx.Receipt(campaignID, donor)
		if stdErrors.Is(err, storage.ErrNotFound) {
			return errors.NewNothingToRefundError(campaignID, donor)
		}
		if err != nil {
			return fmt.Errorf("could not read receipt: %w", err)
		}
		amount := receipt.Refundable()
		if amount == 0 {
			return errors.NewNothingToRefundError(campaignID, donor)
		}

		receipt.Refunded = true
		err = tx.UpdateReceipt(receipt)
		if err != nil {
			return fmt.Errorf("could not update receipt: %w", err)
		}

		err = transfer(tx, campaign.Vault, donor, amount)
		if err != nil {
			return err
		}

		event := &crowdfund.Event{
			Type:      crowdfund.EventRefundIssued,
			Campaign:  campaignID,
			Timestamp: now,
			Actor:     donor,
			Amount:    amount,
		}
		err = e.emit(tx, event, func() {
			e.metrics.FundsMoved(metrics.TransferRefund, amount)
			e.log.Info().
				Hex("campaign_id", logging.ID(campaignID)).
				Hex("donor", logging.ID(donor)).
				Uint64("amount", amount).
				Msg("refund issued")
			e.consumer.OnRefundIssued(campaignID, donor, amount)
		})
		if err != nil {
			return err
		}

		result = &Payout{
			Campaign:  campaignID,
			Recipient: donor,
			Amount:    amount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
