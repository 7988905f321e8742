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

// Donate moves amount from the donor's slot into the campaign vault and
// records it on the donor's receipt. Donations are accepted until the
// campaign's end time, and never once the last milestone was released.
func (e *Engine) Donate(ctx context.Context, donor crowdfund.Identifier, campaignID crowdfund.Identifier, amount uint64) (*crowdfund.DonationReceipt, error) {
	var result *crowdfund.DonationReceipt
	err := e.update(ctx, metrics.OperationDonate, func(tx storage.LedgerTx) error {
		result = nil
		now := e.clock.Now()

		campaign, err := readCampaign(tx, campaignID)
		if err != nil {
			return err
		}
		if campaign.HasEnded(now) {
			return errors.NewCampaignEndedError(campaignID, campaign.EndTime, now)
		}
		if campaign.IsCompleted() {
			return errors.NewBadMilestoneErrorf("campaign %s already released its last milestone", campaignID)
		}
		if donor.IsZero() {
			return errors.NewInvalidArgumentErrorf("donor must be set")
		}

		total := campaign.TotalDonated + amount
		if total < campaign.TotalDonated {
			return errors.NewArithmeticOverflowError("campaign total donated", campaign.TotalDonated, amount)
		}

		err = transfer(tx, donor, campaign.Vault, amount)
		if err != nil {
			return err
		}

		campaign.TotalDonated = total
		err = tx.UpdateCampaign(campaign)
		if err != nil {
			return fmt.Errorf("could not update campaign: %w", err)
		}

		receipt, err := tx.AccumulateReceipt(campaignID, donor, amount)
		if stdErrors.Is(err, storage.ErrOverflow) {
			return errors.WrapCodedError(errors.ErrCodeArithmeticOverflow, err, "donation receipt")
		}
		if err != nil {
			return fmt.Errorf("could not accumulate receipt: %w", err)
		}

		event := &crowdfund.Event{
			Type:      crowdfund.EventDonationReceived,
			Campaign:  campaignID,
			Timestamp: now,
			Actor:     donor,
			Amount:    amount,
		}
		err = e.emit(tx, event, func() {
			e.metrics.FundsMoved(metrics.TransferDonation, amount)
			e.log.Info().
				Hex("campaign_id", logging.ID(campaignID)).
				Hex("donor", logging.ID(donor)).
				Uint64("amount", amount).
				Uint64("total_donated", total).
				Msg("donation received")
			e.consumer.OnDonationReceived(campaignID, donor, amount)
		})
		if err != nil {
			return err
		}

		result = receipt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
