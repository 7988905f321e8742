package custody

import (
	"context"
	"fmt"

	"github.com/onflow/flow-crowdfund/custody/errors"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
	"github.com/onflow/flow-crowdfund/module/metrics"
	"github.com/onflow/flow-crowdfund/storage"
	"github.com/onflow/flow-crowdfund/utils/logging"
)

// Payout describes value moved out of a campaign vault.
type Payout struct {
	Campaign  crowdfund.Identifier
	Recipient crowdfund.Identifier
	Amount    uint64
}

// Release pays milestone index of the campaign out to its creator.
//
// The checks run in a fixed order, and the first failing one determines the
// error: UnAuthorized, CampaignLocked, InvalidMilestone, TargetNotReached,
// MilestoneNotReady, AlreadyReleased, DisputeWindowOpen.
//
// The dispute window is measured from the previous release, or from the
// campaign start for the first one. The last milestone releases the whole
// vault balance rather than its nominal amount, so nothing stays behind.
func (e *Engine) Release(ctx context.Context, caller crowdfund.Identifier, campaignID crowdfund.Identifier, index uint8) (*Payout, error) {
	var result *Payout
	err := e.update(ctx, metrics.OperationRelease, func(tx storage.LedgerTx) error {
		result = nil
		now := e.clock.Now()

		cfg, err := readConfig(tx)
		if err != nil {
			return err
		}
		campaign, err := readCampaign(tx, campaignID)
		if err != nil {
			return err
		}

		err = checkRelease(campaign, caller, index, now, cfg.DisputeWindowSeconds)
		if err != nil {
			return err
		}

		milestone := &campaign.Milestones[index]
		amount := milestone.Amount
		if milestone.IsLast {
			amount, err = tx.Balance(campaign.Vault)
			if err != nil {
				return fmt.Errorf("could not read vault balance: %w", err)
			}
		}

		milestone.Released = true
		campaign.LastReleaseTime = now
		err = tx.UpdateCampaign(campaign)
		if err != nil {
			return fmt.Errorf("could not update campaign: %w", err)
		}

		err = transfer(tx, campaign.Vault, campaign.Creator, amount)
		if err != nil {
			return err
		}

		event := &crowdfund.Event{
			Type:           crowdfund.EventMilestoneReleased,
			Campaign:       campaignID,
			Timestamp:      now,
			Actor:          caller,
			Amount:         amount,
			MilestoneIndex: index,
		}
		err = e.emit(tx, event, func() {
			e.metrics.FundsMoved(metrics.TransferRelease, amount)
			e.metrics.MilestoneReleased(index)
			e.log.Info().
				Hex("campaign_id", logging.ID(campaignID)).
				Uint8("index", index).
				Uint64("amount", amount).
				Msg("milestone released")
			e.consumer.OnMilestoneReleased(campaignID, index, amount)
		})
		if err != nil {
			return err
		}

		result = &Payout{
			Campaign:  campaignID,
			Recipient: campaign.Creator,
			Amount:    amount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func checkRelease(campaign *crowdfund.Campaign, caller crowdfund.Identifier, index uint8, now int64, window int64) error {
	err := authorize(caller, campaign.Creator, "campaign creator")
	if err != nil {
		return err
	}
	if campaign.Locked {
		return errors.NewCampaignLockedError(campaign.ID)
	}
	if index >= campaign.MilestoneCount {
		return errors.NewInvalidMilestoneError(campaign.ID, index, campaign.MilestoneCount)
	}
	if !campaign.TargetReached() {
		return errors.NewTargetNotReachedError(campaign.ID, campaign.TotalDonated, campaign.TargetAmount)
	}
	if index > 0 && !campaign.Milestones[index-1].Released {
		return errors.NewMilestoneNotReadyError(campaign.ID, index)
	}
	if campaign.Milestones[index].Released {
		return errors.NewAlreadyReleasedError(campaign.ID, index)
	}
	reference := campaign.DisputeReference()
	if now-reference < window {
		return errors.NewDisputeWindowOpenError(campaign.ID, reference, now, window)
	}
	return nil
}
