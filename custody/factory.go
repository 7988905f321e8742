package custody

import (
	"context"
	"fmt"
	"math"

	"github.com/onflow/flow-crowdfund/custody/errors"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
	"github.com/onflow/flow-crowdfund/module/metrics"
	"github.com/onflow/flow-crowdfund/storage"
	"github.com/onflow/flow-crowdfund/utils/logging"
)

// maxDurationSeconds bounds campaign durations so that the milestone
// schedule arithmetic cannot overflow.
const maxDurationSeconds = math.MaxInt64 / crowdfund.MaxMilestones

// CampaignSpec describes a campaign to create.
type CampaignSpec struct {
	DurationSeconds       int64
	MilestoneAmounts      []uint64
	MilestoneDescriptions []string
	Title                 string
	Description           string
	ImageURL              string
}

// CreateCampaign validates the spec and creates a campaign owned by creator,
// together with its empty vault. The campaign starts now and accepts
// donations until now + DurationSeconds.
func (e *Engine) CreateCampaign(ctx context.Context, creator crowdfund.Identifier, spec CampaignSpec) (*crowdfund.Campaign, error) {
	var created *crowdfund.Campaign
	err := e.update(ctx, metrics.OperationCreateCampaign, func(tx storage.LedgerTx) error {
		created = nil
		now := e.clock.Now()

		_, err := readConfig(tx)
		if err != nil {
			return err
		}
		err = validateSpec(creator, spec)
		if err != nil {
			return err
		}
		if now > math.MaxInt64-spec.DurationSeconds {
			return errors.NewInvalidArgumentErrorf("campaign end time overflows")
		}

		seq, err := tx.NextCampaignSequence()
		if err != nil {
			return fmt.Errorf("could not allocate campaign sequence: %w", err)
		}
		campaign, err := buildCampaign(crowdfund.CampaignID(creator, seq), creator, now, spec)
		if err != nil {
			return err
		}

		err = tx.CreateSlot(campaign.Vault)
		if err != nil {
			return fmt.Errorf("could not create vault: %w", err)
		}
		err = tx.InsertCampaign(campaign)
		if err != nil {
			return fmt.Errorf("could not insert campaign: %w", err)
		}

		event := &crowdfund.Event{
			Type:      crowdfund.EventCampaignCreated,
			Campaign:  campaign.ID,
			Timestamp: now,
			Actor:     creator,
			Amount:    campaign.TargetAmount,
			Title:     campaign.Title,
		}
		snapshot := *campaign
		err = e.emit(tx, event, func() {
			e.metrics.CampaignCreated()
			e.log.Info().
				Hex("campaign_id", logging.ID(snapshot.ID)).
				Hex("creator", logging.ID(snapshot.Creator)).
				Uint64("target_amount", snapshot.TargetAmount).
				Uint8("milestones", snapshot.MilestoneCount).
				Int64("end_time", snapshot.EndTime).
				Msg("campaign created")
			e.consumer.OnCampaignCreated(snapshot)
		})
		if err != nil {
			return err
		}

		created = campaign
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// validateSpec checks the milestone shape first, then the remaining inputs.
func validateSpec(creator crowdfund.Identifier, spec CampaignSpec) error {
	n := len(spec.MilestoneAmounts)
	if n < 1 || n > crowdfund.MaxMilestones {
		return errors.NewBadMilestoneErrorf("campaign needs 1 to %d milestones, got %d", crowdfund.MaxMilestones, n)
	}
	if len(spec.MilestoneDescriptions) != n {
		return errors.NewBadMilestoneErrorf("%d milestone amounts but %d descriptions", n, len(spec.MilestoneDescriptions))
	}

	if creator.IsZero() {
		return errors.NewInvalidArgumentErrorf("creator must be set")
	}
	if spec.DurationSeconds <= 0 {
		return errors.NewInvalidArgumentErrorf("duration must be positive, got %d", spec.DurationSeconds)
	}
	if spec.DurationSeconds > maxDurationSeconds {
		return errors.NewInvalidArgumentErrorf("duration %d exceeds %d", spec.DurationSeconds, int64(maxDurationSeconds))
	}
	if len(spec.Title) > crowdfund.MaxTitleLength {
		return errors.NewInvalidArgumentErrorf("title exceeds %d bytes", crowdfund.MaxTitleLength)
	}
	if len(spec.Description) > crowdfund.MaxDescriptionLength {
		return errors.NewInvalidArgumentErrorf("description exceeds %d bytes", crowdfund.MaxDescriptionLength)
	}
	if len(spec.ImageURL) > crowdfund.MaxImageURLLength {
		return errors.NewInvalidArgumentErrorf("image url exceeds %d bytes", crowdfund.MaxImageURLLength)
	}
	for i, description := range spec.MilestoneDescriptions {
		if len(description) > crowdfund.MaxMilestoneDescriptionLength {
			return errors.NewInvalidArgumentErrorf("description of milestone %d exceeds %d bytes", i, crowdfund.MaxMilestoneDescriptionLength)
		}
	}
	return nil
}

// buildCampaign lays out the milestone schedule. Milestone i of n targets
// now + i*duration/n; the target times are informational only.
func buildCampaign(id, creator crowdfund.Identifier, now int64, spec CampaignSpec) (*crowdfund.Campaign, error) {
	n := len(spec.MilestoneAmounts)
	campaign := &crowdfund.Campaign{
		ID:             id,
		Creator:        creator,
		Vault:          crowdfund.VaultSlot(id),
		StartTime:      now,
		EndTime:        now + spec.DurationSeconds,
		MilestoneCount: uint8(n),
		Title:          spec.Title,
		Description:    spec.Description,
		ImageURL:       spec.ImageURL,
	}

	for i, amount := range spec.MilestoneAmounts {
		target := campaign.TargetAmount + amount
		if target < campaign.TargetAmount {
			return nil, errors.NewArithmeticOverflowError("campaign target", campaign.TargetAmount, amount)
		}
		campaign.TargetAmount = target
		campaign.Milestones[i] = crowdfund.Milestone{
			Amount:      amount,
			Description: spec.MilestoneDescriptions[i],
			ReleaseTime: now + int64(i)*spec.DurationSeconds/int64(n),
			IsLast:      i == n-1,
		}
	}

	err := campaign.Validate()
	if err != nil {
		return nil, fmt.Errorf("built invalid campaign: %w", err)
	}
	return campaign, nil
}
