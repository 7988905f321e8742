package notifications

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/onflow/flow-crowdfund/custody"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
	"github.com/onflow/flow-crowdfund/utils/logging"
)

// TelemetryConsumer implements the custody.Consumer interface.
// It reports every notification as a telemetry record tagged with a unique
// notification id, so that external indexers can deduplicate records that
// reach them through more than one pipeline. Records are exported to a logger.
type TelemetryConsumer struct {
	log zerolog.Logger
}

var _ custody.Consumer = (*TelemetryConsumer)(nil)

func NewTelemetryConsumer(log zerolog.Logger) *TelemetryConsumer {
	return &TelemetryConsumer{
		log: log.With().Str("component", "custody_telemetry").Logger(),
	}
}

func (t *TelemetryConsumer) record(event crowdfund.EventType) *zerolog.Event {
	return t.log.Info().
		Str("notification_id", uuid.New().String()).
		Str("event", string(event))
}

func (t *TelemetryConsumer) OnConfigUpdated(cfg crowdfund.SystemConfig) {
	t.log.Info().
		Str("notification_id", uuid.New().String()).
		Str("event", "crowdfund.ConfigUpdated").
		Hex("authority", logging.ID(cfg.Authority)).
		Int64("dispute_window_seconds", cfg.DisputeWindowSeconds).
		Msg("telemetry")
}

func (t *TelemetryConsumer) OnCampaignCreated(campaign crowdfund.Campaign) {
	t.record(crowdfund.EventCampaignCreated).
		Hex("campaign_id", logging.ID(campaign.ID)).
		Uint64("target_amount", campaign.TargetAmount).
		Uint8("milestones", campaign.MilestoneCount).
		Msg("telemetry")
}

func (t *TelemetryConsumer) OnDonationReceived(campaignID crowdfund.Identifier, donor crowdfund.Identifier, amount uint64) {
	t.record(crowdfund.EventDonationReceived).
		Hex("campaign_id", logging.ID(campaignID)).
		Hex("donor", logging.ID(donor)).
		Uint64("amount", amount).
		Msg("telemetry")
}

func (t *TelemetryConsumer) OnMilestoneReleased(campaignID crowdfund.Identifier, index uint8, amount uint64) {
	t.record(crowdfund.EventMilestoneReleased).
		Hex("campaign_id", logging.ID(campaignID)).
		Uint8("index", index).
		Uint64("amount", amount).
		Msg("telemetry")
}

func (t *TelemetryConsumer) OnRefundIssued(campaignID crowdfund.Identifier, donor crowdfund.Identifier, amount uint64) {
	t.record(crowdfund.EventRefundIssued).
		Hex("campaign_id", logging.ID(campaignID)).
		Hex("donor", logging.ID(donor)).
		Uint64("amount", amount).
		Msg("telemetry")
}

func (t *TelemetryConsumer) OnCampaignLocked(campaignID crowdfund.Identifier, locked bool) {
	t.record(crowdfund.EventCampaignLocked).
		Hex("campaign_id", logging.ID(campaignID)).
		Bool("locked", locked).
		Msg("telemetry")
}
