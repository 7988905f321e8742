package notifications

import (
	"github.com/rs/zerolog"

	"github.com/onflow/flow-crowdfund/custody"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
	"github.com/onflow/flow-crowdfund/utils/logging"
)

// LogConsumer is an implementation of the notifications consumer that logs a
// message for each event.
type LogConsumer struct {
	log zerolog.Logger
}

var _ custody.Consumer = (*LogConsumer)(nil)

func NewLogConsumer(log zerolog.Logger) *LogConsumer {
	lc := &LogConsumer{
		log: log,
	}
	return lc
}

func (lc *LogConsumer) OnConfigUpdated(cfg crowdfund.SystemConfig) {
	lc.log.Debug().
		Hex("authority", logging.ID(cfg.Authority)).
		Int64("dispute_window_seconds", cfg.DisputeWindowSeconds).
		Msg("config updated")
}

func (lc *LogConsumer) OnCampaignCreated(campaign crowdfund.Campaign) {
	lc.log.Debug().
		Hex("campaign_id", logging.ID(campaign.ID)).
		Hex("creator", logging.ID(campaign.Creator)).
		Str("title", campaign.Title).
		Uint64("target_amount", campaign.TargetAmount).
		Int64("start_time", campaign.StartTime).
		Int64("end_time", campaign.EndTime).
		Msg("campaign created")
}

func (lc *LogConsumer) OnDonationReceived(campaignID crowdfund.Identifier, donor crowdfund.Identifier, amount uint64) {
	lc.log.Debug().
		Hex("campaign_id", logging.ID(campaignID)).
		Hex("donor", logging.ID(donor)).
		Uint64("amount", amount).
		Msg("donation received")
}

func (lc *LogConsumer) OnMilestoneReleased(campaignID crowdfund.Identifier, index uint8, amount uint64) {
	lc.log.Debug().
		Hex("campaign_id", logging.ID(campaignID)).
		Uint8("index", index).
		Uint64("amount", amount).
		Msg("milestone released")
}

func (lc *LogConsumer) OnRefundIssued(campaignID crowdfund.Identifier, donor crowdfund.Identifier, amount uint64) {
	lc.log.Debug().
		Hex("campaign_id", logging.ID(campaignID)).
		Hex("donor", logging.ID(donor)).
		Uint64("amount", amount).
		Msg("refund issued")
}

func (lc *LogConsumer) OnCampaignLocked(campaignID crowdfund.Identifier, locked bool) {
	lc.log.Debug().
		Hex("campaign_id", logging.ID(campaignID)).
		Bool("locked", locked).
		Msg("campaign lock changed")
}
