package models

import (
	"github.com/onflow/flow-crowdfund/engine/api/rest/util"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

type Event struct {
	Type           string `json:"type"`
	CampaignId     string `json:"campaign_id"`
	Sequence       string `json:"sequence"`
	Timestamp      string `json:"timestamp"`
	Actor          string `json:"actor"`
	Amount         string `json:"amount,omitempty"`
	MilestoneIndex *uint8 `json:"milestone_index,omitempty"`
	Locked         *bool  `json:"locked,omitempty"`
	Title          string `json:"title,omitempty"`
}

// Build fills the response from a journal entry. Fields that have no meaning
// for the event type are left out.
func (e *Event) Build(event crowdfund.Event) {
	e.Type = string(event.Type)
	e.CampaignId = event.Campaign.String()
	e.Sequence = util.FromUint64(event.Sequence)
	e.Timestamp = util.FromInt64(event.Timestamp)
	e.Actor = event.Actor.String()

	switch event.Type {
	case crowdfund.EventCampaignCreated:
		e.Amount = util.FromUint64(event.Amount)
		e.Title = event.Title
	case crowdfund.EventDonationReceived, crowdfund.EventRefundIssued:
		e.Amount = util.FromUint64(event.Amount)
	case crowdfund.EventMilestoneReleased:
		index := event.MilestoneIndex
		e.Amount = util.FromUint64(event.Amount)
		e.MilestoneIndex = &index
	case crowdfund.EventCampaignLocked:
		locked := event.Locked
		e.Locked = &locked
	}
}

type Events []Event

func (e *Events) Build(events []crowdfund.Event) {
	built := make([]Event, len(events))
	for i, event := range events {
		built[i].Build(event)
	}
	*e = built
}
