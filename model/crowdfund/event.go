package crowdfund

import (
	"fmt"
)

// List of events emitted by the custody engine.
const (
	EventCampaignCreated   EventType = "crowdfund.CampaignCreated"
	EventDonationReceived  EventType = "crowdfund.DonationReceived"
	EventMilestoneReleased EventType = "crowdfund.MilestoneReleased"
	EventRefundIssued      EventType = "crowdfund.RefundIssued"
	EventCampaignLocked    EventType = "crowdfund.CampaignLocked"
)

type EventType string

// Event is an entry of a campaign's journal.
type Event struct {
	// Type is the qualified event type.
	Type EventType
	// Campaign is the campaign the event belongs to.
	Campaign Identifier
	// Sequence orders the events of one campaign. The first event has
	// sequence 0.
	Sequence uint64
	// Timestamp is the clock time the emitting operation observed.
	Timestamp int64
	// Actor is the identity that drove the operation: the creator, the donor
	// or the authority.
	Actor Identifier
	// Amount is the value moved by the operation. For CampaignCreated it is
	// the target amount.
	Amount uint64
	// MilestoneIndex is set for MilestoneReleased.
	MilestoneIndex uint8
	// Locked is set for CampaignLocked.
	Locked bool
	// Title is set for CampaignCreated.
	Title string
}

// String returns the string representation of this event.
func (e Event) String() string {
	return fmt.Sprintf("%s: %s#%d", e.Type, e.Campaign, e.Sequence)
}
