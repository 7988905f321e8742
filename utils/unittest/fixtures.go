package unittest

import (
	"crypto/rand"
	"fmt"

	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

func IdentifierFixture() crowdfund.Identifier {
	var id crowdfund.Identifier
	_, _ = rand.Read(id[:])
	return id
}

func IdentifierListFixture(n int) []crowdfund.Identifier {
	list := make([]crowdfund.Identifier, n)
	for i := 0; i < n; i++ {
		list[i] = IdentifierFixture()
	}
	return list
}

func SystemConfigFixture(opts ...func(*crowdfund.SystemConfig)) *crowdfund.SystemConfig {
	cfg := &crowdfund.SystemConfig{
		Authority:            IdentifierFixture(),
		DisputeWindowSeconds: 50,
	}
	for _, apply := range opts {
		apply(cfg)
	}
	return cfg
}

func WithMilestoneAmounts(amounts ...uint64) func(*crowdfund.Campaign) {
	return func(c *crowdfund.Campaign) {
		c.Milestones = [crowdfund.MaxMilestones]crowdfund.Milestone{}
		c.MilestoneCount = uint8(len(amounts))
		c.TargetAmount = 0
		for i, amount := range amounts {
			c.Milestones[i] = crowdfund.Milestone{
				Amount:      amount,
				Description: fmt.Sprintf("milestone %d", i),
				ReleaseTime: c.StartTime,
				IsLast:      i == len(amounts)-1,
			}
			c.TargetAmount += amount
		}
	}
}

// CampaignFixture returns a valid campaign with two milestones of 30 and 70.
func CampaignFixture(opts ...func(*crowdfund.Campaign)) *crowdfund.Campaign {
	id := IdentifierFixture()
	c := &crowdfund.Campaign{
		ID:          id,
		Creator:     IdentifierFixture(),
		Vault:       crowdfund.VaultSlot(id),
		StartTime:   1000,
		EndTime:     2000,
		Title:       "campaign",
		Description: "a campaign fixture",
		ImageURL:    "https://example.com/image.png",
	}
	WithMilestoneAmounts(30, 70)(c)
	for _, apply := range opts {
		apply(c)
	}
	return c
}

func ReceiptFixture(opts ...func(*crowdfund.DonationReceipt)) *crowdfund.DonationReceipt {
	r := &crowdfund.DonationReceipt{
		Campaign: IdentifierFixture(),
		Donor:    IdentifierFixture(),
		Amount:   40,
	}
	for _, apply := range opts {
		apply(r)
	}
	return r
}

func EventFixture(campaignID crowdfund.Identifier, sequence uint64) *crowdfund.Event {
	return &crowdfund.Event{
		Type:      crowdfund.EventDonationReceived,
		Campaign:  campaignID,
		Sequence:  sequence,
		Timestamp: int64(1000 + sequence),
		Actor:     IdentifierFixture(),
		Amount:    sequence + 1,
	}
}
