package crowdfund

import (
	"fmt"
)

// MaxMilestones is the fixed capacity of a campaign's milestone schedule.
const MaxMilestones = 3

// Upper bounds in bytes on a campaign's descriptive text.
const (
	MaxTitleLength                = 100
	MaxDescriptionLength          = 500
	MaxImageURLLength             = 200
	MaxMilestoneDescriptionLength = 200
)

// Milestone is one payout stage of a campaign. Milestones are embedded in
// their campaign and have no identity of their own.
type Milestone struct {
	// Amount is released to the creator when the milestone is released. For
	// the last milestone it is advisory, the whole vault balance is released.
	Amount      uint64
	Description string
	// ReleaseTime is the informational target time of the milestone. It is
	// not enforced when releasing.
	ReleaseTime int64
	Released    bool
	IsLast      bool
}

// Campaign is a single funding effort with a target amount, a deadline and a
// milestone schedule.
type Campaign struct {
	ID      Identifier
	Creator Identifier
	// Vault is the custody slot holding the donated funds.
	Vault           Identifier
	TargetAmount    uint64
	StartTime       int64
	EndTime         int64
	TotalDonated    uint64
	Milestones      [MaxMilestones]Milestone
	MilestoneCount  uint8
	LastReleaseTime int64
	Locked          bool
	Title           string
	Description     string
	ImageURL        string
}

// Schedule returns the populated part of the milestone array.
func (c *Campaign) Schedule() []Milestone {
	n := int(c.MilestoneCount)
	if n > MaxMilestones {
		n = MaxMilestones
	}
	return c.Milestones[:n]
}

// TargetReached reports whether the donations cover the funding target.
func (c *Campaign) TargetReached() bool {
	return c.TotalDonated >= c.TargetAmount
}

// HasFailed reports whether the campaign is past its deadline without having
// reached its target.
func (c *Campaign) HasFailed(now int64) bool {
	return now > c.EndTime && !c.TargetReached()
}

// HasEnded reports whether the donation window is closed.
func (c *Campaign) HasEnded(now int64) bool {
	return now >= c.EndTime
}

// IsCompleted reports whether the last milestone has been paid out.
func (c *Campaign) IsCompleted() bool {
	if c.MilestoneCount == 0 || int(c.MilestoneCount) > MaxMilestones {
		return false
	}
	return c.Milestones[c.MilestoneCount-1].Released
}

// DisputeReference is the time the dispute window is measured from: the last
// release, or the campaign start before any release happened.
func (c *Campaign) DisputeReference() int64 {
	if c.LastReleaseTime != 0 {
		return c.LastReleaseTime
	}
	return c.StartTime
}

// ReleasedCount returns the number of milestones already paid out.
func (c *Campaign) ReleasedCount() int {
	count := 0
	for _, m := range c.Schedule() {
		if m.Released {
			count++
		}
	}
	return count
}

// Validate checks the structural invariants of a campaign record.
func (c *Campaign) Validate() error {
	if c.MilestoneCount == 0 || c.MilestoneCount > MaxMilestones {
		return fmt.Errorf("milestone count %d out of range [1, %d]", c.MilestoneCount, MaxMilestones)
	}
	last := int(c.MilestoneCount) - 1
	var sum uint64
	for i := 0; i < MaxMilestones; i++ {
		m := c.Milestones[i]
		if i > last {
			if m != (Milestone{}) {
				return fmt.Errorf("milestone slot %d beyond count %d is populated", i, c.MilestoneCount)
			}
			continue
		}
		if m.IsLast != (i == last) {
			return fmt.Errorf("milestone %d has inconsistent last flag", i)
		}
		if i > 0 && m.Released && !c.Milestones[i-1].Released {
			return fmt.Errorf("milestone %d released before milestone %d", i, i-1)
		}
		next := sum + m.Amount
		if next < sum {
			return fmt.Errorf("milestone amounts overflow")
		}
		sum = next
	}
	if sum != c.TargetAmount {
		return fmt.Errorf("target amount %d does not match milestone sum %d", c.TargetAmount, sum)
	}
	if c.EndTime < c.StartTime {
		return fmt.Errorf("end time %d before start time %d", c.EndTime, c.StartTime)
	}
	if c.Vault != VaultSlot(c.ID) {
		return fmt.Errorf("vault %x is not bound to campaign %x", c.Vault, c.ID)
	}
	return nil
}

func (c *Campaign) String() string {
	return fmt.Sprintf("campaign %s (creator %s, %d/%d donated, %d/%d released)",
		c.ID, c.Creator, c.TotalDonated, c.TargetAmount, c.ReleasedCount(), c.MilestoneCount)
}
