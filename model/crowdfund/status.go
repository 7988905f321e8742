package crowdfund

import (
	"fmt"
)

// CampaignStatus is the lifecycle stage of a campaign as seen at a point in
// time. It is derived from the campaign record and never stored.
type CampaignStatus int

const (
	StatusActive CampaignStatus = iota
	StatusFunded
	StatusFailed
	StatusCompleted
)

func (s CampaignStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusFunded:
		return "funded"
	case StatusFailed:
		return "failed"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

func (s CampaignStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *CampaignStatus) UnmarshalText(text []byte) error {
	status, err := ParseCampaignStatus(string(text))
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// ParseCampaignStatus converts the string form of a status back to its value.
func ParseCampaignStatus(s string) (CampaignStatus, error) {
	switch s {
	case "active":
		return StatusActive, nil
	case "funded":
		return StatusFunded, nil
	case "failed":
		return StatusFailed, nil
	case "completed":
		return StatusCompleted, nil
	}
	return 0, fmt.Errorf("invalid campaign status: %q", s)
}

// Status derives the lifecycle stage of the campaign at time now.
func (c *Campaign) Status(now int64) CampaignStatus {
	switch {
	case c.IsCompleted():
		return StatusCompleted
	case c.TargetReached():
		return StatusFunded
	case c.HasFailed(now):
		return StatusFailed
	default:
		return StatusActive
	}
}
