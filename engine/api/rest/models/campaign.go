package models

import (
	"github.com/onflow/flow-crowdfund/engine/api/rest/util"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

type Milestone struct {
	Amount      string `json:"amount"`
	Description string `json:"description"`
	ReleaseTime string `json:"release_time"`
	Released    bool   `json:"released"`
	IsLast      bool   `json:"is_last"`
}

type Campaign struct {
	Id              string      `json:"id"`
	Creator         string      `json:"creator"`
	Vault           string      `json:"vault"`
	VaultBalance    string      `json:"vault_balance,omitempty"`
	TargetAmount    string      `json:"target_amount"`
	TotalDonated    string      `json:"total_donated"`
	StartTime       string      `json:"start_time"`
	EndTime         string      `json:"end_time"`
	LastReleaseTime string      `json:"last_release_time"`
	Milestones      []Milestone `json:"milestones"`
	Locked          bool        `json:"locked"`
	Status          string      `json:"status"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	ImageUrl        string      `json:"image_url"`
}

// Build fills the response from a campaign record, deriving its status at now.
func (c *Campaign) Build(campaign *crowdfund.Campaign, now int64) {
	c.Id = campaign.ID.String()
	c.Creator = campaign.Creator.String()
	c.Vault = campaign.Vault.String()
	c.TargetAmount = util.FromUint64(campaign.TargetAmount)
	c.TotalDonated = util.FromUint64(campaign.TotalDonated)
	c.StartTime = util.FromInt64(campaign.StartTime)
	c.EndTime = util.FromInt64(campaign.EndTime)
	c.LastReleaseTime = util.FromInt64(campaign.LastReleaseTime)
	c.Locked = campaign.Locked
	c.Status = campaign.Status(now).String()
	c.Title = campaign.Title
	c.Description = campaign.Description
	c.ImageUrl = campaign.ImageURL

	schedule := campaign.Schedule()
	c.Milestones = make([]Milestone, len(schedule))
	for i, milestone := range schedule {
		c.Milestones[i] = Milestone{
			Amount:      util.FromUint64(milestone.Amount),
			Description: milestone.Description,
			ReleaseTime: util.FromInt64(milestone.ReleaseTime),
			Released:    milestone.Released,
			IsLast:      milestone.IsLast,
		}
	}
}

type Campaigns []Campaign

func (c *Campaigns) Build(campaigns []*crowdfund.Campaign, now int64) {
	built := make([]Campaign, len(campaigns))
	for i, campaign := range campaigns {
		built[i].Build(campaign, now)
	}
	*c = built
}
