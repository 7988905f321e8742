package request

import (
	"fmt"
	"strconv"

	"github.com/onflow/flow-crowdfund/custody"
	"github.com/onflow/flow-crowdfund/engine/api/rest/models"
	"github.com/onflow/flow-crowdfund/engine/api/rest/util"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

const (
	idVar             = "id"
	donorVar          = "donor"
	indexVar          = "index"
	creatorQuery      = "creator"
	statusQuery       = "status"
	maxMilestoneIndex = 255
)

type CreateCampaign struct {
	Creator crowdfund.Identifier
	Spec    custody.CampaignSpec
}

func (c *CreateCampaign) Build(r *Request) error {
	var err error
	c.Creator, err = r.Signer()
	if err != nil {
		return err
	}

	var body models.CreateCampaignBody
	err = parseBody(r.Body, &body)
	if err != nil {
		return err
	}

	c.Spec.DurationSeconds, err = util.ToInt64(body.DurationSeconds)
	if err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}
	c.Spec.MilestoneAmounts = make([]uint64, len(body.Milestones))
	c.Spec.MilestoneDescriptions = make([]string, len(body.Milestones))
	for i, milestone := range body.Milestones {
		c.Spec.MilestoneAmounts[i], err = util.ToUint64(milestone.Amount)
		if err != nil {
			return fmt.Errorf("invalid amount of milestone %d: %w", i, err)
		}
		c.Spec.MilestoneDescriptions[i] = milestone.Description
	}
	c.Spec.Title = body.Title
	c.Spec.Description = body.Description
	c.Spec.ImageURL = body.ImageUrl
	return nil
}

type GetCampaign struct {
	ID crowdfund.Identifier
}

func (g *GetCampaign) Build(r *Request) error {
	var err error
	g.ID, err = r.GetID(idVar)
	return err
}

type GetCampaigns struct {
	Filter custody.CampaignFilter
}

func (g *GetCampaigns) Build(r *Request) error {
	if raw := r.GetQueryParam(creatorQuery); raw != "" {
		creator, err := ParseID(raw)
		if err != nil {
			return fmt.Errorf("invalid creator: %w", err)
		}
		g.Filter.Creator = &creator
	}
	if raw := r.GetQueryParam(statusQuery); raw != "" {
		status, err := crowdfund.ParseCampaignStatus(raw)
		if err != nil {
			return err
		}
		g.Filter.Status = &status
	}
	return nil
}

type Donate struct {
	Donor    crowdfund.Identifier
	Campaign crowdfund.Identifier
	Amount   uint64
}

func (d *Donate) Build(r *Request) error {
	var err error
	d.Donor, err = r.Signer()
	if err != nil {
		return err
	}
	d.Campaign, err = r.GetID(idVar)
	if err != nil {
		return err
	}

	var body models.AmountBody
	err = parseBody(r.Body, &body)
	if err != nil {
		return err
	}
	d.Amount, err = util.ToUint64(body.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	return nil
}

type Release struct {
	Caller   crowdfund.Identifier
	Campaign crowdfund.Identifier
	Index    uint8
}

func (rl *Release) Build(r *Request) error {
	var err error
	rl.Caller, err = r.Signer()
	if err != nil {
		return err
	}
	rl.Campaign, err = r.GetID(idVar)
	if err != nil {
		return err
	}
	index, err := strconv.ParseUint(r.GetVar(indexVar), 10, 8)
	if err != nil {
		return fmt.Errorf("invalid milestone index: must be between 0 and %d", maxMilestoneIndex)
	}
	rl.Index = uint8(index)
	return nil
}

type Refund struct {
	Donor    crowdfund.Identifier
	Campaign crowdfund.Identifier
}

func (rf *Refund) Build(r *Request) error {
	var err error
	rf.Donor, err = r.Signer()
	if err != nil {
		return err
	}
	rf.Campaign, err = r.GetID(idVar)
	return err
}

type LockCampaign struct {
	Caller   crowdfund.Identifier
	Campaign crowdfund.Identifier
	Locked   bool
}

func (l *LockCampaign) Build(r *Request) error {
	var err error
	l.Caller, err = r.Signer()
	if err != nil {
		return err
	}
	l.Campaign, err = r.GetID(idVar)
	if err != nil {
		return err
	}

	var body models.LockBody
	err = parseBody(r.Body, &body)
	if err != nil {
		return err
	}
	if body.Locked == nil {
		return fmt.Errorf("locked must be provided")
	}
	l.Locked = *body.Locked
	return nil
}

type GetReceipt struct {
	Campaign crowdfund.Identifier
	Donor    crowdfund.Identifier
}

func (g *GetReceipt) Build(r *Request) error {
	var err error
	g.Campaign, err = r.GetID(idVar)
	if err != nil {
		return err
	}
	g.Donor, err = r.GetID(donorVar)
	if err != nil {
		return fmt.Errorf("invalid donor: %w", err)
	}
	return nil
}
