package routes

import (
	"github.com/onflow/flow-crowdfund/custody"
	"github.com/onflow/flow-crowdfund/engine/api/rest/models"
	"github.com/onflow/flow-crowdfund/engine/api/rest/request"
	"github.com/onflow/flow-crowdfund/engine/api/rest/util"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

// GetCampaigns lists campaigns, optionally filtered by creator and status.
func GetCampaigns(r *request.Request, backend custody.API) (interface{}, error) {
	var req request.GetCampaigns
	err := req.Build(r)
	if err != nil {
		return nil, models.NewBadRequestError(err)
	}

	campaigns, err := backend.Campaigns(r.Context(), req.Filter)
	if err != nil {
		return nil, err
	}

	var response models.Campaigns
	response.Build(campaigns, backend.Now())
	return response, nil
}

// GetCampaignByID returns a campaign together with its vault balance.
func GetCampaignByID(r *request.Request, backend custody.API) (interface{}, error) {
	var req request.GetCampaign
	err := req.Build(r)
	if err != nil {
		return nil, models.NewBadRequestError(err)
	}

	campaign, err := backend.Campaign(r.Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return campaignResponse(r, backend, campaign)
}

func CreateCampaign(r *request.Request, backend custody.API) (interface{}, error) {
	var req request.CreateCampaign
	err := req.Build(r)
	if err != nil {
		return nil, models.NewBadRequestError(err)
	}

	campaign, err := backend.CreateCampaign(r.Context(), req.Creator, req.Spec)
	if err != nil {
		return nil, err
	}
	return campaignResponse(r, backend, campaign)
}

func LockCampaign(r *request.Request, backend custody.API) (interface{}, error) {
	var req request.LockCampaign
	err := req.Build(r)
	if err != nil {
		return nil, models.NewBadRequestError(err)
	}

	err = backend.LockCampaign(r.Context(), req.Caller, req.Campaign, req.Locked)
	if err != nil {
		return nil, err
	}

	campaign, err := backend.Campaign(r.Context(), req.Campaign)
	if err != nil {
		return nil, err
	}
	return campaignResponse(r, backend, campaign)
}

func GetCampaignEvents(r *request.Request, backend custody.API) (interface{}, error) {
	var req request.GetCampaign
	err := req.Build(r)
	if err != nil {
		return nil, models.NewBadRequestError(err)
	}

	events, err := backend.CampaignEvents(r.Context(), req.ID)
	if err != nil {
		return nil, err
	}

	var response models.Events
	response.Build(events)
	return response, nil
}

func campaignResponse(r *request.Request, backend custody.API, campaign *crowdfund.Campaign) (interface{}, error) {
	balance, err := backend.VaultBalance(r.Context(), campaign.ID)
	if err != nil {
		return nil, err
	}

	var response models.Campaign
	response.Build(campaign, backend.Now())
	response.VaultBalance = util.FromUint64(balance)
	return response, nil
}
