package routes

import (
	"github.com/onflow/flow-crowdfund/custody"
	"github.com/onflow/flow-crowdfund/engine/api/rest/models"
	"github.com/onflow/flow-crowdfund/engine/api/rest/request"
)

// Donate moves value from the signer's account into the campaign vault and
// returns the signer's updated receipt.
func Donate(r *request.Request, backend custody.API) (interface{}, error) {
	var req request.Donate
	err := req.Build(r)
	if err != nil {
		return nil, models.NewBadRequestError(err)
	}

	receipt, err := backend.Donate(r.Context(), req.Donor, req.Campaign, req.Amount)
	if err != nil {
		return nil, err
	}

	var response models.Receipt
	response.Build(receipt)
	return response, nil
}

func ReleaseMilestone(r *request.Request, backend custody.API) (interface{}, error) {
	var req request.Release
	err := req.Build(r)
	if err != nil {
		return nil, models.NewBadRequestError(err)
	}

	payout, err := backend.Release(r.Context(), req.Caller, req.Campaign, req.Index)
	if err != nil {
		return nil, err
	}

	var response models.Payout
	response.Build(payout)
	return response, nil
}

func Refund(r *request.Request, backend custody.API) (interface{}, error) {
	var req request.Refund
	err := req.Build(r)
	if err != nil {
		return nil, models.NewBadRequestError(err)
	}

	payout, err := backend.Refund(r.Context(), req.Donor, req.Campaign)
	if err != nil {
		return nil, err
	}

	var response models.Payout
	response.Build(payout)
	return response, nil
}

func GetReceipt(r *request.Request, backend custody.API) (interface{}, error) {
	var req request.GetReceipt
	err := req.Build(r)
	if err != nil {
		return nil, models.NewBadRequestError(err)
	}

	receipt, err := backend.Receipt(r.Context(), req.Campaign, req.Donor)
	if err != nil {
		return nil, err
	}

	var response models.Receipt
	response.Build(receipt)
	return response, nil
}
