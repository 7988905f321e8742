package routes

import (
	"github.com/onflow/flow-crowdfund/custody"
	"github.com/onflow/flow-crowdfund/engine/api/rest/models"
	"github.com/onflow/flow-crowdfund/engine/api/rest/request"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

func GetAccount(r *request.Request, backend custody.API) (interface{}, error) {
	var req request.GetAccount
	err := req.Build(r)
	if err != nil {
		return nil, models.NewBadRequestError(err)
	}
	return accountResponse(r, backend, req.Account)
}

func GetAccountReceipts(r *request.Request, backend custody.API) (interface{}, error) {
	var req request.GetAccount
	err := req.Build(r)
	if err != nil {
		return nil, models.NewBadRequestError(err)
	}

	receipts, err := backend.ReceiptsByDonor(r.Context(), req.Account)
	if err != nil {
		return nil, err
	}

	var response models.Receipts
	response.Build(receipts)
	return response, nil
}

// FundAccount credits an account from outside the system. Only the
// configuration authority may do this.
func FundAccount(r *request.Request, backend custody.API) (interface{}, error) {
	var req request.FundAccount
	err := req.Build(r)
	if err != nil {
		return nil, models.NewBadRequestError(err)
	}

	err = backend.FundAccount(r.Context(), req.Caller, req.Account, req.Amount)
	if err != nil {
		return nil, err
	}
	return accountResponse(r, backend, req.Account)
}

func accountResponse(r *request.Request, backend custody.API, account crowdfund.Identifier) (interface{}, error) {
	balance, err := backend.Balance(r.Context(), account)
	if err != nil {
		return nil, err
	}

	var response models.Account
	response.Build(account, balance)
	return response, nil
}
