package request

import (
	"fmt"

	"github.com/onflow/flow-crowdfund/engine/api/rest/models"
	"github.com/onflow/flow-crowdfund/engine/api/rest/util"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

type GetAccount struct {
	Account crowdfund.Identifier
}

func (g *GetAccount) Build(r *Request) error {
	var err error
	g.Account, err = r.GetID(idVar)
	return err
}

type FundAccount struct {
	Caller  crowdfund.Identifier
	Account crowdfund.Identifier
	Amount  uint64
}

func (f *FundAccount) Build(r *Request) error {
	var err error
	f.Caller, err = r.Signer()
	if err != nil {
		return err
	}
	f.Account, err = r.GetID(idVar)
	if err != nil {
		return err
	}

	var body models.AmountBody
	err = parseBody(r.Body, &body)
	if err != nil {
		return err
	}
	f.Amount, err = util.ToUint64(body.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	return nil
}
