package request

import (
	"fmt"

	"github.com/onflow/flow-crowdfund/engine/api/rest/models"
	"github.com/onflow/flow-crowdfund/engine/api/rest/util"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

type Initialize struct {
	Authority            crowdfund.Identifier
	DisputeWindowSeconds int64
}

// Build makes the signer the authority. A body naming another authority is
// rejected, so initialization cannot be claimed for somebody else.
func (i *Initialize) Build(r *Request) error {
	var err error
	i.Authority, err = r.Signer()
	if err != nil {
		return err
	}

	var body models.InitializeBody
	err = parseBody(r.Body, &body)
	if err != nil {
		return err
	}

	if body.Authority != "" {
		authority, err := ParseID(body.Authority)
		if err != nil {
			return fmt.Errorf("invalid authority: %w", err)
		}
		if authority != i.Authority {
			return fmt.Errorf("authority %s must be the signer %s", authority, i.Authority)
		}
	}
	i.DisputeWindowSeconds, err = util.ToInt64(body.DisputeWindowSeconds)
	if err != nil {
		return fmt.Errorf("invalid dispute window: %w", err)
	}
	return nil
}

type UpdateAuthority struct {
	Caller    crowdfund.Identifier
	Authority crowdfund.Identifier
}

func (u *UpdateAuthority) Build(r *Request) error {
	var err error
	u.Caller, err = r.Signer()
	if err != nil {
		return err
	}

	var body models.UpdateAuthorityBody
	err = parseBody(r.Body, &body)
	if err != nil {
		return err
	}
	u.Authority, err = ParseID(body.Authority)
	if err != nil {
		return fmt.Errorf("invalid authority: %w", err)
	}
	return nil
}

type UpdateDisputeWindow struct {
	Caller  crowdfund.Identifier
	Seconds int64
}

func (u *UpdateDisputeWindow) Build(r *Request) error {
	var err error
	u.Caller, err = r.Signer()
	if err != nil {
		return err
	}

	var body models.UpdateDisputeWindowBody
	err = parseBody(r.Body, &body)
	if err != nil {
		return err
	}
	u.Seconds, err = util.ToInt64(body.DisputeWindowSeconds)
	if err != nil {
		return fmt.Errorf("invalid dispute window: %w", err)
	}
	return nil
}
