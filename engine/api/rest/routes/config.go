package routes

import (
	"github.com/onflow/flow-crowdfund/custody"
	"github.com/onflow/flow-crowdfund/engine/api/rest/models"
	"github.com/onflow/flow-crowdfund/engine/api/rest/request"
)

// GetConfig returns the system configuration.
func GetConfig(r *request.Request, backend custody.API) (interface{}, error) {
	return configResponse(r, backend)
}

// InitializeConfig creates the system configuration once. The signer of the
// request becomes the authority.
func InitializeConfig(r *request.Request, backend custody.API) (interface{}, error) {
	var req request.Initialize
	err := req.Build(r)
	if err != nil {
		return nil, models.NewBadRequestError(err)
	}

	err = backend.Initialize(r.Context(), req.Authority, req.DisputeWindowSeconds)
	if err != nil {
		return nil, err
	}
	return configResponse(r, backend)
}

func UpdateAuthority(r *request.Request, backend custody.API) (interface{}, error) {
	var req request.UpdateAuthority
	err := req.Build(r)
	if err != nil {
		return nil, models.NewBadRequestError(err)
	}

	err = backend.UpdateAuthority(r.Context(), req.Caller, req.Authority)
	if err != nil {
		return nil, err
	}
	return configResponse(r, backend)
}

func UpdateDisputeWindow(r *request.Request, backend custody.API) (interface{}, error) {
	var req request.UpdateDisputeWindow
	err := req.Build(r)
	if err != nil {
		return nil, models.NewBadRequestError(err)
	}

	err = backend.UpdateDisputeWindow(r.Context(), req.Caller, req.Seconds)
	if err != nil {
		return nil, err
	}
	return configResponse(r, backend)
}

func configResponse(r *request.Request, backend custody.API) (interface{}, error) {
	cfg, err := backend.Config(r.Context())
	if err != nil {
		return nil, err
	}

	var response models.Config
	response.Build(cfg)
	return response, nil
}
