package routes

import (
	"github.com/onflow/flow-crowdfund/cmd/build"
	"github.com/onflow/flow-crowdfund/custody"
	"github.com/onflow/flow-crowdfund/engine/api/rest/models"
	"github.com/onflow/flow-crowdfund/engine/api/rest/request"
)

// GetNodeVersionInfo returns node version information
func GetNodeVersionInfo(_ *request.Request, _ custody.API) (interface{}, error) {
	var response models.NodeVersionInfo
	response.Build(build.Version(), build.Commit())
	return response, nil
}
