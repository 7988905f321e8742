package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/onflow/flow-crowdfund/custody"
	"github.com/onflow/flow-crowdfund/engine/api/rest/middleware"
	"github.com/onflow/flow-crowdfund/module"
	"github.com/onflow/flow-crowdfund/module/signature"
)

type route struct {
	Name    string
	Method  string
	Pattern string
	Handler ApiHandlerFunc
	// Signed routes act on behalf of the identity that signed the request.
	Signed bool
}

var Routes = []route{{
	Method:  http.MethodGet,
	Pattern: "/config",
	Name:    "getConfig",
	Handler: GetConfig,
}, {
	Method:  http.MethodPost,
	Pattern: "/config",
	Name:    "initializeConfig",
	Handler: InitializeConfig,
	Signed:  true,
}, {
	Method:  http.MethodPut,
	Pattern: "/config/authority",
	Name:    "updateAuthority",
	Handler: UpdateAuthority,
	Signed:  true,
}, {
	Method:  http.MethodPut,
	Pattern: "/config/dispute_window",
	Name:    "updateDisputeWindow",
	Handler: UpdateDisputeWindow,
	Signed:  true,
}, {
	Method:  http.MethodGet,
	Pattern: "/campaigns",
	Name:    "getCampaigns",
	Handler: GetCampaigns,
}, {
	Method:  http.MethodPost,
	Pattern: "/campaigns",
	Name:    "createCampaign",
	Handler: CreateCampaign,
	Signed:  true,
}, {
	Method:  http.MethodGet,
	Pattern: "/campaigns/{id}",
	Name:    "getCampaignByID",
	Handler: GetCampaignByID,
}, {
	Method:  http.MethodPost,
	Pattern: "/campaigns/{id}/donations",
	Name:    "donate",
	Handler: Donate,
	Signed:  true,
}, {
	Method:  http.MethodPost,
	Pattern: "/campaigns/{id}/milestones/{index}/release",
	Name:    "releaseMilestone",
	Handler: ReleaseMilestone,
	Signed:  true,
}, {
	Method:  http.MethodPost,
	Pattern: "/campaigns/{id}/refunds",
	Name:    "refund",
	Handler: Refund,
	Signed:  true,
}, {
	Method:  http.MethodPut,
	Pattern: "/campaigns/{id}/lock",
	Name:    "lockCampaign",
	Handler: LockCampaign,
	Signed:  true,
}, {
	Method:  http.MethodGet,
	Pattern: "/campaigns/{id}/receipts/{donor}",
	Name:    "getReceipt",
	Handler: GetReceipt,
}, {
	Method:  http.MethodGet,
	Pattern: "/campaigns/{id}/events",
	Name:    "getCampaignEvents",
	Handler: GetCampaignEvents,
}, {
	Method:  http.MethodGet,
	Pattern: "/accounts/{id}",
	Name:    "getAccount",
	Handler: GetAccount,
}, {
	Method:  http.MethodGet,
	Pattern: "/accounts/{id}/receipts",
	Name:    "getAccountReceipts",
	Handler: GetAccountReceipts,
}, {
	Method:  http.MethodPost,
	Pattern: "/accounts/{id}/fund",
	Name:    "fundAccount",
	Handler: FundAccount,
	Signed:  true,
}, {
	Method:  http.MethodGet,
	Pattern: "/node_version_info",
	Name:    "getNodeVersionInfo",
	Handler: GetNodeVersionInfo,
}}

func NewRouter(backend custody.API, logger zerolog.Logger, verifier signature.Verifier, restCollector module.RestMetrics) (*mux.Router, error) {
	router := mux.NewRouter().StrictSlash(true)
	v1SubRouter := router.PathPrefix("/v1").Subrouter()

	// common middleware for all request
	v1SubRouter.Use(middleware.LoggingMiddleware(logger))
	v1SubRouter.Use(middleware.MetricsMiddleware(restCollector))

	signed := middleware.SignatureMiddleware(verifier, logger)
	for _, r := range Routes {
		var h http.Handler = NewHandler(logger, backend, r.Handler)
		if r.Signed {
			h = signed(h)
		}
		v1SubRouter.
			Methods(r.Method).
			Path(r.Pattern).
			Name(r.Name).
			Handler(h)
	}

	return router, nil
}
