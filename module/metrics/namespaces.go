package metrics

// Prometheus metric namespaces
const (
	namespaceCrowdfund = "crowdfund"
)

// Crowdfund subsystems
const (
	subsystemCustody = "custody"
	subsystemStorage = "storage"
	subsystemCache   = "cache"
	subsystemRestAPI = "rest_api"
)
