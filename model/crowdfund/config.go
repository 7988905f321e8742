package crowdfund

// SystemConfig is the deployment-wide configuration singleton. It exists only
// once initialized; an absent record means uninitialized.
type SystemConfig struct {
	Authority            Identifier
	DisputeWindowSeconds int64
}
