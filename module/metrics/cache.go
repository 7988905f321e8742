package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/onflow/flow-crowdfund/module"
)

type CacheCollector struct {
	entries  *prometheus.GaugeVec
	hits     *prometheus.CounterVec
	notFound *prometheus.CounterVec
	misses   *prometheus.CounterVec
}

var _ module.CacheMetrics = (*CacheCollector)(nil)

func NewCacheCollector(registerer prometheus.Registerer) *CacheCollector {
	factory := promauto.With(registerer)
	cc := &CacheCollector{
		entries: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:      "entries_total",
			Namespace: namespaceCrowdfund,
			Subsystem: subsystemCache,
			Help:      "the number of entries in the cache",
		}, []string{LabelResource}),
		hits: factory.NewCounterVec(prometheus.CounterOpts{
			Name:      "hits_total",
			Namespace: namespaceCrowdfund,
			Subsystem: subsystemCache,
			Help:      "the number of hits for the cache",
		}, []string{LabelResource}),
		notFound: factory.NewCounterVec(prometheus.CounterOpts{
			Name:      "notfound_total",
			Namespace: namespaceCrowdfund,
			Subsystem: subsystemCache,
			Help:      "the number of times the queried item was not found in either cache or database",
		}, []string{LabelResource}),
		misses: factory.NewCounterVec(prometheus.CounterOpts{
			Name:      "misses_total",
			Namespace: namespaceCrowdfund,
			Subsystem: subsystemCache,
			Help:      "the number of times the queried item was not in the cache but found in the database",
		}, []string{LabelResource}),
	}
	return cc
}

// CacheEntries records the size of the cache for the given resource.
func (cc *CacheCollector) CacheEntries(resource string, entries uint) {
	cc.entries.WithLabelValues(resource).Set(float64(entries))
}

// CacheHit records the number of hits in the cache for the given resource.
func (cc *CacheCollector) CacheHit(resource string) {
	cc.hits.WithLabelValues(resource).Inc()
}

// CacheNotFound records the number of times the queried item was not found in
// either cache or database.
func (cc *CacheCollector) CacheNotFound(resource string) {
	cc.notFound.WithLabelValues(resource).Inc()
}

// CacheMiss records the number of times the queried item was not found in the
// cache but found in the database.
func (cc *CacheCollector) CacheMiss(resource string) {
	cc.misses.WithLabelValues(resource).Inc()
}
