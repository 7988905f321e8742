package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/onflow/flow-crowdfund/module"
)

type StorageCollector struct {
	retryOnConflict prometheus.Counter
	aborted         prometheus.Counter
}

var _ module.StorageMetrics = (*StorageCollector)(nil)

func NewStorageCollector(registerer prometheus.Registerer) *StorageCollector {
	factory := promauto.With(registerer)
	return &StorageCollector{
		retryOnConflict: factory.NewCounter(prometheus.CounterOpts{
			Name:      "retry_on_conflict_total",
			Namespace: namespaceCrowdfund,
			Subsystem: subsystemStorage,
			Help:      "number of transactions re-run after a write conflict",
		}),
		aborted: factory.NewCounter(prometheus.CounterOpts{
			Name:      "transactions_aborted_total",
			Namespace: namespaceCrowdfund,
			Subsystem: subsystemStorage,
			Help:      "number of transactions that kept conflicting until they ran out of retries",
		}),
	}
}

func (sc *StorageCollector) RetryOnConflict() {
	sc.retryOnConflict.Inc()
}

func (sc *StorageCollector) TransactionAborted() {
	sc.aborted.Inc()
}
