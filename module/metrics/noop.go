package metrics

import (
	"context"
	"time"

	httpmetrics "github.com/slok/go-http-metrics/metrics"

	"github.com/onflow/flow-crowdfund/module"
)

type NoopCollector struct{}

func NewNoopCollector() *NoopCollector {
	nc := &NoopCollector{}
	return nc
}

var _ module.CacheMetrics = (*NoopCollector)(nil)
var _ module.StorageMetrics = (*NoopCollector)(nil)
var _ module.CustodyMetrics = (*NoopCollector)(nil)
var _ module.RestMetrics = (*NoopCollector)(nil)

func (nc *NoopCollector) CacheEntries(resource string, entries uint)                 {}
func (nc *NoopCollector) CacheHit(resource string)                                   {}
func (nc *NoopCollector) CacheNotFound(resource string)                              {}
func (nc *NoopCollector) CacheMiss(resource string)                                  {}
func (nc *NoopCollector) RetryOnConflict()                                           {}
func (nc *NoopCollector) TransactionAborted()                                        {}
func (nc *NoopCollector) OperationExecuted(operation string, duration time.Duration) {}
func (nc *NoopCollector) OperationRejected(operation string, code string)            {}
func (nc *NoopCollector) FundsMoved(kind string, amount uint64)                      {}
func (nc *NoopCollector) CampaignCreated()                                           {}
func (nc *NoopCollector) MilestoneReleased(index uint8)                              {}
func (nc *NoopCollector) ObserveHTTPRequestDuration(context.Context, httpmetrics.HTTPReqProperties, time.Duration) {
}
func (nc *NoopCollector) ObserveHTTPResponseSize(context.Context, httpmetrics.HTTPReqProperties, int64) {
}
func (nc *NoopCollector) AddInflightRequests(context.Context, httpmetrics.HTTPProperties, int) {}
func (nc *NoopCollector) AddTotalRequests(context.Context, string, string)                     {}
