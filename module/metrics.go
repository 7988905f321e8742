package module

import (
	"context"
	"time"

	httpmetrics "github.com/slok/go-http-metrics/metrics"
)

type CacheMetrics interface {
	// CacheEntries report the total number of cached items
	CacheEntries(resource string, entries uint)
	// CacheHit report the number of times the queried item is found in the cache
	CacheHit(resource string)
	// CacheNotFound records the number of times the queried item was not found in either cache or database.
	CacheNotFound(resource string)
	// CacheMiss report the number of times the queried item is not found in the cache, but found in the database.
	CacheMiss(resource string)
}

type StorageMetrics interface {
	// RetryOnConflict counts transactions that were re-run after a write conflict.
	RetryOnConflict()
	// TransactionAborted counts transactions that gave up after exhausting their retries.
	TransactionAborted()
}

type CustodyMetrics interface {
	// OperationExecuted records the latency of a custody operation that committed.
	OperationExecuted(operation string, duration time.Duration)
	// OperationRejected counts custody operations that failed with a coded error.
	OperationRejected(operation string, code string)
	// FundsMoved records value moved by the given kind of transfer.
	FundsMoved(kind string, amount uint64)
	// CampaignCreated counts created campaigns.
	CampaignCreated()
	// MilestoneReleased counts released milestones by index.
	MilestoneReleased(index uint8)
}

type RestMetrics interface {
	// Example recorder taken from:
	// https://github.com/slok/go-http-metrics/blob/master/metrics/prometheus/prometheus.go
	httpmetrics.Recorder
	AddTotalRequests(ctx context.Context, method string, routeName string)
}
