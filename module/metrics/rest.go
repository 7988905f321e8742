package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	httpmetrics "github.com/slok/go-http-metrics/metrics"
	metricsProm "github.com/slok/go-http-metrics/metrics/prometheus"

	"github.com/onflow/flow-crowdfund/module"
)

// RestCollector records REST API request metrics. Request latency, response
// sizes and inflight requests are recorded by the go-http-metrics prometheus
// recorder; the total request count per route is tracked separately.
type RestCollector struct {
	httpmetrics.Recorder
	httpRequestsTotal *prometheus.CounterVec
}

var _ module.RestMetrics = (*RestCollector)(nil)

func NewRestCollector(registerer prometheus.Registerer) *RestCollector {
	return &RestCollector{
		Recorder: metricsProm.NewRecorder(metricsProm.Config{
			Prefix:   namespaceCrowdfund + "_" + subsystemRestAPI,
			Registry: registerer,
		}),
		httpRequestsTotal: promauto.With(registerer).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceCrowdfund,
			Subsystem: subsystemRestAPI,
			Name:      "requests_total",
			Help:      "The number of requests handled over time.",
		}, []string{LabelMethod, LabelRoute}),
	}
}

// AddTotalRequests records all REST requests.
func (r *RestCollector) AddTotalRequests(_ context.Context, method string, routeName string) {
	r.httpRequestsTotal.WithLabelValues(method, routeName).Inc()
}
