package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/onflow/flow-crowdfund/module"
)

type CustodyCollector struct {
	operationDuration *prometheus.HistogramVec
	rejections        *prometheus.CounterVec
	fundsMoved        *prometheus.CounterVec
	campaignsCreated  prometheus.Counter
	milestones        *prometheus.CounterVec
}

var _ module.CustodyMetrics = (*CustodyCollector)(nil)

func NewCustodyCollector(registerer prometheus.Registerer) *CustodyCollector {
	factory := promauto.With(registerer)
	cc := &CustodyCollector{
		operationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:      "operation_duration_seconds",
			Namespace: namespaceCrowdfund,
			Subsystem: subsystemCustody,
			Help:      "latency of committed custody operations",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1},
		}, []string{LabelOperation}),
		rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name:      "operation_rejections_total",
			Namespace: namespaceCrowdfund,
			Subsystem: subsystemCustody,
			Help:      "number of custody operations rejected with a coded error",
		}, []string{LabelOperation, LabelCode}),
		fundsMoved: factory.NewCounterVec(prometheus.CounterOpts{
			Name:      "funds_moved_total",
			Namespace: namespaceCrowdfund,
			Subsystem: subsystemCustody,
			Help:      "total value moved between custody slots",
		}, []string{LabelKind}),
		campaignsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name:      "campaigns_created_total",
			Namespace: namespaceCrowdfund,
			Subsystem: subsystemCustody,
			Help:      "number of campaigns created",
		}),
		milestones: factory.NewCounterVec(prometheus.CounterOpts{
			Name:      "milestones_released_total",
			Namespace: namespaceCrowdfund,
			Subsystem: subsystemCustody,
			Help:      "number of milestones released",
		}, []string{LabelIndex}),
	}
	return cc
}

func (cc *CustodyCollector) OperationExecuted(operation string, duration time.Duration) {
	cc.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (cc *CustodyCollector) OperationRejected(operation string, code string) {
	cc.rejections.WithLabelValues(operation, code).Inc()
}

func (cc *CustodyCollector) FundsMoved(kind string, amount uint64) {
	cc.fundsMoved.WithLabelValues(kind).Add(float64(amount))
}

func (cc *CustodyCollector) CampaignCreated() {
	cc.campaignsCreated.Inc()
}

func (cc *CustodyCollector) MilestoneReleased(index uint8) {
	cc.milestones.WithLabelValues(strconv.Itoa(int(index))).Inc()
}
