package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	ReportsGenerated prometheus.Counter
	LedgerRecords    *prometheus.CounterVec
	Annotations      *prometheus.CounterVec
	BuildTime        prometheus.Histogram
	ErrorsCount      *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics registered on reg. A nil reg
// uses the default registerer.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		ReportsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_generated_total",
			Help:      "The total number of generated reports",
		}),
		LedgerRecords: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_records_total",
			Help:      "The total number of merged ledger records by source",
		}, []string{"source"}),
		Annotations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "annotations_total",
			Help:      "The total number of degradation annotations by kind",
		}, []string{"kind"}),
		BuildTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_build_time_seconds",
			Help:      "Time taken to build a report",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
