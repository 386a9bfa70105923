package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Store operation Prometheus metrics.
var (
	StoreOpsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "textdex",
			Name:      "store_operations_total",
			Help:      "Total number of store operations",
		},
		[]string{"op", "status"},
	)

	StoreOpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "textdex",
			Name:      "store_operation_duration_seconds",
			Help:      "Store operation duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"op"},
	)
)

var storeMetricsRegistered bool

// RegisterStoreMetrics registers Prometheus store metrics. Must be called once from main.
func RegisterStoreMetrics() {
	if storeMetricsRegistered {
		return
	}
	prometheus.MustRegister(StoreOpsTotal)
	prometheus.MustRegister(StoreOpDuration)
	storeMetricsRegistered = true
}

// StoreObserver records store operation outcomes into Prometheus metrics.
type StoreObserver struct{}

// ObserveOp records one completed store operation.
func (StoreObserver) ObserveOp(op string, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	StoreOpsTotal.WithLabelValues(op, status).Inc()
	StoreOpDuration.WithLabelValues(op).Observe(d.Seconds())
}
