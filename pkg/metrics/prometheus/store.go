// Package prometheus provides the Prometheus implementations of the metrics
// interfaces. Import it for its side effect to make the constructors in
// pkg/metrics return live instances.
package prometheus

import (
	"time"

	"github.com/gluster/glusterxattr/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func init() {
	metrics.RegisterStoreMetricsConstructor(func() metrics.StoreMetrics {
		return NewStoreMetrics()
	})
}

// storeMetrics is the Prometheus implementation of metrics.StoreMetrics.
type storeMetrics struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	bytesTotal        *prometheus.CounterVec
}

// NewStoreMetrics creates a new Prometheus-backed StoreMetrics instance.
//
// Returns nil if metrics are not enabled (InitRegistry not called).
func NewStoreMetrics() *storeMetrics {
	if !metrics.IsEnabled() {
		return nil
	}

	reg := metrics.GetRegistry()

	return &storeMetrics{
		operationsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "glusterxattr_store_operations_total",
				Help: "Total number of attribute store operations by operation and status",
			},
			[]string{"operation", "status"},
		),
		operationDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "glusterxattr_store_operation_duration_milliseconds",
				Help: "Duration of attribute store operations in milliseconds",
				Buckets: []float64{
					0.01, // 10us - cached xattr read
					0.05,
					0.1,
					0.5,
					1,  // 1ms
					5,  // 5ms - cold inode / badger commit
					10, // 10ms
					50, // 50ms - contended brick
				},
			},
			[]string{"operation"},
		),
		bytesTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "glusterxattr_store_bytes_total",
				Help: "Total attribute value bytes read or written",
			},
			[]string{"operation"},
		),
	}
}

// ObserveOperation records one completed store call.
func (m *storeMetrics) ObserveOperation(operation, status string, bytes int, duration time.Duration) {
	if m == nil {
		return
	}
	m.operationsTotal.WithLabelValues(operation, status).Inc()
	m.operationDuration.WithLabelValues(operation).Observe(float64(duration.Microseconds()) / 1000.0)
	if bytes > 0 {
		m.bytesTotal.WithLabelValues(operation).Add(float64(bytes))
	}
}
