package metrics

import (
	"time"
)

// StoreMetrics provides observability for attribute store operations.
//
// This interface is optional - pass nil to disable metrics collection with
// zero overhead.
type StoreMetrics interface {
	// ObserveOperation records one completed store call.
	//
	// Parameters:
	//   - operation: "get", "set", "list" or "remove"
	//   - status: "ok" or the error code name (e.g. "AttributeUnavailable")
	//   - bytes: value size moved by the call (0 for list/remove)
	//   - duration: time taken by the call
	ObserveOperation(operation, status string, bytes int, duration time.Duration)
}

// NewStoreMetrics creates a Prometheus-backed StoreMetrics instance.
//
// Returns nil if metrics are not enabled (InitRegistry not called) or the
// Prometheus implementation is not linked in.
//
// Example usage:
//
//	metrics.InitRegistry()
//	s := instrumented.New(osxattr.New(), "xattr", metrics.NewStoreMetrics())
func NewStoreMetrics() StoreMetrics {
	if !IsEnabled() || newPrometheusStoreMetrics == nil {
		return nil
	}
	return newPrometheusStoreMetrics()
}

// newPrometheusStoreMetrics is implemented in pkg/metrics/prometheus/store.go.
// This indirection avoids import cycles while keeping the API clean.
var newPrometheusStoreMetrics func() StoreMetrics

// RegisterStoreMetricsConstructor registers the Prometheus store metrics
// constructor. Called by pkg/metrics/prometheus during package initialization.
func RegisterStoreMetricsConstructor(constructor func() StoreMetrics) {
	newPrometheusStoreMetrics = constructor
}

// ObserveOperation records a store operation on m if it is non-nil.
func ObserveOperation(m StoreMetrics, operation, status string, bytes int, duration time.Duration) {
	if m != nil {
		m.ObserveOperation(operation, status, bytes, duration)
	}
}
