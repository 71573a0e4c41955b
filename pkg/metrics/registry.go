// Package metrics holds the Prometheus registry lifecycle and the metrics
// interfaces consumed by the attribute stores.
//
// Metrics are opt-in. Until InitRegistry is called every constructor in this
// package returns nil, and callers pass nil metrics through for zero overhead.
package metrics

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	mu       sync.RWMutex
	registry *prometheus.Registry
)

// InitRegistry enables metrics collection with a fresh registry carrying the
// Go runtime and process collectors. Calling it again replaces the registry.
func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	mu.Lock()
	registry = reg
	mu.Unlock()

	return reg
}

// Disable drops the registry; subsequent constructors return nil.
func Disable() {
	mu.Lock()
	registry = nil
	mu.Unlock()
}

// IsEnabled reports whether InitRegistry has been called.
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return registry != nil
}

// GetRegistry returns the active registry, or nil when metrics are disabled.
func GetRegistry() *prometheus.Registry {
	mu.RLock()
	defer mu.RUnlock()
	return registry
}

// WriteTextfile writes the current metrics in the Prometheus text format to
// path, for the node_exporter textfile collector. It is a no-op when metrics
// are disabled.
func WriteTextfile(path string) error {
	reg := GetRegistry()
	if reg == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
