package prometheus

import (
	"testing"
	"time"

	"github.com/gluster/glusterxattr/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreMetrics_Disabled(t *testing.T) {
	metrics.Disable()
	assert.Nil(t, NewStoreMetrics())
	assert.Nil(t, metrics.NewStoreMetrics())
}

func TestStoreMetrics_ObserveOperation(t *testing.T) {
	metrics.InitRegistry()
	t.Cleanup(metrics.Disable)

	m := NewStoreMetrics()
	require.NotNil(t, m)

	m.ObserveOperation("get", "ok", 16, time.Millisecond)
	m.ObserveOperation("get", "AttributeUnavailable", 0, time.Millisecond)
	m.ObserveOperation("set", "ok", 8, 2*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("get", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("get", "AttributeUnavailable")))
	assert.Equal(t, 16.0, testutil.ToFloat64(m.bytesTotal.WithLabelValues("get")))
	assert.Equal(t, 8.0, testutil.ToFloat64(m.bytesTotal.WithLabelValues("set")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.operationDuration))
}

func TestStoreMetrics_NilSafe(t *testing.T) {
	var m *storeMetrics
	assert.NotPanics(t, func() { m.ObserveOperation("get", "ok", 1, time.Second) })
}

func TestRegisteredConstructor(t *testing.T) {
	metrics.InitRegistry()
	t.Cleanup(metrics.Disable)

	assert.NotNil(t, metrics.NewStoreMetrics())
}
