// Package instrumented wraps an AttributeStore with logging, tracing and
// metrics. The wrapped store's results are returned unchanged.
package instrumented

import (
	"context"
	"errors"
	"time"

	"github.com/gluster/glusterxattr/internal/logger"
	"github.com/gluster/glusterxattr/internal/telemetry"
	"github.com/gluster/glusterxattr/pkg/metrics"
	"github.com/gluster/glusterxattr/pkg/store"
	xerrors "github.com/gluster/glusterxattr/pkg/xattr/errors"
)

const statusOK = "ok"

// Store decorates another AttributeStore.
type Store struct {
	next      store.AttributeStore
	storeType string
	metrics   metrics.StoreMetrics
}

var _ store.AttributeStore = (*Store)(nil)

// New wraps next. storeType labels logs and spans; m may be nil.
func New(next store.AttributeStore, storeType string, m metrics.StoreMetrics) *Store {
	return &Store{
		next:      next,
		storeType: storeType,
		metrics:   m,
	}
}

// Unwrap returns the decorated store.
func (s *Store) Unwrap() store.AttributeStore {
	return s.next
}

// Get implements store.AttributeStore.
func (s *Store) Get(ctx context.Context, path, name string) (value []byte, err error) {
	ctx, span := telemetry.StartStoreSpan(ctx, s.storeType, "get", path, telemetry.Name(name))
	defer span.End()

	start := time.Now()
	defer func() {
		s.finish(ctx, "get", path, name, len(value), start, err)
		if err == nil {
			span.SetAttributes(telemetry.Size(len(value)), telemetry.ValueBytes(value))
		}
	}()

	return s.next.Get(ctx, path, name)
}

// Set implements store.AttributeStore.
func (s *Store) Set(ctx context.Context, path, name string, value []byte) (err error) {
	ctx, span := telemetry.StartStoreSpan(ctx, s.storeType, "set", path,
		telemetry.Name(name),
		telemetry.Size(len(value)),
		telemetry.ValueBytes(value))
	defer span.End()

	start := time.Now()
	defer func() {
		s.finish(ctx, "set", path, name, len(value), start, err)
	}()

	return s.next.Set(ctx, path, name, value)
}

// List implements store.AttributeStore.
func (s *Store) List(ctx context.Context, path string) (names []string, err error) {
	ctx, span := telemetry.StartStoreSpan(ctx, s.storeType, "list", path)
	defer span.End()

	start := time.Now()
	defer func() {
		s.finish(ctx, "list", path, "", 0, start, err)
		if err == nil {
			span.SetAttributes(telemetry.Count(len(names)))
		}
	}()

	return s.next.List(ctx, path)
}

// Remove implements store.AttributeStore.
func (s *Store) Remove(ctx context.Context, path, name string) (err error) {
	ctx, span := telemetry.StartStoreSpan(ctx, s.storeType, "remove", path, telemetry.Name(name))
	defer span.End()

	start := time.Now()
	defer func() {
		s.finish(ctx, "remove", path, name, 0, start, err)
	}()

	return s.next.Remove(ctx, path, name)
}

// finish records the outcome of one call. Bytes are only counted on success.
func (s *Store) finish(ctx context.Context, op, path, name string, size int, start time.Time, err error) {
	elapsed := time.Since(start)

	status := statusOK
	if err != nil {
		status = Status(err)
		size = 0
		telemetry.RecordError(ctx, err)
		telemetry.SetAttributes(ctx, telemetry.ErrorCode(status))
	}

	metrics.ObserveOperation(s.metrics, op, status, size, elapsed)

	args := []any{
		logger.KeyOperation, op,
		logger.KeyStore, s.storeType,
		logger.KeyPath, path,
		logger.KeyDurationMs, float64(elapsed.Microseconds()) / 1000.0,
	}
	if name != "" {
		args = append(args, logger.KeyName, name)
	}
	if err != nil {
		args = append(args, logger.KeyErrorCode, status, logger.KeyError, err.Error())
	} else if size > 0 {
		args = append(args, logger.KeySize, size)
	}
	logger.DebugCtx(ctx, "xattr "+op, args...)
}

// Status returns the metric status label for err: "ok" for nil, the error
// code name for classified errors, "canceled" for context errors and
// "error" otherwise.
func Status(err error) string {
	switch {
	case err == nil:
		return statusOK
	case xerrors.CodeOf(err) != 0:
		return xerrors.CodeOf(err).String()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}
