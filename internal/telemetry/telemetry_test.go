package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// useRecorder routes spans to an in-memory recorder for the test.
func useRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	rec := tracetest.NewSpanRecorder()
	UseProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	t.Cleanup(func() {
		_, _ = Init(context.Background(), Config{Enabled: false})
	})
	return rec
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, "glusterxattr", cfg.ServiceName)
	assert.Equal(t, "dev", cfg.ServiceVersion)
	assert.Equal(t, "localhost:4317", cfg.Endpoint)
	assert.True(t, cfg.Insecure)
	assert.Equal(t, 1.0, cfg.SampleRate)
}

func TestInitDisabled(t *testing.T) {
	ctx := context.Background()

	shutdown, err := Init(ctx, DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	assert.NoError(t, shutdown(ctx))
}

func TestStartSpan_NoOp(t *testing.T) {
	_, err := Init(context.Background(), DefaultConfig())
	require.NoError(t, err)

	ctx, span := StartSpan(context.Background(), "test.operation")
	require.NotNil(t, ctx)
	require.NotNil(t, span)
	defer span.End()

	assert.False(t, span.SpanContext().IsValid())
	assert.Empty(t, TraceID(ctx))
	assert.Empty(t, SpanID(ctx))
}

func TestHelpersWithoutSpan(t *testing.T) {
	ctx := context.Background()

	assert.NotPanics(t, func() {
		AddEvent(ctx, "event", Path("/x"))
		RecordError(ctx, errors.New("boom"))
		RecordError(ctx, nil)
		SetAttributes(ctx, Name("trusted.gfid"))
	})
}

func TestStartStoreSpan(t *testing.T) {
	rec := useRecorder(t)

	ctx, span := StartStoreSpan(context.Background(), "memory", "get", "/bricks/b1/f", Name("trusted.gfid"))
	assert.NotEmpty(t, TraceID(ctx))
	assert.NotEmpty(t, SpanID(ctx))
	RecordError(ctx, errors.New("no data"))
	span.End()

	spans := rec.Ended()
	require.Len(t, spans, 1)
	s := spans[0]

	assert.Equal(t, SpanXattrGet, s.Name())
	assert.Equal(t, codes.Error, s.Status().Code)

	attrs := map[string]string{}
	for _, kv := range s.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "memory", attrs[AttrStoreType])
	assert.Equal(t, "get", attrs[AttrOperation])
	assert.Equal(t, "/bricks/b1/f", attrs[AttrPath])
	assert.Equal(t, "trusted.gfid", attrs[AttrName])
}

func TestStartCommandSpan(t *testing.T) {
	rec := useRecorder(t)

	_, span := StartCommandSpan(context.Background(), "xtime get", VolumeID("v"))
	span.End()

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "gxattr xtime get", spans[0].Name())
}

func TestAttributeHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"StoreType", StoreType("badger").Value.Emit(), "badger"},
		{"Operation", Operation("set").Value.Emit(), "set"},
		{"Size", Size(8).Value.Emit(), "8"},
		{"Count", Count(3).Value.Emit(), "3"},
		{"Namespace", Namespace("user").Value.Emit(), "user"},
		{"ErrorCode", ErrorCode("MalformedIdentifier").Value.Emit(), "MalformedIdentifier"},
		{"ValueBytes", ValueBytes([]byte{0, 0x64}).Value.Emit(), "0064"},
		{"MasterID", MasterID("m").Value.Emit(), "m"},
		{"SlaveID", SlaveID("s").Value.Emit(), "s"},
		{"GFID", GFID("g").Value.Emit(), "g"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}

	assert.Equal(t, AttrSize, string(Size(1).Key))
}
