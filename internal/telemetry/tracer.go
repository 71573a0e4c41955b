package telemetry

import (
	"context"
	"encoding/hex"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys for extended attribute operations.
// These follow OpenTelemetry semantic conventions where applicable.
const (
	// ========================================================================
	// Store attributes
	// ========================================================================
	AttrStoreType  = "store.type"      // xattr, badger, memory
	AttrOperation  = "xattr.operation" // get, set, list, remove
	AttrPath       = "xattr.path"      // Filesystem path
	AttrName       = "xattr.name"      // Full attribute name
	AttrSize       = "xattr.size"      // Value size in bytes
	AttrCount      = "xattr.count"     // Number of names listed
	AttrNamespace  = "xattr.namespace" // trusted, user
	AttrErrorCode  = "xattr.error_code"
	AttrValueBytes = "xattr.value" // Raw value, hex encoded

	// ========================================================================
	// Geo-replication attributes
	// ========================================================================
	AttrVolumeID = "georep.volume_id"
	AttrMasterID = "georep.master_id"
	AttrSlaveID  = "georep.slave_id"
	AttrGFID     = "georep.gfid"
)

// Span names.
// Format: <component>.<operation>
const (
	// Raw store operations
	SpanXattrGet    = "xattr.get"
	SpanXattrSet    = "xattr.set"
	SpanXattrList   = "xattr.list"
	SpanXattrRemove = "xattr.remove"

	// CLI root span; the command path is appended
	SpanCommand = "gxattr"
)

// StoreType returns an attribute for the store backend
func StoreType(t string) attribute.KeyValue {
	return attribute.String(AttrStoreType, t)
}

// Operation returns an attribute for the store operation
func Operation(op string) attribute.KeyValue {
	return attribute.String(AttrOperation, op)
}

// Path returns an attribute for the filesystem path
func Path(p string) attribute.KeyValue {
	return attribute.String(AttrPath, p)
}

// Name returns an attribute for the attribute name
func Name(n string) attribute.KeyValue {
	return attribute.String(AttrName, n)
}

// Size returns an attribute for the value size
func Size(n int) attribute.KeyValue {
	return attribute.Int(AttrSize, n)
}

// Count returns an attribute for the number of names listed
func Count(n int) attribute.KeyValue {
	return attribute.Int(AttrCount, n)
}

// Namespace returns an attribute for the attribute namespace
func Namespace(ns string) attribute.KeyValue {
	return attribute.String(AttrNamespace, ns)
}

// ErrorCode returns an attribute for the error classification
func ErrorCode(code string) attribute.KeyValue {
	return attribute.String(AttrErrorCode, code)
}

// ValueBytes returns an attribute for a raw value, hex encoded
func ValueBytes(v []byte) attribute.KeyValue {
	return attribute.String(AttrValueBytes, hex.EncodeToString(v))
}

// VolumeID returns an attribute for a volume UUID
func VolumeID(id string) attribute.KeyValue {
	return attribute.String(AttrVolumeID, id)
}

// MasterID returns an attribute for a master volume UUID
func MasterID(id string) attribute.KeyValue {
	return attribute.String(AttrMasterID, id)
}

// SlaveID returns an attribute for a slave volume UUID
func SlaveID(id string) attribute.KeyValue {
	return attribute.String(AttrSlaveID, id)
}

// GFID returns an attribute for a GFID
func GFID(id string) attribute.KeyValue {
	return attribute.String(AttrGFID, id)
}

// StartStoreSpan starts a span for a raw store operation.
// The span name is "xattr.<operation>".
func StartStoreSpan(ctx context.Context, storeType, operation, path string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := []attribute.KeyValue{
		StoreType(storeType),
		Operation(operation),
		Path(path),
	}
	allAttrs = append(allAttrs, attrs...)

	return StartSpan(ctx, "xattr."+operation, trace.WithAttributes(allAttrs...))
}

// StartCommandSpan starts the root span for a CLI command
func StartCommandSpan(ctx context.Context, command string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return StartSpan(ctx, SpanCommand+" "+command,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...))
}
