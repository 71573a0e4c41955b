package logger

import (
	"encoding/hex"
	"log/slog"
)

// Standard field keys for structured logging.
// Use these keys consistently across all log statements for log aggregation
// and querying.
const (
	// Distributed tracing
	KeyTraceID = "trace_id"
	KeySpanID  = "span_id"

	// Invocation
	KeyCommand   = "command"   // CLI command
	KeyStore     = "store"     // Store backend: xattr, badger, memory
	KeyNamespace = "namespace" // Attribute namespace: trusted, user
	KeyOperation = "operation" // Store operation: get, set, list, remove

	// Attribute addressing
	KeyPath  = "path"  // Filesystem path the attribute lives on
	KeyName  = "name"  // Full attribute name (trusted.gfid, ...)
	KeyValue = "value" // Raw value, hex encoded
	KeySize  = "size"  // Value size in bytes
	KeyCount = "count" // Number of attribute names

	// Decoded payloads
	KeyGFID     = "gfid"
	KeyVolumeID = "volume_id"
	KeyMasterID = "master_id"
	KeySlaveID  = "slave_id"
	KeyXtime    = "xtime"
	KeyStime    = "stime"

	// Outcome
	KeyDurationMs = "duration_ms"
	KeyError      = "error"
	KeyErrorCode  = "error_code"
	KeyConfig     = "config" // Config file path
)

// Path returns the path attribute
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// Name returns the attribute-name attribute
func Name(n string) slog.Attr {
	return slog.String(KeyName, n)
}

// Value returns a raw attribute value, hex encoded
func Value(v []byte) slog.Attr {
	return slog.String(KeyValue, hex.EncodeToString(v))
}

// Size returns the value-size attribute
func Size(n int) slog.Attr {
	return slog.Int(KeySize, n)
}

// Operation returns the store-operation attribute
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Store returns the store-backend attribute
func Store(name string) slog.Attr {
	return slog.String(KeyStore, name)
}

// DurationMs returns the duration attribute
func DurationMs(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMs, ms)
}

// Err returns an error attribute, or an empty attr for a nil error
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// ErrorCode returns the error-code attribute
func ErrorCode(code string) slog.Attr {
	return slog.String(KeyErrorCode, code)
}
