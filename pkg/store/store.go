// Package store defines the attribute store contract: a key-value store of
// raw attribute bytes addressed by filesystem path and attribute name.
//
// Implementations:
//   - osxattr: the host extended attribute facility (default)
//   - memory: an in-process map, for tests and dry runs
//   - badger: a BadgerDB sidecar for filesystems without xattr support
//   - instrumented: a decorator adding logs, spans and metrics to any store
//
// Every implementation reports failures as *errors.AttrError from
// pkg/xattr/errors. A missing path or attribute is ErrAttributeUnavailable.
package store

import "context"

// AttributeStore reads and writes raw attribute values.
//
// Implementations must be safe for concurrent use. A single Get or Set is
// atomic; no ordering is provided across calls.
type AttributeStore interface {
	// Get returns the value of name on path.
	Get(ctx context.Context, path, name string) ([]byte, error)

	// Set creates or replaces name on path.
	Set(ctx context.Context, path, name string, value []byte) error

	// List returns the attribute names present on path.
	List(ctx context.Context, path string) ([]string, error)

	// Remove deletes name from path.
	Remove(ctx context.Context, path, name string) error
}

// Type identifies a store backend in configuration.
type Type string

const (
	TypeXattr  Type = "xattr"
	TypeBadger Type = "badger"
	TypeMemory Type = "memory"
)

// String returns the backend name.
func (t Type) String() string {
	return string(t)
}
