// Package osxattr implements the AttributeStore on the host extended
// attribute facility (getxattr(2) and friends).
//
// Attributes are read through symlinks, as the geo-replication tooling
// always addresses brick files directly.
package osxattr

import (
	"context"
	"strings"
)

// maxRetries bounds the size-probe/read loop when a value grows between the
// two getxattr calls.
const maxRetries = 3

// Store is the OS extended attribute store. It is stateless and safe for
// concurrent use.
type Store struct{}

// New creates an OS attribute store.
func New() *Store {
	return &Store{}
}

// Get returns the value of name on path.
func (s *Store) Get(ctx context.Context, path, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return getxattr(path, name)
}

// Set creates or replaces name on path.
func (s *Store) Set(ctx context.Context, path, name string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return setxattr(path, name, value)
}

// List returns the attribute names on path visible to the caller.
func (s *Store) List(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return listxattr(path)
}

// Remove deletes name from path.
func (s *Store) Remove(ctx context.Context, path, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return removexattr(path, name)
}

// splitNames splits a NUL-separated listxattr buffer.
func splitNames(buf []byte) []string {
	var names []string
	for _, name := range strings.Split(string(buf), "\x00") {
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
