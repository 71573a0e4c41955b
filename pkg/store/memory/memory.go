// Package memory provides an in-process AttributeStore.
package memory

import (
	"context"
	"sort"
	"sync"

	xerrors "github.com/gluster/glusterxattr/pkg/xattr/errors"
)

// Option configures a Store.
type Option func(*Store)

// WithStrictPaths makes Set fail on paths that were never registered with
// Touch, the way setxattr fails on a missing file.
func WithStrictPaths() Option {
	return func(s *Store) {
		s.strict = true
	}
}

// Store is a map-backed attribute store. Values are copied on the way in and
// out so callers cannot mutate stored state.
type Store struct {
	mu     sync.RWMutex
	paths  map[string]map[string][]byte
	strict bool
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		paths: make(map[string]map[string][]byte),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Touch registers path with no attributes. It is a no-op if path exists.
func (s *Store) Touch(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.paths[path]; !ok {
		s.paths[path] = make(map[string][]byte)
	}
}

// Get returns a copy of the value of name on path.
func (s *Store) Get(ctx context.Context, path, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	attrs, ok := s.paths[path]
	if !ok {
		return nil, xerrors.NewUnavailableError(path, name, nil)
	}
	value, ok := attrs[name]
	if !ok {
		return nil, xerrors.NewUnavailableError(path, name, nil)
	}

	return append([]byte(nil), value...), nil
}

// Set stores a copy of value as name on path.
func (s *Store) Set(ctx context.Context, path, name string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if name == "" {
		return xerrors.NewInvalidArgumentError("attribute name is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	attrs, ok := s.paths[path]
	if !ok {
		if s.strict {
			return xerrors.NewUnavailableError(path, name, nil)
		}
		attrs = make(map[string][]byte)
		s.paths[path] = attrs
	}

	// Stored non-nil so an empty value still reads back as present
	attrs[name] = append(make([]byte, 0, len(value)), value...)
	return nil
}

// List returns the attribute names on path in sorted order.
func (s *Store) List(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	attrs, ok := s.paths[path]
	if !ok {
		return nil, xerrors.NewUnavailableError(path, "", nil)
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Remove deletes name from path.
func (s *Store) Remove(ctx context.Context, path, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	attrs, ok := s.paths[path]
	if !ok {
		return xerrors.NewUnavailableError(path, name, nil)
	}
	if _, ok := attrs[name]; !ok {
		return xerrors.NewUnavailableError(path, name, nil)
	}
	delete(attrs, name)
	return nil
}
