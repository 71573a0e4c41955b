// Package badger implements a sidecar AttributeStore in BadgerDB, for bricks
// on filesystems without extended attribute support and for staging
// attribute values away from the brick.
package badger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	badgerdb "github.com/dgraph-io/badger/v4"
	xerrors "github.com/gluster/glusterxattr/pkg/xattr/errors"
)

// ============================================================================
// Key Namespace Design
// ============================================================================
//
// Data Type     Prefix   Key Format                 Value Type
// =============================================================
// Attribute     "x:"     x:<abs path>\x00<name>     raw bytes
//
// NUL cannot appear in a path or an attribute name, so it separates the two
// unambiguously and x:<path>\x00 is a prefix for all attributes of one path.

const (
	prefixAttr = "x:"
	separator  = "\x00"
)

func keyPathPrefix(path string) []byte {
	return []byte(prefixAttr + path + separator)
}

func keyAttr(path, name string) []byte {
	return []byte(prefixAttr + path + separator + name)
}

// Config configures a Store.
type Config struct {
	// Dir is the BadgerDB directory. Ignored when InMemory is set.
	Dir string

	// InMemory keeps the database in memory only.
	InMemory bool

	// CheckPaths makes every operation fail with ErrAttributeUnavailable
	// when the addressed path does not exist on the local filesystem.
	CheckPaths bool

	// ValueLogFileSize caps each value log file. Zero keeps the badger
	// default, which is far larger than attribute values need.
	ValueLogFileSize int64
}

// Store is a BadgerDB-backed attribute store.
type Store struct {
	db         *badgerdb.DB
	checkPaths bool
}

// New opens (or creates) the database described by cfg.
func New(cfg Config) (*Store, error) {
	opts := badgerdb.DefaultOptions(cfg.Dir).WithLogger(nil)
	if cfg.InMemory {
		opts = badgerdb.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	} else if cfg.Dir == "" {
		return nil, xerrors.NewInvalidArgumentError("badger directory is required")
	}
	if cfg.ValueLogFileSize > 0 {
		opts = opts.WithValueLogFileSize(cfg.ValueLogFileSize)
	}

	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database: %w", err)
	}

	return &Store{
		db:         db,
		checkPaths: cfg.CheckPaths,
	}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// resolve normalises path and, when path checking is on, verifies it exists.
func (s *Store) resolve(path, name string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", xerrors.NewUnavailableError(path, name, err)
	}
	if s.checkPaths {
		if _, err := os.Stat(abs); err != nil {
			return "", xerrors.NewUnavailableError(path, name, err)
		}
	}
	return abs, nil
}

// Get returns the value of name on path.
func (s *Store) Get(ctx context.Context, path, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, err := s.resolve(path, name)
	if err != nil {
		return nil, err
	}

	var value []byte
	err = s.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get(keyAttr(abs, name))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badgerdb.ErrKeyNotFound) {
		return nil, xerrors.NewUnavailableError(path, name, nil)
	}
	if err != nil {
		return nil, &xerrors.AttrError{
			Code:    xerrors.ErrIOError,
			Message: "failed to read attribute",
			Path:    path,
			Name:    name,
			Err:     err,
		}
	}

	if value == nil {
		value = []byte{}
	}
	return value, nil
}

// Set creates or replaces name on path.
func (s *Store) Set(ctx context.Context, path, name string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if name == "" {
		return xerrors.NewInvalidArgumentError("attribute name is empty")
	}

	abs, err := s.resolve(path, name)
	if err != nil {
		return err
	}

	// Badger may keep a reference to the slice until the txn commits
	stored := append([]byte(nil), value...)
	err = s.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set(keyAttr(abs, name), stored)
	})
	if err != nil {
		return xerrors.NewWriteFailureError(path, name, err)
	}
	return nil
}

// List returns the attribute names on path in key order.
func (s *Store) List(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, err := s.resolve(path, "")
	if err != nil {
		return nil, err
	}

	prefix := keyPathPrefix(abs)
	names := []string{}

	err = s.db.View(func(txn *badgerdb.Txn) error {
		opts := badgerdb.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			names = append(names, strings.TrimPrefix(key, string(prefix)))
		}
		return nil
	})
	if err != nil {
		return nil, &xerrors.AttrError{
			Code:    xerrors.ErrIOError,
			Message: "failed to list attributes",
			Path:    path,
			Err:     err,
		}
	}

	if len(names) == 0 && !s.checkPaths {
		// Without a filesystem to consult, a path with no attributes is
		// indistinguishable from a missing one.
		return nil, xerrors.NewUnavailableError(path, "", nil)
	}
	return names, nil
}

// Remove deletes name from path.
func (s *Store) Remove(ctx context.Context, path, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	abs, err := s.resolve(path, name)
	if err != nil {
		return err
	}

	key := keyAttr(abs, name)
	err = s.db.Update(func(txn *badgerdb.Txn) error {
		if _, err := txn.Get(key); err != nil {
			return err
		}
		return txn.Delete(key)
	})
	if errors.Is(err, badgerdb.ErrKeyNotFound) {
		return xerrors.NewUnavailableError(path, name, nil)
	}
	if err != nil {
		return xerrors.NewWriteFailureError(path, name, err)
	}
	return nil
}
