// Package storetest provides a conformance test suite for attribute store
// implementations.
//
// All attribute store backends (osxattr, memory, badger) should pass these
// tests. The suite verifies that every implementation satisfies the
// AttributeStore behavioral contract, in particular that missing paths and
// missing attributes are both reported as ErrAttributeUnavailable.
//
// Usage:
//
//	func TestConformance(t *testing.T) {
//	    storetest.RunConformanceSuite(t, func(t *testing.T) storetest.Fixture {
//	        return storetest.Fixture{Store: memory.New(), NewPath: storetest.TempFile}
//	    })
//	}
package storetest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gluster/glusterxattr/pkg/store"
	xerrors "github.com/gluster/glusterxattr/pkg/xattr/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Attribute names used by the suite. They live in the user namespace so the
// suite runs unprivileged against real filesystems.
const (
	nameXtime = "user.glusterfs.f9b3a729-872f-4535-ae41-45ee7c62f223.xtime"
	nameGFID  = "user.gfid"
)

// Fixture is what a factory hands to the suite.
type Fixture struct {
	// Store is a fresh store instance.
	Store store.AttributeStore

	// NewPath returns a path that exists as far as Store is concerned.
	NewPath func(t *testing.T) string

	// StrictPaths is set when Set on a missing path must fail.
	StrictPaths bool
}

// StoreFactory creates a fresh fixture for each test. The factory receives
// *testing.T so it can use t.TempDir() and t.Cleanup().
type StoreFactory func(t *testing.T) Fixture

// TempFile creates an empty regular file under t.TempDir().
func TempFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "testfile")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	return path
}

// missingPath returns a path that does not exist on disk or in any store.
func missingPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing", "testfile")
}

// RunConformanceSuite runs every conformance test against the factory.
// Each test gets a fresh fixture to ensure isolation.
func RunConformanceSuite(t *testing.T, factory StoreFactory) {
	t.Helper()

	t.Run("SetGet", func(t *testing.T) { testSetGet(t, factory) })
	t.Run("Overwrite", func(t *testing.T) { testOverwrite(t, factory) })
	t.Run("EmptyValue", func(t *testing.T) { testEmptyValue(t, factory) })
	t.Run("ReturnsCopies", func(t *testing.T) { testReturnsCopies(t, factory) })
	t.Run("GetMissingAttribute", func(t *testing.T) { testGetMissingAttribute(t, factory) })
	t.Run("GetMissingPath", func(t *testing.T) { testGetMissingPath(t, factory) })
	t.Run("SetMissingPath", func(t *testing.T) { testSetMissingPath(t, factory) })
	t.Run("List", func(t *testing.T) { testList(t, factory) })
	t.Run("Remove", func(t *testing.T) { testRemove(t, factory) })
	t.Run("PathsAreIsolated", func(t *testing.T) { testPathsAreIsolated(t, factory) })
	t.Run("CanceledContext", func(t *testing.T) { testCanceledContext(t, factory) })
}

func testSetGet(t *testing.T, factory StoreFactory) {
	fx := factory(t)
	path := fx.NewPath(t)
	ctx := t.Context()

	value := []byte{0, 0, 0, 100, 0, 0, 0, 2}
	require.NoError(t, fx.Store.Set(ctx, path, nameXtime, value))

	got, err := fx.Store.Get(ctx, path, nameXtime)
	require.NoError(t, err)
	assert.Equal(t, value, got)
}

func testOverwrite(t *testing.T, factory StoreFactory) {
	fx := factory(t)
	path := fx.NewPath(t)
	ctx := t.Context()

	require.NoError(t, fx.Store.Set(ctx, path, nameGFID, []byte("first-value")))
	require.NoError(t, fx.Store.Set(ctx, path, nameGFID, []byte("second")))

	got, err := fx.Store.Get(ctx, path, nameGFID)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func testEmptyValue(t *testing.T, factory StoreFactory) {
	fx := factory(t)
	path := fx.NewPath(t)
	ctx := t.Context()

	require.NoError(t, fx.Store.Set(ctx, path, nameXtime, []byte{}))

	got, err := fx.Store.Get(ctx, path, nameXtime)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func testReturnsCopies(t *testing.T, factory StoreFactory) {
	fx := factory(t)
	path := fx.NewPath(t)
	ctx := t.Context()

	value := []byte{1, 2, 3, 4}
	require.NoError(t, fx.Store.Set(ctx, path, nameXtime, value))
	value[0] = 0xff

	got, err := fx.Store.Get(ctx, path, nameXtime)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, got)

	got[1] = 0xff
	again, err := fx.Store.Get(ctx, path, nameXtime)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, again)
}

func testGetMissingAttribute(t *testing.T, factory StoreFactory) {
	fx := factory(t)
	path := fx.NewPath(t)

	_, err := fx.Store.Get(t.Context(), path, nameGFID)
	require.Error(t, err)
	assert.True(t, xerrors.IsCode(err, xerrors.ErrAttributeUnavailable), "got %v", err)
}

func testGetMissingPath(t *testing.T, factory StoreFactory) {
	fx := factory(t)

	_, err := fx.Store.Get(t.Context(), missingPath(t), nameGFID)
	require.Error(t, err)
	assert.True(t, xerrors.IsCode(err, xerrors.ErrAttributeUnavailable), "got %v", err)
}

func testSetMissingPath(t *testing.T, factory StoreFactory) {
	fx := factory(t)
	if !fx.StrictPaths {
		t.Skip("store creates paths implicitly")
	}

	err := fx.Store.Set(t.Context(), missingPath(t), nameGFID, []byte("x"))
	require.Error(t, err)
	assert.True(t, xerrors.IsCode(err, xerrors.ErrAttributeUnavailable), "got %v", err)
}

func testList(t *testing.T, factory StoreFactory) {
	fx := factory(t)
	path := fx.NewPath(t)
	ctx := t.Context()

	require.NoError(t, fx.Store.Set(ctx, path, nameGFID, []byte("a")))
	require.NoError(t, fx.Store.Set(ctx, path, nameXtime, []byte("b")))

	names, err := fx.Store.List(ctx, path)
	require.NoError(t, err)
	assert.Contains(t, names, nameGFID)
	assert.Contains(t, names, nameXtime)

	_, err = fx.Store.List(ctx, missingPath(t))
	assert.True(t, xerrors.IsCode(err, xerrors.ErrAttributeUnavailable), "got %v", err)
}

func testRemove(t *testing.T, factory StoreFactory) {
	fx := factory(t)
	path := fx.NewPath(t)
	ctx := t.Context()

	require.NoError(t, fx.Store.Set(ctx, path, nameGFID, []byte("a")))
	require.NoError(t, fx.Store.Remove(ctx, path, nameGFID))

	_, err := fx.Store.Get(ctx, path, nameGFID)
	assert.True(t, xerrors.IsCode(err, xerrors.ErrAttributeUnavailable), "got %v", err)

	err = fx.Store.Remove(ctx, path, nameGFID)
	assert.True(t, xerrors.IsCode(err, xerrors.ErrAttributeUnavailable), "got %v", err)
}

func testPathsAreIsolated(t *testing.T, factory StoreFactory) {
	fx := factory(t)
	a := fx.NewPath(t)
	b := fx.NewPath(t)
	ctx := t.Context()

	require.NotEqual(t, a, b)
	require.NoError(t, fx.Store.Set(ctx, a, nameGFID, []byte("a")))

	_, err := fx.Store.Get(ctx, b, nameGFID)
	assert.True(t, xerrors.IsCode(err, xerrors.ErrAttributeUnavailable), "got %v", err)
}

func testCanceledContext(t *testing.T, factory StoreFactory) {
	fx := factory(t)
	path := fx.NewPath(t)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := fx.Store.Get(ctx, path, nameGFID)
	assert.ErrorIs(t, err, context.Canceled)

	err = fx.Store.Set(ctx, path, nameGFID, []byte("a"))
	assert.ErrorIs(t, err, context.Canceled)
}
