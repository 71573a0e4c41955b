package badger_test

import (
	"path/filepath"
	"testing"

	"github.com/gluster/glusterxattr/pkg/store/badger"
	"github.com/gluster/glusterxattr/pkg/store/storetest"
	xerrors "github.com/gluster/glusterxattr/pkg/xattr/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, cfg badger.Config) *badger.Store {
	t.Helper()

	s, err := badger.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func TestConformance(t *testing.T) {
	storetest.RunConformanceSuite(t, func(t *testing.T) storetest.Fixture {
		return storetest.Fixture{
			Store:       newStore(t, badger.Config{Dir: filepath.Join(t.TempDir(), "attrs.db"), CheckPaths: true}),
			NewPath:     storetest.TempFile,
			StrictPaths: true,
		}
	})
}

func TestConformance_InMemory(t *testing.T) {
	storetest.RunConformanceSuite(t, func(t *testing.T) storetest.Fixture {
		return storetest.Fixture{
			Store: newStore(t, badger.Config{InMemory: true}),
			NewPath: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "testfile")
			},
		}
	})
}

func TestStore_Persistence(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "attrs.db")
	path := storetest.TempFile(t)
	ctx := t.Context()

	s, err := badger.New(badger.Config{Dir: dir, CheckPaths: true})
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, path, "trusted.gfid", []byte{1, 2, 3}))
	require.NoError(t, s.Close())

	reopened := newStore(t, badger.Config{Dir: dir, CheckPaths: true})
	got, err := reopened.Get(ctx, path, "trusted.gfid")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)
}

func TestStore_RelativeAndAbsolutePathsAgree(t *testing.T) {
	t.Chdir(t.TempDir())

	s := newStore(t, badger.Config{InMemory: true})
	ctx := t.Context()

	require.NoError(t, s.Set(ctx, "brick/f1", "trusted.gfid", []byte{9}))

	abs, err := filepath.Abs("brick/f1")
	require.NoError(t, err)

	got, err := s.Get(ctx, abs, "trusted.gfid")
	require.NoError(t, err)
	assert.Equal(t, []byte{9}, got)
}

func TestStore_NamesSharingPrefix(t *testing.T) {
	s := newStore(t, badger.Config{InMemory: true})
	ctx := t.Context()

	require.NoError(t, s.Set(ctx, "/b/f", "trusted.gfid", []byte{1}))
	require.NoError(t, s.Set(ctx, "/b/f2", "trusted.gfid", []byte{2}))

	names, err := s.List(ctx, "/b/f")
	require.NoError(t, err)
	assert.Equal(t, []string{"trusted.gfid"}, names)
}

func TestNew_ValueLogFileSize(t *testing.T) {
	s := newStore(t, badger.Config{Dir: filepath.Join(t.TempDir(), "attrs.db"), ValueLogFileSize: 1 << 20})
	require.NoError(t, s.Set(t.Context(), "/b/f", "trusted.gfid", []byte{1}))

	_, err := badger.New(badger.Config{Dir: filepath.Join(t.TempDir(), "attrs.db"), ValueLogFileSize: 1 << 10})
	assert.Error(t, err)
}

func TestNew_RequiresDir(t *testing.T) {
	_, err := badger.New(badger.Config{})
	assert.True(t, xerrors.IsCode(err, xerrors.ErrInvalidArgument))
}
