package memory_test

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/gluster/glusterxattr/pkg/store/memory"
	"github.com/gluster/glusterxattr/pkg/store/storetest"
	xerrors "github.com/gluster/glusterxattr/pkg/xattr/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConformance(t *testing.T) {
	storetest.RunConformanceSuite(t, func(t *testing.T) storetest.Fixture {
		s := memory.New(memory.WithStrictPaths())
		return storetest.Fixture{
			Store: s,
			NewPath: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "testfile")
				s.Touch(path)
				return path
			},
			StrictPaths: true,
		}
	})
}

func TestConformance_ImplicitPaths(t *testing.T) {
	storetest.RunConformanceSuite(t, func(t *testing.T) storetest.Fixture {
		return storetest.Fixture{
			Store: memory.New(),
			NewPath: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "testfile")
			},
		}
	})
}

func TestStore_ImplicitPathCreation(t *testing.T) {
	t.Parallel()

	s := memory.New()
	ctx := t.Context()

	require.NoError(t, s.Set(ctx, "/bricks/b1/f1", "trusted.gfid", []byte{1}))

	names, err := s.List(ctx, "/bricks/b1/f1")
	require.NoError(t, err)
	assert.Equal(t, []string{"trusted.gfid"}, names)
}

func TestStore_EmptyName(t *testing.T) {
	t.Parallel()

	err := memory.New().Set(t.Context(), "/p", "", []byte{1})
	assert.True(t, xerrors.IsCode(err, xerrors.ErrInvalidArgument))
}

func TestStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := memory.New()
	ctx := t.Context()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.Set(ctx, "/p", "user.n", []byte{byte(i), byte(j)})
				_, _ = s.Get(ctx, "/p", "user.n")
				_, _ = s.List(ctx, "/p")
			}
		}(i)
	}
	wg.Wait()

	got, err := s.Get(ctx, "/p", "user.n")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
