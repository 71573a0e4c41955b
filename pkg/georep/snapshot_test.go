package georep_test

import (
	"path/filepath"
	"testing"

	"github.com/gluster/glusterxattr/pkg/georep"
	xerrors "github.com/gluster/glusterxattr/pkg/xattr/errors"
	"github.com/gluster/glusterxattr/pkg/xtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_BrickRoot(t *testing.T) {
	t.Parallel()

	a, _, path := newMemory(t)
	ctx := t.Context()

	require.NoError(t, a.SetGFID(ctx, path, testGFID))
	require.NoError(t, a.SetVolumeID(ctx, path, testVolume))
	require.NoError(t, a.SetXtime(ctx, path, testVolume, 100, 2))

	snap, err := a.Snapshot(ctx, path, "")
	require.NoError(t, err)

	assert.Equal(t, path, snap.Path)
	assert.Equal(t, testGFID, snap.GFID)
	assert.Equal(t, testVolume, snap.VolumeID)
	assert.Equal(t, testVolume, snap.XtimeVolume)
	require.NotNil(t, snap.Xtime)
	assert.Equal(t, xtime.New(100, 2), *snap.Xtime)
}

func TestSnapshot_ExplicitVolume(t *testing.T) {
	t.Parallel()

	a, _, path := newMemory(t)
	ctx := t.Context()

	require.NoError(t, a.SetGFID(ctx, path, testGFID))
	require.NoError(t, a.SetXtime(ctx, path, "other", 5, 6))

	snap, err := a.Snapshot(ctx, path, "other")
	require.NoError(t, err)
	assert.Empty(t, snap.VolumeID)
	require.NotNil(t, snap.Xtime)
	assert.Equal(t, xtime.New(5, 6), *snap.Xtime)
}

func TestSnapshot_AbsentAttributes(t *testing.T) {
	t.Parallel()

	a, _, path := newMemory(t)

	snap, err := a.Snapshot(t.Context(), path, testVolume)
	require.NoError(t, err)
	assert.Empty(t, snap.GFID)
	assert.Empty(t, snap.VolumeID)
	assert.Nil(t, snap.Xtime)
	assert.Empty(t, snap.XtimeVolume)
}

func TestSnapshot_Errors(t *testing.T) {
	t.Parallel()

	a, s, path := newMemory(t)
	ctx := t.Context()

	_, err := a.Snapshot(ctx, filepath.Join(t.TempDir(), "missing"), "")
	assert.True(t, xerrors.IsCode(err, xerrors.ErrAttributeUnavailable), "got %v", err)

	require.NoError(t, s.Set(ctx, path, "trusted.gfid", []byte("short")))
	_, err = a.Snapshot(ctx, path, "")
	assert.True(t, xerrors.IsMalformed(err), "got %v", err)
}

func TestDump(t *testing.T) {
	t.Parallel()

	a, s, path := newMemory(t)
	ctx := t.Context()

	require.NoError(t, a.SetGFID(ctx, path, testGFID))
	require.NoError(t, a.SetVolumeID(ctx, path, testVolume))
	require.NoError(t, a.SetXtime(ctx, path, "V", 100, 2))
	require.NoError(t, a.SetStime(ctx, path, "M", "S", 7, 8))
	require.NoError(t, georep.New(s, georep.WithLegacyStime(true)).SetStime(ctx, path, "M", "S", 9, 10))
	require.NoError(t, s.Set(ctx, path, "trusted.glusterfs.dht", []byte{0xde, 0xad}))
	require.NoError(t, s.Set(ctx, path, "trusted.afr.dirty", []byte{0}))
	require.NoError(t, s.Set(ctx, path, "user.comment", []byte("x")))

	entries, err := a.Dump(ctx, path)
	require.NoError(t, err)

	got := map[string]georep.Entry{}
	for _, e := range entries {
		got[e.Name] = e
	}
	require.Len(t, got, 6)

	assert.Equal(t, georep.Entry{Name: "trusted.gfid", Kind: georep.KindGFID, Value: testGFID,
		Raw: "bb74c663255241aaa0aed4d94d9dd187"}, got["trusted.gfid"])
	assert.Equal(t, georep.KindVolumeID, got["trusted.glusterfs.volume-id"].Kind)
	assert.Equal(t, testVolume, got["trusted.glusterfs.volume-id"].Value)
	assert.Equal(t, georep.Entry{Name: "trusted.glusterfs.V.xtime", Kind: georep.KindXtime, Value: "100.000002",
		Raw: "0000006400000002"}, got["trusted.glusterfs.V.xtime"])
	assert.Equal(t, georep.KindStime, got["trusted.glusterfs.M.S.stime"].Kind)
	assert.Equal(t, "7.000008", got["trusted.glusterfs.M.S.stime"].Value)
	assert.Equal(t, georep.KindStime, got["trusted.glusterfs.trusted.glusterfs.M.S.stime.xtime"].Kind)
	assert.Equal(t, georep.Entry{Name: "trusted.glusterfs.dht", Kind: georep.KindOther, Raw: "dead"},
		got["trusted.glusterfs.dht"])

	// Sorted by name
	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i-1].Name, entries[i].Name)
	}
}

func TestDump_MalformedIdentifierShowsRaw(t *testing.T) {
	t.Parallel()

	a, s, path := newMemory(t)
	ctx := t.Context()

	require.NoError(t, s.Set(ctx, path, "trusted.gfid", []byte{1, 2}))

	entries, err := a.Dump(ctx, path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Value)
	assert.Equal(t, "0102", entries[0].Raw)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	a := georep.New(nil)
	tests := []struct {
		name string
		want georep.Kind
	}{
		{"trusted.gfid", georep.KindGFID},
		{"trusted.glusterfs.volume-id", georep.KindVolumeID},
		{"trusted.glusterfs.V.xtime", georep.KindXtime},
		{"trusted.glusterfs.M.S.stime", georep.KindStime},
		{"trusted.glusterfs.trusted.glusterfs.M.S.stime.xtime", georep.KindStime},
		{"trusted.glusterfs.dht", georep.KindOther},
		{"user.glusterfs.V.xtime", georep.KindOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, a.Classify(tt.name), tt.name)
	}
}
