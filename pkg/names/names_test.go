package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "trusted.gfid", GFIDName())
	assert.Equal(t, "trusted.gfid", GFID)
	assert.Equal(t, "trusted.glusterfs.volume-id", VolumeIDName())
	assert.Equal(t, "trusted.glusterfs.volume-id", VolumeID)
	assert.Equal(t, "trusted.glusterfs.V.xtime", XtimeName("V"))
	assert.Equal(t, "trusted.glusterfs.M.S.stime", StimeName("M", "S"))
}

func TestXtimeName_UUID(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"trusted.glusterfs.0a118af0-3c20-4bdd-aded-694a17af6b5a.xtime",
		XtimeName("0a118af0-3c20-4bdd-aded-694a17af6b5a"))
}

// The stime accessor of older tooling routed the full stime name through the
// xtime builder. The documented name and the legacy one differ; both are
// pinned here so a change to either is deliberate.
func TestStimeName_DocumentedVersusLegacy(t *testing.T) {
	t.Parallel()

	documented := StimeName("M", "S")
	legacy := LegacyStimeName("M", "S")

	assert.Equal(t, "trusted.glusterfs.M.S.stime", documented)
	assert.Equal(t, "trusted.glusterfs.trusted.glusterfs.M.S.stime.xtime", legacy)
	assert.NotEqual(t, documented, legacy)
}

func TestNoValidation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "trusted.glusterfs..xtime", XtimeName(""))
	assert.Equal(t, "trusted.glusterfs.a.b/c.xtime", XtimeName("a.b/c"))
	assert.Equal(t, "trusted.glusterfs. . .stime", StimeName(" ", " "))
}

func TestBuilder_Namespace(t *testing.T) {
	t.Parallel()

	b := NewBuilder("user")
	assert.Equal(t, "user.gfid", b.GFIDName())
	assert.Equal(t, "user.glusterfs.volume-id", b.VolumeIDName())
	assert.Equal(t, "user.glusterfs.V.xtime", b.XtimeName("V"))
	assert.Equal(t, "user.glusterfs.M.S.stime", b.StimeName("M", "S"))

	var zero Builder
	assert.Equal(t, "trusted.gfid", zero.GFIDName())
	assert.Equal(t, Default.XtimeName("V"), NewBuilder("").XtimeName("V"))
}

func TestBuilder_IsGeoRep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"trusted.gfid", true},
		{"trusted.glusterfs.volume-id", true},
		{"trusted.glusterfs.V.xtime", true},
		{"trusted.glusterfs.dht", true},
		{"trusted.glusterfsx", false},
		{"trusted.afr.dirty", false},
		{"user.gfid", false},
		{"security.selinux", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Default.IsGeoRep(tt.name), tt.name)
	}
}
