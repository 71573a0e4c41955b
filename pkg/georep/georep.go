// Package georep reads and writes the extended attributes GlusterFS
// geo-replication keeps on brick files: the file GFID, the brick volume-id,
// per-volume xtime markers and per-session stime markers.
//
// An Accessor pairs an attribute store with a naming scheme. Getters read the
// raw value and decode it; setters encode and write. Every failure is
// returned as an error, never a panic, and nothing is retried.
package georep

import (
	"context"
	stderrors "errors"

	"github.com/gluster/glusterxattr/pkg/gfid"
	"github.com/gluster/glusterxattr/pkg/names"
	"github.com/gluster/glusterxattr/pkg/store"
	xerrors "github.com/gluster/glusterxattr/pkg/xattr/errors"
	"github.com/gluster/glusterxattr/pkg/xtime"
)

// Option configures an Accessor.
type Option func(*Accessor)

// WithNamespace sets the attribute namespace ("trusted" by default).
// Unprivileged tests and sidecar stores typically use "user".
func WithNamespace(ns string) Option {
	return func(a *Accessor) {
		a.names = names.NewBuilder(ns)
	}
}

// WithLegacyStime makes stime accessors use the name produced by older
// tooling, <ns>.glusterfs.<ns>.glusterfs.<master>.<slave>.stime.xtime,
// instead of <ns>.glusterfs.<master>.<slave>.stime.
func WithLegacyStime(legacy bool) Option {
	return func(a *Accessor) {
		a.legacyStime = legacy
	}
}

// Accessor provides typed access to geo-replication attributes.
// It is safe for concurrent use if its store is.
type Accessor struct {
	store       store.AttributeStore
	names       names.Builder
	legacyStime bool
}

// New creates an Accessor over s.
func New(s store.AttributeStore, opts ...Option) *Accessor {
	a := &Accessor{
		store: s,
		names: names.Default,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Names returns the naming scheme in use.
func (a *Accessor) Names() names.Builder {
	return a.names
}

// Store returns the underlying attribute store.
func (a *Accessor) Store() store.AttributeStore {
	return a.store
}

// StimeName returns the attribute name stime accessors use for the session.
func (a *Accessor) StimeName(masterID, slaveID string) string {
	if a.legacyStime {
		return a.names.LegacyStimeName(masterID, slaveID)
	}
	return a.names.StimeName(masterID, slaveID)
}

// ============================================================================
// GFID and volume-id
// ============================================================================

// GetGFID returns the GFID of path in canonical lowercase form.
func (a *Accessor) GetGFID(ctx context.Context, path string) (string, error) {
	return a.getIdentifier(ctx, path, a.names.GFIDName())
}

// SetGFID writes id as the GFID of path. id must be a hyphenated UUID.
func (a *Accessor) SetGFID(ctx context.Context, path, id string) error {
	return a.setIdentifier(ctx, path, a.names.GFIDName(), id)
}

// GetVolumeID returns the volume-id recorded on path, normally a brick root.
func (a *Accessor) GetVolumeID(ctx context.Context, path string) (string, error) {
	return a.getIdentifier(ctx, path, a.names.VolumeIDName())
}

// SetVolumeID writes id as the volume-id of path.
func (a *Accessor) SetVolumeID(ctx context.Context, path, id string) error {
	return a.setIdentifier(ctx, path, a.names.VolumeIDName(), id)
}

func (a *Accessor) getIdentifier(ctx context.Context, path, name string) (string, error) {
	raw, err := a.store.Get(ctx, path, name)
	if err != nil {
		return "", err
	}

	id, err := gfid.Decode(raw)
	if err != nil {
		return "", locate(err, path, name)
	}
	return id, nil
}

func (a *Accessor) setIdentifier(ctx context.Context, path, name, id string) error {
	raw, err := gfid.Encode(id)
	if err != nil {
		return locate(err, path, name)
	}
	return a.store.Set(ctx, path, name, raw)
}

// ============================================================================
// Xtime and stime
// ============================================================================

// GetXtime returns the xtime marker of volumeID on path. Truncated values
// decode with missing fields set to zero.
func (a *Accessor) GetXtime(ctx context.Context, path, volumeID string) (xtime.Xtime, error) {
	return a.getTimestamp(ctx, path, a.names.XtimeName(volumeID))
}

// SetXtime writes the xtime marker of volumeID on path.
func (a *Accessor) SetXtime(ctx context.Context, path, volumeID string, sec, usec uint32) error {
	return a.store.Set(ctx, path, a.names.XtimeName(volumeID), xtime.Encode(xtime.New(sec, usec)))
}

// GetStime returns the stime marker of the master/slave session on path.
func (a *Accessor) GetStime(ctx context.Context, path, masterID, slaveID string) (xtime.Xtime, error) {
	return a.getTimestamp(ctx, path, a.StimeName(masterID, slaveID))
}

// SetStime writes the stime marker of the master/slave session on path.
func (a *Accessor) SetStime(ctx context.Context, path, masterID, slaveID string, sec, usec uint32) error {
	return a.store.Set(ctx, path, a.StimeName(masterID, slaveID), xtime.Encode(xtime.New(sec, usec)))
}

// RemoveStime deletes the stime marker of the master/slave session on path.
// Geo-replication treats a missing stime as "never synced" and re-crawls.
func (a *Accessor) RemoveStime(ctx context.Context, path, masterID, slaveID string) error {
	return a.store.Remove(ctx, path, a.StimeName(masterID, slaveID))
}

func (a *Accessor) getTimestamp(ctx context.Context, path, name string) (xtime.Xtime, error) {
	raw, err := a.store.Get(ctx, path, name)
	if err != nil {
		return xtime.Xtime{}, err
	}
	return xtime.Decode(raw), nil
}

// locate fills in the path and attribute name of a codec error.
func locate(err error, path, name string) error {
	var attrErr *xerrors.AttrError
	if stderrors.As(err, &attrErr) {
		if attrErr.Path == "" {
			attrErr.Path = path
		}
		if attrErr.Name == "" {
			attrErr.Name = name
		}
	}
	return err
}
