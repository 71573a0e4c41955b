package georep

import (
	"context"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/gluster/glusterxattr/pkg/gfid"
	xerrors "github.com/gluster/glusterxattr/pkg/xattr/errors"
	"github.com/gluster/glusterxattr/pkg/xtime"
)

// Snapshot is the geo-replication state of one path.
// Absent attributes are left empty.
type Snapshot struct {
	Path     string       `json:"path" yaml:"path"`
	GFID     string       `json:"gfid,omitempty" yaml:"gfid,omitempty"`
	VolumeID string       `json:"volume_id,omitempty" yaml:"volume_id,omitempty"`
	Xtime    *xtime.Xtime `json:"xtime,omitempty" yaml:"xtime,omitempty"`

	// XtimeVolume is the volume the xtime was read for.
	XtimeVolume string `json:"xtime_volume,omitempty" yaml:"xtime_volume,omitempty"`
}

// Snapshot collects the GFID, volume-id and xtime of path. The xtime is read
// for volumeID, or for the path's own volume-id when volumeID is empty.
//
// Missing attributes are not errors. A missing path, a store failure or a
// malformed identifier is.
func (a *Accessor) Snapshot(ctx context.Context, path, volumeID string) (*Snapshot, error) {
	if _, err := a.store.List(ctx, path); err != nil {
		return nil, err
	}

	snap := &Snapshot{Path: path}

	id, err := a.GetGFID(ctx, path)
	if err := absentOK(err); err != nil {
		return nil, err
	}
	snap.GFID = id

	vol, err := a.GetVolumeID(ctx, path)
	if err := absentOK(err); err != nil {
		return nil, err
	}
	snap.VolumeID = vol

	if volumeID == "" {
		volumeID = vol
	}
	if volumeID == "" {
		return snap, nil
	}

	x, err := a.GetXtime(ctx, path, volumeID)
	switch {
	case err == nil:
		snap.XtimeVolume = volumeID
		snap.Xtime = &x
	case !xerrors.IsCode(err, xerrors.ErrAttributeUnavailable):
		return nil, err
	}

	return snap, nil
}

func absentOK(err error) error {
	if xerrors.IsCode(err, xerrors.ErrAttributeUnavailable) {
		return nil
	}
	return err
}

// Kind classifies a geo-replication attribute.
type Kind string

const (
	KindGFID     Kind = "gfid"
	KindVolumeID Kind = "volume-id"
	KindXtime    Kind = "xtime"
	KindStime    Kind = "stime"
	KindOther    Kind = "other"
)

// Entry is one decoded attribute from Dump.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Kind  Kind   `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"`
	Raw   string `json:"raw" yaml:"raw"`
}

// Dump lists every geo-replication attribute on path in name order and
// decodes those it recognises. Values that fail to decode are reported by
// their raw bytes rather than failing the dump.
func (a *Accessor) Dump(ctx context.Context, path string) ([]Entry, error) {
	all, err := a.store.List(ctx, path)
	if err != nil {
		return nil, err
	}
	sort.Strings(all)

	entries := make([]Entry, 0, len(all))
	for _, name := range all {
		if !a.names.IsGeoRep(name) {
			continue
		}

		raw, err := a.store.Get(ctx, path, name)
		if xerrors.IsCode(err, xerrors.ErrAttributeUnavailable) {
			// Removed between List and Get
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("dump %s: %w", name, err)
		}

		entries = append(entries, a.decodeEntry(name, raw))
	}

	return entries, nil
}

// Classify returns the kind of attribute name under this accessor's
// namespace.
func (a *Accessor) Classify(name string) Kind {
	switch {
	case name == a.names.GFIDName():
		return KindGFID
	case name == a.names.VolumeIDName():
		return KindVolumeID
	case !a.names.IsGeoRep(name):
		return KindOther
	case strings.HasSuffix(name, ".stime"), strings.HasSuffix(name, ".stime.xtime"):
		return KindStime
	case strings.HasSuffix(name, ".xtime"):
		return KindXtime
	default:
		return KindOther
	}
}

func (a *Accessor) decodeEntry(name string, raw []byte) Entry {
	e := Entry{
		Name: name,
		Kind: a.Classify(name),
		Raw:  hex.EncodeToString(raw),
	}

	switch e.Kind {
	case KindGFID, KindVolumeID:
		if id, err := gfid.Decode(raw); err == nil {
			e.Value = id
		}
	case KindXtime, KindStime:
		e.Value = xtime.Decode(raw).String()
	}
	return e
}
