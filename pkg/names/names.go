// Package names builds the extended attribute names used by geo-replication.
//
// Name layout (for the default "trusted" namespace):
//
//	trusted.gfid                                   file identity (16 bytes)
//	trusted.glusterfs.volume-id                    brick volume identity (16 bytes)
//	trusted.glusterfs.<volume-id>.xtime            change marker (8 bytes)
//	trusted.glusterfs.<master-id>.<slave-id>.stime sync marker (8 bytes)
//
// Identifier strings are concatenated as given: no validation or escaping is
// performed, so malformed identifiers produce names that simply do not exist.
package names

import "strings"

const (
	// Namespace is the default attribute namespace. trusted.* attributes
	// require CAP_SYS_ADMIN on Linux.
	Namespace = "trusted"

	// GFID is the file identity attribute in the default namespace.
	GFID = Namespace + "." + gfidSuffix

	// VolumeID is the brick volume identity attribute in the default namespace.
	VolumeID = Prefix + "." + volumeIDSuffix

	// Prefix is the xtime/stime prefix in the default namespace.
	Prefix = Namespace + "." + glusterfs

	glusterfs      = "glusterfs"
	gfidSuffix     = "gfid"
	volumeIDSuffix = "volume-id"
	xtimeSuffix    = "xtime"
	stimeSuffix    = "stime"
)

// Builder builds attribute names under a namespace.
// The zero value uses Namespace.
type Builder struct {
	Namespace string
}

// Default is the Builder for the "trusted" namespace.
var Default = Builder{Namespace: Namespace}

// NewBuilder returns a Builder for ns. An empty ns selects Namespace.
func NewBuilder(ns string) Builder {
	return Builder{Namespace: ns}
}

func (b Builder) ns() string {
	if b.Namespace == "" {
		return Namespace
	}
	return b.Namespace
}

func (b Builder) prefix() string {
	return b.ns() + "." + glusterfs
}

// GFIDName returns "<ns>.gfid".
func (b Builder) GFIDName() string {
	return b.ns() + "." + gfidSuffix
}

// VolumeIDName returns "<ns>.glusterfs.volume-id".
func (b Builder) VolumeIDName() string {
	return b.prefix() + "." + volumeIDSuffix
}

// XtimeName returns "<ns>.glusterfs.<volumeID>.xtime".
func (b Builder) XtimeName(volumeID string) string {
	return b.prefix() + "." + volumeID + "." + xtimeSuffix
}

// StimeName returns "<ns>.glusterfs.<masterID>.<slaveID>.stime".
func (b Builder) StimeName(masterID, slaveID string) string {
	return b.prefix() + "." + masterID + "." + slaveID + "." + stimeSuffix
}

// LegacyStimeName returns the name older tooling wrote stime under: the stime
// name passed through XtimeName as if it were a volume-id, giving
// "<ns>.glusterfs.<ns>.glusterfs.<masterID>.<slaveID>.stime.xtime".
func (b Builder) LegacyStimeName(masterID, slaveID string) string {
	return b.XtimeName(b.StimeName(masterID, slaveID))
}

// IsGeoRep reports whether name is the gfid attribute or lives under
// "<ns>.glusterfs.".
func (b Builder) IsGeoRep(name string) bool {
	return name == b.GFIDName() || strings.HasPrefix(name, b.prefix()+".")
}

// GFIDName returns the default-namespace gfid attribute name.
func GFIDName() string { return Default.GFIDName() }

// VolumeIDName returns the default-namespace volume-id attribute name.
func VolumeIDName() string { return Default.VolumeIDName() }

// XtimeName returns the default-namespace xtime attribute name for volumeID.
func XtimeName(volumeID string) string { return Default.XtimeName(volumeID) }

// StimeName returns the default-namespace stime attribute name.
func StimeName(masterID, slaveID string) string { return Default.StimeName(masterID, slaveID) }

// LegacyStimeName returns the default-namespace legacy stime attribute name.
func LegacyStimeName(masterID, slaveID string) string {
	return Default.LegacyStimeName(masterID, slaveID)
}
