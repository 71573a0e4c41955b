package georep

import (
	"context"

	"github.com/gluster/glusterxattr/pkg/store/osxattr"
	"github.com/gluster/glusterxattr/pkg/xtime"
)

// Default is the accessor behind the package-level functions: the host
// extended attribute facility with the trusted namespace.
var Default = New(osxattr.New())

// GetGFID returns the GFID of path using Default.
func GetGFID(path string) (string, error) {
	return Default.GetGFID(context.Background(), path)
}

// SetGFID sets the GFID of path using Default.
func SetGFID(path, id string) error {
	return Default.SetGFID(context.Background(), path, id)
}

// GetVolumeID returns the volume-id of path using Default.
func GetVolumeID(path string) (string, error) {
	return Default.GetVolumeID(context.Background(), path)
}

// SetVolumeID sets the volume-id of path using Default.
func SetVolumeID(path, id string) error {
	return Default.SetVolumeID(context.Background(), path, id)
}

// GetXtime returns the xtime of volumeID on path using Default.
func GetXtime(path, volumeID string) (xtime.Xtime, error) {
	return Default.GetXtime(context.Background(), path, volumeID)
}

// SetXtime sets the xtime of volumeID on path using Default.
func SetXtime(path, volumeID string, sec, usec uint32) error {
	return Default.SetXtime(context.Background(), path, volumeID, sec, usec)
}

// GetStime returns the stime of a session on path using Default.
func GetStime(path, masterID, slaveID string) (xtime.Xtime, error) {
	return Default.GetStime(context.Background(), path, masterID, slaveID)
}

// SetStime sets the stime of a session on path using Default.
func SetStime(path, masterID, slaveID string, sec, usec uint32) error {
	return Default.SetStime(context.Background(), path, masterID, slaveID, sec, usec)
}
