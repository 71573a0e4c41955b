package commands

import (
	"strconv"
	"time"

	"github.com/gluster/glusterxattr/internal/cli/output"
	"github.com/gluster/glusterxattr/pkg/georep"
	"github.com/gluster/glusterxattr/pkg/xtime"
)

// identifierResult is a GFID or volume-id read from or written to a path.
type identifierResult struct {
	Path  string `json:"path" yaml:"path"`
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

func (r identifierResult) fields() output.Fields {
	var f output.Fields
	f.Add("Path", r.Path)
	f.Add("Attribute", r.Name)
	f.Add("Value", r.Value)
	return f
}

func (r identifierResult) Headers() []string { return r.fields().Headers() }
func (r identifierResult) Rows() [][]string  { return r.fields().Rows() }

// timestampResult is an xtime or stime marker.
type timestampResult struct {
	Path string `json:"path" yaml:"path"`
	Name string `json:"name" yaml:"name"`
	Sec  uint32 `json:"sec" yaml:"sec"`
	Usec uint32 `json:"usec" yaml:"usec"`

	// Time is the marker as a wall-clock time, for display only
	Time string `json:"time" yaml:"time"`
}

func newTimestampResult(path, name string, x xtime.Xtime) timestampResult {
	return timestampResult{
		Path: path,
		Name: name,
		Sec:  x.Sec,
		Usec: x.Usec,
		Time: x.Time().UTC().Format(time.RFC3339Nano),
	}
}

func (r timestampResult) fields() output.Fields {
	var f output.Fields
	f.Add("Path", r.Path)
	f.Add("Attribute", r.Name)
	f.Add("Seconds", strconv.FormatUint(uint64(r.Sec), 10))
	f.Add("Microseconds", strconv.FormatUint(uint64(r.Usec), 10))
	f.Add("Time", r.Time)
	return f
}

func (r timestampResult) Headers() []string { return r.fields().Headers() }
func (r timestampResult) Rows() [][]string  { return r.fields().Rows() }

// snapshotResult renders georep.Snapshot.
type snapshotResult struct {
	georep.Snapshot `yaml:",inline"`
}

func (r snapshotResult) fields() output.Fields {
	var f output.Fields
	f.Add("Path", r.Path)
	f.Add("GFID", r.GFID)
	f.Add("Volume ID", r.VolumeID)
	if r.Xtime != nil {
		f.Add("Xtime Volume", r.XtimeVolume)
		f.Add("Xtime", r.Xtime.String())
	} else {
		f.Add("Xtime", "")
	}
	return f
}

func (r snapshotResult) Headers() []string { return r.fields().Headers() }
func (r snapshotResult) Rows() [][]string  { return r.fields().Rows() }

// dumpResult renders the entries of georep.Accessor.Dump.
type dumpResult []georep.Entry

func (r dumpResult) Headers() []string {
	return []string{"Name", "Kind", "Value", "Raw"}
}

func (r dumpResult) Rows() [][]string {
	rows := make([][]string, len(r))
	for i, e := range r {
		value := e.Value
		if value == "" {
			value = "-"
		}
		rows[i] = []string{e.Name, string(e.Kind), value, e.Raw}
	}
	return rows
}
