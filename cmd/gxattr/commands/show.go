package commands

import (
	"github.com/gluster/glusterxattr/internal/telemetry"
	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	var volumeID string

	cmd := &cobra.Command{
		Use:   "show <path>",
		Short: "Show the GFID, volume-id and xtime of a path",
		Long: `Show the GFID, volume-id and xtime of a path.

The xtime is read for --volume-id, or for the volume-id recorded on the path
itself when the flag is omitted (brick roots carry one). Attributes that are
not set are shown as "-".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := a.georep()
			if err != nil {
				return err
			}

			snap, err := acc.Snapshot(cmd.Context(), args[0], volumeID)
			if err != nil {
				return err
			}
			if snap.XtimeVolume != "" {
				annotate(cmd, telemetry.VolumeID(snap.XtimeVolume))
			}
			return a.printer.Print(snapshotResult{Snapshot: *snap})
		},
	}
	cmd.Flags().StringVar(&volumeID, "volume-id", "", "Volume whose xtime to show")

	return cmd
}

func newDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <path>",
		Short: "List every geo-replication attribute on a path",
		Long: `List every attribute on a path that is the GFID or lives under
<ns>.glusterfs., decoding identifiers and timestamps. Values that cannot be
decoded are shown by their raw bytes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := a.georep()
			if err != nil {
				return err
			}

			entries, err := acc.Dump(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printer.Print(dumpResult(entries))
		},
	}
}
