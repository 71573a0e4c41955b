package commands

import (
	"github.com/gluster/glusterxattr/internal/telemetry"
	"github.com/spf13/cobra"
)

func newXtimeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xtime",
		Short: "Read or write the xtime marker of a volume on a path",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <path> <volume-id>",
		Short: "Print the xtime marker",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			annotate(cmd, telemetry.VolumeID(args[1]))

			acc, err := a.georep()
			if err != nil {
				return err
			}

			x, err := acc.GetXtime(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return a.printer.Print(newTimestampResult(args[0], acc.Names().XtimeName(args[1]), x))
		},
	})

	var now bool
	setCmd := &cobra.Command{
		Use:   "set <path> <volume-id> [<sec> <usec>]",
		Short: "Write the xtime marker",
		Long: `Write the xtime marker of a volume on a path.

Examples:
  gxattr xtime set /bricks/b1/f 0a118af0-3c20-4bdd-aded-694a17af6b5a 1700000000 0
  gxattr xtime set /bricks/b1/f 0a118af0-3c20-4bdd-aded-694a17af6b5a --now`,
		Args: cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			annotate(cmd, telemetry.VolumeID(args[1]))

			x, err := parseTimestamp(args[2:], now)
			if err != nil {
				return err
			}

			acc, err := a.georep()
			if err != nil {
				return err
			}
			if err := acc.SetXtime(cmd.Context(), args[0], args[1], x.Sec, x.Usec); err != nil {
				return err
			}

			name := acc.Names().XtimeName(args[1])
			return a.report(newTimestampResult(args[0], name, x), "%s on %s set to %s", name, args[0], x)
		},
	}
	setCmd.Flags().BoolVar(&now, "now", false, "Use the current time")
	cmd.AddCommand(setCmd)

	return cmd
}
