package commands

import (
	"fmt"

	"github.com/gluster/glusterxattr/internal/telemetry"
	"github.com/spf13/cobra"
)

func newStimeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stime",
		Short: "Read or write the stime marker of a geo-replication session",
		Long: `Read or write the stime marker of a master/slave geo-replication session.

The marker is named <ns>.glusterfs.<master>.<slave>.stime. With --legacy-stime
(or attributes.legacy_stime in the config file) the name written by older
tooling, <ns>.glusterfs.<ns>.glusterfs.<master>.<slave>.stime.xtime, is used
instead.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <path> <master-id> <slave-id>",
		Short: "Print the stime marker",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			annotate(cmd, telemetry.MasterID(args[1]), telemetry.SlaveID(args[2]))

			acc, err := a.georep()
			if err != nil {
				return err
			}

			x, err := acc.GetStime(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			return a.printer.Print(newTimestampResult(args[0], acc.StimeName(args[1], args[2]), x))
		},
	})

	var now bool
	setCmd := &cobra.Command{
		Use:   "set <path> <master-id> <slave-id> [<sec> <usec>]",
		Short: "Write the stime marker",
		Args:  cobra.RangeArgs(3, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			annotate(cmd, telemetry.MasterID(args[1]), telemetry.SlaveID(args[2]))

			x, err := parseTimestamp(args[3:], now)
			if err != nil {
				return err
			}

			acc, err := a.georep()
			if err != nil {
				return err
			}
			if err := acc.SetStime(cmd.Context(), args[0], args[1], args[2], x.Sec, x.Usec); err != nil {
				return err
			}

			name := acc.StimeName(args[1], args[2])
			return a.report(newTimestampResult(args[0], name, x), "%s on %s set to %s", name, args[0], x)
		},
	}
	setCmd.Flags().BoolVar(&now, "now", false, "Use the current time")
	cmd.AddCommand(setCmd)

	var force bool
	resetCmd := &cobra.Command{
		Use:   "reset <path> <master-id> <slave-id>",
		Short: "Remove the stime marker",
		Long: `Remove the stime marker of a session so geo-replication treats the path
as never synced and crawls it again. Asks for confirmation unless --force is
given.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			annotate(cmd, telemetry.MasterID(args[1]), telemetry.SlaveID(args[2]))

			acc, err := a.georep()
			if err != nil {
				return err
			}

			name := acc.StimeName(args[1], args[2])
			ok, err := confirm(cmd, fmt.Sprintf("Remove %s from %s? The session will re-sync it.", name, args[0]), force)
			if err != nil || !ok {
				return err
			}
			if err := acc.RemoveStime(cmd.Context(), args[0], args[1], args[2]); err != nil {
				return err
			}

			a.printer.Done("%s removed from %s", name, args[0])
			return nil
		},
	}
	resetCmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	cmd.AddCommand(resetCmd)

	return cmd
}
