package commands

import (
	"github.com/gluster/glusterxattr/internal/telemetry"
	"github.com/gluster/glusterxattr/pkg/gfid"
	"github.com/spf13/cobra"
)

func newVolumeIDCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "volume-id",
		Short: "Read or write the volume-id of a brick root",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <path>",
		Short: "Print the volume-id recorded on a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := a.georep()
			if err != nil {
				return err
			}

			id, err := acc.GetVolumeID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			annotate(cmd, telemetry.VolumeID(id))
			return a.printer.Print(identifierResult{Path: args[0], Name: acc.Names().VolumeIDName(), Value: id})
		},
	})

	var force bool
	setCmd := &cobra.Command{
		Use:   "set <path> <uuid>",
		Short: "Record a volume-id on a path",
		Long: `Record a volume-id on a path.

Replacing a different volume-id stops the brick from starting under its old
volume and asks for confirmation unless --force is given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			canonical, err := gfid.Canonical(args[1])
			if err != nil {
				return err
			}
			annotate(cmd, telemetry.VolumeID(canonical))

			acc, err := a.georep()
			if err != nil {
				return err
			}
			ok, err := confirmReplace(cmd, acc.GetVolumeID, "volume-id", args[0], canonical, force)
			if err != nil || !ok {
				return err
			}
			if err := acc.SetVolumeID(cmd.Context(), args[0], canonical); err != nil {
				return err
			}

			return a.report(identifierResult{Path: args[0], Name: acc.Names().VolumeIDName(), Value: canonical},
				"volume-id of %s set to %s", args[0], canonical)
		},
	}
	setCmd.Flags().BoolVarP(&force, "force", "f", false, "Replace an existing volume-id without confirmation")
	cmd.AddCommand(setCmd)

	return cmd
}
