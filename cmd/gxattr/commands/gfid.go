package commands

import (
	"fmt"

	"github.com/gluster/glusterxattr/internal/telemetry"
	"github.com/gluster/glusterxattr/pkg/gfid"
	"github.com/spf13/cobra"
)

func newGFIDCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gfid",
		Short: "Read or write the GFID of a file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <path>",
		Short: "Print the GFID of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := a.georep()
			if err != nil {
				return err
			}

			id, err := acc.GetGFID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			annotate(cmd, telemetry.GFID(id))
			return a.printer.Print(identifierResult{Path: args[0], Name: acc.Names().GFIDName(), Value: id})
		},
	})

	var (
		generate bool
		force    bool
	)
	setCmd := &cobra.Command{
		Use:   "set <path> [uuid]",
		Short: "Set the GFID of a file",
		Long: `Set the GFID of a file.

Examples:
  # Set an explicit GFID
  gxattr gfid set /bricks/b1/dir/file bb74c663-2552-41aa-a0ae-d4d94d9dd187

  # Assign a fresh random GFID
  gxattr gfid set /bricks/b1/dir/file --new

Replacing a different GFID detaches the file from its .glusterfs hard link
and asks for confirmation unless --force is given.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := identifierArg(args, generate)
			if err != nil {
				return err
			}
			canonical, err := gfid.Canonical(id)
			if err != nil {
				return err
			}
			annotate(cmd, telemetry.GFID(canonical))

			acc, err := a.georep()
			if err != nil {
				return err
			}
			ok, err := confirmReplace(cmd, acc.GetGFID, "GFID", args[0], canonical, force)
			if err != nil || !ok {
				return err
			}
			if err := acc.SetGFID(cmd.Context(), args[0], canonical); err != nil {
				return err
			}

			return a.report(identifierResult{Path: args[0], Name: acc.Names().GFIDName(), Value: canonical},
				"GFID of %s set to %s", args[0], canonical)
		},
	}
	setCmd.Flags().BoolVar(&generate, "new", false, "Generate a random GFID")
	setCmd.Flags().BoolVarP(&force, "force", "f", false, "Replace an existing GFID without confirmation")
	cmd.AddCommand(setCmd)

	return cmd
}

// identifierArg returns the identifier argument, or a fresh one when
// generate is set.
func identifierArg(args []string, generate bool) (string, error) {
	switch {
	case generate && len(args) == 2:
		return "", fmt.Errorf("--new cannot be combined with an explicit identifier")
	case generate:
		return gfid.New(), nil
	case len(args) == 2:
		return args[1], nil
	default:
		return "", fmt.Errorf("expected an identifier or --new")
	}
}
