package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gluster/glusterxattr/internal/cli/output"
	"github.com/gluster/glusterxattr/internal/cli/prompt"
	"github.com/gluster/glusterxattr/internal/telemetry"
	xerrors "github.com/gluster/glusterxattr/pkg/xattr/errors"
	"github.com/gluster/glusterxattr/pkg/xtime"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
)

// report prints result for JSON and YAML output, or a one-line confirmation
// for table output.
func (a *app) report(result any, format string, args ...any) error {
	if a.printer.Format() == output.FormatTable {
		a.printer.Done(format, args...)
		return nil
	}
	return a.printer.Print(result)
}

// annotate adds attributes to the command span.
func annotate(cmd *cobra.Command, attrs ...attribute.KeyValue) {
	telemetry.SetAttributes(cmd.Context(), attrs...)
}

// parseTimestamp reads a seconds/microseconds pair from args, or the current
// time when now is set.
func parseTimestamp(args []string, now bool) (xtime.Xtime, error) {
	if now {
		if len(args) != 0 {
			return xtime.Xtime{}, fmt.Errorf("--now cannot be combined with explicit seconds and microseconds")
		}
		return xtime.FromTime(time.Now()), nil
	}
	if len(args) != 2 {
		return xtime.Xtime{}, fmt.Errorf("expected <sec> <usec> or --now")
	}

	sec, err := parseUint32("sec", args[0])
	if err != nil {
		return xtime.Xtime{}, err
	}
	usec, err := parseUint32("usec", args[1])
	if err != nil {
		return xtime.Xtime{}, err
	}
	return xtime.New(sec, usec), nil
}

func parseUint32(field, s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an unsigned 32-bit integer", field, s)
	}
	return uint32(v), nil
}

// confirm asks before a destructive change unless force is set. It returns
// false, after printing "Aborted.", when the user declines.
func confirm(cmd *cobra.Command, label string, force bool) (bool, error) {
	confirmed, err := prompt.ConfirmWithForce(label, force)
	if err != nil {
		if prompt.IsAborted(err) {
			telemetry.AddEvent(cmd.Context(), "confirm.aborted")
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "\nAborted.")
			return false, nil
		}
		return false, err
	}
	if !confirmed {
		telemetry.AddEvent(cmd.Context(), "confirm.declined")
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
		return false, nil
	}
	telemetry.AddEvent(cmd.Context(), "confirm.accepted", attribute.Bool("confirm.forced", force))
	return true, nil
}

// confirmReplace asks before overwriting an identifier that differs from
// canonical. Absent values are written without asking.
func confirmReplace(cmd *cobra.Command, get func(context.Context, string) (string, error),
	kind, path, canonical string, force bool) (bool, error) {
	current, err := get(cmd.Context(), path)
	switch {
	case err == nil && current == canonical:
		return true, nil
	case err == nil:
		return confirm(cmd, fmt.Sprintf("Replace %s %s of %s with %s?", kind, current, path, canonical), force)
	case xerrors.IsMalformed(err):
		return confirm(cmd, fmt.Sprintf("Replace malformed %s of %s with %s?", kind, path, canonical), force)
	case xerrors.IsUnavailable(err):
		return true, nil
	default:
		return false, err
	}
}
