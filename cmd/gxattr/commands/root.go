// Package commands implements the gxattr command line.
package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gluster/glusterxattr/internal/cli/output"
	"github.com/gluster/glusterxattr/internal/logger"
	"github.com/gluster/glusterxattr/internal/telemetry"
	"github.com/gluster/glusterxattr/pkg/config"
	"github.com/gluster/glusterxattr/pkg/georep"
	"github.com/gluster/glusterxattr/pkg/metrics"
	"github.com/gluster/glusterxattr/pkg/store"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// skipSetup marks commands that manage the configuration file themselves
// and must run even when it is invalid.
const skipSetup = "gxattr/skip-setup"

// app carries per-invocation state shared by all commands.
type app struct {
	// Global flags
	configPath  string
	backend     string
	namespace   string
	legacyStime bool
	format      string
	noColor     bool
	logLevel    string

	cfg      *config.Config
	printer  *output.Printer
	accessor *georep.Accessor
	closer   func() error

	span     trace.Span
	shutdown func(context.Context) error
}

// Execute builds the command tree and runs it against os.Args.
func Execute() error {
	a := &app{}
	err := newRootCmd(a).Execute()
	return a.close(err)
}

// newRootCmd builds the command tree around a.
func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gxattr",
		Short: "Inspect and edit GlusterFS geo-replication extended attributes",
		Long: `gxattr reads and writes the extended attributes GlusterFS geo-replication
keeps on brick files: the file GFID, the brick volume-id, per-volume xtime
markers and per-session stime markers.

Attributes live in the trusted namespace by default, which requires
CAP_SYS_ADMIN. Use --namespace user to work on unprivileged test trees.

Use "gxattr [command] --help" for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/glusterxattr/config.yaml)")
	flags.StringVar(&a.backend, "store", "", "Attribute store backend (xattr|badger|memory)")
	flags.StringVar(&a.namespace, "namespace", "", "Attribute namespace (trusted|user)")
	flags.BoolVar(&a.legacyStime, "legacy-stime", false, "Use the stime attribute name written by older tooling")
	flags.StringVarP(&a.format, "output", "o", "table", "Output format (table|json|yaml)")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level (DEBUG|INFO|WARN|ERROR)")

	rootCmd.AddCommand(
		newGFIDCmd(a),
		newVolumeIDCmd(a),
		newXtimeCmd(a),
		newStimeCmd(a),
		newShowCmd(a),
		newDumpCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	return rootCmd
}

// setup prepares the printer and, unless the command opts out, loads
// configuration and starts logging, tracing and metrics.
func (a *app) setup(cmd *cobra.Command) error {
	format, err := output.ParseFormat(a.format)
	if err != nil {
		return err
	}
	a.printer = output.NewPrinter(cmd.OutOrStdout(), format, a.colorEnabled(cmd))

	if _, ok := cmd.Annotations[skipSetup]; ok {
		return nil
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := a.applyFlags(cmd, cfg); err != nil {
		return err
	}
	a.cfg = cfg

	if err := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}); err != nil {
		return err
	}

	tc := telemetry.DefaultConfig()
	tc.Enabled = cfg.Telemetry.Enabled
	tc.ServiceVersion = Version
	tc.Endpoint = cfg.Telemetry.Endpoint
	tc.Insecure = cfg.Telemetry.Insecure
	tc.SampleRate = cfg.Telemetry.SampleRate
	shutdown, err := telemetry.Init(cmd.Context(), tc)
	if err != nil {
		return err
	}
	a.shutdown = shutdown

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
	}

	command := strings.TrimPrefix(cmd.CommandPath(), cmd.Root().Name()+" ")
	ctx, span := telemetry.StartCommandSpan(cmd.Context(), command,
		telemetry.StoreType(cfg.Store.Backend),
		telemetry.Namespace(cfg.Attributes.Namespace))
	a.span = span

	lc := logger.NewLogContext(command).
		WithStore(cfg.Store.Backend, cfg.Attributes.Namespace).
		WithTrace(telemetry.TraceID(ctx), telemetry.SpanID(ctx))
	cmd.SetContext(logger.WithContext(ctx, lc))

	logger.DebugCtx(cmd.Context(), "command started", logger.KeyConfig, a.configPath)
	return nil
}

// applyFlags overrides configuration with explicitly set global flags.
func (a *app) applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.Store.Backend = strings.ToLower(a.backend)
	}
	if flags.Changed("namespace") {
		cfg.Attributes.Namespace = a.namespace
	}
	if flags.Changed("legacy-stime") {
		cfg.Attributes.LegacyStime = a.legacyStime
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = strings.ToUpper(a.logLevel)
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

// colorEnabled reports whether command output goes to a color terminal.
func (a *app) colorEnabled(cmd *cobra.Command) bool {
	if a.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && logger.IsTerminal(f.Fd())
}

// georep returns the accessor, opening the configured store on first use.
func (a *app) georep() (*georep.Accessor, error) {
	if a.accessor != nil {
		return a.accessor, nil
	}

	s, closer, err := openStore(a.cfg, metrics.NewStoreMetrics())
	if err != nil {
		return nil, err
	}
	a.closer = closer
	a.accessor = newAccessor(s, a.cfg)
	return a.accessor, nil
}

func newAccessor(s store.AttributeStore, cfg *config.Config) *georep.Accessor {
	return georep.New(s,
		georep.WithNamespace(cfg.Attributes.Namespace),
		georep.WithLegacyStime(cfg.Attributes.LegacyStime))
}

// close releases everything setup acquired and returns runErr, or the first
// cleanup error if the command itself succeeded.
func (a *app) close(runErr error) error {
	errs := []error{runErr}

	if a.span != nil {
		if runErr != nil {
			a.span.RecordError(runErr)
		}
		a.span.End()
	}
	if a.closer != nil {
		errs = append(errs, a.closer())
	}
	if a.cfg != nil && a.cfg.Metrics.Enabled {
		errs = append(errs, metrics.WriteTextfile(a.cfg.Metrics.Textfile))
	}
	if a.shutdown != nil {
		timeout := 5 * time.Second
		if a.cfg != nil {
			timeout = a.cfg.Telemetry.ShutdownTimeout
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		errs = append(errs, a.shutdown(ctx))
		cancel()
	}

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
