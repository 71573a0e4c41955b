package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gluster/glusterxattr/internal/cli/output"
	"github.com/gluster/glusterxattr/pkg/config"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the gxattr configuration file",
	}

	cmd.AddCommand(
		newConfigInitCmd(a),
		newConfigValidateCmd(a),
		newConfigSchemaCmd(),
		newConfigShowCmd(a),
	)

	// Subcommands read the configuration themselves
	for _, sub := range cmd.Commands() {
		sub.Annotations = map[string]string{skipSetup: "true"}
	}

	return cmd
}

// configFile returns the --config path or the default location.
func (a *app) configFile() string {
	if a.configPath != "" {
		return a.configPath
	}
	return config.GetDefaultConfigPath()
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with default values",
		Long: `Write a configuration file with default values.

Examples:
  # Create $XDG_CONFIG_HOME/glusterxattr/config.yaml
  gxattr config init

  # Create a config for an unprivileged test tree
  gxattr config init --config ./gxattr.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configFile()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
			}

			if err := config.SaveConfig(config.GetDefaultConfig(), path); err != nil {
				return err
			}
			a.printer.Done("Configuration written to %s", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

func newConfigValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		Long: `Validate the gxattr configuration file.

Checks for syntax errors, missing required fields, and invalid values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.MustLoad(a.configPath)
			if err != nil {
				return err
			}

			var f output.Fields
			f.Add("Configuration file", a.configFile())
			f.Add("Validation", "OK")
			f.Add("Store backend", cfg.Store.Backend)
			f.Add("Namespace", cfg.Attributes.Namespace)
			f.Add("Legacy stime", fmt.Sprintf("%t", cfg.Attributes.LegacyStime))
			f.Add("Log level", cfg.Logging.Level)
			if err := a.printer.Print(f); err != nil {
				return err
			}

			if cfg.Attributes.Namespace == "trusted" && os.Geteuid() != 0 {
				a.printer.Warning("trusted attributes require root; set attributes.namespace to user for test trees")
			}
			return nil
		},
	}
}

func newConfigSchemaCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Generate JSON schema for configuration",
		Long: `Generate a JSON schema for the gxattr configuration file.

The schema can be used for IDE autocompletion and validation.

Examples:
  gxattr config schema
  gxattr config schema --file config.schema.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reflector := jsonschema.Reflector{
				AllowAdditionalProperties: false,
				DoNotReference:            true,
			}

			schema := reflector.Reflect(&config.Config{})
			schema.Version = "https://json-schema.org/draft/2020-12/schema"
			schema.Title = "gxattr Configuration"
			schema.Description = "Configuration schema for the gxattr geo-replication attribute tool"

			schemaJSON, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to generate schema: %w", err)
			}

			if file != "" {
				if err := os.WriteFile(file, schemaJSON, 0644); err != nil {
					return fmt.Errorf("failed to write schema file: %w", err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "JSON schema written to %s\n", file)
				return nil
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(schemaJSON))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Output file (default: stdout)")

	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after applying defaults, the config file and
GLUSTERXATTR_* environment variables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if err := a.applyFlags(cmd, cfg); err != nil {
				return err
			}
			return a.printer.Print(cfg)
		},
	}
}
