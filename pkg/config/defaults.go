package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/gluster/glusterxattr/internal/bytesize"
)

// ApplyDefaults sets default values for any unspecified configuration fields.
//
// Default Strategy:
//   - Zero values (0, "", false, nil) are replaced with defaults
//   - Explicit values are preserved
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyStoreDefaults(&cfg.Store)
	applyAttributesDefaults(&cfg.Attributes)
}

// applyLoggingDefaults sets logging defaults and normalizes values.
// Logs go to stderr at WARN so they stay out of command output.
func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "WARN"
	}
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	cfg.Format = strings.ToLower(cfg.Format)

	if cfg.Output == "" {
		cfg.Output = "stderr"
	}
}

// applyTelemetryDefaults sets OpenTelemetry defaults.
func applyTelemetryDefaults(cfg *TelemetryConfig) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "localhost:4317"
	}
	if cfg.SampleRate == 0 {
		cfg.SampleRate = 1.0
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}
}

// applyStoreDefaults sets store backend defaults.
func applyStoreDefaults(cfg *StoreConfig) {
	if cfg.Backend == "" {
		cfg.Backend = "xattr"
	}
	cfg.Backend = strings.ToLower(cfg.Backend)

	if cfg.Badger.Path == "" {
		cfg.Badger.Path = filepath.Join(getDataDir(), "badger")
	}
	if cfg.Badger.CheckPaths == nil {
		checkPaths := true
		cfg.Badger.CheckPaths = &checkPaths
	}
	if cfg.Badger.ValueLogFileSize == 0 {
		cfg.Badger.ValueLogFileSize = 16 * bytesize.MiB
	}
}

// applyAttributesDefaults sets attribute naming defaults.
func applyAttributesDefaults(cfg *AttributesConfig) {
	if cfg.Namespace == "" {
		cfg.Namespace = "trusted"
	}
}

// GetDefaultConfig returns a Config struct with all default values applied.
//
// This is useful for:
//   - Generating sample configuration files
//   - Testing
//   - Documentation
func GetDefaultConfig() *Config {
	cfg := &Config{
		Telemetry: TelemetryConfig{
			Insecure: true,
		},
	}

	ApplyDefaults(cfg)
	return cfg
}
