package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gluster/glusterxattr/internal/bytesize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "WARN", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, "xattr", cfg.Store.Backend)
	assert.True(t, cfg.Store.Badger.CheckPathsEnabled())
	assert.Equal(t, "trusted", cfg.Attributes.Namespace)
	assert.False(t, cfg.Attributes.LegacyStime)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.True(t, cfg.Telemetry.Insecure)
	assert.Equal(t, 5*time.Second, cfg.Telemetry.ShutdownTimeout)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_MissingExplicitFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "xattr", cfg.Store.Backend)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  format: json
telemetry:
  enabled: true
  endpoint: collector:4317
  sample_rate: 0.5
  shutdown_timeout: 2s
metrics:
  enabled: true
  textfile: /var/lib/node_exporter/gxattr.prom
store:
  backend: badger
  badger:
    path: /var/lib/glusterxattr
    check_paths: false
    value_log_file_size: 32Mi
attributes:
  namespace: user
  legacy_stime: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "collector:4317", cfg.Telemetry.Endpoint)
	assert.Equal(t, 0.5, cfg.Telemetry.SampleRate)
	assert.Equal(t, 2*time.Second, cfg.Telemetry.ShutdownTimeout)
	assert.True(t, cfg.Telemetry.Insecure)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/var/lib/node_exporter/gxattr.prom", cfg.Metrics.Textfile)
	assert.Equal(t, "badger", cfg.Store.Backend)
	assert.Equal(t, "/var/lib/glusterxattr", cfg.Store.Badger.Path)
	assert.False(t, cfg.Store.Badger.CheckPathsEnabled())
	assert.Equal(t, 32*bytesize.MiB, cfg.Store.Badger.ValueLogFileSize)
	assert.Equal(t, "user", cfg.Attributes.Namespace)
	assert.True(t, cfg.Attributes.LegacyStime)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "store:\n  backend: memory\n")
	t.Setenv("GLUSTERXATTR_STORE_BACKEND", "badger")
	t.Setenv("GLUSTERXATTR_ATTRIBUTES_NAMESPACE", "user")
	t.Setenv("GLUSTERXATTR_LOGGING_LEVEL", "error")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "badger", cfg.Store.Backend)
	assert.Equal(t, "user", cfg.Attributes.Namespace)
	assert.Equal(t, "ERROR", cfg.Logging.Level)
}

func TestLoad_ByteSizeFromEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GLUSTERXATTR_STORE_BADGER_VALUE_LOG_FILE_SIZE", "64Mi")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 64*bytesize.MiB, cfg.Store.Badger.ValueLogFileSize)
}

func TestLoad_EnvWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GLUSTERXATTR_ATTRIBUTES_LEGACY_STIME", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Attributes.LegacyStime)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad backend", "store:\n  backend: s3\n"},
		{"bad namespace", "attributes:\n  namespace: security\n"},
		{"bad level", "logging:\n  level: verbose\n"},
		{"bad sample rate", "telemetry:\n  sample_rate: 2\n"},
		{"metrics without textfile", "metrics:\n  enabled: true\n"},
		{"bad duration", "telemetry:\n  shutdown_timeout: soon\n"},
		{"bad byte size", "store:\n  badger:\n    value_log_file_size: lots\n"},
		{"bad yaml", "store: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestMustLoad(t *testing.T) {
	t.Run("MissingDefault", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		_, err := MustLoad("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gxattr config init")
	})

	t.Run("MissingExplicit", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.yaml")

		_, err := MustLoad(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("Default", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)
		require.NoError(t, SaveConfig(GetDefaultConfig(), filepath.Join(dir, "glusterxattr", "config.yaml")))

		cfg, err := MustLoad("")
		require.NoError(t, err)
		assert.Equal(t, "xattr", cfg.Store.Backend)
	})
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := GetDefaultConfig()
	cfg.Store.Backend = "badger"
	cfg.Attributes.LegacyStime = true
	checkPaths := false
	cfg.Store.Badger.CheckPaths = &checkPaths

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfigPaths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "glusterxattr"), GetConfigDir())
	assert.Equal(t, filepath.Join(dir, "glusterxattr", "config.yaml"), GetDefaultConfigPath())
	assert.False(t, DefaultConfigExists())
}
