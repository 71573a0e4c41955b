package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigInitValidateShow(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "gxattr.yaml")

	out, err := run(t, "--config", path, "--no-color", "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration written to "+path)
	assert.FileExists(t, path)

	_, err = run(t, "--config", path, "config", "init")
	assert.Error(t, err)

	_, err = run(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)

	out, err = run(t, "--config", path, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "xattr")

	out, err = run(t, "--config", path, "--namespace", "user", "config", "show", "-o", "json")
	require.NoError(t, err)
	var cfg map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "user", cfg["attributes"].(map[string]any)["namespace"])
}

func TestConfigValidate_Invalid(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "gxattr.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  backend: s3\n"), 0644))

	_, err := run(t, "--config", path, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oneof")

	// Regular commands refuse to run with an invalid file
	_, err = run(t, "--config", path, "gfid", "get", "/p")
	assert.Error(t, err)
}

func TestConfigValidate_Missing(t *testing.T) {
	isolate(t)

	_, err := run(t, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gxattr config init")
}

func TestConfigSchema(t *testing.T) {
	out, err := run(t, "config", "schema")
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	assert.Equal(t, "gxattr Configuration", schema["title"])

	props := schema["properties"].(map[string]any)
	assert.Contains(t, props, "store")
	assert.Contains(t, props, "attributes")

	file := filepath.Join(t.TempDir(), "schema.json")
	out, err = run(t, "config", "schema", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "JSON schema written to")
	assert.FileExists(t, file)
}
