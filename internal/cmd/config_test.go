package cmd_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Alia5/synthmouse/internal/cmd"
	toml "github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

func TestTemplateJSON(t *testing.T) {
	data, err := cmd.Template("click", "json")
	require.NoError(t, err)

	var root map[string]any
	require.NoError(t, json.Unmarshal(data, &root))
	assert.Equal(t, "0s", root["delay"])
	assert.Equal(t, false, root["dry_run"])
	assert.NotContains(t, root, "button", "positional args are not configurable")

	logCfg, ok := root["log"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "info", logCfg["level"])
	assert.Equal(t, "text", logCfg["format"])
	assert.Equal(t, "", logCfg["raw_file"])
}

func TestTemplateYAMLAndTOML(t *testing.T) {
	data, err := cmd.Template("press", "yml")
	require.NoError(t, err)
	var y map[string]any
	require.NoError(t, yaml.Unmarshal(data, &y))
	assert.Equal(t, "0s", y["delay"])

	data, err = cmd.Template("release", "toml")
	require.NoError(t, err)
	tree, err := toml.LoadBytes(data)
	require.NoError(t, err)
	assert.Equal(t, "info", tree.GetPath([]string{"log.level"}))
	assert.Equal(t, "", tree.GetPath([]string{"log.raw-file"}))
	assert.Equal(t, false, tree.GetPath([]string{"dry-run"}))
	assert.Equal(t, "0s", tree.GetPath([]string{"delay"}))
	assert.Nil(t, tree.Get("log"), "toml keys stay flat")
	assert.Nil(t, tree.Get("dry_run"))
}

func TestTemplateErrors(t *testing.T) {
	_, err := cmd.Template("server", "json")
	assert.Error(t, err)

	_, err = cmd.Template("click", "ini")
	assert.EqualError(t, err, "unsupported format: ini")
}

func TestConfigInitWritesFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nested", "click.yaml")

	c := cmd.ConfigInit{Command: "click", Format: "yaml", Output: dest}
	require.NoError(t, c.Run())
	_, err := os.Stat(dest)
	require.NoError(t, err)

	assert.EqualError(t, c.Run(), "destination exists; use --force to overwrite")

	c.Force = true
	assert.NoError(t, c.Run())
}

func TestConfigInitDefaultDestination(t *testing.T) {
	t.Chdir(t.TempDir())

	c := cmd.ConfigInit{Command: "press", Format: "toml"}
	require.NoError(t, c.Run())
	_, err := os.Stat("press.toml")
	assert.NoError(t, err)
}
