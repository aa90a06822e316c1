package configpaths_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/Alia5/synthmouse/internal/configpaths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("AppData", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return filepath.Join(dir, "synthmouse")
}

func TestDefaultConfigDir(t *testing.T) {
	expected := setConfigHome(t)
	dir, err := configpaths.DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, expected, dir)
}

func TestConfigCandidatePathsUserPathFirst(t *testing.T) {
	setConfigHome(t)

	type testCase struct {
		name     string
		userPath string
		pick     func(j, y, t []string) []string
	}

	cases := []testCase{
		{"json", "custom.json", func(j, _, _ []string) []string { return j }},
		{"yaml", "custom.yaml", func(_, y, _ []string) []string { return y }},
		{"yml", "custom.yml", func(_, y, _ []string) []string { return y }},
		{"toml", "custom.toml", func(_, _, tp []string) []string { return tp }},
		{"no extension", "custom", func(j, _, _ []string) []string { return j }},
	}

	for _, tc := range cases {
		j, y, tp := configpaths.ConfigCandidatePaths(tc.userPath)
		paths := tc.pick(j, y, tp)
		require.NotEmpty(t, paths, tc.name)
		assert.Equal(t, tc.userPath, paths[0], tc.name)
	}
}

func TestConfigCandidatePathsSearchOrder(t *testing.T) {
	home := setConfigHome(t)
	wd, err := os.Getwd()
	require.NoError(t, err)

	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths("")

	assert.Equal(t, filepath.Join(wd, "synthmouse.json"), jsonPaths[0])
	assert.Contains(t, jsonPaths, filepath.Join(home, "config.json"))
	assert.Contains(t, yamlPaths, filepath.Join(home, "synthmouse.yml"))
	assert.Contains(t, tomlPaths, filepath.Join(home, "synthmouse.toml"))
	assert.Equal(t, len(jsonPaths)*2, len(yamlPaths))
	assert.Equal(t, len(jsonPaths), len(tomlPaths))

	if runtime.GOOS != "windows" {
		assert.Equal(t, filepath.Join("/etc/synthmouse", "config.json"), jsonPaths[len(jsonPaths)-1])
	}
}

func TestEnsureDir(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b", "press.toml")
	require.NoError(t, configpaths.EnsureDir(target))
	info, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestUserConfigPath(t *testing.T) {
	type testCase struct {
		name     string
		args     []string
		env      string
		expected string
	}

	cases := []testCase{
		{name: "separate value", args: []string{"click", "left", "--config", "a.toml"}, expected: "a.toml"},
		{name: "equals form", args: []string{"--config=b.yaml", "press", "side"}, expected: "b.yaml"},
		{name: "flag wins over env", args: []string{"--config", "c.json"}, env: "env.json", expected: "c.json"},
		{name: "env fallback", args: []string{"click", "left"}, env: "env.json", expected: "env.json"},
		{name: "dangling flag", args: []string{"--config"}, expected: ""},
		{name: "config command is not a path", args: []string{"config", "init", "click"}, expected: ""},
	}

	for _, tc := range cases {
		t.Setenv("SYNTHMOUSE_CONFIG", tc.env)
		assert.Equal(t, tc.expected, configpaths.UserConfigPath(tc.args), tc.name)
	}
}
