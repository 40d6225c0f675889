package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"cdb/common"
	"cdb/output"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), common.ConfigFileName)
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
[recognition]
compilers = ["/opt/cross/armcc-wrapper", "/usr/local/bin/mygcc"]

[output]
filename = "build/compile_commands.json"
format = "command"
append = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"/opt/cross/armcc-wrapper", "/usr/local/bin/mygcc"}, cfg.Compilers)
	assert.Equal(t, "build/compile_commands.json", cfg.OutputPath)
	assert.Equal(t, output.FormatCommand, cfg.Format)
	assert.True(t, cfg.Append)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[recognition]
compilers = ["/opt/cc"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"/opt/cc"}, cfg.Compilers)
	assert.Equal(t, common.DatabaseFileName, cfg.OutputPath)
	assert.Equal(t, output.FormatArguments, cfg.Format)
	assert.False(t, cfg.Append)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadUnknownFormat(t *testing.T) {
	path := writeConfig(t, `
[output]
format = "sideways"
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMalformedToml(t *testing.T) {
	path := writeConfig(t, `[output`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, common.DatabaseFileName, cfg.OutputPath)
	assert.Equal(t, output.FormatArguments, cfg.Format)
	assert.False(t, cfg.Append)
	assert.Empty(t, cfg.Compilers)
}
