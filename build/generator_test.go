package build

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"cdb/config"
	"cdb/logging"
	"cdb/output"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testReport = `[
  {
    "program": "/usr/bin/gcc",
    "arguments": ["-c", "a.c", "-o", "a.o"],
    "directory": "/proj"
  },
  {
    "program": "/usr/bin/g++",
    "arguments": ["-c", "b.cpp", "c.cpp"],
    "directory": "/proj"
  },
  {
    "program": "/usr/bin/ld",
    "arguments": ["-o", "app", "a.o"],
    "directory": "/proj"
  },
  {
    "program": "/usr/bin/gcc",
    "arguments": ["--version"],
    "directory": "/proj"
  },
  {
    "program": "/usr/bin/gcc",
    "arguments": ["-c", "a.c", "-o", "a.o"],
    "directory": "/proj"
  }
]`

func writeTestReport(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "report.json")
	require.NoError(t, ioutil.WriteFile(path, []byte(testReport), 0644))
	return path
}

func TestGenerate(t *testing.T) {
	logging.Initialize("silent")

	dir := t.TempDir()
	cfg := config.Default()
	cfg.OutputPath = filepath.Join(dir, "compile_commands.json")

	g := NewGenerator(cfg)
	require.True(t, g.Generate(writeTestReport(t, dir)))

	entries, err := output.ReadDatabase(cfg.OutputPath)
	require.NoError(t, err)

	// one entry for a.c (recorded once despite the duplicate command), two
	// for the g++ invocation; the linker run and the version query are
	// skipped
	require.Len(t, entries, 3)
	assert.Equal(t, "/proj/a.c", entries[0].File)
	assert.Equal(t, "/proj/b.cpp", entries[1].File)
	assert.Equal(t, "/proj/c.cpp", entries[2].File)
	assert.Equal(t, []string{"/usr/bin/gcc", "-c", "a.c", "-o", "a.o"}, entries[0].Arguments)
}

func TestGenerateAppend(t *testing.T) {
	logging.Initialize("silent")

	dir := t.TempDir()
	cfg := config.Default()
	cfg.OutputPath = filepath.Join(dir, "compile_commands.json")
	cfg.Append = true

	reportPath := writeTestReport(t, dir)

	g := NewGenerator(cfg)
	require.True(t, g.Generate(reportPath))

	// a second run over the same report must not duplicate entries
	require.True(t, g.Generate(reportPath))

	entries, err := output.ReadDatabase(cfg.OutputPath)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestGenerateMissingReport(t *testing.T) {
	logging.Initialize("silent")

	cfg := config.Default()
	cfg.OutputPath = filepath.Join(t.TempDir(), "compile_commands.json")

	g := NewGenerator(cfg)
	assert.False(t, g.Generate(filepath.Join(t.TempDir(), "nope.json")))
}

func TestGenerateConfiguredCompiler(t *testing.T) {
	logging.Initialize("silent")

	dir := t.TempDir()
	reportPath := filepath.Join(dir, "report.json")
	require.NoError(t, ioutil.WriteFile(reportPath, []byte(`[
  {
    "program": "/opt/cross/armcc-wrapper",
    "arguments": ["-c", "a.c"],
    "directory": "/proj"
  }
]`), 0644))

	cfg := config.Default()
	cfg.OutputPath = filepath.Join(dir, "compile_commands.json")
	cfg.Compilers = []string{"/opt/cross/armcc-wrapper"}

	g := NewGenerator(cfg)
	require.True(t, g.Generate(reportPath))

	entries, err := output.ReadDatabase(cfg.OutputPath)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "/proj/a.c", entries[0].File)
}
