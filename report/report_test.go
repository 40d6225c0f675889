package report

import (
	"io/ioutil"
	"path/filepath"
	"testing"
)

func writeReport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.json")
	if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write report: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeReport(t, `[
  {
    "program": "/usr/bin/gcc",
    "arguments": ["-c", "a.c", "-o", "a.o"],
    "directory": "/proj",
    "environment": {"CPATH": "/usr/x"}
  },
  {
    "program": "/usr/bin/ld",
    "arguments": ["-o", "app", "a.o"],
    "directory": "/proj"
  }
]`)

	commands, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(commands) != 2 {
		t.Fatalf("got %d commands, want 2", len(commands))
	}

	first := commands[0]
	if first.Program != "/usr/bin/gcc" {
		t.Errorf("Program = %q, want /usr/bin/gcc", first.Program)
	}
	if len(first.Arguments) != 4 || first.Arguments[0] != "-c" {
		t.Errorf("Arguments = %v", first.Arguments)
	}
	if first.Directory != "/proj" {
		t.Errorf("Directory = %q, want /proj", first.Directory)
	}
	if first.Environment["CPATH"] != "/usr/x" {
		t.Errorf("Environment = %v", first.Environment)
	}

	// a command without an environment is fine
	if commands[1].Environment != nil {
		t.Errorf("second Environment = %v, want nil", commands[1].Environment)
	}
}

func TestLoadEmptyReport(t *testing.T) {
	commands, err := Load(writeReport(t, `[]`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(commands) != 0 {
		t.Errorf("got %d commands, want 0", len(commands))
	}
}

func TestLoadMalformedReport(t *testing.T) {
	if _, err := Load(writeReport(t, `{"not": "an array"`)); err == nil {
		t.Error("Load should have failed on malformed JSON")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Load should have failed on a missing file")
	}
}
