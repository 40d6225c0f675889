package report

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
)

// Command is one intercepted compiler invocation as recorded by the
// interception side: the program that ran, its argument vector (excluding the
// program name), the directory it ran in, and its environment.  A Command is
// never mutated by classification.
type Command struct {
	Program     string            `json:"program"`
	Arguments   []string          `json:"arguments"`
	Directory   string            `json:"directory"`
	Environment map[string]string `json:"environment"`
}

// Load reads an execution report: a JSON array of intercepted commands.  A
// well-formed report with zero commands is not an error.
func Load(path string) ([]Command, error) {
	buff, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var commands []Command
	if err := json.Unmarshal(buff, &commands); err != nil {
		return nil, fmt.Errorf("malformed execution report %s: %w", path, err)
	}

	return commands, nil
}
