package semantic

import (
	"cdb/output"
	"cdb/report"
)

// Tool captures what one supported compiler front end can do: decide whether a
// program path belongs to it, and turn an intercepted command into the
// compilation database entries it implies
type Tool interface {
	// Recognize reports whether the given program path names this tool's
	// compiler front end
	Recognize(program string) bool

	// Compilations derives zero or more entries from an intercepted command:
	// one per source file compiled.  A non-compiling invocation (info query,
	// dependency generation, link-only) yields zero entries and no error; an
	// error means the argument vector could not be classified at all.
	Compilations(command *report.Command) ([]output.Entry, error)
}

// Tools is the ordered list of supported tools consulted by the dispatcher
type Tools []Tool

// Select returns the first tool recognizing the given program, if any
func (ts Tools) Select(program string) (Tool, bool) {
	for _, tool := range ts {
		if tool.Recognize(program) {
			return tool, true
		}
	}
	return nil, false
}
