package output

import "strings"

// Entry describes how one source file was compiled: enough for an external
// tool to re-run the same semantic compile.  File and Directory are always
// absolute by the time an Entry leaves the semantic layer; Output is empty
// when the invocation declared no output file.  Arguments begins with the
// original program name.
type Entry struct {
	File      string
	Directory string
	Output    string
	Arguments []string
}

// key produces the identity of an entry for duplicate detection
func (e *Entry) key() string {
	return e.File + "\x00" + e.Output + "\x00" + strings.Join(e.Arguments, "\x00")
}

// Dedup removes exact duplicate entries while preserving the order of first
// occurrence.  Builds that recompile the same file identically (eg. a
// re-run make) would otherwise inflate the database.
func Dedup(entries []Entry) []Entry {
	seen := make(map[string]struct{}, len(entries))
	result := make([]Entry, 0, len(entries))

	for _, entry := range entries {
		k := entry.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, entry)
	}

	return result
}
