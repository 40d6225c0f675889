package output

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"strings"
)

// Enumeration of the supported compilation database field formats
const (
	// FormatArguments emits each entry's command as a JSON array of tokens
	FormatArguments = "arguments"

	// FormatCommand emits each entry's command as one shell-quoted string
	FormatCommand = "command"
)

// jsonEntry is an entry as it is encoded in a compilation database.  Exactly
// one of Arguments and Command is populated, depending on the field format.
type jsonEntry struct {
	File      string   `json:"file"`
	Directory string   `json:"directory"`
	Output    string   `json:"output,omitempty"`
	Arguments []string `json:"arguments,omitempty"`
	Command   string   `json:"command,omitempty"`
}

// WriteDatabase serializes entries into a compilation database file using the
// given field format
func WriteDatabase(path string, entries []Entry, format string) error {
	records := make([]jsonEntry, 0, len(entries))
	for _, entry := range entries {
		record := jsonEntry{
			File:      entry.File,
			Directory: entry.Directory,
			Output:    entry.Output,
		}

		switch format {
		case FormatCommand:
			record.Command = joinCommand(entry.Arguments)
		case FormatArguments:
			record.Arguments = entry.Arguments
		default:
			return fmt.Errorf("unknown database format %q", format)
		}

		records = append(records, record)
	}

	buff, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	return ioutil.WriteFile(path, buff, 0644)
}

// ReadDatabase loads an existing compilation database, accepting entries in
// either field format.  A missing file yields no entries: append mode starts
// from an empty database on the first run.
func ReadDatabase(path string) ([]Entry, error) {
	buff, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var records []jsonEntry
	if err := json.Unmarshal(buff, &records); err != nil {
		return nil, fmt.Errorf("malformed compilation database %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(records))
	for _, record := range records {
		entry := Entry{
			File:      record.File,
			Directory: record.Directory,
			Output:    record.Output,
			Arguments: record.Arguments,
		}
		if entry.Arguments == nil && record.Command != "" {
			entry.Arguments = splitCommand(record.Command)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// joinCommand renders an argument vector as a single shell-style string,
// quoting arguments that contain whitespace or quotes
func joinCommand(arguments []string) string {
	quoted := make([]string, len(arguments))
	for i, arg := range arguments {
		if strings.ContainsAny(arg, " \t\"") {
			quoted[i] = `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
		} else {
			quoted[i] = arg
		}
	}
	return strings.Join(quoted, " ")
}

// splitCommand is the inverse of joinCommand: it tokenizes a command string,
// honoring double quotes and backslash-escaped quotes
func splitCommand(command string) []string {
	var arguments []string
	var current strings.Builder
	inQuotes := false
	escaped := false
	pending := false

	for _, r := range command {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
			pending = true
		case r == '"':
			inQuotes = !inQuotes
			pending = true
		case (r == ' ' || r == '\t') && !inQuotes:
			if pending || current.Len() > 0 {
				arguments = append(arguments, current.String())
				current.Reset()
				pending = false
			}
		default:
			current.WriteRune(r)
			pending = true
		}
	}
	if pending || current.Len() > 0 {
		arguments = append(arguments, current.String())
	}

	return arguments
}
