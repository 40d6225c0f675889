package grammar

import (
	"errors"
	"fmt"
	"strings"
)

// errNoMatch signals that a matcher does not apply at the current position.
// It is internal to the combinator chain: the next matcher in line is tried.
var errNoMatch = errors.New("no match at position")

// ParseError reports that the grammar engine could not consume the token
// stream: a matched table rule demanded a value token that does not exist.
// The failure is always local to one command.
type ParseError struct {
	Flag     string
	Position int
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("flag %q at position %d expects an argument", pe.Flag, pe.Position)
}

// MatchFunc attempts to classify the token at the given position.  On success
// it returns the classified flag and the number of tokens consumed (always at
// least one).  A return of errNoMatch hands the position to the next matcher;
// any other error aborts classification of the whole token stream.
type MatchFunc func(tokens []string, pos int) (Flag, int, error)

// Parser consumes a whole token stream and produces the ordered classified
// flag list
type Parser func(tokens []string) ([]Flag, error)

// TableMatcher matches the current token against the flag grammar table.  For
// an attached-form hit the remainder of the token is the flag's sole value and
// the token is kept whole; otherwise the rule's argument count is consumed
// from the following tokens verbatim.
func TableMatcher(table *Table) MatchFunc {
	return func(tokens []string, pos int) (Flag, int, error) {
		token := tokens[pos]

		spelling, def, ok := table.lookup(token)
		if !ok {
			return Flag{}, 0, errNoMatch
		}

		// attached form: the token carries its own value
		if len(token) > len(spelling) {
			return Flag{Kind: def.Kind, Arguments: []string{token}}, 1, nil
		}

		if pos+def.Rule.Count >= len(tokens) {
			return Flag{}, 0, &ParseError{Flag: spelling, Position: pos}
		}

		arguments := make([]string, 0, def.Rule.Count+1)
		arguments = append(arguments, tokens[pos:pos+def.Rule.Count+1]...)
		return Flag{Kind: def.Kind, Arguments: arguments}, def.Rule.Count + 1, nil
	}
}

// SourceMatcher classifies tokens that do not look like flags as source files
func SourceMatcher() MatchFunc {
	return func(tokens []string, pos int) (Flag, int, error) {
		token := tokens[pos]
		if strings.HasPrefix(token, "-") {
			return Flag{}, 0, errNoMatch
		}

		return Flag{Kind: KindSource, Arguments: []string{token}}, 1, nil
	}
}

// EverythingElseMatcher classifies any single token as an unknown flag.  It
// never fails, which guarantees the engine always makes progress: unknown or
// future compiler flags must not abort classification of the whole command.
func EverythingElseMatcher() MatchFunc {
	return func(tokens []string, pos int) (Flag, int, error) {
		return Flag{Kind: KindOther, Arguments: []string{tokens[pos]}}, 1, nil
	}
}

// OneOf tries the given matchers in order at the current position and takes
// the first that applies
func OneOf(matchers ...MatchFunc) MatchFunc {
	return func(tokens []string, pos int) (Flag, int, error) {
		for _, m := range matchers {
			flag, consumed, err := m(tokens, pos)
			if err == errNoMatch {
				continue
			}
			return flag, consumed, err
		}
		return Flag{}, 0, errNoMatch
	}
}

// Repeat applies the matcher until the token stream is exhausted
func Repeat(m MatchFunc) Parser {
	return func(tokens []string) ([]Flag, error) {
		var flags []Flag

		for pos := 0; pos < len(tokens); {
			flag, consumed, err := m(tokens, pos)
			if err != nil {
				return nil, err
			}

			flags = append(flags, flag)
			pos += consumed
		}

		return flags, nil
	}
}
