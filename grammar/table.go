package grammar

import (
	"sort"
	"strings"
)

// Definition binds a matching rule to a semantic category for one flag
// spelling in the table
type Definition struct {
	Rule Rule
	Kind FlagKind
}

// Table is the static flag grammar: a read-only mapping from flag spellings to
// their definitions.  It is built once at startup and shared by every
// classification call, so it must never be mutated after NewTable returns.
type Table struct {
	defs map[string]Definition

	// prefixes holds the spellings usable in attached form (Partial and Both
	// modes), sorted longest first so that prefix lookup is deterministic and
	// the most specific spelling always wins (eg. `-iplugindir` before `-i`)
	prefixes []string
}

// NewTable builds a Table from a definition map
func NewTable(defs map[string]Definition) *Table {
	t := &Table{defs: defs}

	for spelling, def := range defs {
		if def.Rule.Mode == Partial || def.Rule.Mode == Both {
			t.prefixes = append(t.prefixes, spelling)
		}
	}

	// longest first; ties broken lexicographically so iteration order of the
	// definition map cannot influence matching
	sort.Slice(t.prefixes, func(i, j int) bool {
		if len(t.prefixes[i]) != len(t.prefixes[j]) {
			return len(t.prefixes[i]) > len(t.prefixes[j])
		}
		return t.prefixes[i] < t.prefixes[j]
	})

	return t
}

// lookup finds the table spelling matching the given token.  An exact hit is
// preferred; otherwise the longest spelling that is a strict prefix of the
// token (among those allowing the attached form) is chosen.
func (t *Table) lookup(token string) (string, Definition, bool) {
	if def, ok := t.defs[token]; ok {
		return token, def, true
	}

	for _, spelling := range t.prefixes {
		if len(token) > len(spelling) && strings.HasPrefix(token, spelling) {
			return spelling, t.defs[spelling], true
		}
	}

	return "", Definition{}, false
}
