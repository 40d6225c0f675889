package grammar

// MatchMode determines how a flag spelling in the table is compared against a
// command-line token
type MatchMode int

const (
	// Exact requires the token to equal the flag spelling; any value tokens
	// follow as separate tokens
	Exact MatchMode = iota

	// Partial requires the flag spelling to be a prefix of the token; the
	// remainder of the token is the flag's attached value
	Partial

	// Both accepts either the exact form with separate value tokens or the
	// attached form
	Both
)

// Rule describes how a table flag consumes tokens once its spelling matches
type Rule struct {
	// Count is the number of separate value tokens the flag consumes when it
	// is not using the attached form
	Count int

	Mode MatchMode

	// Modifier marks flags whose matching requires special handling by some
	// consumers.  The reference compiler applies it inconsistently (mostly to
	// informational and prefix-search flags), so it is carried per flag but
	// nothing in the engine branches on it yet.
	Modifier bool
}

// FlagKind is the semantic category a classified flag belongs to.  The set is
// closed: every token of a compiler invocation lands in exactly one of these.
type FlagKind int

const (
	KindOutput FlagKind = iota
	KindOutputNoLinking
	KindOutputOutput
	KindOutputInfo
	KindPreprocessor
	KindPreprocessorMake
	KindDirSearch
	KindDirSearchLinker
	KindLinker

	// KindSource is never produced by the table; the source matcher assigns
	// it structurally to tokens that do not look like flags
	KindSource

	// KindOther covers everything the table does not know about
	KindOther
)

// Flag is one classified flag of a compiler invocation.  Arguments holds the
// matched spelling followed by any consumed value tokens, exactly as they
// appeared on the command line, so that re-joining the Arguments of every flag
// reproduces a command the compiler would accept.  For a KindSource flag,
// Arguments is exactly the source path.
type Flag struct {
	Kind      FlagKind
	Arguments []string
}

// Spelling returns the token the flag was matched by (for a source flag, the
// source path itself)
func (f Flag) Spelling() string {
	return f.Arguments[0]
}
