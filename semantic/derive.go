package semantic

import (
	"path/filepath"

	"cdb/common"
	"cdb/grammar"
	"cdb/output"
)

// noCompilationFlags are the dependency-only and pure-preprocess spellings:
// invocations carrying one of these produce a dependency file or preprocessor
// output instead of an object file, and recording them would duplicate the
// entry of the real compile
var noCompilationFlags = map[string]bool{
	"-M":  true,
	"-MM": true,
	"-E":  true,
}

// runsCompilationPass decides whether the classified invocation performs a
// real compilation.  Info queries (help/version) never compile; neither do
// dependency-generation-only or preprocess-only runs.
func runsCompilationPass(flags []grammar.Flag) bool {
	if len(flags) == 0 {
		return false
	}

	for _, flag := range flags {
		switch flag.Kind {
		case grammar.KindOutputInfo:
			return false
		case grammar.KindPreprocessorMake, grammar.KindOutputNoLinking:
			if noCompilationFlags[flag.Spelling()] {
				return false
			}
		}
	}

	return true
}

// sourceFiles collects every source path of the invocation, in encounter
// order: these are the translation units the command compiles
func sourceFiles(flags []grammar.Flag) []string {
	var sources []string
	for _, flag := range flags {
		if flag.Kind == grammar.KindSource {
			sources = append(sources, flag.Arguments[0])
		}
	}
	return sources
}

// outputFile returns the declared output path: the last argument of the first
// output flag, or the empty string when the command declares none
func outputFile(flags []grammar.Flag) string {
	for _, flag := range flags {
		if flag.Kind == grammar.KindOutputOutput {
			return flag.Arguments[len(flag.Arguments)-1]
		}
	}
	return ""
}

// filterArguments rewrites the classified flag list into the argument vector
// of a standalone single-file compile of `source`.  Linker, make-dependency,
// and linker search-path flags are dropped (irrelevant or harmful to a
// single-file compile), as is every source file other than `source`.  When
// the original invocation did not already disable linking, `-c` is forced so
// the reconstructed command does not try to link.
func filterArguments(flags []grammar.Flag, source string) []string {
	noLinking := false
	for _, flag := range flags {
		if flag.Kind == grammar.KindOutputNoLinking {
			noLinking = true
			break
		}
	}

	var arguments []string
	if !noLinking {
		arguments = append(arguments, "-c")
	}

	for _, flag := range flags {
		switch flag.Kind {
		case grammar.KindLinker, grammar.KindPreprocessorMake, grammar.KindDirSearchLinker:
			continue
		case grammar.KindSource:
			if flag.Arguments[0] != source {
				continue
			}
		}
		arguments = append(arguments, flag.Arguments...)
	}

	return arguments
}

// flagsFromEnvironment derives the search-path flags the compiler itself
// would take from the environment, so the reconstructed command stays
// compilable outside the original environment.
// https://gcc.gnu.org/onlinedocs/cpp/Environment-Variables.html
func flagsFromEnvironment(environment map[string]string) []string {
	var flags []string

	// the variable value is a separator-delimited directory list; an empty
	// segment (eg. the leading one in ":/opt/include") refers to the current
	// working directory
	inserter := func(value, flag string) {
		for _, path := range common.SplitSearchPath(value) {
			if path == "" {
				path = "."
			}
			flags = append(flags, flag, path)
		}
	}

	for _, env := range []string{"CPATH", "C_INCLUDE_PATH", "CPLUS_INCLUDE_PATH"} {
		if value, ok := environment[env]; ok {
			inserter(value, "-I")
		}
	}
	if value, ok := environment["OBJC_INCLUDE_PATH"]; ok {
		inserter(value, "-isystem")
	}

	return flags
}

// makeAbsolute rewrites the entry's file and output paths to absolute using
// the entry's directory.  Already-absolute paths are left untouched.
func makeAbsolute(entry output.Entry) output.Entry {
	transform := func(path string) string {
		if path == "" || filepath.IsAbs(path) {
			return path
		}
		return filepath.Join(entry.Directory, path)
	}

	entry.File = transform(entry.File)
	entry.Output = transform(entry.Output)
	return entry
}
