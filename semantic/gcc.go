package semantic

import (
	"path/filepath"
	"regexp"
	"strings"

	"cdb/grammar"
	"cdb/output"
	"cdb/report"
)

// flagTable is the flag grammar of the GNU compiler front ends.  It is built
// once and shared by every classification call.  `-E` is a no-linking output
// kind (preprocess only, no object file); unknown `-E...` spellings still
// classify, through the everything-else matcher.
var flagTable = grammar.NewTable(map[string]grammar.Definition{
	"-x":                 {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindOutput},
	"-c":                 {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindOutputNoLinking},
	"-S":                 {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindOutputNoLinking},
	"-E":                 {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindOutputNoLinking},
	"-o":                 {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindOutputOutput},
	"-dumpbase":          {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindOutput},
	"-dumpbase-ext":      {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindOutput},
	"-dumpdir":           {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindOutput},
	"-v":                 {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindOutput},
	"-###":               {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindOutput},
	"--help":             {Rule: grammar.Rule{Count: 0, Mode: grammar.Both, Modifier: true}, Kind: grammar.KindOutputInfo},
	"--target-help":      {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindOutputInfo},
	"--version":          {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindOutputInfo},
	"-pass-exit-codes":   {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindOutput},
	"-pipe":              {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindOutput},
	"-specs":             {Rule: grammar.Rule{Count: 0, Mode: grammar.Partial, Modifier: true}, Kind: grammar.KindOutput},
	"-wrapper":           {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindOutput},
	"-ffile-prefix-map":  {Rule: grammar.Rule{Count: 0, Mode: grammar.Partial, Modifier: true}, Kind: grammar.KindOutput},
	"-fplugin":           {Rule: grammar.Rule{Count: 0, Mode: grammar.Partial, Modifier: true}, Kind: grammar.KindOutput},
	"@":                  {Rule: grammar.Rule{Count: 0, Mode: grammar.Partial}, Kind: grammar.KindOutput},
	"-A":                 {Rule: grammar.Rule{Count: 1, Mode: grammar.Both}, Kind: grammar.KindPreprocessor},
	"-D":                 {Rule: grammar.Rule{Count: 1, Mode: grammar.Both}, Kind: grammar.KindPreprocessor},
	"-U":                 {Rule: grammar.Rule{Count: 1, Mode: grammar.Both}, Kind: grammar.KindPreprocessor},
	"-include":           {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindPreprocessor},
	"-imacros":           {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindPreprocessor},
	"-undef":             {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindPreprocessor},
	"-pthread":           {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindPreprocessor},
	"-M":                 {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindPreprocessorMake},
	"-MM":                {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindPreprocessorMake},
	"-MG":                {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindPreprocessorMake},
	"-MP":                {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindPreprocessorMake},
	"-MD":                {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindPreprocessorMake},
	"-MMD":               {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindPreprocessorMake},
	"-MF":                {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindPreprocessorMake},
	"-MT":                {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindPreprocessorMake},
	"-MQ":                {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindPreprocessorMake},
	"-C":                 {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindPreprocessor},
	"-CC":                {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindPreprocessor},
	"-P":                 {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindPreprocessor},
	"-traditional":       {Rule: grammar.Rule{Count: 0, Mode: grammar.Both}, Kind: grammar.KindPreprocessor},
	"-trigraphs":         {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindPreprocessor},
	"-remap":             {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindPreprocessor},
	"-H":                 {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindPreprocessor},
	"-Xpreprocessor":     {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindPreprocessor},
	"-Wp,":               {Rule: grammar.Rule{Count: 0, Mode: grammar.Partial}, Kind: grammar.KindPreprocessor},
	"-I":                 {Rule: grammar.Rule{Count: 1, Mode: grammar.Both}, Kind: grammar.KindDirSearch},
	"-iplugindir":        {Rule: grammar.Rule{Count: 0, Mode: grammar.Partial, Modifier: true}, Kind: grammar.KindDirSearch},
	"-iquote":            {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindDirSearch},
	"-isystem":           {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindDirSearch},
	"-idirafter":         {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindDirSearch},
	"-iprefix":           {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindDirSearch},
	"-iwithprefix":       {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindDirSearch},
	"-iwithprefixbefore": {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindDirSearch},
	"-isysroot":          {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindDirSearch},
	"-imultilib":         {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindDirSearch},
	"-L":                 {Rule: grammar.Rule{Count: 1, Mode: grammar.Both}, Kind: grammar.KindDirSearchLinker},
	"-B":                 {Rule: grammar.Rule{Count: 1, Mode: grammar.Both}, Kind: grammar.KindDirSearch},
	"--sysroot":          {Rule: grammar.Rule{Count: 1, Mode: grammar.Both, Modifier: true}, Kind: grammar.KindDirSearch},
	"-flinker-output":    {Rule: grammar.Rule{Count: 0, Mode: grammar.Partial, Modifier: true}, Kind: grammar.KindLinker},
	"-fuse-ld":           {Rule: grammar.Rule{Count: 0, Mode: grammar.Partial, Modifier: true}, Kind: grammar.KindLinker},
	"-l":                 {Rule: grammar.Rule{Count: 1, Mode: grammar.Both}, Kind: grammar.KindLinker},
	"-nostartfiles":      {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindLinker},
	"-nodefaultlibs":     {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindLinker},
	"-nolibc":            {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindLinker},
	"-nostdlib":          {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindLinker},
	"-e":                 {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindLinker},
	"-entry":             {Rule: grammar.Rule{Count: 0, Mode: grammar.Partial, Modifier: true}, Kind: grammar.KindLinker},
	"-pie":               {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindLinker},
	"-no-pie":            {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindLinker},
	"-static-pie":        {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindLinker},
	"-r":                 {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindLinker},
	"-rdynamic":          {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindLinker},
	"-s":                 {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindLinker},
	"-symbolic":          {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindLinker},
	"-static":            {Rule: grammar.Rule{Count: 0, Mode: grammar.Both}, Kind: grammar.KindLinker},
	"-shared":            {Rule: grammar.Rule{Count: 0, Mode: grammar.Both}, Kind: grammar.KindLinker},
	"-T":                 {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindLinker},
	"-Xlinker":           {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindLinker},
	"-Wl,":               {Rule: grammar.Rule{Count: 0, Mode: grammar.Partial}, Kind: grammar.KindLinker},
	"-u":                 {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindLinker},
	"-z":                 {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindLinker},
	"-Xassembler":        {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindOther},
	"-Wa,":               {Rule: grammar.Rule{Count: 0, Mode: grammar.Partial}, Kind: grammar.KindOther},
	"-ansi":              {Rule: grammar.Rule{Count: 0, Mode: grammar.Exact}, Kind: grammar.KindOther},
	"-aux-info":          {Rule: grammar.Rule{Count: 1, Mode: grammar.Exact}, Kind: grammar.KindOther},
	"-std":               {Rule: grammar.Rule{Count: 0, Mode: grammar.Partial, Modifier: true}, Kind: grammar.KindOther},
	"-O":                 {Rule: grammar.Rule{Count: 0, Mode: grammar.Both}, Kind: grammar.KindOther},
	"-g":                 {Rule: grammar.Rule{Count: 0, Mode: grammar.Both}, Kind: grammar.KindOther},
	"-f":                 {Rule: grammar.Rule{Count: 0, Mode: grammar.Partial}, Kind: grammar.KindOther},
	"-m":                 {Rule: grammar.Rule{Count: 0, Mode: grammar.Partial}, Kind: grammar.KindOther},
	"-p":                 {Rule: grammar.Rule{Count: 0, Mode: grammar.Partial}, Kind: grammar.KindOther},
	"-W":                 {Rule: grammar.Rule{Count: 0, Mode: grammar.Partial}, Kind: grammar.KindOther},
	"-no":                {Rule: grammar.Rule{Count: 0, Mode: grammar.Partial}, Kind: grammar.KindOther},
	"-tno":               {Rule: grammar.Rule{Count: 0, Mode: grammar.Partial}, Kind: grammar.KindOther},
	"-save":              {Rule: grammar.Rule{Count: 0, Mode: grammar.Partial}, Kind: grammar.KindOther},
	"-d":                 {Rule: grammar.Rule{Count: 0, Mode: grammar.Partial}, Kind: grammar.KindOther},
	"-Q":                 {Rule: grammar.Rule{Count: 0, Mode: grammar.Partial}, Kind: grammar.KindOther},
	"-X":                 {Rule: grammar.Rule{Count: 0, Mode: grammar.Partial}, Kind: grammar.KindOther},
	"-Y":                 {Rule: grammar.Rule{Count: 0, Mode: grammar.Partial}, Kind: grammar.KindOther},
	"--":                 {Rule: grammar.Rule{Count: 0, Mode: grammar.Partial}, Kind: grammar.KindOther},
})

// gccParser is the classification pipeline: try the flag table first, then
// treat non-flag tokens as source files, then accept anything.  Built once;
// classification itself is stateless.
var gccParser = grammar.Repeat(
	grammar.OneOf(
		grammar.TableMatcher(flagTable),
		grammar.SourceMatcher(),
		grammar.EverythingElseMatcher(),
	),
)

// executablePattern matches the base names the GNU front ends install under:
// bare cc/c++/cxx/CC, [mg]cc and [mg]++ with an optional vendor-triple prefix
// and an optional dotted version suffix, and (g)fortran with the same prefix
// and suffix conventions
var executablePattern = regexp.MustCompile(`^(` + strings.Join([]string{
	`(cc|c\+\+|cxx|CC)`,
	`([^-]*-)*[mg]cc(-?\d+(\.\d+){0,2})?`,
	`([^-]*-)*[mg]\+\+(-?\d+(\.\d+){0,2})?`,
	`([^-]*-)*g?fortran(-?\d+(\.\d+){0,2})?`,
}, `|`) + `)$`)

// Gcc is the semantic tool for the GNU compiler front ends
type Gcc struct {
	// paths are extra program paths configured to be recognized as this
	// compiler (eg. cross-compiler wrappers the name patterns miss)
	paths []string
}

// NewGcc creates a Gcc tool that additionally recognizes the given exact
// program paths
func NewGcc(paths []string) *Gcc {
	return &Gcc{paths: paths}
}

// Recognize reports whether the program path names a GNU compiler front end,
// either by exact match against the configured paths or by name pattern.
// Pattern matching is against the base name only, never the full path.
func (g *Gcc) Recognize(program string) bool {
	for _, path := range g.paths {
		if path == program {
			return true
		}
	}
	return executablePattern.MatchString(filepath.Base(program))
}

// Compilations classifies the command's argument vector and derives one entry
// per compiled source file
func (g *Gcc) Compilations(command *report.Command) ([]output.Entry, error) {
	flags, err := gccParser(command.Arguments)
	if err != nil {
		return nil, err
	}

	if !runsCompilationPass(flags) {
		return nil, nil
	}

	sources := sourceFiles(flags)
	if len(sources) == 0 {
		return nil, nil
	}
	declaredOutput := outputFile(flags)

	entries := make([]output.Entry, 0, len(sources))
	for _, source := range sources {
		arguments := filterArguments(flags, source)
		arguments = append([]string{command.Program}, arguments...)
		arguments = append(arguments, flagsFromEnvironment(command.Environment)...)

		entries = append(entries, makeAbsolute(output.Entry{
			File:      source,
			Directory: command.Directory,
			Output:    declaredOutput,
			Arguments: arguments,
		}))
	}

	return entries, nil
}
