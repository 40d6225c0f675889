package grammar

import (
	"errors"
	"reflect"
	"testing"
)

// testTable is a small grammar exercising every match mode
var testTable = NewTable(map[string]Definition{
	"-c":      {Rule: Rule{Count: 0, Mode: Exact}, Kind: KindOutputNoLinking},
	"-o":      {Rule: Rule{Count: 1, Mode: Exact}, Kind: KindOutputOutput},
	"-I":      {Rule: Rule{Count: 1, Mode: Both}, Kind: KindDirSearch},
	"-W":      {Rule: Rule{Count: 0, Mode: Partial}, Kind: KindOther},
	"-Wl,":    {Rule: Rule{Count: 0, Mode: Partial}, Kind: KindLinker},
	"--help":  {Rule: Rule{Count: 0, Mode: Both, Modifier: true}, Kind: KindOutputInfo},
	"@":       {Rule: Rule{Count: 0, Mode: Partial}, Kind: KindOutput},
	"-static": {Rule: Rule{Count: 0, Mode: Both}, Kind: KindLinker},
})

func testParser() Parser {
	return Repeat(
		OneOf(
			TableMatcher(testTable),
			SourceMatcher(),
			EverythingElseMatcher(),
		),
	)
}

func TestClassifySingleFlags(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []Flag
	}{
		{"exact zero-arg", []string{"-c"},
			[]Flag{{KindOutputNoLinking, []string{"-c"}}}},
		{"exact one-arg", []string{"-o", "a.o"},
			[]Flag{{KindOutputOutput, []string{"-o", "a.o"}}}},
		{"both separated", []string{"-I", "inc"},
			[]Flag{{KindDirSearch, []string{"-I", "inc"}}}},
		{"both attached", []string{"-Iinc"},
			[]Flag{{KindDirSearch, []string{"-Iinc"}}}},
		{"partial attached", []string{"-Wall"},
			[]Flag{{KindOther, []string{"-Wall"}}}},
		{"partial equal to spelling", []string{"-W"},
			[]Flag{{KindOther, []string{"-W"}}}},
		{"longest prefix wins", []string{"-Wl,-rpath"},
			[]Flag{{KindLinker, []string{"-Wl,-rpath"}}}},
		{"response file", []string{"@args.rsp"},
			[]Flag{{KindOutput, []string{"@args.rsp"}}}},
		{"info flag", []string{"--help"},
			[]Flag{{KindOutputInfo, []string{"--help"}}}},
		{"both attached suffix", []string{"-static-libgcc"},
			[]Flag{{KindLinker, []string{"-static-libgcc"}}}},
		{"source file", []string{"a.c"},
			[]Flag{{KindSource, []string{"a.c"}}}},
		{"unknown flag", []string{"-fwhatever"},
			[]Flag{{KindOther, []string{"-fwhatever"}}}},
		{"empty stream", nil, nil},
	}

	parse := testParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parse(tt.tokens)
			if err != nil {
				t.Fatalf("classify(%v) failed: %v", tt.tokens, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("classify(%v) = %v, want %v", tt.tokens, got, tt.want)
			}
		})
	}
}

func TestClassifyWholeCommand(t *testing.T) {
	parse := testParser()

	got, err := parse([]string{"-c", "a.c", "b.c", "-I", "inc", "-o", "out.o", "-Wall"})
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}

	want := []Flag{
		{KindOutputNoLinking, []string{"-c"}},
		{KindSource, []string{"a.c"}},
		{KindSource, []string{"b.c"}},
		{KindDirSearch, []string{"-I", "inc"}},
		{KindOutputOutput, []string{"-o", "out.o"}},
		{KindOther, []string{"-Wall"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("classify = %v, want %v", got, want)
	}
}

func TestClassifyMissingArgument(t *testing.T) {
	parse := testParser()

	for _, tokens := range [][]string{{"-o"}, {"-c", "a.c", "-I"}} {
		_, err := parse(tokens)
		if err == nil {
			t.Fatalf("classify(%v) should have failed", tokens)
		}

		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("classify(%v) error = %T, want *ParseError", tokens, err)
		}
	}
}

// Reassembling a classification's argument lists must reproduce a token
// stream that classifies identically.
func TestClassifyRoundTrip(t *testing.T) {
	parse := testParser()
	tokens := []string{"-c", "-Iinc", "a.c", "-Wl,-rpath", "-o", "a.o", "-unknown"}

	first, err := parse(tokens)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}

	var reassembled []string
	for _, flag := range first {
		reassembled = append(reassembled, flag.Arguments...)
	}
	if !reflect.DeepEqual(reassembled, tokens) {
		t.Fatalf("reassembled stream = %v, want %v", reassembled, tokens)
	}

	second, err := parse(reassembled)
	if err != nil {
		t.Fatalf("reclassify failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("reclassification differs: %v vs %v", first, second)
	}
}

// The same token sequence must always yield the same classification: prefix
// lookup order cannot depend on map iteration.
func TestClassifyDeterminism(t *testing.T) {
	tokens := []string{"-Wl,-z,now", "-Wall", "-Iinc", "a.c"}

	parse := testParser()
	first, err := parse(tokens)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}

	for i := 0; i < 100; i++ {
		got, err := parse(tokens)
		if err != nil {
			t.Fatalf("classify failed on run %d: %v", i, err)
		}
		if !reflect.DeepEqual(got, first) {
			t.Fatalf("classification changed on run %d: %v vs %v", i, got, first)
		}
	}
}

func TestOneOfFirstMatchWins(t *testing.T) {
	// the table matcher must shadow the source matcher for table tokens, and
	// the source matcher must shadow the catch-all for non-flag tokens
	parse := testParser()

	got, err := parse([]string{"-c"})
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if got[0].Kind != KindOutputNoLinking {
		t.Errorf("table token classified as %v", got[0].Kind)
	}

	got, err = parse([]string{"file.c"})
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if got[0].Kind != KindSource {
		t.Errorf("non-flag token classified as %v", got[0].Kind)
	}
}
