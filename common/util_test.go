package common

import (
	"os"
	"reflect"
	"testing"
)

func TestSplitSearchPath(t *testing.T) {
	sep := string(os.PathListSeparator)

	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"single entry", "/usr/include", []string{"/usr/include"}},
		{"two entries", "/a" + sep + "/b", []string{"/a", "/b"}},
		{"leading empty segment", sep + "/opt/include", []string{"", "/opt/include"}},
		{"trailing empty segment", "/usr/x" + sep, []string{"/usr/x", ""}},
		{"only separator", sep, []string{"", ""}},
		{"empty value", "", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitSearchPath(tt.value); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSearchPath(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
