package common

import (
	"os"
	"strings"
)

// SplitSearchPath divides an OS search-path string (eg. the value of CPATH)
// into its ordered list of segments.  Empty segments are preserved: in a value
// like `:/opt/include`, the leading empty segment refers to the current
// working directory and the caller decides how to spell that.
func SplitSearchPath(value string) []string {
	return strings.Split(value, string(os.PathListSeparator))
}
