package refactor

import (
	"path/filepath"
	"strings"
)

// ToPath maps a dotted name to a relative path: "a.b.C" -> "a/b/C".
func ToPath(dotted string) string {
	return strings.ReplaceAll(dotted, ".", string(filepath.Separator))
}

// FromPath maps a relative path back to a dotted name: "a/b/C" -> "a.b.C".
func FromPath(path string) string {
	return strings.ReplaceAll(path, string(filepath.Separator), ".")
}

// SimpleName returns the last segment of a dotted name.
func SimpleName(dotted string) string {
	if i := strings.LastIndex(dotted, "."); i >= 0 {
		return dotted[i+1:]
	}
	return dotted
}

// PackageOf returns everything before the last segment of a dotted name, or
// "" when the name has a single segment.
func PackageOf(dotted string) string {
	if i := strings.LastIndex(dotted, "."); i >= 0 {
		return dotted[:i]
	}
	return ""
}

// ValidDotted reports whether every dot-separated segment is non-empty.
func ValidDotted(dotted string) bool {
	if dotted == "" {
		return false
	}
	for _, seg := range strings.Split(dotted, ".") {
		if seg == "" {
			return false
		}
	}
	return true
}
