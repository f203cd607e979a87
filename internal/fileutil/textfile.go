package fileutil

import (
	"bytes"
	"path/filepath"
	"strings"
)

// sniffLen is how many leading bytes are checked for a NUL byte.
const sniffLen = 512

// textExtensions are the file extensions eligible for text substitution.
var textExtensions = map[string]bool{
	"cfg":        true,
	"gradle":     true,
	"java":       true,
	"json":       true,
	"kt":         true,
	"kts":        true,
	"md":         true,
	"mcmeta":     true,
	"properties": true,
	"toml":       true,
	"txt":        true,
	"xml":        true,
	"yaml":       true,
	"yml":        true,
}

// IsTextFile reports whether path has an extension on the text allow-list.
// Files without an extension are never text.
func IsTextFile(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return textExtensions[strings.ToLower(ext)]
}

// looksBinary reports whether the head of data contains a NUL byte.
func looksBinary(data []byte) bool {
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}
	return bytes.IndexByte(data, 0) >= 0
}
