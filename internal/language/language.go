package language

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Language is a closed set of source languages. The zero value is Java.
type Language int

// Supported languages.
const (
	Java Language = iota
	Kotlin
)

// All lists every supported language in display order.
var All = []Language{Java, Kotlin}

// ModuleName returns the directory name of the language's module under src/main.
func (l Language) ModuleName() string {
	switch l {
	case Kotlin:
		return "kotlin"
	default:
		return "java"
	}
}

// Extension returns the source file extension without the leading dot.
func (l Language) Extension() string {
	switch l {
	case Kotlin:
		return "kt"
	default:
		return "java"
	}
}

// String returns the module name.
func (l Language) String() string {
	return l.ModuleName()
}

// SourceRoot returns <project>/src/main/<module-name>.
func (l Language) SourceRoot(projectRoot string) string {
	return filepath.Join(projectRoot, "src", "main", l.ModuleName())
}

// Parse converts a module name ("java", "kotlin") to a Language.
func Parse(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "java":
		return Java, nil
	case "kotlin", "kt":
		return Kotlin, nil
	default:
		return Java, fmt.Errorf("unknown language %q: supported languages are %q and %q", s, "java", "kotlin")
	}
}
