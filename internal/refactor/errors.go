package refactor

import "fmt"

// Kind classifies a refactor failure.
type Kind int

const (
	// KindIO is any filesystem failure during a move or rewrite.
	KindIO Kind = iota
	// KindNotFound means the package directory or class file to move is missing.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	default:
		return "io"
	}
}

// Error wraps a refactor failure with the operation and path involved.
type Error struct {
	Kind Kind
	Op   string // e.g. "rename package", "rename class"
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
