package document

import (
	"errors"
	"fmt"
)

// Kind classifies a document failure.
type Kind int

const (
	// KindIO is a read or write failure.
	KindIO Kind = iota
	// KindFormat means the document is malformed or lacks the expected shape.
	KindFormat
)

func (k Kind) String() string {
	if k == KindFormat {
		return "format"
	}
	return "io"
}

// Error describes a failure to load, patch or save a document.
type Error struct {
	Kind  Kind
	Path  string // File path, empty for in-memory documents
	Field string // Field path being accessed, if any
	Err   error
}

func (e *Error) Error() string {
	msg := e.Err.Error()
	if e.Field != "" {
		msg = fmt.Sprintf("field %q: %s", e.Field, msg)
	}
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrFieldNotFound is wrapped when a field path does not resolve.
var ErrFieldNotFound = errors.New("field not found")

func formatError(field string, format string, args ...any) *Error {
	return &Error{Kind: KindFormat, Field: field, Err: fmt.Errorf(format, args...)}
}
