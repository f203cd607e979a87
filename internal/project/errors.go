package project

import (
	"errors"
	"fmt"

	"github.com/modkit-dev/modkit/internal/document"
	"github.com/modkit-dev/modkit/internal/vcs"
)

// Kind classifies a failed run.
type Kind int

const (
	// KindIO covers filesystem failures and anything unclassified.
	KindIO Kind = iota
	// KindValidation means an input was rejected before anything was written.
	KindValidation
	// KindToolMissing means git could not be found.
	KindToolMissing
	// KindToolFailed means git ran and reported a failure.
	KindToolFailed
	// KindUnsupportedVersion means no template exists for the requested
	// Minecraft version.
	KindUnsupportedVersion
	// KindFormat means a configuration document is malformed or lacks an
	// expected field.
	KindFormat
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindToolMissing:
		return "tool missing"
	case KindToolFailed:
		return "tool failed"
	case KindUnsupportedVersion:
		return "unsupported version"
	case KindFormat:
		return "format"
	default:
		return "io"
	}
}

// ExitCode returns the process exit status for the kind.
func (k Kind) ExitCode() int {
	switch k {
	case KindValidation:
		return 2
	case KindToolMissing:
		return 3
	case KindUnsupportedVersion:
		return 4
	case KindToolFailed:
		return 5
	case KindFormat:
		return 6
	default:
		return 1
	}
}

// Error is returned by Create for every failure.
type Error struct {
	Kind Kind
	Op   string // Step that failed (e.g., "clone template", "patch fabric.mod.json")
	Err  error
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first *Error in err's chain. Errors that
// did not come from this package are reported as KindIO.
func KindOf(err error) Kind {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return KindIO
}

func validationError(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Op: "validate", Err: fmt.Errorf(format, args...)}
}

// wrap converts an error from a lower layer into an *Error, keeping the
// lower layer's classification.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	kind := KindIO
	var (
		verr *vcs.Error
		derr *document.Error
	)
	switch {
	case errors.As(err, &verr):
		switch verr.Kind {
		case vcs.KindToolMissing:
			kind = KindToolMissing
		case vcs.KindToolFailed:
			kind = KindToolFailed
		}
	case errors.As(err, &derr):
		if derr.Kind == document.KindFormat {
			kind = KindFormat
		}
	}
	return &Error{Kind: kind, Op: op, Err: err}
}
