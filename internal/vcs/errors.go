package vcs

import "errors"

// Kind classifies a version-control failure.
type Kind int

const (
	// KindOther covers failures that happen before git runs, such as an
	// unusable working directory.
	KindOther Kind = iota
	// KindToolMissing means the git executable could not be found.
	KindToolMissing
	// KindToolFailed means git ran and exited with a non-zero status.
	KindToolFailed
)

func (k Kind) String() string {
	switch k {
	case KindToolMissing:
		return "tool missing"
	case KindToolFailed:
		return "tool failed"
	default:
		return "other"
	}
}

// ErrGitNotFound is wrapped by errors of kind KindToolMissing.
var ErrGitNotFound = errors.New("git not found")

// Error wraps a git invocation failure with context.
type Error struct {
	Kind   Kind
	Op     string // Operation that failed (e.g., "clone", "init")
	Output string // Captured stderr, trimmed
	Err    error  // Underlying error
}

func (e *Error) Error() string {
	if e.Output != "" {
		return e.Op + ": " + e.Output
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first *Error in err's chain, or KindOther.
func KindOf(err error) Kind {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Kind
	}
	return KindOther
}

// IsToolMissing reports whether err means git is not installed.
func IsToolMissing(err error) bool {
	return err != nil && KindOf(err) == KindToolMissing
}
