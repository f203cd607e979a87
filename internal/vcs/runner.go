package vcs

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
)

// Runner executes a command in a directory and returns its standard output.
type Runner interface {
	Run(dir, name string, args ...string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// NewExecRunner returns a Runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes name with args in dir. A missing executable yields an *Error
// of kind KindToolMissing; a non-zero exit yields KindToolFailed with the
// captured stderr as Output.
func (r *ExecRunner) Run(dir, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	op := strings.TrimSpace(name + " " + firstArg(args))
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			return stdout.String(), &Error{
				Kind:   KindToolFailed,
				Op:     op,
				Output: strings.TrimSpace(stderr.String()),
				Err:    err,
			}
		case errors.Is(err, exec.ErrNotFound):
			return "", &Error{Kind: KindToolMissing, Op: op, Err: fmt.Errorf("%w: %v", ErrGitNotFound, err)}
		case errors.Is(err, fs.ErrNotExist) && !dirExists(dir):
			return "", &Error{Kind: KindOther, Op: op, Err: fmt.Errorf("working directory %s: %w", dir, err)}
		case errors.Is(err, fs.ErrNotExist):
			return "", &Error{Kind: KindToolMissing, Op: op, Err: fmt.Errorf("%w: %v", ErrGitNotFound, err)}
		default:
			return "", &Error{Kind: KindOther, Op: op, Err: err}
		}
	}

	return stdout.String(), nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
