package project

import (
	"errors"
	"fmt"
	"testing"

	"github.com/modkit-dev/modkit/internal/document"
	"github.com/modkit-dev/modkit/internal/refactor"
	"github.com/modkit-dev/modkit/internal/vcs"
)

func TestKind_ExitCode(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindIO, 1},
		{KindValidation, 2},
		{KindToolMissing, 3},
		{KindUnsupportedVersion, 4},
		{KindToolFailed, 5},
		{KindFormat, 6},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.ExitCode(); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWrap_KeepsClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"git missing", &vcs.Error{Kind: vcs.KindToolMissing, Op: "git init", Err: vcs.ErrGitNotFound}, KindToolMissing},
		{"git failed", &vcs.Error{Kind: vcs.KindToolFailed, Op: "git init", Output: "fatal", Err: errors.New("exit status 128")}, KindToolFailed},
		{"document format", &document.Error{Kind: document.KindFormat, Err: errors.New("bad")}, KindFormat},
		{"document io", &document.Error{Kind: document.KindIO, Err: errors.New("denied")}, KindIO},
		{"refactor", &refactor.Error{Kind: refactor.KindNotFound, Op: "rename package", Err: errors.New("missing")}, KindIO},
		{"wrapped git", fmt.Errorf("context: %w", &vcs.Error{Kind: vcs.KindToolMissing, Err: vcs.ErrGitNotFound}), KindToolMissing},
		{"plain", errors.New("boom"), KindIO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wrap("step", tt.err)
			if got := KindOf(err); got != tt.want {
				t.Errorf("KindOf(wrap()) = %v, want %v", got, tt.want)
			}
			if !errors.Is(err, tt.err) {
				t.Error("wrapped error lost its cause")
			}
		})
	}
}

func TestWrap_Nil(t *testing.T) {
	if err := wrap("step", nil); err != nil {
		t.Errorf("wrap(nil) = %v, want nil", err)
	}
}

func TestKindOf_Foreign(t *testing.T) {
	if got := KindOf(errors.New("x")); got != KindIO {
		t.Errorf("KindOf() = %v, want %v", got, KindIO)
	}
	wrapped := fmt.Errorf("outer: %w", validationError("bad input"))
	if got := KindOf(wrapped); got != KindValidation {
		t.Errorf("KindOf() = %v, want %v", got, KindValidation)
	}
}

func TestError_Message(t *testing.T) {
	err := &Error{Kind: KindIO, Op: "relocate assets", Err: errors.New("permission denied")}
	if got := err.Error(); got != "relocate assets: permission denied" {
		t.Errorf("Error() = %q", got)
	}
}
