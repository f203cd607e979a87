package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/modkit-dev/modkit/internal/branding"
	"github.com/modkit-dev/modkit/internal/project"
)

// ExitCode returns the process exit status for an error returned by Execute.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var perr *project.Error
	if errors.As(err, &perr) {
		return perr.Kind.ExitCode()
	}
	return 1
}

// PrintError writes err and, when there is one, a hint on how to fix it.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if hint := suggestion(err); hint != "" {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}

func suggestion(err error) string {
	var perr *project.Error
	if !errors.As(err, &perr) {
		return ""
	}
	switch perr.Kind {
	case project.KindToolMissing:
		return "install git (https://git-scm.com/downloads) and make sure it is on your PATH"
	case project.KindUnsupportedVersion:
		return "the template has no branch for this Minecraft version; pick another with --minecraft-version or omit it to use the latest"
	case project.KindValidation:
		return fmt.Sprintf("run '%s new --help' for usage", branding.CLIName())
	case project.KindToolFailed:
		return fmt.Sprintf("rerun with --verbose for details; '%s doctor' checks your git setup", branding.CLIName())
	}
	return ""
}
