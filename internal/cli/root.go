package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/modkit-dev/modkit/internal/branding"
	"github.com/modkit-dev/modkit/internal/config"
	"github.com/modkit-dev/modkit/internal/vcs"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var verbose bool

// gitRunner replaces the os/exec git runner when set. Tests use it.
var gitRunner vcs.Runner

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every step in detail")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates new Fabric mod projects. It clones the official Java or Kotlin
example mod, gives it a fresh git history and renames its package, entrypoint
class, mod id and assets to yours.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(cmd.ErrOrStderr(), verbose)
		config.Load()
	},
}

// setupLogging installs the default slog logger. Debug output is only shown
// with --verbose.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
