package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/modkit-dev/modkit/internal/config"
	"github.com/modkit-dev/modkit/internal/manifest"
	"github.com/modkit-dev/modkit/internal/template"
	"github.com/modkit-dev/modkit/internal/vcs"
)

// minGitVersion is the oldest git known to support shallow branch clones.
const minGitVersion = "1.7.10"

var checkManifest string

func init() {
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a fabric.mod.json file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that projects can be created",
	Long:  `Run diagnostic checks on git, the config file and the template repositories.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if checkManifest != "" {
			return runManifestCheck(w, checkManifest)
		}

		gitErr := runGitCheck(w)
		runConfigCheck(w)
		runTemplateCheck(w)
		return gitErr
	},
}

func runGitCheck(w io.Writer) error {
	fmt.Fprintln(w, "Git check:")

	var opts []vcs.Option
	if gitRunner != nil {
		opts = append(opts, vcs.WithRunner(gitRunner))
	}
	raw, err := vcs.NewContext("", opts...).Version()
	if err != nil {
		if vcs.IsToolMissing(err) {
			fmt.Fprintln(w, "  [MISS] git not found on PATH")
		} else {
			fmt.Fprintf(w, "  [FAIL] git --version: %v\n", err)
		}
		return fmt.Errorf("git is not usable: %w", err)
	}

	version, err := semver.NewVersion(raw)
	if err != nil {
		fmt.Fprintf(w, "  [WARN] git %s: unrecognized version\n", raw)
		return nil
	}
	if version.LessThan(semver.MustParse(minGitVersion)) {
		fmt.Fprintf(w, "  [WARN] git %s is older than %s; shallow branch clones may fail\n", raw, minGitVersion)
		return nil
	}
	fmt.Fprintf(w, "  [ OK ] git %s\n", raw)
	return nil
}

func runConfigCheck(w io.Writer) {
	fmt.Fprintln(w, "Config check:")
	path := config.FilePath()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(w, "  [INFO] no config file at %s (defaults in use)\n", path)
		return
	} else if err != nil {
		fmt.Fprintf(w, "  [WARN] cannot read %s: %v\n", path, err)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s\n", path)
}

func runTemplateCheck(w io.Writer) {
	fmt.Fprintln(w, "Templates:")
	for _, tpl := range template.All() {
		fmt.Fprintf(w, "  [ OK ] %s: %s (%s)\n", tpl.Language, tpl.URL, template.Source(tpl.Language))
	}
}

func runManifestCheck(w io.Writer, path string) error {
	fmt.Fprintf(w, "Manifest validation: %s\n", path)

	// Validate against JSON Schema.
	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		// Parse to get id and version for the success message.
		mod, err := manifest.Parse(path)
		if err != nil {
			fmt.Fprintln(w, "  [ OK ] Valid manifest")
			return nil
		}
		fmt.Fprintf(w, "  [ OK ] Valid manifest: %s (v%s)\n", mod.ID, mod.Version)
		return nil
	}

	// Report validation issues.
	fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "    - %s\n", issue)
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}
