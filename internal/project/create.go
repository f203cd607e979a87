package project

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/modkit-dev/modkit/internal/fileutil"
	"github.com/modkit-dev/modkit/internal/language"
	"github.com/modkit-dev/modkit/internal/refactor"
	"github.com/modkit-dev/modkit/internal/template"
	"github.com/modkit-dev/modkit/internal/vcs"
)

// Options configures Create.
type Options struct {
	Path             string            // Destination directory; must not exist or be empty
	ModID            string            // Defaults to the base name of Path
	Name             string            // Display name; defaults to DefaultName(ModID)
	MinecraftVersion string            // "<major>.<minor>"; empty clones the template's default branch
	Language         language.Language // Template variant
	MainClass        string            // Fully qualified entrypoint; defaults to the template's

	Template *template.Template // Overrides template.For(Language)
	Runner   vcs.Runner         // Overrides the os/exec git runner
	Out      io.Writer          // Progress lines; nil discards them
	Logger   *slog.Logger       // Debug details; nil uses slog.Default()
}

// Result describes a created project.
type Result struct {
	Path             string
	ModID            string
	Name             string
	Package          string
	MainClass        string
	Language         language.Language
	MinecraftVersion string // minecraft_version pinned in gradle.properties, if any
	Warnings         []string
}

// step is one stage of Create, announced on Out when progress is set.
type step struct {
	progress string
	fn       func() error
}

// run holds the resolved state of one Create call.
type run struct {
	opts Options
	tpl  template.Template
	root string
	pkg  string
	out  io.Writer
	log  *slog.Logger
}

// Create scaffolds a new mod project as described by opts.
func Create(opts Options) (*Result, error) {
	r, err := newRun(opts)
	if err != nil {
		return nil, err
	}

	steps := []step{
		{"Cloning template...", r.cloneTemplate},
		{"", r.detachHistory},
	}
	for _, lang := range r.tpl.Modules {
		lang := lang
		steps = append(steps, step{
			progress: fmt.Sprintf("Refactoring %s module...", lang),
			fn:       func() error { return r.refactorModule(lang) },
		})
	}
	steps = append(steps, step{"Updating configuration...", r.relocateAssets})

	for _, s := range steps {
		if s.progress != "" {
			fmt.Fprintln(r.out, s.progress)
		}
		if err := s.fn(); err != nil {
			return nil, err
		}
	}

	result := &Result{
		Path:      r.root,
		ModID:     r.opts.ModID,
		Name:      r.opts.Name,
		Package:   r.pkg,
		MainClass: r.opts.MainClass,
		Language:  r.opts.Language,
	}
	if err := r.patchConfigs(result); err != nil {
		return nil, err
	}
	result.Warnings = append(result.Warnings, r.validateManifest()...)
	return result, nil
}

// newRun fills in defaults and validates every input. Nothing on disk is
// touched.
func newRun(opts Options) (*run, error) {
	if opts.Path == "" {
		return nil, validationError("a destination path is required")
	}
	root, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, &Error{Kind: KindIO, Op: "resolve path", Err: err}
	}

	if opts.MinecraftVersion != "" {
		if err := ValidateMinecraftVersion(opts.MinecraftVersion); err != nil {
			return nil, err
		}
	}

	tpl := template.For(opts.Language)
	if opts.Template != nil {
		tpl = *opts.Template
	}

	if opts.ModID == "" {
		opts.ModID = DefaultModID(root)
	}
	if err := ValidateModID(opts.ModID); err != nil {
		return nil, err
	}
	if opts.Name == "" {
		opts.Name = DefaultName(opts.ModID)
	}
	if opts.MainClass == "" {
		opts.MainClass = tpl.MainClass
	}
	if err := ValidateMainClass(opts.MainClass); err != nil {
		return nil, err
	}
	if err := ValidatePackageMove(tpl.Package(), refactor.PackageOf(opts.MainClass)); err != nil {
		return nil, err
	}

	if err := checkDestination(root); err != nil {
		return nil, err
	}

	r := &run{
		opts: opts,
		tpl:  tpl,
		root: root,
		pkg:  refactor.PackageOf(opts.MainClass),
		out:  opts.Out,
		log:  opts.Logger,
	}
	if r.out == nil {
		r.out = io.Discard
	}
	if r.log == nil {
		r.log = slog.Default()
	}
	return r, nil
}

// checkDestination rejects a destination that exists and is not an empty
// directory.
func checkDestination(root string) error {
	info, err := os.Stat(root)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return &Error{Kind: KindIO, Op: "check destination", Err: err}
	}
	if !info.IsDir() {
		return validationError("destination %s exists and is not a directory", root)
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return &Error{Kind: KindIO, Op: "check destination", Err: err}
	}
	if len(entries) > 0 {
		return validationError("destination %s already exists and is not empty", root)
	}
	return nil
}

func (r *run) gitContext(dir string) *vcs.Context {
	if r.opts.Runner != nil {
		return vcs.NewContext(dir, vcs.WithRunner(r.opts.Runner))
	}
	return vcs.NewContext(dir)
}

// cloneTemplate clones the template into the destination. With a Minecraft
// version the branch of that name is cloned, and a git failure is reported
// as an unsupported version since a missing branch is by far the most
// likely cause.
func (r *run) cloneTemplate() error {
	const op = "clone template"
	parent := filepath.Dir(r.root)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return &Error{Kind: KindIO, Op: op, Err: err}
	}

	opts := vcs.CloneOptions{Depth: 1, Branch: r.opts.MinecraftVersion}
	r.log.Debug("cloning template", "url", r.tpl.URL, "branch", opts.Branch, "dest", r.root)

	err := r.gitContext(parent).Clone(r.tpl.URL, r.root, opts)
	if err == nil {
		return nil
	}
	if r.opts.MinecraftVersion != "" && vcs.KindOf(err) == vcs.KindToolFailed {
		return &Error{
			Kind: KindUnsupportedVersion,
			Op:   op,
			Err:  fmt.Errorf("no %s template for Minecraft %s: %w", r.tpl.Language, r.opts.MinecraftVersion, err),
		}
	}
	return wrap(op, err)
}

// detachHistory drops the template's git metadata and starts a fresh
// repository.
func (r *run) detachHistory() error {
	r.log.Debug("removing template history", "dir", r.root)
	if err := vcs.RemoveMetadata(r.root); err != nil {
		return &Error{Kind: KindIO, Op: "remove template history", Err: err}
	}
	return wrap("initialize repository", r.gitContext(r.root).Init())
}

// refactorModule moves the template package to the new one in lang's
// source root, renames the entrypoint class where this module hosts it and
// replaces the mod id placeholder.
func (r *run) refactorModule(lang language.Language) error {
	oldPkg := r.tpl.Package()
	r.log.Debug("renaming package", "module", lang, "from", oldPkg, "to", r.pkg)
	if err := refactor.RenamePackage(r.root, lang, oldPkg, r.pkg); err != nil {
		return wrap(fmt.Sprintf("refactor %s module", lang), err)
	}

	moved := r.pkg + "." + refactor.SimpleName(r.tpl.MainClass)
	if refactor.ClassExists(r.root, lang, moved) {
		r.log.Debug("renaming class", "module", lang, "from", moved, "to", r.opts.MainClass)
		if err := refactor.RenameClass(r.root, lang, moved, r.opts.MainClass); err != nil {
			return wrap(fmt.Sprintf("refactor %s module", lang), err)
		}
	} else {
		r.log.Debug("entrypoint class not in module, skipping class rename", "module", lang)
	}

	if err := fileutil.ReplaceAll(lang.SourceRoot(r.root), r.tpl.Placeholder, r.opts.ModID); err != nil {
		return wrap(fmt.Sprintf("replace placeholder in %s module", lang), err)
	}
	return nil
}

// relocateAssets renames assets/<placeholder> to assets/<mod id>.
func (r *run) relocateAssets() error {
	assets := filepath.Join(r.resourcesDir(), "assets")
	from := filepath.Join(assets, r.tpl.Placeholder)
	to := filepath.Join(assets, r.opts.ModID)
	if from == to {
		return nil
	}
	if _, err := os.Stat(from); errors.Is(err, os.ErrNotExist) {
		r.log.Debug("no placeholder asset directory", "path", from)
		return nil
	}
	r.log.Debug("relocating assets", "from", from, "to", to)
	if err := os.Rename(from, to); err != nil {
		return &Error{Kind: KindIO, Op: "relocate assets", Err: err}
	}
	return nil
}

func (r *run) resourcesDir() string {
	return filepath.Join(r.root, "src", "main", "resources")
}
