package refactor

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/modkit-dev/modkit/internal/fileutil"
	"github.com/modkit-dev/modkit/internal/language"
)

// stagingSuffix names the temporary sibling used when a package moves into
// one of its own subpackages.
const stagingSuffix = ".modkit-staging"

// RenamePackage moves the package directory oldPkg to newPkg under the
// language's source root, prunes the directories the move emptied and
// rewrites every literal occurrence of oldPkg to newPkg in the source root.
//
// The old package directory must exist, even when oldPkg equals newPkg. A
// target that already exists as an empty directory is replaced; a non-empty
// one makes the move fail.
func RenamePackage(projectRoot string, lang language.Language, oldPkg, newPkg string) error {
	const op = "rename package"
	base := lang.SourceRoot(projectRoot)
	oldPath := filepath.Join(base, ToPath(oldPkg))
	newPath := filepath.Join(base, ToPath(newPkg))

	info, err := os.Stat(oldPath)
	if err != nil {
		return statError(op, oldPath, err)
	}
	if !info.IsDir() {
		return &Error{Kind: KindNotFound, Op: op, Path: oldPath, Err: fmt.Errorf("not a directory")}
	}
	if oldPkg == newPkg {
		return nil
	}

	src := oldPath
	if isInside(newPath, oldPath) {
		// The target lives inside the source; move the source aside first.
		src = oldPath + stagingSuffix
		if err := os.Rename(oldPath, src); err != nil {
			return &Error{Kind: KindIO, Op: op, Path: oldPath, Err: err}
		}
	}

	// os.Rename fails with EEXIST on an existing directory, empty or not, so
	// only the parent is created and an empty target is removed first.
	if err := os.MkdirAll(filepath.Dir(newPath), 0o755); err != nil {
		return &Error{Kind: KindIO, Op: op, Path: newPath, Err: err}
	}
	if err := os.Remove(newPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return &Error{Kind: KindIO, Op: op, Path: newPath, Err: err}
	}
	if err := os.Rename(src, newPath); err != nil {
		return &Error{Kind: KindIO, Op: op, Path: newPath, Err: err}
	}

	prune(oldPath, base)

	if err := fileutil.ReplaceAll(base, oldPkg, newPkg); err != nil {
		return &Error{Kind: KindIO, Op: op, Path: base, Err: err}
	}
	return nil
}

// RenameClass moves the class file for oldClass to the file for newClass
// (<base>/<dotted path>.<ext>), prunes the directories the move emptied and
// rewrites every occurrence of the old simple class name to the new one in
// the source root. Package declarations are not touched.
func RenameClass(projectRoot string, lang language.Language, oldClass, newClass string) error {
	const op = "rename class"
	base := lang.SourceRoot(projectRoot)
	oldPath := ClassPath(projectRoot, lang, oldClass)
	newPath := ClassPath(projectRoot, lang, newClass)

	if _, err := os.Stat(oldPath); err != nil {
		return statError(op, oldPath, err)
	}
	if oldClass == newClass {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(newPath), 0o755); err != nil {
		return &Error{Kind: KindIO, Op: op, Path: filepath.Dir(newPath), Err: err}
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return &Error{Kind: KindIO, Op: op, Path: newPath, Err: err}
	}

	prune(oldPath, base)

	if err := fileutil.ReplaceAll(base, SimpleName(oldClass), SimpleName(newClass)); err != nil {
		return &Error{Kind: KindIO, Op: op, Path: base, Err: err}
	}
	return nil
}

// ClassPath returns the source file path of a dotted class name.
func ClassPath(projectRoot string, lang language.Language, class string) string {
	return filepath.Join(lang.SourceRoot(projectRoot), ToPath(class)+"."+lang.Extension())
}

// ClassExists reports whether the source file of class exists in the
// language's module.
func ClassExists(projectRoot string, lang language.Language, class string) bool {
	info, err := os.Stat(ClassPath(projectRoot, lang, class))
	return err == nil && info.Mode().IsRegular()
}

// prune removes emptied parents of vacated. Failures leave harmless empty
// directories behind and are only logged.
func prune(vacated, base string) {
	if err := fileutil.PruneEmptyParents(vacated, base); err != nil {
		slog.Warn("could not prune empty directories", "path", vacated, "error", err)
	}
}

func statError(op, path string, err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return &Error{Kind: KindNotFound, Op: op, Path: path, Err: err}
	}
	return &Error{Kind: KindIO, Op: op, Path: path, Err: err}
}

// isInside reports whether path lies strictly below dir.
func isInside(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == "." || rel == ".." || filepath.IsAbs(rel) {
		return false
	}
	return !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
