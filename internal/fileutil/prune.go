package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PruneEmptyParents removes the directories left empty above a path that was
// just moved away. It starts at the parent of vacated and walks upward while
// each directory is empty, stopping at the first non-empty one.
//
// The walk is bounded by stop: stop itself and anything outside it are never
// inspected or removed.
func PruneEmptyParents(vacated, stop string) error {
	stop = filepath.Clean(stop)
	dir := filepath.Dir(filepath.Clean(vacated))

	for isWithin(stop, dir) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("reading directory %s: %w", dir, err)
		}
		if len(entries) > 0 {
			return nil
		}

		if err := os.Remove(dir); err != nil {
			return fmt.Errorf("removing empty directory %s: %w", dir, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil
		}
		dir = parent
	}

	return nil
}

// isWithin reports whether path lies strictly below root.
func isWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil || filepath.IsAbs(rel) {
		return false
	}
	if rel == "." || rel == ".." {
		return false
	}
	return !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
