package fileutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// ReplaceAll replaces every literal occurrence of from with to in each text
// file under root. Directories are descended unconditionally; symlinks and
// other special files are skipped. Files that do not contain from are left
// untouched. The first I/O error aborts the walk; files already rewritten
// stay rewritten.
func ReplaceAll(root, from, to string) error {
	if from == "" || from == to {
		return nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", root, err)
	}

	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())

		if entry.IsDir() {
			if err := ReplaceAll(path, from, to); err != nil {
				return err
			}
		} else if entry.Type().IsRegular() {
			if err := replaceInFile(path, from, to); err != nil {
				return err
			}
		}
	}

	return nil
}

// replaceInFile rewrites a single file in place, keeping its permissions.
func replaceInFile(path, from, to string) error {
	if !IsTextFile(path) {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if looksBinary(data) || !bytes.Contains(data, []byte(from)) {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	out := bytes.ReplaceAll(data, []byte(from), []byte(to))
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
