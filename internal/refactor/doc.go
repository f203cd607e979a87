// Package refactor renames Java-style packages and classes inside a freshly
// cloned project tree. A dotted name maps to nested directories under a
// language's source root (src/main/<module>); after each move the directories
// emptied by it are pruned and textual references to the old name are
// rewritten across the whole source root.
//
// Package rename must run before class rename when both target the same
// entrypoint: RenameClass locates the file by its current package path.
package refactor
