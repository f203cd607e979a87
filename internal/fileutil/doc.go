// Package fileutil holds the filesystem primitives the refactor engine is
// built on: a recursive literal text substitution that leaves binary assets
// untouched, and an upward pruner that removes directories emptied by a move.
package fileutil
