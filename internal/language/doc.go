// Package language models the two source languages a Fabric mod template can
// be written in. Each language owns a module under src/main/<module-name> and
// a source file extension; all path construction in the refactor engine is
// driven off these two values.
package language
