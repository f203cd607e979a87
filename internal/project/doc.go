// Package project creates a new Fabric mod project from an example-mod
// template.
//
// Create runs a fixed, forward-only sequence: validate the inputs, clone the
// template, replace its git history with a fresh repository, move the
// entrypoint package and class, substitute the mod id placeholder, relocate
// the asset directory and patch fabric.mod.json, the mixin configuration and
// gradle.properties. The first failure aborts the run and leaves the
// partially created directory in place; errors carry a Kind so callers can
// tell bad input from a missing git binary or an unsupported Minecraft
// version.
package project
