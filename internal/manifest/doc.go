// Package manifest reads and validates fabric.mod.json, the mod metadata
// file every Fabric project ships in src/main/resources. Validation runs the
// document against an embedded JSON Schema and reports issues rather than
// failing, so a scaffolded project with an unusual template still gets
// created.
package manifest
