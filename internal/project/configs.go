package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modkit-dev/modkit/internal/document"
	"github.com/modkit-dev/modkit/internal/manifest"
)

const (
	gradleProperties = "gradle.properties"
	mixinsSuffix     = ".mixins.json"
)

// patchConfigs rewrites the identity fields of fabric.mod.json, the mixin
// configuration and gradle.properties.
func (r *run) patchConfigs(result *Result) error {
	if err := r.patchModJSON(); err != nil {
		return err
	}
	if err := r.patchMixins(); err != nil {
		return err
	}
	return r.patchGradle(result)
}

func (r *run) patchModJSON() error {
	const op = "patch " + manifest.FileName
	path := filepath.Join(r.resourcesDir(), manifest.FileName)

	doc, err := document.LoadJSON(path)
	if err != nil {
		return wrap(op, err)
	}

	fields := [][2]string{
		{"id", r.opts.ModID},
		{"name", r.opts.Name},
	}
	if doc.Has("icon") {
		fields = append(fields, [2]string{"icon", fmt.Sprintf("assets/%s/icon.png", r.opts.ModID)})
	}

	// Kotlin entrypoints are {"adapter": "kotlin", "value": "..."} objects.
	entrypoint := "entrypoints.main[0]"
	if typ, _ := doc.Type(entrypoint); typ == "object" {
		entrypoint += ".value"
	}
	fields = append(fields, [2]string{entrypoint, r.opts.MainClass})

	if doc.Has("mixins[0]") {
		mixin := "mixins[0]"
		if typ, _ := doc.Type(mixin); typ == "object" {
			mixin += ".config"
		}
		fields = append(fields, [2]string{mixin, r.opts.ModID + mixinsSuffix})
	}

	for _, f := range fields {
		r.log.Debug("setting manifest field", "field", f[0], "value", f[1])
		if err := doc.SetString(f[0], f[1]); err != nil {
			return wrap(op, err)
		}
	}
	return wrap(op, doc.Save(path))
}

// patchMixins renames <placeholder>.mixins.json after the mod id and points
// its package at the moved mixin package.
func (r *run) patchMixins() error {
	const op = "patch mixin configuration"
	from := filepath.Join(r.resourcesDir(), r.tpl.Placeholder+mixinsSuffix)
	to := filepath.Join(r.resourcesDir(), r.opts.ModID+mixinsSuffix)

	if _, err := os.Stat(from); errors.Is(err, os.ErrNotExist) {
		r.log.Debug("template has no mixin configuration", "path", from)
		return nil
	}
	if from != to {
		if err := os.Rename(from, to); err != nil {
			return &Error{Kind: KindIO, Op: op, Err: err}
		}
	}

	doc, err := document.LoadJSON(to)
	if err != nil {
		return wrap(op, err)
	}
	if err := doc.SetString("package", r.pkg+".mixin"); err != nil {
		return wrap(op, err)
	}
	return wrap(op, doc.Save(to))
}

// patchGradle sets the artifact name and group. The Minecraft version pinned
// by the cloned branch is read back, not overwritten.
func (r *run) patchGradle(result *Result) error {
	const op = "patch " + gradleProperties
	path := filepath.Join(r.root, gradleProperties)

	err := document.PatchProperties(path, map[string]string{
		"archives_base_name": r.opts.ModID,
		"maven_group":        r.pkg,
	})
	if err != nil {
		return wrap(op, err)
	}

	props, err := document.ReadProperties(path)
	if err != nil {
		return wrap(op, err)
	}
	result.MinecraftVersion = props["minecraft_version"]
	return nil
}

// validateManifest checks the patched fabric.mod.json against the schema.
// Problems are reported as warnings; the project is already on disk.
func (r *run) validateManifest() []string {
	path := filepath.Join(r.resourcesDir(), manifest.FileName)
	res, err := manifest.ValidateFile(path)
	if err != nil {
		return []string{fmt.Sprintf("Could not validate %s: %v", manifest.FileName, err)}
	}

	var warnings []string
	for _, issue := range res.Issues {
		warnings = append(warnings, manifest.FileName+": "+issue.String())
	}
	return warnings
}
