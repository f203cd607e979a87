// Package template describes the example-mod repositories new projects are
// cloned from.
package template

import (
	"os"

	"github.com/modkit-dev/modkit/internal/branding"
	"github.com/modkit-dev/modkit/internal/config"
	"github.com/modkit-dev/modkit/internal/language"
	"github.com/modkit-dev/modkit/internal/refactor"
)

// Template is one example-mod repository and the names it ships with.
type Template struct {
	Language    language.Language
	URL         string
	MainClass   string              // Fully qualified entrypoint class
	Placeholder string              // Mod id token used in sources and configs
	Modules     []language.Language // Source modules to refactor, primary first
}

// Package returns the package of the template's entrypoint class.
func (t Template) Package() string {
	return refactor.PackageOf(t.MainClass)
}

// Source reports where the URL came from: "env", "config" or "default".
func Source(lang language.Language) string {
	_, source := resolveURL(lang)
	return source
}

// For returns the template for lang. The repository URL comes from, in
// order: MODKIT_<LANG>_TEMPLATE_URL, the templates.<lang> config key, the
// built-in default.
func For(lang language.Language) Template {
	url, _ := resolveURL(lang)
	modules := []language.Language{language.Java}
	if lang == language.Kotlin {
		// Mixins stay in Java even in the Kotlin template.
		modules = []language.Language{language.Kotlin, language.Java}
	}
	return Template{
		Language:    lang,
		URL:         url,
		MainClass:   branding.DefaultMainClass(),
		Placeholder: branding.Placeholder(),
		Modules:     modules,
	}
}

// All returns the template for every supported language.
func All() []Template {
	all := make([]Template, 0, len(language.All))
	for _, lang := range language.All {
		all = append(all, For(lang))
	}
	return all
}

func resolveURL(lang language.Language) (string, string) {
	if url := os.Getenv(branding.EnvVar(lang.ModuleName() + "_template_url")); url != "" {
		return url, "env"
	}
	if url := config.Get("templates." + lang.ModuleName()); url != "" {
		return url, "config"
	}
	if lang == language.Kotlin {
		return branding.KotlinTemplateURL(), "default"
	}
	return branding.JavaTemplateURL(), "default"
}
