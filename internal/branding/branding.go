// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Forks change the CLI name, home directory and
// default template repositories there without touching Go code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName             string `yaml:"cli_name"`
	DisplayName         string `yaml:"display_name"`
	Description         string `yaml:"description"`
	HomeDir             string `yaml:"home_dir"`
	EnvPrefix           string `yaml:"env_prefix"`
	GoModule            string `yaml:"go_module"`
	GitHubRepo          string `yaml:"github_repo"`
	JavaTemplateURL     string `yaml:"java_template_url"`
	KotlinTemplateURL   string `yaml:"kotlin_template_url"`
	DefaultMainClass    string `yaml:"default_main_class"`
	Placeholder         string `yaml:"placeholder"`
	MinMinecraftVersion string `yaml:"min_minecraft_version"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:             "modkit",
			DisplayName:         "Modkit",
			Description:         "Scaffolds new Fabric mod projects",
			HomeDir:             ".modkit",
			EnvPrefix:           "MODKIT",
			GoModule:            "github.com/modkit-dev/modkit",
			GitHubRepo:          "modkit-dev/modkit",
			JavaTemplateURL:     "https://github.com/FabricMC/fabric-example-mod.git",
			KotlinTemplateURL:   "https://github.com/clabe45/fabric-example-mod-kotlin.git",
			DefaultMainClass:    "net.fabricmc.example.ExampleMod",
			Placeholder:         "modid",
			MinMinecraftVersion: "1.14",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "modkit").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Modkit").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".modkit").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "MODKIT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string (e.g., "modkit-dev/modkit").
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// JavaTemplateURL returns the default git URL of the Java example mod.
func JavaTemplateURL() string { load(); return defaults.JavaTemplateURL }

// KotlinTemplateURL returns the default git URL of the Kotlin example mod.
func KotlinTemplateURL() string { load(); return defaults.KotlinTemplateURL }

// DefaultMainClass returns the entrypoint class the templates ship with.
func DefaultMainClass() string { load(); return defaults.DefaultMainClass }

// Placeholder returns the mod id token used throughout the templates.
func Placeholder() string { load(); return defaults.Placeholder }

// MinMinecraftVersion returns the oldest Minecraft version templates exist for.
func MinMinecraftVersion() string { load(); return defaults.MinMinecraftVersion }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("home") → "MODKIT_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
