package template

import (
	"path/filepath"
	"testing"

	"github.com/modkit-dev/modkit/internal/config"
	"github.com/modkit-dev/modkit/internal/language"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("MODKIT_HOME", filepath.Join(t.TempDir(), ".modkit"))
	t.Setenv("MODKIT_JAVA_TEMPLATE_URL", "")
	t.Setenv("MODKIT_KOTLIN_TEMPLATE_URL", "")
	config.Reset()
	t.Cleanup(config.Reset)
	config.Load()
}

func TestFor_Defaults(t *testing.T) {
	isolate(t)

	java := For(language.Java)
	assert.Equal(t, "https://github.com/FabricMC/fabric-example-mod.git", java.URL)
	assert.Equal(t, "net.fabricmc.example.ExampleMod", java.MainClass)
	assert.Equal(t, "net.fabricmc.example", java.Package())
	assert.Equal(t, "modid", java.Placeholder)
	assert.Equal(t, []language.Language{language.Java}, java.Modules)
	assert.Equal(t, "default", Source(language.Java))

	kotlin := For(language.Kotlin)
	assert.Equal(t, "https://github.com/clabe45/fabric-example-mod-kotlin.git", kotlin.URL)
	assert.Equal(t, []language.Language{language.Kotlin, language.Java}, kotlin.Modules)
}

func TestFor_ConfigOverride(t *testing.T) {
	isolate(t)
	require.NoError(t, config.Set("templates.java", "file:///tmp/java-template"))

	assert.Equal(t, "file:///tmp/java-template", For(language.Java).URL)
	assert.Equal(t, "config", Source(language.Java))
}

func TestFor_EnvBeatsConfig(t *testing.T) {
	isolate(t)
	require.NoError(t, config.Set("templates.kotlin", "file:///from-config"))
	t.Setenv("MODKIT_KOTLIN_TEMPLATE_URL", "file:///from-env")

	assert.Equal(t, "file:///from-env", For(language.Kotlin).URL)
	assert.Equal(t, "env", Source(language.Kotlin))
}

func TestAll(t *testing.T) {
	isolate(t)
	all := All()
	require.Len(t, all, 2)
	assert.Equal(t, language.Java, all[0].Language)
	assert.Equal(t, language.Kotlin, all[1].Language)
}
