package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gradleProperties = `# Done to increase the memory available to gradle.
org.gradle.jvmargs=-Xmx1G

# Fabric Properties
	# check these on https://fabricmc.net/develop
	minecraft_version=1.19
	yarn_mappings=1.19+build.1
	loader_version=0.14.6

# Mod Properties
	mod_version = 1.0.0
	maven_group = com.example
	archives_base_name = fabric-example-mod
`

func TestPatchProperties(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gradle.properties")
	require.NoError(t, os.WriteFile(path, []byte(gradleProperties), 0o644))

	err := PatchProperties(path, map[string]string{
		"maven_group":        "com.coolmod",
		"archives_base_name": "coolmod",
		"minecraft_version":  "1.20",
		"zeta":               "last",
		"alpha":              "first",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `# Done to increase the memory available to gradle.
org.gradle.jvmargs=-Xmx1G

# Fabric Properties
	# check these on https://fabricmc.net/develop
	minecraft_version=1.20
	yarn_mappings=1.19+build.1
	loader_version=0.14.6

# Mod Properties
	mod_version = 1.0.0
	maven_group = com.coolmod
	archives_base_name = coolmod
alpha=first
zeta=last
`
	assert.Equal(t, want, string(data))
}

func TestPatchPropertiesKeepsCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gradle.properties")
	in := "# Mod Properties\r\nmaven_group = com.example\r\narchives_base_name=fabric-example-mod\r\n"
	require.NoError(t, os.WriteFile(path, []byte(in), 0o644))

	err := PatchProperties(path, map[string]string{
		"maven_group":        "com.coolmod",
		"archives_base_name": "coolmod",
		"mod_version":        "1.0.0",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Mod Properties\r\nmaven_group = com.coolmod\r\narchives_base_name=coolmod\r\nmod_version=1.0.0\r\n", string(data))

	props, err := ReadProperties(path)
	require.NoError(t, err)
	assert.Equal(t, "com.coolmod", props["maven_group"])
}

func TestReadProperties(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gradle.properties")
	require.NoError(t, os.WriteFile(path, []byte(gradleProperties+"colon: value\r\n"), 0o644))

	props, err := ReadProperties(path)
	require.NoError(t, err)
	assert.Equal(t, "-Xmx1G", props["org.gradle.jvmargs"])
	assert.Equal(t, "fabric-example-mod", props["archives_base_name"])
	assert.Equal(t, "1.19", props["minecraft_version"])
	assert.Equal(t, "value", props["colon"])
	assert.NotContains(t, props, "# check these on https")
}

func TestPatchPropertiesMissingFile(t *testing.T) {
	err := PatchProperties(filepath.Join(t.TempDir(), "missing.properties"), map[string]string{"a": "b"})
	var derr *Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, KindIO, derr.Kind)
}
