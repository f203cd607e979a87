package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/modkit-dev/modkit/internal/language"
)

const templateURL = "https://example.com/fabric-example-mod.git"

// iconBytes starts like a PNG and contains the placeholder after a NUL byte.
var iconBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDRmodid\x00\x01")

var javaTemplate = map[string]string{
	".git/HEAD":       "ref: refs/heads/1.19\n",
	"build.gradle":    "plugins {\n\tid 'fabric-loom' version '1.0-SNAPSHOT'\n}\n\narchivesBaseName = project.archives_base_name\n",
	"settings.gradle": "rootProject.name = 'fabric-example-mod'\n",
	"gradle.properties": `# Done to increase the memory available to gradle.
org.gradle.jvmargs=-Xmx1G

# Fabric Properties
minecraft_version=1.19.2
yarn_mappings=1.19.2+build.28
loader_version=0.14.10

# Mod Properties
mod_version = 1.0.0
maven_group = net.fabricmc
archives_base_name = fabric-example-mod
`,
	"src/main/java/net/fabricmc/example/ExampleMod.java": `package net.fabricmc.example;

import net.fabricmc.api.ModInitializer;
import org.slf4j.Logger;
import org.slf4j.LoggerFactory;

public class ExampleMod implements ModInitializer {
	public static final Logger LOGGER = LoggerFactory.getLogger("modid");

	@Override
	public void onInitialize() {
		LOGGER.info("Hello Fabric world!");
	}
}
`,
	"src/main/java/net/fabricmc/example/mixin/ExampleMixin.java": `package net.fabricmc.example.mixin;

import net.fabricmc.example.ExampleMod;
import net.minecraft.client.gui.screen.TitleScreen;
import org.spongepowered.asm.mixin.Mixin;

@Mixin(TitleScreen.class)
public class ExampleMixin {
	private void init() {
		ExampleMod.LOGGER.info("This line is printed by an example mod mixin!");
	}
}
`,
	"src/main/resources/fabric.mod.json": `{
  "schemaVersion": 1,
  "id": "modid",
  "version": "${version}",

  "name": "Example Mod",
  "description": "This is an example description! Tell everyone what your mod is about!",
  "license": "CC0-1.0",
  "icon": "assets/modid/icon.png",

  "environment": "*",
  "entrypoints": {
    "main": [
      "net.fabricmc.example.ExampleMod"
    ]
  },
  "mixins": [
    "modid.mixins.json"
  ],

  "depends": {
    "fabricloader": ">=0.14.10",
    "minecraft": "~1.19.2",
    "java": ">=17"
  }
}
`,
	"src/main/resources/modid.mixins.json": `{
  "required": true,
  "minVersion": "0.8",
  "package": "net.fabricmc.example.mixin",
  "compatibilityLevel": "JAVA_17",
  "mixins": [],
  "client": [
    "ExampleMixin"
  ],
  "injectors": {
    "defaultRequire": 1
  }
}
`,
	"src/main/resources/assets/modid/lang/en_us.json": "{\n  \"item.modid.example\": \"Example\"\n}\n",
}

var kotlinTemplate = map[string]string{
	".git/HEAD":         "ref: refs/heads/master\n",
	"build.gradle.kts":  "plugins {\n    kotlin(\"jvm\") version \"1.7.20\"\n}\n",
	"gradle.properties": "minecraft_version=1.19.2\nmaven_group=net.fabricmc\narchives_base_name=fabric-example-mod-kotlin\n",
	"src/main/kotlin/net/fabricmc/example/ExampleMod.kt": `package net.fabricmc.example

import net.fabricmc.api.ModInitializer

object ExampleMod : ModInitializer {
    const val MOD_ID = "modid"

    override fun onInitialize() {
        println("Hello Fabric world!")
    }
}
`,
	"src/main/java/net/fabricmc/example/mixin/ExampleMixin.java": `package net.fabricmc.example.mixin;

import net.minecraft.client.gui.screen.TitleScreen;
import org.spongepowered.asm.mixin.Mixin;

@Mixin(TitleScreen.class)
public class ExampleMixin {
}
`,
	"src/main/resources/fabric.mod.json": `{
  "schemaVersion": 1,
  "id": "modid",
  "version": "${version}",
  "name": "Example Mod",
  "icon": "assets/modid/icon.png",
  "entrypoints": {
    "main": [
      {
        "adapter": "kotlin",
        "value": "net.fabricmc.example.ExampleMod"
      }
    ]
  },
  "mixins": [
    "modid.mixins.json"
  ]
}
`,
	"src/main/resources/modid.mixins.json": "{\n  \"required\": true,\n  \"package\": \"net.fabricmc.example.mixin\",\n  \"client\": [\"ExampleMixin\"]\n}\n",
}

// fakeGit stands in for the git binary. Clone writes the template tree for
// lang into the destination; init creates an empty .git directory.
type fakeGit struct {
	t        *testing.T
	lang     language.Language
	cloneErr error
	initErr  error
	mutate   func(root string) // Applied to the cloned tree
	calls    []call
}

type call struct {
	dir  string
	args []string
}

func newFakeGit(t *testing.T, lang language.Language) *fakeGit {
	return &fakeGit{t: t, lang: lang}
}

func (f *fakeGit) Run(dir, name string, args ...string) (string, error) {
	f.t.Helper()
	require.Equal(f.t, "git", name)
	f.calls = append(f.calls, call{dir: dir, args: args})

	switch args[0] {
	case "clone":
		if f.cloneErr != nil {
			return "", f.cloneErr
		}
		dest := args[len(args)-1]
		tree := javaTemplate
		if f.lang == language.Kotlin {
			tree = kotlinTemplate
		}
		writeTree(f.t, dest, tree)
		writeFile(f.t, filepath.Join(dest, "src/main/resources/assets/modid/icon.png"), iconBytes)
		if f.mutate != nil {
			f.mutate(dest)
		}
		return "Cloning into '" + filepath.Base(dest) + "'...\n", nil
	case "init":
		if f.initErr != nil {
			return "", f.initErr
		}
		require.NoError(f.t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
		return "Initialized empty Git repository\n", nil
	}
	return "", nil
}

func (f *fakeGit) commands() []string {
	var cmds []string
	for _, c := range f.calls {
		cmds = append(cmds, c.args[0])
	}
	return cmds
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		writeFile(t, filepath.Join(root, filepath.FromSlash(rel)), []byte(content))
	}
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
