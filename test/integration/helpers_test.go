//go:build integration

package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modkit-dev/modkit/internal/config"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir     string // MODKIT_HOME, holds config.yaml
	TemplateDir string // Local git repository standing in for the example mod
	WorkDir     string // Parent directory for created projects
}

// setupTestEnv creates isolated temp directories, a local template
// repository and points the Java template URL at it. The env vars are
// restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	requireGit(t)

	env := &testEnv{
		HomeDir:     t.TempDir(),
		TemplateDir: t.TempDir(),
		WorkDir:     t.TempDir(),
	}

	t.Setenv("MODKIT_HOME", env.HomeDir)
	t.Setenv("MODKIT_JAVA_TEMPLATE_URL", "file://"+filepath.ToSlash(env.TemplateDir))
	t.Setenv("MODKIT_KOTLIN_TEMPLATE_URL", "")
	config.Reset()
	t.Cleanup(config.Reset)

	setupTemplateRepo(t, env.TemplateDir)
	return env
}

// requireGit skips the test when git is not installed.
func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found on PATH")
	}
}

// setupTemplateRepo writes a Java example mod into dir and commits it on the
// default branch and on a "1.19" branch pinned to 1.19.2.
func setupTemplateRepo(t *testing.T, dir string) {
	t.Helper()

	files := map[string]string{
		"build.gradle":    "plugins {\n\tid 'fabric-loom' version '1.0-SNAPSHOT'\n}\n",
		"settings.gradle": "rootProject.name = 'fabric-example-mod'\n",
		"gradle.properties": `# Fabric Properties
minecraft_version=1.20.1
loader_version=0.14.21

# Mod Properties
maven_group = net.fabricmc
archives_base_name = fabric-example-mod
`,
		"src/main/java/net/fabricmc/example/ExampleMod.java": `package net.fabricmc.example;

import net.fabricmc.api.ModInitializer;

public class ExampleMod implements ModInitializer {
	public static final String MOD_ID = "modid";

	@Override
	public void onInitialize() {
	}
}
`,
		"src/main/java/net/fabricmc/example/mixin/ExampleMixin.java": `package net.fabricmc.example.mixin;

import net.fabricmc.example.ExampleMod;

public class ExampleMixin {
	private static final String ID = ExampleMod.MOD_ID;
}
`,
		"src/main/resources/fabric.mod.json": `{
  "schemaVersion": 1,
  "id": "modid",
  "version": "${version}",
  "name": "Example Mod",
  "icon": "assets/modid/icon.png",
  "environment": "*",
  "entrypoints": {
    "main": [
      "net.fabricmc.example.ExampleMod"
    ]
  },
  "mixins": [
    "modid.mixins.json"
  ]
}
`,
		"src/main/resources/modid.mixins.json": "{\n  \"required\": true,\n  \"package\": \"net.fabricmc.example.mixin\",\n  \"client\": [\n    \"ExampleMixin\"\n  ]\n}\n",
		"src/main/resources/assets/modid/icon.png": "\x89PNG\r\n\x1a\n\x00\x00modid",
	}
	for rel, content := range files {
		writeFile(t, filepath.Join(dir, filepath.FromSlash(rel)), content)
	}

	runGit(t, dir, "init")
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "Initial template")

	runGit(t, dir, "checkout", "-b", "1.19")
	props := filepath.Join(dir, "gradle.properties")
	data, err := os.ReadFile(props)
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, props, strings.Replace(string(data), "minecraft_version=1.20.1", "minecraft_version=1.19.2", 1))
	runGit(t, dir, "commit", "-am", "Target 1.19")
	runGit(t, dir, "checkout", "-")
}

// runGit runs git in dir with a fixed identity and fails the test on error.
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	args = append([]string{"-c", "user.name=Test", "-c", "user.email=test@example.com", "-c", "commit.gpgsign=false"}, args...)
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return string(out)
}

// writeFile creates a file with the given content, creating parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
