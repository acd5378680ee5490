package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"ferret/internal/project"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, project.ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package]\nname = \"demo\"\nroot = \"src\"\n")

	m, err := project.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Package.Name != "demo" {
		t.Errorf("name: want demo, got %q", m.Package.Name)
	}
	if m.SourceRoot() != filepath.Join(dir, "src") {
		t.Errorf("source root: got %q", m.SourceRoot())
	}
}

func TestLoadManifestDefaultsRoot(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package]\nname = \"demo\"\n")

	m, err := project.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.SourceRoot() != filepath.Clean(dir) {
		t.Errorf("source root: want manifest dir, got %q", m.SourceRoot())
	}
}

func TestLoadManifestRejectsMissingPackage(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "# empty\n")

	if _, err := project.Load(path); err == nil {
		t.Error("want error for missing [package] section")
	}
}

func TestLoadManifestRejectsBadName(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package]\nname = \"9lives\"\n")

	if _, err := project.Load(path); err == nil {
		t.Error("want error for invalid package name")
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok, err := project.FindManifest(nested)
	if err != nil {
		t.Fatalf("FindManifest: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found from nested directory")
	}
	if filepath.Dir(path) != filepath.Clean(root) {
		t.Errorf("found %q, want manifest in %q", path, root)
	}
}

func TestFindManifestAbsent(t *testing.T) {
	_, ok, err := project.FindManifest(t.TempDir())
	if err != nil {
		t.Fatalf("FindManifest: %v", err)
	}
	if ok {
		t.Error("unexpectedly found a manifest in an empty temp dir")
	}
}

func TestIsValidPackageName(t *testing.T) {
	valid := []string{"demo", "_x", "a1_b2", "Web"}
	invalid := []string{"", "9lives", "a-b", "тест", "a b"}

	for _, name := range valid {
		if !project.IsValidPackageName(name) {
			t.Errorf("%q: want valid", name)
		}
	}
	for _, name := range invalid {
		if project.IsValidPackageName(name) {
			t.Errorf("%q: want invalid", name)
		}
	}
}
