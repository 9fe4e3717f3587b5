package srcmod

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPythonFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "tools.py", "def run():\n    pass\n\nVERSION = 1\n")

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Name != "tools" {
		t.Errorf("name = %q, want tools", f.Name)
	}
	if f.Language != "python" {
		t.Errorf("language = %q, want python", f.Language)
	}
	if len(f.Symbols) != 2 {
		t.Fatalf("expected 2 symbols, got %+v", f.Symbols)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "hello")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestLoadRejectsDirectory(t *testing.T) {
	t.Parallel()

	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("expected error for directory")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "gone.py")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadCachesUntilModified(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "mod.py", "a = 1\n")

	first, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	second, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if first != second {
		t.Error("unchanged file should hit the cache")
	}

	// Rewrite with different content and a different size; a later mtime
	// is forced in case the filesystem clock is coarse.
	if err := os.WriteFile(path, []byte("a = 1\nb = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	third, err := Load(path)
	if err != nil {
		t.Fatalf("Load after modify: %v", err)
	}
	if third == second {
		t.Error("modified file should be reparsed")
	}
	if len(third.Symbols) != 2 {
		t.Errorf("expected 2 symbols after modify, got %+v", third.Symbols)
	}
}
