package disk

import (
	"os"
	"path/filepath"
	"testing"
)

func TestListTopLevel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "main.py", "print('hello')")
	writeFile(t, dir, "lib/util.py", "def helper(): pass")
	writeFile(t, dir, "readme.txt", "hello")

	entries, err := List(dir, Options{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	// Non-recursive: lib appears as a folder but util.py inside it does not.
	want := []string{"lib", "main.py", "readme.txt"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d: %v", len(want), len(entries), rels(entries))
	}
	for i, w := range want {
		if entries[i].Rel != w {
			t.Errorf("entry %d: got %q, want %q", i, entries[i].Rel, w)
		}
	}
	if !entries[0].IsDir {
		t.Error("lib should be a directory entry")
	}
	if entries[1].IsDir {
		t.Error("main.py should not be a directory entry")
	}
}

func TestListRecursive(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "main.py", "pass")
	writeFile(t, dir, "lib/util.py", "pass")
	writeFile(t, dir, "lib/deep/core.py", "pass")

	entries, err := List(dir, Options{Recursive: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []string{"lib", "lib/deep", "lib/deep/core.py", "lib/util.py", "main.py"}
	got := rels(entries)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestListSkipsVCSDirs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "main.py", "pass")
	writeFile(t, dir, ".git/config", "ref")
	writeFile(t, dir, ".hg/store", "x")

	entries, err := List(dir, Options{Recursive: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 || entries[0].Rel != "main.py" {
		t.Fatalf("expected only main.py, got %v", rels(entries))
	}
}

func TestListRespectsGitignore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, ".gitignore", "ignored.py\nbuild/\n")
	writeFile(t, dir, "main.py", "pass")
	writeFile(t, dir, "ignored.py", "pass")
	writeFile(t, dir, "build/out.py", "pass")

	entries, err := List(dir, Options{Recursive: true, RespectIgnore: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, e := range entries {
		if e.Rel == "ignored.py" || e.Rel == "build" || e.Rel == "build/out.py" {
			t.Errorf("ignored entry %q was listed", e.Rel)
		}
	}

	// Same tree without ignore filtering lists everything.
	entries, err = List(dir, Options{Recursive: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	found := false
	for _, e := range entries {
		if e.Rel == "ignored.py" {
			found = true
		}
	}
	if !found {
		t.Error("ignored.py should be listed when RespectIgnore is off")
	}
}

func TestListSymlinksSkipped(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "real.py", "pass")

	if err := os.Symlink(filepath.Join(dir, "real.py"), filepath.Join(dir, "link.py")); err != nil {
		t.Skip("symlinks not supported")
	}

	entries, err := List(dir, Options{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 || entries[0].Rel != "real.py" {
		t.Fatalf("expected only real.py, got %v", rels(entries))
	}
}

func TestListRejectsFileRoot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "main.py", "pass")

	if _, err := List(filepath.Join(dir, "main.py"), Options{}); err == nil {
		t.Fatal("expected error for non-directory root")
	}
}

func TestListMissingRoot(t *testing.T) {
	t.Parallel()

	if _, err := List(filepath.Join(t.TempDir(), "nope"), Options{}); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func rels(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Rel
	}
	return out
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
