// Package disk enumerates directory entries for the path-based query
// suffixes. It is the filesystem counterpart of member enumeration: a
// bounded, synchronous walk producing a deterministic, ordered sequence.
package disk

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	ignore "github.com/sabhiram/go-gitignore"
)

// Entry is one discovered path.
type Entry struct {
	Rel   string // relative to the walked root, slash-separated
	Abs   string
	IsDir bool
}

// Options control one listing pass.
type Options struct {
	// Recursive descends into subfolders; otherwise only the immediate
	// children of the root are listed.
	Recursive bool
	// RespectIgnore drops entries matched by the root's .gitignore.
	RespectIgnore bool
}

// vcsDirs are never listed and never descended into.
var vcsDirs = map[string]struct{}{
	".git": {},
	".hg":  {},
	".svn": {},
}

// List enumerates the entries under root. The result is sorted by
// relative path, so repeated calls over an unchanged tree are identical.
func List(root string, opts Options) ([]Entry, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("root path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: not a directory", root)
	}

	var gi *ignore.GitIgnore
	if opts.RespectIgnore {
		gi = loadGitignore(abs)
	}

	var results []Entry

	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if path == abs {
			return nil
		}

		name := d.Name()
		rel, relErr := filepath.Rel(abs, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if _, skip := vcsDirs[name]; skip {
				return filepath.SkipDir
			}
			// Directory patterns like "build/" need the trailing slash.
			if gi != nil && (gi.MatchesPath(rel) || gi.MatchesPath(rel+"/")) {
				return filepath.SkipDir
			}
			results = append(results, Entry{Rel: rel, Abs: path, IsDir: true})
			if !opts.Recursive {
				return filepath.SkipDir
			}
			return nil
		}

		// Skip symlinks
		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}
		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}

		results = append(results, Entry{Rel: rel, Abs: path, IsDir: false})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Rel < results[j].Rel
	})

	return results, nil
}

func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
