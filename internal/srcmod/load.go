package srcmod

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/phobologic/introspect/internal/config"
)

// File is a parsed source file.
type File struct {
	// Name is the file's base name without its extension.
	Name     string
	Path     string
	Language string
	Symbols  []Symbol
}

type cachedFile struct {
	file    *File
	modTime time.Time
	size    int64
}

var (
	cacheOnce sync.Once
	cache     *lru.Cache[string, cachedFile]
)

func getCache() *lru.Cache[string, cachedFile] {
	cacheOnce.Do(func() {
		size := config.Get().ModuleCacheSize
		if size <= 0 {
			size = 1
		}
		cache, _ = lru.New[string, cachedFile](size)
	})
	return cache
}

// Load parses the source file at path. Results are cached by absolute
// path and invalidated when the file's size or mtime changes.
func Load(path string) (*File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("source file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: is a directory, not a source file", path)
	}
	if max := config.Get().MaxFileSize; info.Size() > max {
		return nil, fmt.Errorf("%s: file exceeds %d bytes", path, max)
	}

	ext := filepath.Ext(abs)
	lang := ForExtension(ext)
	if lang == nil {
		return nil, fmt.Errorf("%s: unsupported source extension %q", path, ext)
	}

	c := getCache()
	if hit, ok := c.Get(abs); ok {
		if hit.modTime.Equal(info.ModTime()) && hit.size == info.Size() {
			return hit.file, nil
		}
	}

	source, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	symbols, err := Extract(lang, source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	base := filepath.Base(abs)
	f := &File{
		Name:     strings.TrimSuffix(base, ext),
		Path:     abs,
		Language: lang.Name,
		Symbols:  symbols,
	}
	c.Add(abs, cachedFile{file: f, modTime: info.ModTime(), size: info.Size()})
	return f, nil
}
