// Package config holds the ambient settings shared by the path-walking
// and source-parsing layers. Values come from the environment (a .env
// file is honored when present); callers such as the CLI may override
// them for a process with Set.
package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Settings struct {
	// Recursive controls whether path queries descend into subfolders
	// or list only the top level of the subject folder.
	Recursive bool
	// RespectIgnore controls whether path queries honor .gitignore.
	RespectIgnore bool
	// MaxFileSize is the largest source file, in bytes, that the module
	// loader will parse.
	MaxFileSize int64
	// ModuleCacheSize bounds the parsed-module cache.
	ModuleCacheSize int
}

const defaultMaxFileSize = 1_000_000 // 1 MB

var (
	mu       sync.RWMutex
	loadOnce sync.Once
	current  Settings
)

// Get returns the active settings, loading them from the environment on
// first use.
func Get() Settings {
	loadOnce.Do(func() {
		_ = godotenv.Load()
		mu.Lock()
		current = fromEnv()
		mu.Unlock()
	})
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the active settings for this process.
func Set(s Settings) {
	loadOnce.Do(func() {})
	mu.Lock()
	current = s
	mu.Unlock()
}

func fromEnv() Settings {
	return Settings{
		Recursive:       envBool("INTROSPECT_RECURSIVE", false),
		RespectIgnore:   envBool("INTROSPECT_RESPECT_GITIGNORE", true),
		MaxFileSize:     envInt64("INTROSPECT_MAX_FILE_SIZE", defaultMaxFileSize),
		ModuleCacheSize: int(envInt64("INTROSPECT_MODULE_CACHE", 256)),
	}
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
