package config

import "testing"

func TestDefaults(t *testing.T) {
	s := fromEnv()
	if s.Recursive {
		t.Error("Recursive should default to false")
	}
	if !s.RespectIgnore {
		t.Error("RespectIgnore should default to true")
	}
	if s.MaxFileSize != defaultMaxFileSize {
		t.Errorf("MaxFileSize = %d, want %d", s.MaxFileSize, defaultMaxFileSize)
	}
	if s.ModuleCacheSize != 256 {
		t.Errorf("ModuleCacheSize = %d, want 256", s.ModuleCacheSize)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("INTROSPECT_RECURSIVE", "true")
	t.Setenv("INTROSPECT_RESPECT_GITIGNORE", "false")
	t.Setenv("INTROSPECT_MAX_FILE_SIZE", "2048")
	t.Setenv("INTROSPECT_MODULE_CACHE", "8")

	s := fromEnv()
	if !s.Recursive {
		t.Error("Recursive override not applied")
	}
	if s.RespectIgnore {
		t.Error("RespectIgnore override not applied")
	}
	if s.MaxFileSize != 2048 {
		t.Errorf("MaxFileSize = %d, want 2048", s.MaxFileSize)
	}
	if s.ModuleCacheSize != 8 {
		t.Errorf("ModuleCacheSize = %d, want 8", s.ModuleCacheSize)
	}
}

func TestInvalidEnvFallsBack(t *testing.T) {
	t.Setenv("INTROSPECT_RECURSIVE", "maybe")
	t.Setenv("INTROSPECT_MAX_FILE_SIZE", "-5")

	s := fromEnv()
	if s.Recursive {
		t.Error("unparseable bool should fall back to default")
	}
	if s.MaxFileSize != defaultMaxFileSize {
		t.Errorf("non-positive size should fall back, got %d", s.MaxFileSize)
	}
}

func TestSetOverridesGet(t *testing.T) {
	prev := Get()
	defer Set(prev)

	want := Settings{Recursive: true, RespectIgnore: false, MaxFileSize: 42, ModuleCacheSize: 3}
	Set(want)
	if got := Get(); got != want {
		t.Errorf("Get after Set = %+v, want %+v", got, want)
	}
}
