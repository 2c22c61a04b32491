package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	// Should be under home directory
	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(dir, home) {
		t.Errorf("cacheDir() = %q, should be under home %q", dir, home)
	}

	expected := filepath.Join(home, ".cache", "hanoi")
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", base)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(base, "hanoi"); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestConfigPathXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	path, err := configPath()
	if err != nil {
		t.Fatalf("configPath() error: %v", err)
	}
	if want := filepath.Join(base, "hanoi", "config.toml"); path != want {
		t.Errorf("configPath() = %q, want %q", path, want)
	}
}

func TestCacheClearAndPath(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.run(t, "3 3 1 1 1 3 3 3", "solve"); err != nil {
		t.Fatalf("solve error: %v", err)
	}
	entries, _ := filepath.Glob(filepath.Join(env.cacheHome, "hanoi", "*", "*.json"))
	if len(entries) != 1 {
		t.Fatalf("cache holds %d entries after solve, want 1", len(entries))
	}

	out, err := env.run(t, "", "cache", "path")
	if err != nil {
		t.Fatalf("cache path error: %v", err)
	}
	if got, want := strings.TrimSpace(out), filepath.Join(env.cacheHome, "hanoi"); got != want {
		t.Errorf("cache path = %q, want %q", got, want)
	}

	if _, err := env.run(t, "", "cache", "clear"); err != nil {
		t.Fatalf("cache clear error: %v", err)
	}
	entries, _ = filepath.Glob(filepath.Join(env.cacheHome, "hanoi", "*", "*.json"))
	if len(entries) != 0 {
		t.Errorf("cache holds %d entries after clear, want 0", len(entries))
	}
}
