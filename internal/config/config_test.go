// # internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ysh-inspect.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
include = ["*.ysh"]

[exclude]
dirs = [".git", "node_modules"]
files = ["*.bak"]

[theme]
comment = "hi-black"
keyword = "bold-magenta"

[watch]
debounce = "1s"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.Include) != 1 || cfg.Include[0] != "*.ysh" {
		t.Errorf("Unexpected Include: %v", cfg.Include)
	}
	if len(cfg.Exclude.Dirs) != 2 {
		t.Errorf("Unexpected Exclude.Dirs: %v", cfg.Exclude.Dirs)
	}
	if cfg.Theme["keyword"] != "bold-magenta" {
		t.Errorf("Unexpected theme entry: %q", cfg.Theme["keyword"])
	}
	if cfg.Watch.Debounce != time.Second {
		t.Errorf("Expected debounce 1s, got %v", cfg.Watch.Debounce)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `# empty`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Watch.Debounce != 500*time.Millisecond {
		t.Errorf("Expected default debounce 500ms, got %v", cfg.Watch.Debounce)
	}
	if len(cfg.Include) == 0 {
		t.Error("Expected default include globs")
	}
}

func TestLoadError(t *testing.T) {
	if _, err := Load("nonexistent.toml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}

	path := writeConfig(t, "bad = toml = format")
	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed TOML")
	}
}

func TestLoadRejectsBadGlob(t *testing.T) {
	path := writeConfig(t, `include = ["[unclosed"]`)
	if _, err := Load(path); err == nil {
		t.Error("Expected error for bad glob pattern")
	}
}
