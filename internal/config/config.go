// # internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gobwas/glob"
)

type Config struct {
	Include []string          `toml:"include"` // file globs, e.g. "*.ysh"
	Exclude Exclude           `toml:"exclude"`
	Theme   map[string]string `toml:"theme"` // capture name -> style spec
	Watch   Watch             `toml:"watch"`
}

type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"`
}

type Watch struct {
	Debounce time.Duration `toml:"debounce"`
}

func Default() *Config {
	return &Config{
		Include: []string{"*.ysh", "*.oil"},
		Exclude: Exclude{
			Dirs: []string{".git", "_tmp"},
		},
		Watch: Watch{Debounce: 500 * time.Millisecond},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}
	if len(cfg.Include) == 0 {
		cfg.Include = Default().Include
	}

	if err := cfg.validateGlobs(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validateGlobs() error {
	for _, group := range [][]string{c.Include, c.Exclude.Dirs, c.Exclude.Files} {
		for _, pattern := range group {
			if _, err := glob.Compile(pattern); err != nil {
				return fmt.Errorf("bad glob %q: %w", pattern, err)
			}
		}
	}
	return nil
}
