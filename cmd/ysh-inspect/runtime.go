// # cmd/ysh-inspect/runtime.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
	sitter "github.com/tree-sitter/go-tree-sitter"

	tree_sitter_ysh "github.com/oils-for-unix/tree-sitter-ysh"
	"github.com/oils-for-unix/tree-sitter-ysh/internal/config"
	"github.com/oils-for-unix/tree-sitter-ysh/internal/highlight"
)

const defaultConfigPath = "ysh-inspect.toml"

func yshLanguage() *sitter.Language {
	return sitter.NewLanguage(tree_sitter_ysh.Language())
}

// loadConfig honors an explicit --config path, falls back to
// ysh-inspect.toml in the working directory, and otherwise uses defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(defaultConfigPath); err == nil {
		return config.Load(defaultConfigPath)
	}
	return config.Default(), nil
}

func buildTheme(cfg *config.Config) (highlight.Theme, error) {
	theme := highlight.DefaultTheme()
	for capture, spec := range cfg.Theme {
		if err := theme.Override(capture, spec); err != nil {
			return nil, err
		}
	}
	return theme, nil
}

// collectFiles expands the command arguments into source files. Directory
// arguments are walked recursively, keeping files that match the include
// globs and skipping excluded directories.
func collectFiles(args []string, cfg *config.Config) ([]string, error) {
	include, err := compileGlobs(cfg.Include)
	if err != nil {
		return nil, err
	}
	excludeDirs, err := compileGlobs(cfg.Exclude.Dirs)
	if err != nil {
		return nil, err
	}
	excludeFiles, err := compileGlobs(cfg.Exclude.Files)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(arg)
			continue
		}

		err = filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			base := filepath.Base(path)
			if info.IsDir() {
				if path != arg && matchesAny(excludeDirs, base) {
					return filepath.SkipDir
				}
				return nil
			}
			if matchesAny(include, base) && !matchesAny(excludeFiles, base) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no source files matched %v", args)
	}
	sort.Strings(files)
	return files, nil
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	var out []glob.Glob
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
		}
		out = append(out, g)
	}
	return out, nil
}

func matchesAny(globs []glob.Glob, name string) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// lineCol converts a byte offset to 1-based line and column numbers.
func lineCol(source []byte, offset uint) (int, int) {
	line, col := 1, 1
	for i := uint(0); i < offset && int(i) < len(source); i++ {
		if source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
