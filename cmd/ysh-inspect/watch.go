// # cmd/ysh-inspect/watch.go
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/oils-for-unix/tree-sitter-ysh/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dirs]",
	Short: "Re-check YSH sources whenever they change",
	Long: `watch monitors directories for changes to YSH sources and re-parses
each changed file, reporting syntax errors as they appear.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	roots := args
	if len(roots) == 0 {
		roots = []string{"."}
	}

	parser := sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(yshLanguage()); err != nil {
		return fmt.Errorf("load grammar: %w", err)
	}

	out := cmd.OutOrStdout()
	onChange := func(paths []string) {
		for _, path := range paths {
			started := time.Now()
			source, err := os.ReadFile(path)
			if err != nil {
				// Removed files show up here too.
				slog.Debug("skipping unreadable file", "path", path, "error", err)
				continue
			}

			tree := parser.Parse(source, nil)
			if tree == nil {
				slog.Error("parse failed", "path", path)
				continue
			}
			diagnostics := collectParseErrors(tree.RootNode(), source, path)
			tree.Close()

			for _, d := range diagnostics {
				fmt.Fprintln(out, d)
			}
			slog.Info("checked", "path", path, "errors", len(diagnostics), "duration", time.Since(started))
		}
	}

	w, err := watcher.New(cfg.Watch.Debounce, cfg.Include, cfg.Exclude.Dirs, onChange)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Watch(roots); err != nil {
		return err
	}
	slog.Info("watching", "roots", roots, "debounce", cfg.Watch.Debounce)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	return nil
}
