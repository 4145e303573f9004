// # cmd/ysh-inspect/highlight.go
package main

import (
	"os"

	"github.com/spf13/cobra"

	tree_sitter_ysh "github.com/oils-for-unix/tree-sitter-ysh"
	"github.com/oils-for-unix/tree-sitter-ysh/internal/highlight"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [files or dirs]",
	Short: "Syntax-highlight YSH sources on the terminal",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHighlight,
}

func init() {
	highlightCmd.Flags().Bool("plain", false, "print raw segments instead of colored source")
}

func runHighlight(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	files, err := collectFiles(args, cfg)
	if err != nil {
		return err
	}
	theme, err := buildTheme(cfg)
	if err != nil {
		return err
	}
	plain, _ := cmd.Flags().GetBool("plain")

	h, err := highlight.New(yshLanguage(), tree_sitter_ysh.HighlightsQuery)
	if err != nil {
		return err
	}
	defer h.Close()

	out := cmd.OutOrStdout()
	for _, path := range files {
		source, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		spans, err := h.Highlight(source)
		if err != nil {
			return err
		}
		segments := highlight.Flatten(spans)

		if plain {
			if err := highlight.RenderSpans(out, source, segments); err != nil {
				return err
			}
			continue
		}
		if err := highlight.RenderANSI(out, source, segments, theme); err != nil {
			return err
		}
	}
	return nil
}
