// # cmd/ysh-inspect/parse.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

var parseCmd = &cobra.Command{
	Use:   "parse [files or dirs]",
	Short: "Print the syntax tree of YSH sources",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Bool("errors-only", false, "only report ERROR and MISSING nodes")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	files, err := collectFiles(args, cfg)
	if err != nil {
		return err
	}
	errorsOnly, _ := cmd.Flags().GetBool("errors-only")

	parser := sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(yshLanguage()); err != nil {
		return fmt.Errorf("load grammar: %w", err)
	}

	broken := 0
	for _, path := range files {
		source, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		tree := parser.Parse(source, nil)
		if tree == nil {
			return fmt.Errorf("%s: parse failed", path)
		}

		root := tree.RootNode()
		diagnostics := collectParseErrors(root, source, path)
		if len(diagnostics) > 0 {
			broken++
		}

		if !errorsOnly {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", path, root.ToSexp())
		}
		for _, d := range diagnostics {
			fmt.Fprintln(cmd.OutOrStdout(), d)
		}
		tree.Close()
	}

	if broken > 0 {
		return fmt.Errorf("%d of %d files contain syntax errors", broken, len(files))
	}
	return nil
}

func collectParseErrors(node *sitter.Node, source []byte, path string) []string {
	var out []string
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}
		if n.IsError() || n.IsMissing() {
			line, col := lineCol(source, n.StartByte())
			kind := "ERROR"
			if n.IsMissing() {
				kind = "MISSING " + n.Kind()
			}
			out = append(out, fmt.Sprintf("%s:%d:%d: %s", path, line, col, kind))
		}
		for i := uint(0); i < n.ChildCount(); i++ {
			walk(n.Child(i))
		}
	}
	walk(node)
	return out
}
