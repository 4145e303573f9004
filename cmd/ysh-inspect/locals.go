// # cmd/ysh-inspect/locals.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	tree_sitter_ysh "github.com/oils-for-unix/tree-sitter-ysh"
	"github.com/oils-for-unix/tree-sitter-ysh/internal/locals"
)

var localsCmd = &cobra.Command{
	Use:   "locals [files or dirs]",
	Short: "Resolve variable definitions and references",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLocals,
}

func init() {
	localsCmd.Flags().Bool("unresolved-only", false, "only report unresolved references")
}

func runLocals(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	files, err := collectFiles(args, cfg)
	if err != nil {
		return err
	}
	unresolvedOnly, _ := cmd.Flags().GetBool("unresolved-only")

	analyzer, err := locals.NewAnalyzer(yshLanguage(), tree_sitter_ysh.LocalsQuery)
	if err != nil {
		return err
	}
	defer analyzer.Close()

	out := cmd.OutOrStdout()
	totalUnresolved := 0
	for _, path := range files {
		source, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		analysis, err := analyzer.Analyze(source)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if !unresolvedOnly {
			for _, def := range analysis.Definitions {
				line, col := lineCol(source, def.Start)
				fmt.Fprintf(out, "%s:%d:%d: %s %s defined\n", path, line, col, def.Kind, def.Name)
			}
			for _, ref := range analysis.References {
				if ref.Def == nil {
					continue
				}
				line, col := lineCol(source, ref.Start)
				defLine, defCol := lineCol(source, ref.Def.Start)
				fmt.Fprintf(out, "%s:%d:%d: %s resolves to %d:%d\n", path, line, col, ref.Name, defLine, defCol)
			}
			for _, shadow := range analysis.Shadows {
				line, col := lineCol(source, shadow.Inner.Start)
				fmt.Fprintf(out, "%s:%d:%d: %s shadows an outer definition\n", path, line, col, shadow.Inner.Name)
			}
		}

		for _, ref := range analysis.Unresolved() {
			line, col := lineCol(source, ref.Start)
			fmt.Fprintf(out, "%s:%d:%d: unresolved reference %s\n", path, line, col, ref.Name)
			totalUnresolved++
		}
	}

	if totalUnresolved > 0 {
		return fmt.Errorf("%d unresolved references", totalUnresolved)
	}
	return nil
}
