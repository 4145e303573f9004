// # cmd/ysh-inspect/check.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	tree_sitter_ysh "github.com/oils-for-unix/tree-sitter-ysh"
	"github.com/oils-for-unix/tree-sitter-ysh/internal/nodetypes"
	"github.com/oils-for-unix/tree-sitter-ysh/internal/queries"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Lint the bundled queries against the node-type schema",
	Long: `check cross-references highlights.scm and locals.scm with
node-types.json: every node kind and token a query mentions must be one the
grammar declares. This catches grammar/query drift without compiling the
queries.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	schema, err := nodetypes.Load([]byte(tree_sitter_ysh.NodeTypes))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	total := 0
	for _, issue := range schema.Validate() {
		fmt.Fprintf(out, "node-types.json: %s\n", issue)
		total++
	}

	for name, src := range map[string]string{
		"highlights.scm": tree_sitter_ysh.HighlightsQuery,
		"locals.scm":     tree_sitter_ysh.LocalsQuery,
	} {
		doc := queries.Scan(src)
		for _, issue := range queries.Lint(doc, schema) {
			fmt.Fprintf(out, "%s: %s\n", name, issue)
			total++
		}
	}

	if total > 0 {
		return fmt.Errorf("%d issues found", total)
	}
	fmt.Fprintln(out, "ok")
	return nil
}
