// # cmd/ysh-inspect/nodes.go
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	tree_sitter_ysh "github.com/oils-for-unix/tree-sitter-ysh"
	"github.com/oils-for-unix/tree-sitter-ysh/internal/nodetypes"
)

var nodesCmd = &cobra.Command{
	Use:   "nodes [kind]",
	Short: "List the grammar's node-type schema",
	Long: `nodes lists the node kinds declared by the grammar's node-types.json.
With a kind argument it prints that node's fields and children.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNodes,
}

func init() {
	nodesCmd.Flags().Bool("supertypes", false, "only list supertype nodes")
	nodesCmd.Flags().Bool("all", false, "include anonymous tokens")
}

func runNodes(cmd *cobra.Command, args []string) error {
	schema, err := nodetypes.Load([]byte(tree_sitter_ysh.NodeTypes))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		return describeNode(cmd, schema, args[0])
	}

	supertypesOnly, _ := cmd.Flags().GetBool("supertypes")
	all, _ := cmd.Flags().GetBool("all")

	var listed []nodetypes.NodeType
	switch {
	case supertypesOnly:
		listed = schema.Supertypes()
	case all:
		listed = append(listed, schema.All()...)
		sort.Slice(listed, func(i, j int) bool { return listed[i].Type < listed[j].Type })
	default:
		listed = schema.Named()
	}

	for _, n := range listed {
		marker := ""
		if n.IsSupertype() {
			marker = " (supertype)"
		} else if n.Root {
			marker = " (root)"
		}
		fmt.Fprintf(out, "%s%s\n", n.Type, marker)
	}
	return nil
}

func describeNode(cmd *cobra.Command, schema *nodetypes.Schema, kind string) error {
	n, ok := schema.Lookup(kind)
	if !ok {
		return fmt.Errorf("unknown node kind %q", kind)
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s  named=%v\n", n.Type, n.Named)
	if n.IsSupertype() {
		fmt.Fprintln(out, "subtypes:")
		for _, sub := range n.Subtypes {
			fmt.Fprintf(out, "  %s\n", sub.Type)
		}
		return nil
	}

	fieldNames := make([]string, 0, len(n.Fields))
	for name := range n.Fields {
		fieldNames = append(fieldNames, name)
	}
	sort.Strings(fieldNames)
	for _, name := range fieldNames {
		field := n.Fields[name]
		fmt.Fprintf(out, "field %s (required=%v multiple=%v):\n", name, field.Required, field.Multiple)
		for _, ref := range field.Types {
			fmt.Fprintf(out, "  %s\n", ref.Type)
		}
	}
	if n.Children != nil {
		fmt.Fprintln(out, "children:")
		for _, ref := range n.Children.Types {
			fmt.Fprintf(out, "  %s\n", ref.Type)
		}
	}
	return nil
}
