// # cmd/ysh-inspect/main.go
package main

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "ysh-inspect",
	Short: "Inspect YSH sources with the tree-sitter-ysh grammar",
	Long: `ysh-inspect parses YSH (Oils shell) sources with the tree-sitter-ysh
grammar and exposes its node-type schema and query documents as
highlighting, scope analysis, and linting tools.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(cmd)
		setupColor(cmd)
	},
}

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(highlightCmd)
	rootCmd.AddCommand(localsCmd)
	rootCmd.AddCommand(nodesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)

	rootCmd.PersistentFlags().String("config", "", "path to ysh-inspect.toml")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command) {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func setupColor(cmd *cobra.Command) {
	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	}
}
