package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "catlint",
	Short: "Structure linter for curated library catalogs",
	Long: `Catlint checks a Markdown library catalog (a top-level README plus one
README per ecosystem directory) against its structural conventions:
heading hierarchy, entry labels, snippet language tags, relative links
and index coverage.

It also generates the catalog table of contents and reports snippet
statistics per language and document.`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
