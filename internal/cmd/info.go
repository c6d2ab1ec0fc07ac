package cmd

import (
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display information about rules, languages, and documents",
	Long:  `Display information about the lint rules, the languages accepted in snippet fences, and the documents of a catalog.`,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.AddCommand(rulesCmd)
	infoCmd.AddCommand(languagesCmd)
	infoCmd.AddCommand(docsCmd)
}
