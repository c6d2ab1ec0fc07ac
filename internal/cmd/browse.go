package cmd

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/petrarca/catlint/internal/catalog"
	"github.com/petrarca/catlint/internal/config"
	"github.com/petrarca/catlint/internal/progress"
	"github.com/petrarca/catlint/internal/provider"
	"github.com/petrarca/catlint/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [path]",
	Short: "Browse catalog entries interactively",
	Long: `Browse opens the catalog in a terminal UI: a filterable list of every
entry, with snippets and labels shown in a detail view.

Keys: / filter, enter details, esc back, q quit.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) {
	logger := settings.ConfigureLogger()
	absPath := resolveCatalogPath(args, logger)

	lintCfg, err := config.LoadLintConfig(absPath)
	if err != nil {
		logger.Error("Failed to load catalog config", "error", err)
		os.Exit(1)
	}

	prog := progress.New(false, progress.NewNullHandler())
	loader := catalog.NewLoader(provider.NewFSProvider(absPath), lintCfg.Exclude, prog)
	cat, err := loader.Load()
	if err != nil {
		logger.Error("Failed to load catalog", "error", err)
		os.Exit(1)
	}

	p := tea.NewProgram(tui.NewBrowser(cat), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("Failed to run browser", "error", err)
		os.Exit(1)
	}
}
