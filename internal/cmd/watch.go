package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/petrarca/catlint/internal/git"
)

// watchDebounce coalesces editor save bursts into one lint run.
const watchDebounce = 400 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Re-lint the catalog whenever a document changes",
	Long: `Watch monitors the catalog directory and re-runs the lint rules each
time a Markdown file is written, created, removed or renamed. Paths
matching the catalog's .gitignore are ignored.

Examples:
  catlint watch /path/to/catalog
  catlint watch --fail-on never /path/to/catalog`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) {
	logger := settings.ConfigureLogger()
	absPath := resolveCatalogPath(args, logger)

	ignore := git.IgnorePatterns(absPath)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Error("Failed to create watcher", "error", err)
		os.Exit(1)
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, absPath); err != nil {
		logger.Error("Failed to watch catalog", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runOnce := func() {
		report, _ := lintCatalog(absPath, logger)
		report.ToText(os.Stdout)
	}

	fmt.Fprintf(os.Stderr, "Watching %s\n", absPath)
	runOnce()

	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !relevantWatchEvent(watcher, absPath, event, ignore) {
				continue
			}
			logger.Debug("Change detected", "path", event.Name, "op", event.Op.String())
			debounce.Reset(watchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Error("Watcher error", "error", err)

		case <-debounce.C:
			fmt.Fprintln(os.Stderr)
			runOnce()
		}
	}
}

// addWatchDirs watches the catalog root and its immediate subdirectories,
// which is where ecosystem READMEs live.
func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	if err := watcher.Add(root); err != nil {
		return err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), ".") || strings.HasPrefix(e.Name(), "_") {
			continue
		}
		if err := watcher.Add(filepath.Join(root, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// relevantWatchEvent filters watcher noise, and starts watching newly
// created ecosystem directories as a side effect.
func relevantWatchEvent(watcher *fsnotify.Watcher, root string, event fsnotify.Event, ignore []string) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	rel, err := filepath.Rel(root, event.Name)
	if err != nil {
		return false
	}
	if git.MatchesIgnore(ignore, rel) {
		return false
	}

	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if !strings.HasPrefix(filepath.Base(event.Name), ".") {
				_ = watcher.Add(event.Name)
				return true
			}
			return false
		}
	}

	return strings.HasSuffix(event.Name, ".md") || strings.HasSuffix(event.Name, ".yaml")
}
