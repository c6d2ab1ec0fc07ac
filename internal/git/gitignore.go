package git

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// IgnorePatterns loads ignore patterns for a catalog root: the root
// .gitignore plus .git/info/exclude, deduplicated in order. A missing
// file is not an error, the catalog may not be a repository at all.
func IgnorePatterns(basePath string) []string {
	var patterns []string

	if p, err := loadPatternsFromGitignore(filepath.Join(basePath, ".gitignore")); err == nil {
		patterns = append(patterns, p...)
	}

	if gitDir, err := findGitDir(basePath); err == nil {
		if p, err := loadGitInfoExclude(gitDir); err == nil {
			patterns = append(patterns, p...)
		}
	}

	return deduplicatePatterns(patterns)
}

// MatchesIgnore checks a relative path (and its base name) against a
// pattern list.
func MatchesIgnore(patterns []string, relativePath string) bool {
	name := filepath.Base(relativePath)
	for _, pattern := range patterns {
		// Try glob match against relative path
		if matched, err := doublestar.Match(pattern, relativePath); err == nil && matched {
			return true
		}

		// Also try matching just the filename
		if matched, err := doublestar.Match(pattern, name); err == nil && matched {
			return true
		}
	}
	return false
}

// loadPatternsFromGitignore loads patterns from a specific .gitignore file
func loadPatternsFromGitignore(gitignorePath string) ([]string, error) {
	file, err := os.Open(gitignorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read .gitignore: %w", err)
	}
	defer file.Close()

	var patterns []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Remove trailing slashes for consistency (dir/ -> dir)
		pattern := strings.TrimSuffix(line, "/")

		// Skip negation patterns for now (they start with !)
		// These are complex to handle properly in a glob matcher
		if strings.HasPrefix(pattern, "!") {
			continue
		}

		patterns = append(patterns, pattern)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading .gitignore: %w", err)
	}

	return patterns, nil
}

// loadGitInfoExclude loads patterns from .git/info/exclude
func loadGitInfoExclude(gitDir string) ([]string, error) {
	excludePath := filepath.Join(gitDir, "info", "exclude")

	// Check if file exists
	if _, err := os.Stat(excludePath); os.IsNotExist(err) {
		return nil, nil // No .git/info/exclude file
	}

	return loadPatternsFromGitignore(excludePath)
}

// findGitDir finds the .git directory (handles submodules, worktrees, etc.)
func findGitDir(startPath string) (string, error) {
	// Check for .git file (worktree/submodule)
	gitFile := filepath.Join(startPath, ".git")
	if content, err := os.ReadFile(gitFile); err == nil {
		gitDir := strings.TrimSpace(string(content))
		if strings.HasPrefix(gitDir, "gitdir: ") {
			return filepath.Join(startPath, strings.TrimPrefix(gitDir, "gitdir: ")), nil
		}
	}

	// Check for .git directory
	gitDir := filepath.Join(startPath, ".git")
	if stat, err := os.Stat(gitDir); err == nil && stat.IsDir() {
		return gitDir, nil
	}

	return "", fmt.Errorf("not a git repository")
}

// deduplicatePatterns removes duplicate patterns while preserving order
func deduplicatePatterns(patterns []string) []string {
	// Return empty slice if no patterns
	if len(patterns) == 0 {
		return []string{}
	}

	seen := make(map[string]bool)
	var result []string

	for _, pattern := range patterns {
		if !seen[pattern] {
			seen[pattern] = true
			result = append(result, pattern)
		}
	}

	return result
}
