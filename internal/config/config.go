package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/petrarca/catlint/internal/types"
	"github.com/petrarca/catlint/internal/validation"
)

// ConfigFileName is the per-catalog configuration file.
const ConfigFileName = ".catlint.yaml"

// configSchema is the embedded JSON schema the file is validated against.
const configSchema = "catlint-config.json"

// LintConfig represents the .catlint.yaml configuration file
type LintConfig struct {
	// MinCategoryEntries is the minimum entry count per category
	MinCategoryEntries int `yaml:"min_category_entries,omitempty"`

	// RequiredLabels are the bold labels every entry must carry
	RequiredLabels []string `yaml:"required_labels,omitempty"`

	// ExtraLanguages are fence tags accepted beyond the linguist database
	ExtraLanguages []string `yaml:"extra_languages,omitempty"`

	// Exclude are glob patterns for directories to skip
	Exclude []string `yaml:"exclude,omitempty"`

	// Rules holds per-rule overrides keyed by rule id
	Rules map[string]RuleSetting `yaml:"rules,omitempty"`
}

// RuleSetting overrides one rule's behavior
type RuleSetting struct {
	Severity string `yaml:"severity,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// DefaultLintConfig returns the configuration used when no file exists
func DefaultLintConfig() *LintConfig {
	return &LintConfig{
		MinCategoryEntries: 1,
		RequiredLabels:     []string{"Use", "Description"},
	}
}

// LoadLintConfig attempts to load .catlint.yaml from the catalog root.
// Returns defaults if the file doesn't exist (not an error).
func LoadLintConfig(catalogPath string) (*LintConfig, error) {
	configPath := filepath.Join(catalogPath, ConfigFileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultLintConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	return ParseLintConfig(data)
}

// ParseLintConfig validates and parses raw .catlint.yaml content
func ParseLintConfig(data []byte) (*LintConfig, error) {
	if err := validation.ValidateYAML(configSchema, data); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigFileName, err)
	}

	config := DefaultLintConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	for id, setting := range config.Rules {
		if setting.Severity == "" {
			continue
		}
		if _, err := types.ParseSeverity(setting.Severity); err != nil {
			return nil, fmt.Errorf("rule %s: %w", id, err)
		}
	}

	return config, nil
}

// RuleDisabled reports whether the config turns a rule off
func (c *LintConfig) RuleDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	return c.Rules[ruleID].Disabled
}

// RuleSeverity returns the configured severity override for a rule
func (c *LintConfig) RuleSeverity(ruleID string) (types.Severity, bool) {
	if c == nil {
		return types.SeverityInfo, false
	}
	setting, ok := c.Rules[ruleID]
	if !ok || setting.Severity == "" {
		return types.SeverityInfo, false
	}
	sev, err := types.ParseSeverity(setting.Severity)
	if err != nil {
		return types.SeverityInfo, false
	}
	return sev, true
}

// MergeExcludes merges config excludes with CLI excludes
// CLI excludes take precedence
func (c *LintConfig) MergeExcludes(cliExcludes []string) []string {
	if c == nil {
		return cliExcludes
	}

	// Create a map to deduplicate
	excludeMap := make(map[string]bool)

	for _, exclude := range c.Exclude {
		excludeMap[strings.TrimSpace(exclude)] = true
	}
	for _, exclude := range cliExcludes {
		excludeMap[strings.TrimSpace(exclude)] = true
	}

	result := make([]string, 0, len(excludeMap))
	for exclude := range excludeMap {
		if exclude != "" {
			result = append(result, exclude)
		}
	}

	return result
}
