package cmd

import (
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/petrarca/catlint/internal/lint"
	"github.com/petrarca/catlint/internal/rules"
)

var rulesFormat string
var rulesOutput string

var rulesCmd = &cobra.Command{
	Use:   "rules [rule-id]",
	Short: "List lint rules or show one rule's manifest",
	Long: `Without arguments, list every registered lint rule with its default
severity. With a rule id, show that rule's full manifest including the
rationale.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRules,
}

func init() {
	setupOutputFlags(rulesCmd, &rulesFormat, &rulesOutput)
}

// RuleInfo describes one rule for listing
type RuleInfo struct {
	ID        string `json:"id" yaml:"id"`
	Severity  string `json:"severity" yaml:"severity"`
	Summary   string `json:"summary" yaml:"summary"`
	Rationale string `json:"rationale,omitempty" yaml:"rationale,omitempty"`
}

// RulesResult is the output for the rules listing
type RulesResult struct {
	Rules []RuleInfo `json:"rules" yaml:"rules"`
}

func (r *RulesResult) ToJSON() interface{} {
	return r
}

func (r *RulesResult) ToText(w io.Writer) {
	for _, rule := range r.Rules {
		fmt.Fprintf(w, "%-24s %-8s %s\n", rule.ID, rule.Severity, rule.Summary)
	}
	fmt.Fprintf(w, "\nTotal: %d rules\n", len(r.Rules))
}

// RuleResult wraps a single manifest for output
type RuleResult struct {
	Manifest rules.Manifest
}

func (r *RuleResult) ToJSON() interface{} {
	return r.Manifest
}

func (r *RuleResult) ToText(w io.Writer) {
	// For text, use YAML as it's more readable
	data, err := yaml.Marshal(r.Manifest)
	if err != nil {
		log.Fatalf("Failed to marshal manifest: %v", err)
	}
	fmt.Fprint(w, string(data))
}

func runRules(cmd *cobra.Command, args []string) {
	manifests, err := rules.LoadEmbeddedManifests()
	if err != nil {
		log.Fatalf("Failed to load rule manifests: %v", err)
	}

	if len(args) == 1 {
		for _, m := range manifests {
			if m.ID == args[0] {
				Output(&RuleResult{Manifest: m}, rulesFormat)
				return
			}
		}
		log.Fatalf("Rule not found: %s", args[0])
	}

	OutputToFile(buildRulesResult(manifests), rulesFormat, rulesOutput)
}

// buildRulesResult joins the registered rules with their manifests
func buildRulesResult(manifests []rules.Manifest) *RulesResult {
	byID := make(map[string]rules.Manifest, len(manifests))
	for _, m := range manifests {
		byID[m.ID] = m
	}

	infos := make([]RuleInfo, 0, len(manifests))
	for _, r := range lint.Rules() {
		info := RuleInfo{
			ID:       r.ID(),
			Severity: r.DefaultSeverity().String(),
			Summary:  r.Description(),
		}
		if m, ok := byID[r.ID()]; ok {
			info.Severity = m.Severity
			info.Summary = m.Summary
			info.Rationale = m.Rationale
		}
		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return &RulesResult{Rules: infos}
}
