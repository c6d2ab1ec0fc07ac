// Package lint runs structural checks over a parsed catalog.
package lint

import (
	"sort"
	"sync"

	"github.com/petrarca/catlint/internal/config"
	"github.com/petrarca/catlint/internal/progress"
	"github.com/petrarca/catlint/internal/types"
)

// Rule is one structural check over the catalog.
type Rule interface {
	// ID is the stable rule identifier (kebab-case).
	ID() string

	// DefaultSeverity applies when neither manifest nor config override it.
	DefaultSeverity() types.Severity

	// Description is a one-line summary for `info rules`.
	Description() string

	// Check inspects the catalog and returns findings. Severity and rule
	// id on returned findings are stamped by the engine.
	Check(ctx *Context) []types.Finding
}

// Context carries everything rules may consult.
type Context struct {
	Catalog   *types.Catalog
	Provider  types.Provider
	Config    *config.LintConfig
	Languages *LanguageIndex
}

var (
	registryMu sync.Mutex
	registry   = make(map[string]Rule)
)

// Register adds a rule to the global registry. Rules self-register from
// their file's init function.
func Register(r Rule) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[r.ID()]; dup {
		panic("lint: duplicate rule id: " + r.ID())
	}
	registry[r.ID()] = r
}

// Rules returns all registered rules sorted by id.
func Rules() []Rule {
	registryMu.Lock()
	defer registryMu.Unlock()
	rules := make([]Rule, 0, len(registry))
	for _, r := range registry {
		rules = append(rules, r)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID() < rules[j].ID() })
	return rules
}

// Engine applies the registered rules with configured severities.
type Engine struct {
	rules      []Rule
	severities map[string]types.Severity
	cfg        *config.LintConfig
	progress   *progress.Progress
}

// NewEngine builds an engine from the registry and the lint config.
// defaultSeverities (from the rule manifests) override each rule's
// built-in default; the config overrides both and can disable rules.
func NewEngine(cfg *config.LintConfig, defaultSeverities map[string]types.Severity, prog *progress.Progress) *Engine {
	if cfg == nil {
		cfg = config.DefaultLintConfig()
	}
	if prog == nil {
		prog = progress.New(false, progress.NewNullHandler())
	}

	e := &Engine{
		severities: make(map[string]types.Severity),
		cfg:        cfg,
		progress:   prog,
	}

	for _, r := range Rules() {
		if cfg.RuleDisabled(r.ID()) {
			continue
		}
		sev := r.DefaultSeverity()
		if s, ok := defaultSeverities[r.ID()]; ok {
			sev = s
		}
		if s, ok := cfg.RuleSeverity(r.ID()); ok {
			sev = s
		}
		e.rules = append(e.rules, r)
		e.severities[r.ID()] = sev
	}
	return e
}

// RuleCount returns the number of rules the engine will run.
func (e *Engine) RuleCount() int {
	return len(e.rules)
}

// Run checks the catalog against every enabled rule and returns the
// findings sorted by path and line.
func (e *Engine) Run(ctx *Context) []types.Finding {
	if ctx.Config == nil {
		ctx.Config = e.cfg
	}
	if ctx.Languages == nil {
		ctx.Languages = NewLanguageIndex(e.cfg.ExtraLanguages)
	}

	var findings []types.Finding
	for _, r := range e.rules {
		e.progress.RuleStart(r.ID())
		fs := r.Check(ctx)
		for i := range fs {
			fs[i].Rule = r.ID()
			fs[i].Severity = e.severities[r.ID()]
		}
		e.progress.RuleFindings(r.ID(), len(fs))
		findings = append(findings, fs...)
	}

	types.SortFindings(findings)
	return findings
}
