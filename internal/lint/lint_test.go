package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrarca/catlint/internal/config"
	"github.com/petrarca/catlint/internal/types"
)

func TestRulesRegistrySorted(t *testing.T) {
	rules := Rules()
	require.NotEmpty(t, rules)

	ids := make([]string, len(rules))
	for i, r := range rules {
		ids[i] = r.ID()
	}
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}

	assert.Contains(t, ids, "duplicate-entry")
	assert.Contains(t, ids, "snippet-language")
	assert.Contains(t, ids, "relative-link")
}

func TestEngineStampsRuleAndSeverity(t *testing.T) {
	cat, p := loadTestCatalog(t, map[string]string{
		"README.md":       cleanIndex,
		"react/README.md": "# React\n\n## State\n\n### Zustand\n\n**Use**: state\n\n**Description**: stores\n",
	})

	engine := NewEngine(config.DefaultLintConfig(), nil, nil)
	findings := engine.Run(newTestContext(cat, p))

	require.Len(t, findings, 1)
	assert.Equal(t, "entry-snippet", findings[0].Rule)
	assert.Equal(t, types.SeverityWarning, findings[0].Severity)
}

func TestEngineManifestSeverityOverridesDefault(t *testing.T) {
	severities := map[string]types.Severity{"entry-snippet": types.SeverityError}
	engine := NewEngine(config.DefaultLintConfig(), severities, nil)

	cat, p := loadTestCatalog(t, map[string]string{
		"README.md":       cleanIndex,
		"react/README.md": "# React\n\n## State\n\n### Zustand\n\n**Use**: state\n\n**Description**: stores\n",
	})
	findings := engine.Run(newTestContext(cat, p))

	require.Len(t, findings, 1)
	assert.Equal(t, types.SeverityError, findings[0].Severity)
}

func TestEngineConfigSeverityOverridesManifest(t *testing.T) {
	cfg := config.DefaultLintConfig()
	cfg.Rules = map[string]config.RuleSetting{
		"entry-snippet": {Severity: "info"},
	}
	severities := map[string]types.Severity{"entry-snippet": types.SeverityError}
	engine := NewEngine(cfg, severities, nil)

	cat, p := loadTestCatalog(t, map[string]string{
		"README.md":       cleanIndex,
		"react/README.md": "# React\n\n## State\n\n### Zustand\n\n**Use**: state\n\n**Description**: stores\n",
	})
	ctx := newTestContext(cat, p)
	ctx.Config = cfg
	findings := engine.Run(ctx)

	require.Len(t, findings, 1)
	assert.Equal(t, types.SeverityInfo, findings[0].Severity)
}

func TestEngineDisabledRule(t *testing.T) {
	cfg := config.DefaultLintConfig()
	cfg.Rules = map[string]config.RuleSetting{
		"entry-snippet": {Disabled: true},
	}
	engine := NewEngine(cfg, nil, nil)
	assert.Equal(t, len(Rules())-1, engine.RuleCount())

	cat, p := loadTestCatalog(t, map[string]string{
		"README.md":       cleanIndex,
		"react/README.md": "# React\n\n## State\n\n### Zustand\n\n**Use**: state\n\n**Description**: stores\n",
	})
	ctx := newTestContext(cat, p)
	ctx.Config = cfg
	assert.Empty(t, engine.Run(ctx))
}

func TestEngineSortsFindings(t *testing.T) {
	cat, p := loadTestCatalog(t, map[string]string{
		"README.md":        cleanIndex + "- [Node.js](nodejs/README.md)\n",
		"react/README.md":  "# React\n\n## State\n\n### Zustand\n\n**Use**: state\n\n**Description**: stores\n",
		"nodejs/README.md": "# Node.js\n\n## Frameworks\n\n### Express\n\n**Use**: HTTP.\n\n**Description**: Minimal.\n",
	})

	engine := NewEngine(config.DefaultLintConfig(), nil, nil)
	findings := engine.Run(newTestContext(cat, p))

	require.Len(t, findings, 2)
	assert.Equal(t, "nodejs/README.md", findings[0].Path)
	assert.Equal(t, "react/README.md", findings[1].Path)
}
