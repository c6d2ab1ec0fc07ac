package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/petrarca/catlint/internal/metadata"
	"github.com/petrarca/catlint/internal/types"
)

var (
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	locationStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	ruleStyle       = lipgloss.NewStyle().Faint(true)
	suggestionStyle = lipgloss.NewStyle().Italic(true)
)

// LintReport is the result of a lint run
type LintReport struct {
	Metadata *metadata.ReportMetadata `json:"metadata" yaml:"metadata"`
	Summary  types.Summary            `json:"summary" yaml:"summary"`
	Findings []types.Finding          `json:"findings" yaml:"findings"`
}

// NewLintReport assembles a report from findings and run metadata
func NewLintReport(meta *metadata.ReportMetadata, findings []types.Finding) *LintReport {
	if findings == nil {
		findings = []types.Finding{}
	}
	return &LintReport{
		Metadata: meta,
		Summary:  types.Summarize(findings),
		Findings: findings,
	}
}

func (r *LintReport) ToJSON() interface{} {
	return r
}

func (r *LintReport) ToText(w io.Writer) {
	styled := w == os.Stdout && isatty.IsTerminal(os.Stdout.Fd())

	for _, f := range r.Findings {
		if styled {
			fmt.Fprintln(w, renderFinding(f))
		} else {
			fmt.Fprintln(w, f.String())
		}
	}

	if r.Summary.Total == 0 {
		fmt.Fprintf(w, "No problems found (%d documents, %d entries)\n",
			r.Metadata.DocumentCount, r.Metadata.EntryCount)
		return
	}

	fmt.Fprintf(w, "\n%d problem(s): %d error(s), %d warning(s), %d info\n",
		r.Summary.Total, r.Summary.Errors, r.Summary.Warnings, r.Summary.Infos)
}

// renderFinding renders one finding with terminal colors
func renderFinding(f types.Finding) string {
	loc := f.Path
	if f.Line > 0 {
		loc = fmt.Sprintf("%s:%d", f.Path, f.Line)
	}

	sev := f.Severity.String()
	switch f.Severity {
	case types.SeverityError:
		sev = errorStyle.Render(sev)
	case types.SeverityWarning:
		sev = warningStyle.Render(sev)
	default:
		sev = infoStyle.Render(sev)
	}

	out := fmt.Sprintf("%s: %s: %s %s",
		locationStyle.Render(loc), sev, f.Message, ruleStyle.Render("["+f.Rule+"]"))
	if f.Suggestion != "" {
		out += " " + suggestionStyle.Render(fmt.Sprintf("(did you mean %q?)", f.Suggestion))
	}
	return out
}
