// Package tui is the read-only terminal browser for a catalog.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/petrarca/catlint/internal/types"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Bold(true)
	fenceStyle = lipgloss.NewStyle().Faint(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// entryItem adapts a catalog entry to the bubbles list
type entryItem struct {
	entry    types.Entry
	docPath  string
	category string
}

func (i entryItem) Title() string { return i.entry.Name }

func (i entryItem) Description() string {
	desc := i.category
	if i.entry.Use != "" {
		desc += ": " + i.entry.Use
	}
	return desc
}

func (i entryItem) FilterValue() string {
	return i.entry.Name + " " + i.category + " " + i.entry.Use
}

// Browser is the bubbletea model: a filterable entry list with a
// scrollable detail view.
type Browser struct {
	list     list.Model
	viewport viewport.Model
	detail   bool
	width    int
	height   int
}

// NewBrowser builds the browser over every entry in the catalog.
func NewBrowser(cat *types.Catalog) Browser {
	var items []list.Item
	for _, doc := range cat.Documents {
		for _, c := range doc.Categories {
			for _, e := range c.Entries {
				items = append(items, entryItem{entry: e, docPath: doc.Path, category: c.Name})
			}
		}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Catalog"
	l.SetShowHelp(true)

	return Browser{list: l, viewport: viewport.New(0, 0)}
}

func (m Browser) Init() tea.Cmd {
	return nil
}

func (m Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height)
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4
		return m, nil

	case tea.KeyMsg:
		if m.detail {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "esc", "backspace":
				m.detail = false
				return m, nil
			}
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "enter":
				if item, ok := m.list.SelectedItem().(entryItem); ok {
					m.viewport.SetContent(renderEntryDetail(item))
					m.viewport.GotoTop()
					m.detail = true
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Browser) View() string {
	if !m.detail {
		return m.list.View()
	}

	item, _ := m.list.SelectedItem().(entryItem)
	header := titleStyle.Render(item.entry.Name) +
		helpStyle.Render("  "+item.docPath)
	help := helpStyle.Render("esc back · q quit")
	return header + "\n\n" + m.viewport.View() + "\n" + help
}

// renderEntryDetail renders one entry's labels, use cases and snippets
func renderEntryDetail(item entryItem) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n\n", labelStyle.Render("Category:"), item.category)
	for _, label := range item.entry.Labels {
		if label.Value != "" {
			fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(label.Name+":"), label.Value)
		}
	}

	if len(item.entry.UseCases) > 0 {
		b.WriteString("\n" + labelStyle.Render("Common Use Cases:") + "\n")
		for _, uc := range item.entry.UseCases {
			fmt.Fprintf(&b, "  - %s\n", uc)
		}
	}

	for _, snippet := range item.entry.Snippets {
		fmt.Fprintf(&b, "\n%s\n%s\n%s\n",
			fenceStyle.Render("```"+snippet.Language),
			strings.TrimRight(snippet.Body, "\n"),
			fenceStyle.Render("```"))
	}

	return b.String()
}
