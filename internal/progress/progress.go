// Package progress reports catalog loading and lint activity when the
// user asks for verbose output.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// EventType represents the type of progress event
type EventType int

const (
	EventLoadStart EventType = iota
	EventLoadComplete
	EventDocumentFound
	EventDocumentParsed
	EventSkipped
	EventRuleStart
	EventRuleFinding
	EventFileWriting
	EventFileWritten
	EventInfo
)

// Event represents something that happened during loading or linting
type Event struct {
	Type       EventType
	Path       string
	Rule       string
	Info       string
	Reason     string
	Documents  int
	Entries    int
	Findings   int
	Duration   time.Duration
}

// Reporter is the interface the loader and lint engine report events to
type Reporter interface {
	Report(event Event)
}

// Handler processes events and produces output
type Handler interface {
	Handle(event Event)
}

// Progress is the centralized verbose system
type Progress struct {
	enabled bool
	handler Handler
}

// New creates a new progress reporter
func New(enabled bool, handler Handler) *Progress {
	if handler == nil {
		handler = NewSimpleHandler(os.Stderr)
	}
	return &Progress{enabled: enabled, handler: handler}
}

// Report sends an event to the handler (only if enabled)
func (p *Progress) Report(event Event) {
	if !p.enabled {
		return
	}
	p.handler.Handle(event)
}

// Convenience methods for the loader and lint engine

func (p *Progress) LoadStart(path string, excludePatterns []string) {
	p.Report(Event{
		Type: EventLoadStart,
		Path: path,
		Info: strings.Join(excludePatterns, ", "),
	})
}

func (p *Progress) LoadComplete(documents, entries int, duration time.Duration) {
	p.Report(Event{
		Type:      EventLoadComplete,
		Documents: documents,
		Entries:   entries,
		Duration:  duration,
	})
}

func (p *Progress) DocumentFound(path string) {
	p.Report(Event{Type: EventDocumentFound, Path: path})
}

func (p *Progress) DocumentParsed(path string, categories, entries int) {
	p.Report(Event{
		Type:    EventDocumentParsed,
		Path:    path,
		Entries: entries,
		Info:    fmt.Sprintf("%d categories, %d entries", categories, entries),
	})
}

func (p *Progress) Skipped(path, reason string) {
	p.Report(Event{Type: EventSkipped, Path: path, Reason: reason})
}

func (p *Progress) RuleStart(rule string) {
	p.Report(Event{Type: EventRuleStart, Rule: rule})
}

func (p *Progress) RuleFindings(rule string, findings int) {
	p.Report(Event{Type: EventRuleFinding, Rule: rule, Findings: findings})
}

func (p *Progress) FileWriting(path string) {
	p.Report(Event{Type: EventFileWriting, Path: path})
}

func (p *Progress) FileWritten(path string) {
	p.Report(Event{Type: EventFileWritten, Path: path})
}

func (p *Progress) Info(message string) {
	p.Report(Event{Type: EventInfo, Info: message})
}

// SimpleHandler outputs events as simple prefixed lines
type SimpleHandler struct {
	writer io.Writer
}

func NewSimpleHandler(writer io.Writer) *SimpleHandler {
	return &SimpleHandler{writer: writer}
}

func (h *SimpleHandler) Handle(event Event) {
	switch event.Type {
	case EventLoadStart:
		fmt.Fprintf(h.writer, "[LOAD] Starting: %s\n", event.Path)
		if event.Info != "" {
			fmt.Fprintf(h.writer, "[LOAD] Excluding: %s\n", event.Info)
		}

	case EventLoadComplete:
		fmt.Fprintf(h.writer, "[LOAD] Completed: %d documents, %d entries in %.2fs\n",
			event.Documents, event.Entries, event.Duration.Seconds())

	case EventDocumentFound:
		fmt.Fprintf(h.writer, "[DOC]  Found: %s\n", event.Path)

	case EventDocumentParsed:
		fmt.Fprintf(h.writer, "[DOC]  Parsed: %s (%s)\n", event.Path, event.Info)

	case EventSkipped:
		fmt.Fprintf(h.writer, "[SKIP] Excluding: %s (%s)\n", event.Path, event.Reason)

	case EventRuleStart:
		fmt.Fprintf(h.writer, "[RULE] Checking: %s\n", event.Rule)

	case EventRuleFinding:
		if event.Findings > 0 {
			fmt.Fprintf(h.writer, "[RULE] %s: %d finding(s)\n", event.Rule, event.Findings)
		}

	case EventFileWriting:
		fmt.Fprintf(h.writer, "[OUT]  Writing results to: %s\n", event.Path)

	case EventFileWritten:
		fmt.Fprintf(h.writer, "[OUT]  Results written: %s\n", event.Path)

	case EventInfo:
		fmt.Fprintf(h.writer, "[INFO] %s\n", event.Info)
	}
}

// NullHandler discards all events (for disabled verbose mode)
type NullHandler struct{}

func NewNullHandler() *NullHandler {
	return &NullHandler{}
}

func (h *NullHandler) Handle(event Event) {
	// Do nothing
}
