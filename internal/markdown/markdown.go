// Package markdown extracts the structural elements catlint cares about
// (headings, bold labels, lists, fenced code, links) from one Markdown file.
package markdown

import (
	"sort"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/petrarca/catlint/internal/types"
)

// BlockKind identifies the kind of a top-level block.
type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockLabel
	BlockList
	BlockCode
	BlockProse
)

// Block is one top-level element in document order.
type Block struct {
	Kind    BlockKind
	Line    int
	Heading types.Heading
	Label   types.Label
	Items   []string
	Code    CodeBlock
	Text    string
}

// CodeBlock is a fenced code block with its info string split off.
type CodeBlock struct {
	Info     string
	Language string
	Body     string
	Line     int
}

// File is the parsed structure of one Markdown file.
type File struct {
	Path     string
	Source   []byte
	Blocks   []Block
	Headings []types.Heading
	Links    []types.Link
}

// HeadingByAnchor returns the heading with the given anchor, if any.
func (f *File) HeadingByAnchor(anchor string) (types.Heading, bool) {
	for _, h := range f.Headings {
		if h.Anchor == anchor {
			return h, true
		}
	}
	return types.Heading{}, false
}

// Parse extracts the structure of a Markdown document.
func Parse(path string, source []byte) *File {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	f := &File{Path: path, Source: source}
	lines := newLineIndex(source)
	anchors := make(map[string]int)

	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		switch n := node.(type) {
		case *ast.Heading:
			h := types.Heading{
				Level: n.Level,
				Text:  nodeText(n, source),
				Line:  lines.at(blockStart(n)),
			}
			h.Anchor = dedupeAnchor(anchors, Slugify(h.Text))
			f.Headings = append(f.Headings, h)
			f.Blocks = append(f.Blocks, Block{Kind: BlockHeading, Line: h.Line, Heading: h})

		case *ast.FencedCodeBlock:
			cb := parseFence(n, source, lines)
			f.Blocks = append(f.Blocks, Block{Kind: BlockCode, Line: cb.Line, Code: cb})

		case *ast.List:
			line := lines.at(blockStart(n))
			var items []string
			for item := n.FirstChild(); item != nil; item = item.NextSibling() {
				items = append(items, nodeText(item, source))
			}
			f.Blocks = append(f.Blocks, Block{Kind: BlockList, Line: line, Items: items})

		case *ast.Paragraph:
			line := lines.at(blockStart(n))
			if label, ok := parseLabel(n, source, line); ok {
				f.Blocks = append(f.Blocks, Block{Kind: BlockLabel, Line: line, Label: label})
				continue
			}
			f.Blocks = append(f.Blocks, Block{
				Kind: BlockProse,
				Line: line,
				Text: nodeText(n, source),
			})
		}
	}

	f.Links = collectLinks(doc, source, lines)
	return f
}

// parseFence extracts info string, language and body from a fenced block.
func parseFence(n *ast.FencedCodeBlock, source []byte, lines lineIndex) CodeBlock {
	cb := CodeBlock{}
	if n.Info != nil {
		cb.Info = strings.TrimSpace(string(n.Info.Segment.Value(source)))
		cb.Line = lines.at(n.Info.Segment.Start)
	} else if n.Lines().Len() > 0 {
		// Untagged fence: point at the opening fence, one line above the body.
		cb.Line = lines.at(n.Lines().At(0).Start) - 1
	}
	cb.Language = types.NormalizeLanguageTag(cb.Info)

	var sb strings.Builder
	for i := 0; i < n.Lines().Len(); i++ {
		seg := n.Lines().At(i)
		sb.Write(seg.Value(source))
	}
	cb.Body = sb.String()
	return cb
}

// parseLabel recognizes paragraphs of the form `**Name**: value` (or
// `**Name:** value`), the entry field convention.
func parseLabel(p *ast.Paragraph, source []byte, line int) (types.Label, bool) {
	first := p.FirstChild()
	em, ok := first.(*ast.Emphasis)
	if !ok || em.Level != 2 {
		return types.Label{}, false
	}

	name := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(nodeText(em, source)), ":"))
	if name == "" {
		return types.Label{}, false
	}

	full := nodeText(p, source)
	value := full
	if i := strings.Index(full, nodeText(em, source)); i >= 0 {
		value = full[i+len(nodeText(em, source)):]
	}
	value = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(value), ":"))

	return types.Label{Name: name, Value: value, Line: line}, true
}

// collectLinks walks the whole tree for inline links and autolinks.
func collectLinks(doc ast.Node, source []byte, lines lineIndex) []types.Link {
	var links []types.Link
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch l := n.(type) {
		case *ast.Link:
			links = append(links, types.Link{
				Destination: string(l.Destination),
				Text:        nodeText(l, source),
				Line:        lines.at(inlineStart(l)),
			})
		case *ast.AutoLink:
			links = append(links, types.Link{
				Destination: string(l.URL(source)),
				Line:        lines.at(inlineStart(l)),
			})
		}
		return ast.WalkContinue, nil
	})
	return links
}

// nodeText concatenates all literal text under a node.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

// blockStart returns the byte offset of a block node's first line, or of
// its first text descendant when the block carries no lines itself.
func blockStart(n ast.Node) int {
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		return n.Lines().At(0).Start
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if start := blockStart(c); start >= 0 {
			return start
		}
	}
	return -1
}

// inlineStart returns the byte offset of an inline node via its first
// text descendant.
func inlineStart(n ast.Node) int {
	var start = -1
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || start >= 0 {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			start = t.Segment.Start
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return start
}

// lineIndex maps byte offsets to 1-based line numbers.
type lineIndex []int

func newLineIndex(source []byte) lineIndex {
	idx := lineIndex{0}
	for i, b := range source {
		if b == '\n' {
			idx = append(idx, i+1)
		}
	}
	return idx
}

func (idx lineIndex) at(offset int) int {
	if offset < 0 {
		return 0
	}
	return sort.Search(len(idx), func(i int) bool { return idx[i] > offset })
}

// Slugify converts heading text into a GitHub-style anchor.
func Slugify(text string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		case r == ' ':
			sb.WriteByte('-')
		}
	}
	return sb.String()
}

// dedupeAnchor appends -1, -2, ... to anchors already seen in the file,
// matching how GitHub disambiguates repeated headings.
func dedupeAnchor(seen map[string]int, anchor string) string {
	n, ok := seen[anchor]
	seen[anchor] = n + 1
	if !ok {
		return anchor
	}
	return anchor + "-" + strconv.Itoa(n)
}
