package types

// Catalog is the fully parsed catalog: the top-level index document plus
// one document per ecosystem subdirectory.
type Catalog struct {
	Root      string      `json:"root"`
	Index     *Document   `json:"index,omitempty"`
	Documents []*Document `json:"documents"`
}

// Document is one parsed ecosystem README.
type Document struct {
	// Path is relative to the catalog root (e.g. "react/README.md").
	Path       string     `json:"path"`
	Ecosystem  string     `json:"ecosystem"`
	Intro      string     `json:"intro,omitempty"`
	Categories []Category `json:"categories"`
	Headings   []Heading  `json:"-"`
	Links      []Link     `json:"-"`
	Source     []byte     `json:"-"`
}

// Category groups related entries under a `##` heading.
type Category struct {
	Name    string  `json:"name"`
	Line    int     `json:"line"`
	Entries []Entry `json:"entries"`
}

// Entry is one documented library: name, labeled fields, and a usage snippet.
type Entry struct {
	Name        string    `json:"name"`
	Line        int       `json:"line"`
	Use         string    `json:"use,omitempty"`
	Description string    `json:"description,omitempty"`
	UseCases    []string  `json:"use_cases,omitempty"`
	Labels      []Label   `json:"-"`
	Snippets    []Snippet `json:"snippets,omitempty"`
}

// Label is a bold `**Name**: value` field inside an entry.
type Label struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Line  int    `json:"line"`
}

// Snippet is a fenced code block belonging to an entry.
type Snippet struct {
	Language string `json:"language"`
	Body     string `json:"-"`
	Line     int    `json:"line"`
}

// Heading is a parsed Markdown heading with its GitHub-style anchor.
type Heading struct {
	Level  int    `json:"level"`
	Text   string `json:"text"`
	Anchor string `json:"anchor"`
	Line   int    `json:"line"`
}

// Link is a Markdown link found anywhere in a document.
type Link struct {
	Destination string `json:"destination"`
	Text        string `json:"text,omitempty"`
	Line        int    `json:"line"`
}

// EntryCount returns the number of entries across all categories.
func (d *Document) EntryCount() int {
	n := 0
	for _, c := range d.Categories {
		n += len(c.Entries)
	}
	return n
}

// SnippetCount returns the number of snippets across all entries.
func (d *Document) SnippetCount() int {
	n := 0
	for _, c := range d.Categories {
		for _, e := range c.Entries {
			n += len(e.Snippets)
		}
	}
	return n
}

// Label returns the value of a named label on the entry, if present.
func (e *Entry) Label(name string) (string, bool) {
	for _, l := range e.Labels {
		if l.Name == name {
			return l.Value, true
		}
	}
	return "", false
}

// AllDocuments returns the index (if any) followed by the ecosystem
// documents, which is the order lint rules walk them in.
func (c *Catalog) AllDocuments() []*Document {
	docs := make([]*Document, 0, len(c.Documents)+1)
	if c.Index != nil {
		docs = append(docs, c.Index)
	}
	docs = append(docs, c.Documents...)
	return docs
}

// Totals returns catalog-wide document, category, entry and snippet counts.
func (c *Catalog) Totals() (documents, categories, entries, snippets int) {
	for _, d := range c.Documents {
		documents++
		categories += len(d.Categories)
		entries += d.EntryCount()
		snippets += d.SnippetCount()
	}
	return
}
