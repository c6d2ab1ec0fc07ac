// new-entry appends an entry skeleton to an ecosystem README so new
// additions start out with the labels and snippet fence the lint rules
// expect.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/petrarca/catlint/internal/catalog"
)

func main() {
	var (
		catalogPath = flag.String("catalog", ".", "catalog root directory")
		doc         = flag.String("doc", "", "ecosystem directory (e.g. react)")
		name        = flag.String("name", "", "library name for the new entry")
		language    = flag.String("lang", "", "snippet fence language tag")
	)
	flag.Parse()

	if *doc == "" || *name == "" {
		fmt.Fprintln(os.Stderr, "usage: new-entry -doc <ecosystem> -name <library> [-lang <tag>] [-catalog <path>]")
		os.Exit(2)
	}

	docPath := filepath.Join(*catalogPath, *doc, catalog.IndexFile)
	source, err := os.ReadFile(docPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", docPath, err)
		os.Exit(1)
	}

	parsed := catalog.ParseDocument(docPath, source)
	for _, c := range parsed.Categories {
		for _, e := range c.Entries {
			if strings.EqualFold(e.Name, *name) {
				fmt.Fprintf(os.Stderr, "entry %q already exists in %s (line %d)\n", *name, docPath, e.Line)
				os.Exit(1)
			}
		}
	}

	var b strings.Builder
	b.WriteString(string(source))
	if !strings.HasSuffix(b.String(), "\n") {
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n### %s\n\n", *name)
	b.WriteString("**Use**: TODO\n\n")
	b.WriteString("**Description**: TODO\n\n")
	b.WriteString("**Common Use Cases**:\n\n- TODO\n\n")
	fmt.Fprintf(&b, "```%s\n```\n", *language)

	if err := os.WriteFile(docPath, []byte(b.String()), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", docPath, err)
		os.Exit(1)
	}
	fmt.Printf("Added %q to %s\n", *name, docPath)
}
