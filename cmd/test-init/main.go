package main

import (
	"fmt"
	"time"

	"github.com/boyter/scc/v3/processor"

	"github.com/petrarca/catlint/internal/license"
	"github.com/petrarca/catlint/internal/lint"
	"github.com/petrarca/catlint/internal/rules"
)

func main() {
	start := time.Now()

	t1 := time.Now()
	manifests, err := rules.LoadEmbeddedManifests()
	if err != nil {
		panic(err)
	}
	fmt.Printf("LoadEmbeddedManifests: %v (%d manifests)\n", time.Since(t1), len(manifests))

	t2 := time.Now()
	registered := lint.Rules()
	fmt.Printf("RegisterRules: %v (%d rules)\n", time.Since(t2), len(registered))

	t3 := time.Now()
	lint.NewLanguageIndex(nil)
	fmt.Printf("NewLanguageIndex: %v\n", time.Since(t3))

	t4 := time.Now()
	processor.ProcessConstants()
	fmt.Printf("ProcessConstants: %v\n", time.Since(t4))

	t5 := time.Now()
	license.NewLicenseDetector()
	fmt.Printf("NewLicenseDetector: %v\n", time.Since(t5))

	fmt.Printf("\nTotal init: %v\n", time.Since(start))
}
