package main

import (
	"github.com/petrarca/catlint/internal/cmd"
)

func main() {
	cmd.Execute()
}
