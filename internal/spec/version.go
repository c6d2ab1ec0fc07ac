package spec

const (
	// Version represents the output format specification version
	// This version indicates the structure and schema of the JSON output
	// It should be updated when breaking changes are made to the output format
	Version = "0.1"
)
