package provider

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/petrarca/catlint/internal/types"
)

// FakeProvider implements the Provider interface for testing
type FakeProvider struct {
	content map[string]string
	dirs    map[string]bool
}

// NewFakeProvider creates a new fake provider
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		content: make(map[string]string),
		dirs:    map[string]bool{".": true},
	}
}

// AddFile adds a file (and its parent directories) to the fake provider
func (p *FakeProvider) AddFile(path, content string) {
	p.content[path] = content
	for dir := filepath.Dir(path); dir != "." && dir != "/"; dir = filepath.Dir(dir) {
		p.dirs[dir] = true
	}
}

// AddDir adds an empty directory to the fake provider
func (p *FakeProvider) AddDir(path string) {
	p.dirs[path] = true
}

// ListDir returns the contents of a directory
func (p *FakeProvider) ListDir(path string) ([]types.File, error) {
	if !p.dirs[path] {
		return nil, fmt.Errorf("directory does not exist: %s", path)
	}

	seen := make(map[string]types.File)
	for file, content := range p.content {
		dir := filepath.Dir(file)
		if dir == path {
			seen[filepath.Base(file)] = types.File{
				Name: filepath.Base(file),
				Path: file,
				Type: "file",
				Size: int64(len(content)),
			}
		}
	}
	for dir := range p.dirs {
		if dir != "." && filepath.Dir(dir) == path {
			seen[filepath.Base(dir)] = types.File{
				Name: filepath.Base(dir),
				Path: dir,
				Type: "dir",
			}
		}
	}

	files := make([]types.File, 0, len(seen))
	for _, f := range seen {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// ReadFile reads file content as bytes
func (p *FakeProvider) ReadFile(path string) ([]byte, error) {
	content, ok := p.content[path]
	if !ok {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}
	return []byte(content), nil
}

// Exists checks if a file or directory exists
func (p *FakeProvider) Exists(path string) (bool, error) {
	path = strings.TrimSuffix(path, "/")
	_, fileExists := p.content[path]
	return fileExists || p.dirs[path], nil
}

// IsDir checks if a path is a directory
func (p *FakeProvider) IsDir(path string) (bool, error) {
	return p.dirs[strings.TrimSuffix(path, "/")], nil
}

// GetBasePath returns the base path for this provider
func (p *FakeProvider) GetBasePath() string {
	return "."
}
