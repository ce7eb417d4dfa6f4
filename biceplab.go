// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package biceplab

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/brunoga/deep"
)

// Embed the lib dir into the binary.
//
//go:embed lib
var Lib embed.FS

const (
	docsDir     = "docs"
	examplesDir = "examples"
)

var (
	// ErrExampleNotFound is returned when the requested example is not in the lab.
	ErrExampleNotFound = errors.New("example not found")

	// ErrDocNotFound is returned when the requested document is not in the lab.
	ErrDocNotFound = errors.New("document not found")

	// ErrExampleAlreadyExists is returned when a library would overwrite an
	// existing example and AllowOverwrite is not set.
	ErrExampleAlreadyExists = errors.New("example already exists in the lab")
)

// Lab is the in-memory form of a tutorial library, built from one or more
// fs.FS sources by Init. Do not create this directly, use NewLab instead.
type Lab struct {
	Options *LabOptions

	examples map[string]*Example
	docs     map[string][]byte
	mu       sync.RWMutex
}

// LabOptions are options for the Lab. This is created by NewLab.
type LabOptions struct {
	// AllowOverwrite allows later libraries passed to Init to replace
	// examples and docs loaded from earlier ones.
	AllowOverwrite bool
}

// Example is one tutorial example: a directory of template files keyed by
// path relative to the example's directory.
type Example struct {
	Name  string
	Files map[string][]byte
}

// NewLab returns a new empty Lab.
func NewLab() *Lab {
	return &Lab{
		Options:  &LabOptions{},
		examples: make(map[string]*Example),
		docs:     make(map[string][]byte),
	}
}

// DefaultLibrary returns the embedded tutorial library as an fs.FS rooted at
// its content.
func DefaultLibrary() fs.FS {
	sub, err := fs.Sub(Lib, "lib")
	if err != nil {
		panic(err) // embed layout is fixed at build time
	}
	return sub
}

// Init processes the supplied libraries in order and populates the lab.
// Sources follow the library layout: lessons under docs/, examples under
// examples/<name>/. Call with DefaultLibrary() for the embedded content.
func (l *Lab) Init(ctx context.Context, libs ...fs.FS) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, lib := range libs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := l.addLibrary(lib); err != nil {
			return err
		}
	}
	return nil
}

func (l *Lab) addLibrary(lib fs.FS) error {
	return fs.WalkDir(lib, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(lib, p)
		if err != nil {
			return fmt.Errorf("reading library file %s: %w", p, err)
		}
		switch {
		case strings.HasPrefix(p, docsDir+"/") && path.Ext(p) == ".md":
			l.docs[path.Base(p)] = data
		case strings.HasPrefix(p, examplesDir+"/"):
			rel := strings.TrimPrefix(p, examplesDir+"/")
			name, filePath, ok := strings.Cut(rel, "/")
			if !ok {
				return nil // stray file directly under examples/
			}
			if err := l.addExampleFile(name, filePath, data); err != nil {
				return err
			}
		}
		return nil
	})
}

func (l *Lab) addExampleFile(name, filePath string, data []byte) error {
	ex, ok := l.examples[name]
	if !ok {
		ex = &Example{
			Name:  name,
			Files: make(map[string][]byte),
		}
		l.examples[name] = ex
	}
	if _, exists := ex.Files[filePath]; exists && !l.Options.AllowOverwrite {
		return fmt.Errorf("%w: %s (%s)", ErrExampleAlreadyExists, name, filePath)
	}
	ex.Files[filePath] = data
	return nil
}

// Examples returns the names of the examples in the lab, sorted.
func (l *Lab) Examples() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.examples))
	for name := range l.examples {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Docs returns the file names of the documents in the lab, sorted.
func (l *Lab) Docs() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.docs))
	for name := range l.docs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Example returns a deep copy of the named example, so callers cannot mutate
// the lab's own content.
func (l *Lab) Example(name string) (*Example, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ex, ok := l.examples[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrExampleNotFound, name)
	}
	return deep.Copy(ex)
}

// Doc returns the content of the named document.
func (l *Lab) Doc(name string) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	data, ok := l.docs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDocNotFound, name)
	}
	return slices.Clone(data), nil
}
