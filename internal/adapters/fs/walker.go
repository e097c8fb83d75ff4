// Package fs provides file system adapters for reading, walking and hashing stylesheets.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	"go.trai.ch/sassimport/internal/core/ports"
)

var _ ports.SourceWalker = (*Walker)(nil)

// Walker finds stylesheet sources.
type Walker struct {
	ignores []string
}

// NewWalker creates a new Walker. Directory or file names matching any of
// the ignore patterns are skipped, in addition to .git, .jj and node_modules.
func NewWalker(ignores ...string) *Walker {
	return &Walker{ignores: ignores}
}

// Stylesheets yields every .scss and .sass file below root in lexical order.
func (w *Walker) Stylesheets(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable entries are skipped, the walk goes on.
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if path != root {
				if skip, action := w.shouldSkip(d); skip {
					return action
				}
			}

			if d.IsDir() || !isStylesheet(path) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// shouldSkip reports whether d is excluded. For directories the returned
// action prunes the whole subtree.
func (w *Walker) shouldSkip(d fs.DirEntry) (bool, error) {
	name := d.Name()

	if d.IsDir() {
		switch name {
		case ".git", ".jj", "node_modules":
			return true, filepath.SkipDir
		}
	}

	for _, ignore := range w.ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			if d.IsDir() {
				return true, filepath.SkipDir
			}
			return true, nil
		}
	}

	return false, nil
}

func isStylesheet(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".scss", ".sass":
		return true
	default:
		return false
	}
}
