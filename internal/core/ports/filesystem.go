// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"iter"
)

// FileReader gives the resolver read access to the filesystem.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileReader interface {
	// ReadFile returns the content of the file at path.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// IsFile reports whether path names an existing regular file.
	IsFile(path string) bool
}

// SourceWalker enumerates stylesheet sources below a directory.
type SourceWalker interface {
	// Stylesheets yields the paths of .scss and .sass files below root.
	Stylesheets(root string) iter.Seq[string]
}

// Hasher computes content digests.
type Hasher interface {
	// ContentHash returns a stable hex digest of data.
	ContentHash(data []byte) string
}
