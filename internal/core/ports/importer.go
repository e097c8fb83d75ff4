package ports

import (
	"context"

	"go.trai.ch/sassimport/internal/core/domain"
)

// Importer resolves @import requests for one compiler invocation.
type Importer interface {
	// Resolve locates, transforms and deduplicates a single import.
	Resolve(ctx context.Context, req domain.ImportRequest) (domain.ImportResult, error)
}

// Compiler compiles an entry stylesheet to CSS, resolving imports through an Importer.
//
//go:generate go run go.uber.org/mock/mockgen -source=importer.go -destination=mocks/mock_importer.go -package=mocks
type Compiler interface {
	Compile(ctx context.Context, entry string, importer Importer) (string, error)
}

// ManifestStore persists the files delivered during a run.
type ManifestStore interface {
	// Get returns the entry for a resolved path. Returns nil, nil if not found.
	Get(path string) (*domain.ManifestEntry, error)

	// Put records entries and saves the manifest.
	Put(entries ...domain.ManifestEntry) error
}

// ManifestOpener opens the manifest stored at a path.
type ManifestOpener interface {
	// Open loads the manifest. A missing file yields an empty manifest.
	Open(path string) (ManifestStore, error)
}
