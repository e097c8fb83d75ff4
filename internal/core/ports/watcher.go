package ports

import (
	"context"
	"iter"
)

// Watcher reports changed files below a directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching root recursively. It returns an error if the
	// watcher fails to start.
	Start(ctx context.Context, root string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Changes yields batches of changed paths, coalesced over a short window.
	// The sequence ends when the watcher stops or ctx is cancelled.
	Changes() iter.Seq[[]string]
}
