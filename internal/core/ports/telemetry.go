package ports

import (
	"context"

	"go.trai.ch/sassimport/internal/core/domain"
)

// Telemetry records one vertex per unit of work.
type Telemetry interface {
	// Record starts a new vertex.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording session.
	Close() error
}

// Vertex is a unit of work in the telemetry tape.
type Vertex interface {
	// Log records a message associated with this vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)
	// Cached marks the vertex as satisfied without doing the work.
	Cached()
}
