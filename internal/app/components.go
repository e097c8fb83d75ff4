package app

import "go.trai.ch/sassimport/internal/core/ports"

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
	// Closers are released when the CLI exits.
	Closers []interface{ Close() error }
}

// Close releases every closer, returning the first error.
func (c *Components) Close() error {
	var first error
	for _, closer := range c.Closers {
		if err := closer.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
