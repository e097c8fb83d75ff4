// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sassimport/internal/adapters/config"
	_ "go.trai.ch/sassimport/internal/adapters/dartsass"
	_ "go.trai.ch/sassimport/internal/adapters/fs"
	_ "go.trai.ch/sassimport/internal/adapters/logger"
	_ "go.trai.ch/sassimport/internal/adapters/manifest"
	_ "go.trai.ch/sassimport/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/sassimport/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/sassimport/internal/app"
	_ "go.trai.ch/sassimport/internal/engine/importer"
)
