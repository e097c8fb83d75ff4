package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sassimport/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/sassimport/internal/adapters/dartsass"           //nolint:depguard // Wired in app layer
	"go.trai.ch/sassimport/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/sassimport/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/sassimport/internal/adapters/manifest"           //nolint:depguard // Wired in app layer
	"go.trai.ch/sassimport/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/sassimport/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/sassimport/internal/core/ports"
	"go.trai.ch/sassimport/internal/engine/importer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			importer.NodeID,
			fs.ReaderNodeID,
			fs.WalkerNodeID,
			fs.HasherNodeID,
			manifest.NodeID,
			dartsass.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
			dartsass.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	sessions, err := graft.Dep[*importer.Factory](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.FileReader](ctx)
	if err != nil {
		return nil, err
	}

	walker, err := graft.Dep[ports.SourceWalker](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	manifests, err := graft.Dep[ports.ManifestOpener](ctx)
	if err != nil {
		return nil, err
	}

	compiler, err := graft.Dep[*dartsass.Compiler](ctx)
	if err != nil {
		return nil, err
	}

	watch, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, sessions, reader, walker, hasher, manifests, compiler, watch, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	compiler, err := graft.Dep[*dartsass.Compiler](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: tel,
		Closers:   []interface{ Close() error }{compiler, tel},
	}, nil
}
