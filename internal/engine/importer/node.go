package importer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sassimport/internal/adapters/config"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sassimport/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sassimport/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sassimport/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sassimport/internal/core/ports"
)

// NodeID is the unique identifier for the importer factory Graft node.
const NodeID graft.ID = "engine.importer"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ReaderNodeID,
			config.PackageDirNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			reader, err := graft.Dep[ports.FileReader](ctx)
			if err != nil {
				return nil, err
			}

			packages, err := graft.Dep[ports.PackageDirLoader](ctx)
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

			return NewFactory(Deps{
				Reader:    reader,
				Packages:  packages,
				Logger:    log,
				Telemetry: tel,
			}), nil
		},
	})
}
