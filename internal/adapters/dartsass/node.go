package dartsass

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sassimport/internal/adapters/fs"
	"go.trai.ch/sassimport/internal/adapters/logger"
	"go.trai.ch/sassimport/internal/core/ports"
)

const NodeID graft.ID = "adapter.compiler"

func init() {
	graft.Register(graft.Node[*Compiler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ReaderNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Compiler, error) {
			reader, err := graft.Dep[ports.FileReader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewCompiler(reader, log), nil
		},
	})
}
