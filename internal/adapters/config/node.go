package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sassimport/internal/adapters/logger"
	"go.trai.ch/sassimport/internal/core/ports"
)

const (
	NodeID           graft.ID = "adapter.config_loader"
	PackageDirNodeID graft.ID = "adapter.package_dir_loader"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[ports.PackageDirLoader]{
		ID:        PackageDirNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackageDirLoader, error) {
			return NewBowerrcLoader(), nil
		},
	})
}
