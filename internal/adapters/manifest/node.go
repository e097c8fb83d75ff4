package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sassimport/internal/core/ports"
)

const NodeID graft.ID = "adapter.manifest_opener"

func init() {
	graft.Register(graft.Node[ports.ManifestOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestOpener, error) {
			return NewOpener(), nil
		},
	})
}
