package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stamp/internal/core/ports"
)

// DiscovererNodeID is the unique identifier for the document discoverer Graft node.
const DiscovererNodeID graft.ID = "adapter.fs.discoverer"

func init() {
	graft.Register(graft.Node[ports.Discoverer]{
		ID:        DiscovererNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Discoverer, error) {
			return NewWalker(), nil
		},
	})
}
