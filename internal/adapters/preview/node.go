package preview

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stamp/internal/core/ports"
)

// NodeID is the unique identifier for the previewer Graft node.
const NodeID graft.ID = "adapter.preview"

func init() {
	graft.Register(graft.Node[ports.Previewer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Previewer, error) {
			return New(), nil
		},
	})
}
