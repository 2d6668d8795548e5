package frontmatter

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stamp/internal/core/ports"
)

// NodeID is the unique identifier for the document codec Graft node.
const NodeID graft.ID = "adapter.frontmatter"

func init() {
	graft.Register(graft.Node[ports.DocumentCodec]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DocumentCodec, error) {
			return NewCodec(), nil
		},
	})
}
