package toolchain

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the toolchain cache Graft node.
const NodeID graft.ID = "adapter.toolchain"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Cache, error) {
			return NewCache(), nil
		},
	})
}
