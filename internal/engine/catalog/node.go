package catalog

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the catalog Graft node.
const NodeID graft.ID = "engine.catalog"

func init() {
	graft.Register(graft.Node[*Catalog]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Catalog, error) {
			return New(), nil
		},
	})
}
