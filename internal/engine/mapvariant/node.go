package mapvariant

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mulpath/internal/engine/catalog"
)

// NodeID is the unique identifier for the map variant selector Graft node.
const NodeID graft.ID = "engine.mapvariant"

func init() {
	graft.Register(graft.Node[*Selector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{catalog.NodeID},
		Run: func(ctx context.Context) (*Selector, error) {
			cat, err := graft.Dep[*catalog.Catalog](ctx)
			if err != nil {
				return nil, err
			}
			return NewSelector(cat), nil
		},
	})
}
