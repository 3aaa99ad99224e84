package sidecar

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mulpath/internal/core/ports"
)

// NodeID is the graft node ID for the sidecar store.
const NodeID graft.ID = "adapter.sidecar_store"

func init() {
	graft.Register(graft.Node[ports.SidecarStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SidecarStore, error) {
			return NewStore(), nil
		},
	})
}
