package integrity

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mulpath/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mulpath/internal/adapters/sidecar"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mulpath/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mulpath/internal/core/ports"
	"go.trai.ch/mulpath/internal/engine/catalog"
)

// NodeID is the unique identifier for the verifier Graft node.
const NodeID graft.ID = "engine.integrity"

func init() {
	graft.Register(graft.Node[*Verifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			catalog.NodeID,
			fs.HasherNodeID,
			sidecar.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Verifier, error) {
			cat, err := graft.Dep[*catalog.Catalog](ctx)
			if err != nil {
				return nil, err
			}

			digester, err := graft.Dep[ports.Digester](ctx)
			if err != nil {
				return nil, err
			}

			sidecars, err := graft.Dep[ports.SidecarStore](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewVerifier(cat, digester, sidecars, telemetry), nil
		},
	})
}
