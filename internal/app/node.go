package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mulpath/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/mulpath/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/mulpath/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/mulpath/internal/core/ports"
	"go.trai.ch/mulpath/internal/engine/catalog"
	"go.trai.ch/mulpath/internal/engine/integrity"
	"go.trai.ch/mulpath/internal/engine/mapvariant"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			catalog.NodeID,
			integrity.NodeID,
			mapvariant.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cat, err := graft.Dep[*catalog.Catalog](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[*integrity.Verifier](ctx)
	if err != nil {
		return nil, err
	}

	selector, err := graft.Dep[*mapvariant.Selector](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, cat, verifier, selector), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
