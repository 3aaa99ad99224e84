// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/mulpath/internal/adapters/config"
	_ "go.trai.ch/mulpath/internal/adapters/fs"
	_ "go.trai.ch/mulpath/internal/adapters/logger"
	_ "go.trai.ch/mulpath/internal/adapters/sidecar"
	_ "go.trai.ch/mulpath/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/mulpath/internal/app"
	_ "go.trai.ch/mulpath/internal/engine/catalog"
	_ "go.trai.ch/mulpath/internal/engine/integrity"
	_ "go.trai.ch/mulpath/internal/engine/mapvariant"
)
