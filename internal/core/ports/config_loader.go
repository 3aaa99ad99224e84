package ports

import "go.trai.ch/mulpath/internal/core/domain"

// ConfigLoader defines the interface for loading the catalog configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and returns validated settings.
	Load(path string) (*domain.Settings, error)
}
