// Package ports defines the core interfaces for the application.
package ports

// AssetResolver resolves logical asset names to files that exist on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=asset_resolver.go -destination=mocks/mock_asset_resolver.go -package=mocks
type AssetResolver interface {
	// Resolve returns the path of the named asset, or false when the asset is
	// unknown, absent, or its recorded file no longer exists.
	Resolve(name string) (string, bool)
}
