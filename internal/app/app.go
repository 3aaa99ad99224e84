// Package app implements the application layer for mulpath.
package app

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"go.trai.ch/mulpath/internal/adapters/fs" //nolint:depguard // Path classification is pure
	"go.trai.ch/mulpath/internal/core/domain"
	"go.trai.ch/mulpath/internal/core/ports"
	"go.trai.ch/mulpath/internal/engine/catalog"
	"go.trai.ch/mulpath/internal/engine/integrity"
	"go.trai.ch/mulpath/internal/engine/mapvariant"
	"go.trai.ch/zerr"
)

// App ties the catalog, verifier and map selector to a loaded configuration.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	catalog      *catalog.Catalog
	verifier     *integrity.Verifier
	selector     *mapvariant.Selector

	hashDir string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	logger ports.Logger,
	cat *catalog.Catalog,
	verifier *integrity.Verifier,
	selector *mapvariant.Selector,
) *App {
	return &App{
		configLoader: loader,
		logger:       logger,
		catalog:      cat,
		verifier:     verifier,
		selector:     selector,
	}
}

// OpenOptions selects the configuration and the values that take precedence over it.
type OpenOptions struct {
	// ConfigPath names the config file or a directory to search from.
	// When empty, a missing config file is not an error.
	ConfigPath string
	// Root overrides the configured client directory.
	Root string
	// HashDir overrides the configured sidecar directory.
	HashDir string
}

// VerifyOptions controls which sidecar records are checked.
type VerifyOptions struct {
	// HashDir overrides the sidecar directory chosen at open.
	HashDir string
	// All verifies every record found in the sidecar directory.
	All bool
}

// Open loads the configuration and probes the client directory.
// Calling it again replaces all catalog and map state.
func (a *App) Open(opts OpenOptions) error {
	settings, err := a.loadSettings(opts.ConfigPath)
	if err != nil {
		return err
	}

	base := settings.Root
	root := base
	if opts.Root != "" {
		if root, err = filepath.Abs(opts.Root); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve client directory"), "root", opts.Root)
		}
	}
	if root == "" {
		return zerr.Wrap(domain.ErrRootNotSet, "pass --root or set root in "+domain.ConfigFileName)
	}
	if base == "" {
		base = root
	}
	if !fs.DirExists(root) {
		a.logger.Warn(fmt.Sprintf("client directory %s does not exist", root))
	}

	a.hashDir = opts.HashDir
	if a.hashDir == "" {
		a.hashDir = settings.HashDir
	}
	if a.hashDir == "" {
		a.hashDir = filepath.Join(root, domain.DefaultHashDir())
	}

	a.catalog.Initialize(base)

	names := make([]domain.AssetName, 0, len(settings.Overrides))
	for name := range settings.Overrides {
		names = append(names, name)
	}
	slices.SortFunc(names, func(x, y domain.AssetName) int {
		return cmp.Compare(x.String(), y.String())
	})
	for _, name := range names {
		if err := a.catalog.SetOverride(name.String(), settings.Overrides[name]); err != nil {
			return err
		}
	}

	// Overrides are configured against the configured root. A --root flag moves
	// bare ones along and leaves qualified ones where they are.
	if root != base {
		a.catalog.RebaseIfBare(root)
	}

	for _, id := range domain.OverworldMapIDs {
		width, ok := settings.MapWidths[id]
		if !ok {
			continue
		}
		if err := a.selector.RecordWidth(id, width); err != nil {
			return err
		}
	}

	return a.selectVariants()
}

func (a *App) selectVariants() error {
	a.selector.Reset()
	for _, id := range domain.OverworldMapIDs {
		if _, err := a.selector.Select(id); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) loadSettings(path string) (*domain.Settings, error) {
	settings, err := a.configLoader.Load(path)
	if err == nil {
		return settings, nil
	}
	if path == "" && errors.Is(err, domain.ErrConfigNotFound) {
		return domain.NewSettings(), nil
	}
	return nil, zerr.Wrap(err, "failed to load configuration")
}

// Root returns the probed client directory.
func (a *App) Root() string {
	return a.catalog.Root()
}

// HashDir returns the sidecar directory chosen at open.
func (a *App) HashDir() string {
	return a.hashDir
}

// Locate resolves a single asset name, reporting why it is unavailable.
func (a *App) Locate(name string) (string, error) {
	return a.catalog.Locate(name)
}

// Entries lists every known asset with its resolution.
func (a *App) Entries() []domain.CatalogEntry {
	return a.catalog.Entries()
}

// Verify checks kinds, or every recorded kind when opts.All is set.
func (a *App) Verify(ctx context.Context, kinds []string, opts VerifyOptions) ([]domain.Verification, error) {
	hashDir := a.pickHashDir(opts.HashDir)

	if opts.All {
		return a.verifier.VerifyAll(ctx, hashDir)
	}
	if len(kinds) == 0 {
		return nil, domain.ErrNoKindsSpecified
	}
	return a.verifier.VerifyKinds(ctx, kinds, hashDir)
}

// Seal records the current digest of every kind. It stops at the first failure.
func (a *App) Seal(kinds []string, hashDir string) error {
	if len(kinds) == 0 {
		return domain.ErrNoKindsSpecified
	}

	dir := a.pickHashDir(hashDir)
	for _, kind := range kinds {
		if err := a.verifier.Seal(kind, dir); err != nil {
			return zerr.Wrap(err, "failed to seal "+kind)
		}
		a.logger.Info(fmt.Sprintf("sealed %s", kind))
	}
	return nil
}

// MapVariants returns the variants selected when the client directory was opened.
func (a *App) MapVariants() ([]domain.MapVariant, error) {
	variants := a.selector.Variants()
	if len(variants) == 0 {
		return nil, zerr.Wrap(domain.ErrNotInitialized, "no map variants selected")
	}
	return variants, nil
}

func (a *App) pickHashDir(override string) string {
	if override != "" {
		return override
	}
	return a.hashDir
}
