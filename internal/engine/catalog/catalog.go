// Package catalog maps the known client asset names to files on disk.
package catalog

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/mulpath/internal/adapters/fs" //nolint:depguard // Path classification is pure
	"go.trai.ch/mulpath/internal/core/domain"
	"go.trai.ch/mulpath/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.AssetResolver = (*Catalog)(nil)

// Option configures a Catalog.
type Option func(*Catalog)

// WithExistsFunc replaces the file existence probe.
func WithExistsFunc(fn func(path string) bool) Option {
	return func(c *Catalog) {
		c.exists = fn
	}
}

// Catalog records, for every known asset, where it lives under a client directory.
//
// Entries hold either a bare file name, interpreted relative to the root, or a
// qualified path used as-is. Reads never mutate the catalog and re-check that the
// file exists at call time.
type Catalog struct {
	mu          sync.RWMutex
	exists      func(path string) bool
	root        string
	initialized bool
	entries     map[domain.AssetName]domain.Resolution
}

// New creates an uninitialized Catalog with every known asset unresolved.
func New(opts ...Option) *Catalog {
	known := domain.KnownAssets()
	c := &Catalog{
		exists:  fs.FileExists,
		entries: make(map[domain.AssetName]domain.Resolution, len(known)),
	}
	for _, name := range known {
		c.entries[name] = domain.Resolution{}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize sets the client directory and probes it for every known asset.
// It replaces all prior state, including overrides.
func (c *Catalog) Initialize(root string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.root = root
	c.loadDefaultsLocked()
}

// LoadDefaults re-probes the current root for every known asset. Existing files
// are recorded by bare name, missing ones as absent.
func (c *Catalog) LoadDefaults() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loadDefaultsLocked()
}

func (c *Catalog) loadDefaultsLocked() {
	for name := range c.entries {
		if c.exists(filepath.Join(c.root, name.String())) {
			c.entries[name] = domain.ResolvedAt(name.String())
		} else {
			c.entries[name] = domain.Resolution{State: domain.Absent}
		}
	}
	c.initialized = true
}

// RebaseIfBare moves the catalog to root. Bare entries whose file exists under
// root become qualified paths there; qualified entries are left untouched;
// everything else is probed again by asset name.
func (c *Catalog) RebaseIfBare(root string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.root = root
	for name, res := range c.entries {
		if res.IsResolved() {
			if !fs.IsBare(res.Path) {
				continue
			}
			if candidate := filepath.Join(root, res.Path); c.exists(candidate) {
				c.entries[name] = domain.ResolvedAt(candidate)
				continue
			}
		}

		candidate := filepath.Join(root, name.String())
		if c.exists(candidate) {
			c.entries[name] = domain.ResolvedAt(candidate)
		} else {
			c.entries[name] = domain.Resolution{State: domain.Absent}
		}
	}
	c.initialized = true
}

// SetOverride points name at path without checking that the file exists.
// An empty path clears the entry. Names outside the known asset list are rejected.
func (c *Catalog) SetOverride(name, path string) error {
	asset, ok := domain.LookupAsset(name)
	if !ok {
		return assetError(domain.ErrUnknownAsset, name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if path == "" {
		c.entries[asset] = domain.Resolution{}
		return nil
	}
	c.entries[asset] = domain.ResolvedAt(path)
	return nil
}

// Resolve returns the path of name if it resolves to an existing file.
// Lookups are case-insensitive.
func (c *Catalog) Resolve(name string) (string, bool) {
	path, err := c.Locate(name)
	return path, err == nil
}

// Locate is Resolve with the reason a lookup failed.
func (c *Catalog) Locate(name string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.initialized {
		return "", domain.ErrNotInitialized
	}

	asset, ok := domain.LookupAsset(name)
	if !ok {
		return "", assetError(domain.ErrUnknownAsset, name)
	}

	res := c.entries[asset]
	switch {
	case res.State == domain.Absent:
		return "", assetError(domain.ErrAssetAbsent, asset.String())
	case !res.IsResolved():
		return "", assetError(domain.ErrAssetUnresolved, asset.String())
	}

	path := fs.Anchor(c.root, res.Path)
	if !c.exists(path) {
		return "", zerr.With(assetError(domain.ErrAssetMissing, asset.String()), "path", path)
	}
	return path, nil
}

// Entry returns the recorded resolution of name.
func (c *Catalog) Entry(name string) (domain.Resolution, error) {
	asset, ok := domain.LookupAsset(name)
	if !ok {
		return domain.Resolution{}, assetError(domain.ErrUnknownAsset, name)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[asset], nil
}

// Entries returns every recorded resolution in known-asset order.
func (c *Catalog) Entries() []domain.CatalogEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	known := domain.KnownAssets()
	out := make([]domain.CatalogEntry, 0, len(known))
	for _, name := range known {
		out = append(out, domain.CatalogEntry{Name: name, Resolution: c.entries[name]})
	}
	return out
}

// Root returns the client directory.
func (c *Catalog) Root() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.root
}

// Initialized reports whether the catalog has probed a root.
func (c *Catalog) Initialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.initialized
}

// Fingerprint summarizes the root and every entry. Catalogs with identical
// mappings have identical fingerprints.
func (c *Catalog) Fingerprint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	h := xxhash.New()
	_, _ = h.WriteString(c.root)
	_, _ = h.Write([]byte{0})

	for _, name := range domain.KnownAssets() {
		res := c.entries[name]
		_, _ = h.WriteString(name.String())
		_, _ = h.Write([]byte{0, byte(res.State)})
		_, _ = h.WriteString(res.Path)
		_, _ = h.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", h.Sum64())
}

// assetError tags sentinel with the asset name, keeping it visible to errors.Is.
func assetError(sentinel error, name string) error {
	return zerr.With(zerr.Wrap(sentinel, name), "asset", name)
}
