// Package config provides the configuration loader for mulpath.
package config

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/mulpath/internal/adapters/fs"
	"go.trai.ch/mulpath/internal/core/domain"
	"go.trai.ch/mulpath/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the configuration schema version this loader understands.
const SupportedVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration at path. When path is a directory, or empty for
// the working directory, the nearest mulpath.yaml in it or one of its parents is used.
// Relative paths in the file are resolved against the file's directory.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	configPath, err := l.findConfiguration(path)
	if err != nil {
		return nil, err
	}

	var mulfile Mulfile
	if err := readAndUnmarshalYAML(configPath, &mulfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if mulfile.Version != "" && mulfile.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", configPath, mulfile.Version, SupportedVersion))
	}

	return buildSettings(configPath, &mulfile)
}

func (l *Loader) findConfiguration(path string) (string, error) {
	start := path
	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", zerr.Wrap(err, "failed to get working directory")
		}
		start = cwd
	}

	info, err := os.Stat(start)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "no such file"), "path", start)
		}
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", start)
	}
	if !info.IsDir() {
		return start, nil
	}

	currentDir := start
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if fs.FileExists(candidate) {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "searched parents"), "cwd", start)
}

func buildSettings(configPath string, mulfile *Mulfile) (*domain.Settings, error) {
	configDir := filepath.Dir(configPath)

	s := domain.NewSettings()
	s.Root = resolveRoot(configPath, mulfile.Root)

	hashDir := mulfile.HashDir
	if hashDir == "" {
		hashDir = domain.DefaultHashDir()
	}
	s.HashDir = resolvePath(configDir, hashDir)

	// Sorted so the first invalid key reported is deterministic.
	names := make([]string, 0, len(mulfile.Overrides))
	for name := range mulfile.Overrides {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		asset, ok := domain.LookupAsset(name)
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownAsset, "invalid override"), "asset", name)
		}
		s.Overrides[asset] = resolveOverride(configDir, mulfile.Overrides[name])
	}

	mapIDs := make([]int, 0, len(mulfile.MapWidths))
	for mapID := range mulfile.MapWidths {
		mapIDs = append(mapIDs, mapID)
	}
	slices.Sort(mapIDs)

	for _, mapID := range mapIDs {
		width := mulfile.MapWidths[mapID]
		if !slices.Contains(domain.OverworldMapIDs, mapID) {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownMap, "invalid map_widths entry"), "map_id", mapID)
		}
		if !domain.IsMapWidth(width) {
			err := zerr.With(zerr.Wrap(domain.ErrInvalidMapWidth, "invalid map_widths entry"), "map_id", mapID)
			return nil, zerr.With(err, "width", width)
		}
		s.MapWidths[mapID] = width
	}

	return s, nil
}

// resolveRoot defaults the client directory to the directory holding the config file.
func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	return resolvePath(configDir, configuredRoot)
}

func resolvePath(configDir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(configDir, p))
}

// resolveOverride keeps bare names bare so they follow the client directory.
func resolveOverride(configDir, p string) string {
	if p == "" || fs.IsBare(p) {
		return p
	}
	return resolvePath(configDir, p)
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
