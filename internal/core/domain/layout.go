package domain

import (
	"path/filepath"
	"strings"
)

const (
	// HashFilePrefix starts every sidecar digest file name. It is kept for
	// compatibility with hash files written by existing tooling.
	HashFilePrefix = "UOFiddler"

	// HashFileSuffix ends every sidecar digest file name.
	HashFileSuffix = ".hash"

	// AssetFileExt is appended to a kind to find the asset a sidecar describes.
	AssetFileExt = ".mul"

	// MulpathDirName is the name of the tool's working directory.
	MulpathDirName = ".mulpath"

	// HashDirName is the default sidecar directory inside MulpathDirName.
	HashDirName = "hash"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "mulpath.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// HashFileName returns the sidecar file name for kind.
func HashFileName(kind string) string {
	return HashFilePrefix + kind + HashFileSuffix
}

// KindFromHashFileName extracts the kind from a sidecar file name.
// It reports false for names that do not follow the sidecar convention.
func KindFromHashFileName(name string) (string, bool) {
	if !strings.HasPrefix(name, HashFilePrefix) || !strings.HasSuffix(name, HashFileSuffix) {
		return "", false
	}
	kind := strings.TrimSuffix(strings.TrimPrefix(name, HashFilePrefix), HashFileSuffix)
	if kind == "" {
		return "", false
	}
	return kind, true
}

// AssetFileName returns the logical asset name verified for kind.
func AssetFileName(kind string) string {
	return kind + AssetFileExt
}

// DefaultHashDir returns the default sidecar directory.
// It joins .mulpath and hash.
func DefaultHashDir() string {
	return filepath.Join(MulpathDirName, HashDirName)
}
