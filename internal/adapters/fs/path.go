package fs

import (
	"os"
	"path/filepath"
)

// IsBare reports whether path is a plain file name with no directory component.
// Bare paths are re-anchored under the client directory; anything else is a
// qualified path and is used as-is.
func IsBare(path string) bool {
	if path == "" || path == "." || path == ".." {
		return false
	}
	if filepath.IsAbs(path) || filepath.VolumeName(path) != "" {
		return false
	}
	return filepath.Base(path) == path
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Anchor joins a bare path onto root and returns qualified paths unchanged.
func Anchor(root, path string) string {
	if IsBare(path) {
		return filepath.Join(root, path)
	}
	return path
}

// DirExists reports whether path names an existing directory.
func DirExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
