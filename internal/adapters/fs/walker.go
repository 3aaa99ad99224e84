// Package fs provides file system adapters for path classification, walking and hashing.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// Walker provides file walking functionality.
type Walker struct {
	maxDepth int
}

// WalkerOption configures a Walker.
type WalkerOption func(*Walker)

// WithMaxDepth limits how many directory levels below root are visited.
// A depth of 0 visits only the files directly inside root; a negative depth is unlimited.
func WithMaxDepth(depth int) WalkerOption {
	return func(w *Walker) {
		w.maxDepth = depth
	}
}

// NewWalker creates a new Walker. By default it descends without limit.
func NewWalker(opts ...WalkerOption) *Walker {
	w := &Walker{maxDepth: -1}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WalkFiles yields the regular files under root whose base name matches pattern,
// skipping hidden directories. An empty pattern matches every file. Paths are
// yielded in lexical order and include root. A walk failure is yielded once with
// an empty path and ends the sequence.
func (w *Walker) WalkFiles(root, pattern string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && w.shouldSkipDir(root, path, d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			if pattern != "" {
				matched, err := filepath.Match(pattern, d.Name())
				if err != nil {
					return err
				}
				if !matched {
					return nil
				}
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}

			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

// shouldSkipDir checks if a directory should be pruned from the walk.
func (w *Walker) shouldSkipDir(root, path, name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	return w.maxDepth >= 0 && depth(root, path) > w.maxDepth
}

// depth counts the directory levels between root and path.
func depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
