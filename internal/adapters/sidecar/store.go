package sidecar

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/mulpath/internal/adapters/fs"
	"go.trai.ch/mulpath/internal/core/domain"
	"go.trai.ch/mulpath/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SidecarStore = (*Store)(nil)

// Store implements ports.SidecarStore with one UOFiddler<kind>.hash file per kind.
type Store struct {
	walker *fs.Walker
}

// NewStore creates a new sidecar Store.
func NewStore() *Store {
	return &Store{walker: fs.NewWalker(fs.WithMaxDepth(0))}
}

// Path returns the sidecar file path for kind in dir.
func (s *Store) Path(dir, kind string) string {
	return filepath.Join(dir, domain.HashFileName(kind))
}

// Read returns the digest recorded for kind in dir.
func (s *Store) Read(dir, kind string) ([]byte, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}

	path := s.Path(dir, kind)
	//nolint:gosec // Path is built from a validated kind
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, tag(domain.ErrSidecarMissing, path)
		}
		return nil, zerr.With(tag(domain.ErrSidecarReadFailed, path), "error", err.Error())
	}

	digest, err := Decode(raw)
	if err != nil {
		return nil, tag(err, path)
	}
	return digest, nil
}

// Write records digest for kind in dir, creating dir if needed.
func (s *Store) Write(dir, kind string, digest []byte) error {
	if err := validateKind(kind); err != nil {
		return err
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSidecarWriteFailed.Error()), "dir", dir)
	}

	path := s.Path(dir, kind)
	//nolint:gosec // Path is built from a validated kind
	if err := os.WriteFile(path, Encode(digest), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSidecarWriteFailed.Error()), "path", path)
	}
	return nil
}

// List returns the kinds recorded in dir, sorted. A missing dir holds no records.
func (s *Store) List(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSidecarListFailed.Error()), "dir", dir)
	}
	if !info.IsDir() {
		return nil, tag(domain.ErrSidecarListFailed, dir)
	}

	var kinds []string
	for path, err := range s.walker.WalkFiles(dir, domain.HashFilePrefix+"*"+domain.HashFileSuffix) {
		if err != nil {
			return nil, zerr.With(tag(domain.ErrSidecarListFailed, dir), "error", err.Error())
		}
		if kind, ok := domain.KindFromHashFileName(filepath.Base(path)); ok {
			kinds = append(kinds, kind)
		}
	}
	slices.Sort(kinds)
	return kinds, nil
}

// validateKind rejects kinds that would escape the sidecar directory.
func validateKind(kind string) error {
	if !fs.IsBare(kind) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidKind, "kind must be a plain name"), "kind", kind)
	}
	return nil
}

// tag attaches path to err without hiding err from errors.Is.
func tag(err error, path string) error {
	return zerr.With(zerr.Wrap(err, filepath.Base(path)), "path", path)
}
