package fs

import (
	"crypto/md5" //nolint:gosec // MD5 is the digest the sidecar format stores.
	"io"
	"os"

	"go.trai.ch/mulpath/internal/core/domain"
	"go.trai.ch/mulpath/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Digester = (*Hasher)(nil)

// Hasher computes MD5 content digests used for change detection.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Digest returns the digest of b.
func (h *Hasher) Digest(b []byte) domain.Digest {
	return domain.Digest(md5.Sum(b)) //nolint:gosec // Change detection only.
}

// DigestFile streams the file at path through the digest.
func (h *Hasher) DigestFile(path string) (domain.Digest, error) {
	f, err := os.Open(path) //nolint:gosec // Path is resolved by the catalog
	if err != nil {
		return domain.Digest{}, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := md5.New() //nolint:gosec // Change detection only.
	if _, err := io.Copy(hasher, f); err != nil {
		return domain.Digest{}, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	var d domain.Digest
	copy(d[:], hasher.Sum(nil))
	return d, nil
}
