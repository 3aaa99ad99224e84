package ports

import "go.trai.ch/mulpath/internal/core/domain"

// Digester computes content digests of asset files.
//
//go:generate go run go.uber.org/mock/mockgen -source=digester.go -destination=mocks/mock_digester.go -package=mocks
type Digester interface {
	// DigestFile returns the digest of the file at path.
	DigestFile(path string) (domain.Digest, error)
}
