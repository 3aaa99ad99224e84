package ports

// SidecarStore reads and writes sidecar digest records.
//
//go:generate go run go.uber.org/mock/mockgen -source=sidecar_store.go -destination=mocks/mock_sidecar_store.go -package=mocks
type SidecarStore interface {
	// Read returns the digest bytes recorded for kind in dir.
	// A missing, empty or malformed record is reported as an error; partial
	// records are never returned.
	Read(dir, kind string) ([]byte, error)

	// Write records digest for kind in dir, creating dir if needed.
	Write(dir, kind string, digest []byte) error

	// List returns the kinds that have a sidecar record in dir, sorted.
	List(dir string) ([]string, error)
}
