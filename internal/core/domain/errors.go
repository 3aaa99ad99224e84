package domain

import "go.trai.ch/zerr"

var (
	// ErrNotInitialized is returned when the catalog is queried before any probe.
	ErrNotInitialized = zerr.New("asset catalog not initialized")

	// ErrUnknownAsset is returned for names outside the known asset list.
	ErrUnknownAsset = zerr.New("unknown asset")

	// ErrAssetUnresolved is returned when an asset has no recorded resolution.
	ErrAssetUnresolved = zerr.New("asset not resolved")

	// ErrAssetAbsent is returned when an asset was probed and not found.
	ErrAssetAbsent = zerr.New("asset not present in client directory")

	// ErrAssetMissing is returned when a recorded asset path no longer exists on disk.
	ErrAssetMissing = zerr.New("asset file does not exist")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrInvalidKind is returned when an asset kind is empty or contains a path separator.
	ErrInvalidKind = zerr.New("invalid asset kind")

	// ErrSidecarMissing is returned when no sidecar digest file exists for a kind.
	ErrSidecarMissing = zerr.New("sidecar digest file not found")

	// ErrSidecarEmpty is returned when a sidecar digest file has no content.
	ErrSidecarEmpty = zerr.New("sidecar digest file is empty")

	// ErrSidecarMalformed is returned when a sidecar record's declared length does not match its content.
	ErrSidecarMalformed = zerr.New("malformed sidecar digest record")

	// ErrSidecarReadFailed is returned when a sidecar digest file cannot be read.
	ErrSidecarReadFailed = zerr.New("failed to read sidecar digest file")

	// ErrSidecarWriteFailed is returned when a sidecar digest file cannot be written.
	ErrSidecarWriteFailed = zerr.New("failed to write sidecar digest file")

	// ErrSidecarListFailed is returned when the sidecar directory cannot be listed.
	ErrSidecarListFailed = zerr.New("failed to list sidecar directory")

	// ErrDigestMismatch is reported when an asset's live digest differs from its recorded one.
	ErrDigestMismatch = zerr.New("asset digest does not match recorded digest")

	// ErrUnknownMap is returned for map ids that have no dual geometry.
	ErrUnknownMap = zerr.New("map id has no layout variants")

	// ErrInvalidMapWidth is returned when a configured map width is neither 6144 nor 7168.
	ErrInvalidMapWidth = zerr.New("invalid map width, expected 6144 or 7168")

	// ErrRootNotSet is returned when neither flags nor configuration name a client directory.
	ErrRootNotSet = zerr.New("client directory not set")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when the config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrNoKindsSpecified is returned when verify or seal is called without kinds.
	ErrNoKindsSpecified = zerr.New("no asset kinds specified")

	// ErrAssetsUnavailable is returned by the resolve command when at least one name did not resolve.
	ErrAssetsUnavailable = zerr.New("assets could not be resolved")

	// ErrAssetsChanged is returned by the verify command when at least one kind did not match.
	ErrAssetsChanged = zerr.New("assets changed or could not be verified")
)
