package domain

// ResolutionState describes what the catalog knows about one asset.
type ResolutionState uint8

const (
	// Unresolved means the asset was never probed or its override was cleared.
	Unresolved ResolutionState = iota
	// Absent means the asset was probed and no file was found.
	Absent
	// Resolved means the asset maps to a path that existed when it was recorded.
	Resolved
)

// String returns the lower-case name of the state.
func (s ResolutionState) String() string {
	switch s {
	case Absent:
		return "absent"
	case Resolved:
		return "resolved"
	default:
		return "unresolved"
	}
}

// Resolution is the catalog's record for a single asset.
// Path is only meaningful when State is Resolved. It is either a bare filename,
// interpreted relative to the catalog root, or a qualified path used as is.
type Resolution struct {
	State ResolutionState
	Path  string
}

// ResolvedAt returns a Resolved record for path.
func ResolvedAt(path string) Resolution {
	return Resolution{State: Resolved, Path: path}
}

// IsResolved reports whether the record carries a usable path.
func (r Resolution) IsResolved() bool {
	return r.State == Resolved && r.Path != ""
}

// CatalogEntry pairs an asset with its resolution, as returned by catalog listings.
type CatalogEntry struct {
	Name       AssetName
	Resolution Resolution
}
