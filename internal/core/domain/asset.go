package domain

import (
	"strings"
	"unique"
)

// AssetName is the canonical logical name of a client data file, e.g. "art.mul".
// It wraps a unique.Handle[string] so the ~125 names shared between the catalog,
// the verifier and the map selector are interned once.
// The wrapped value is always lower case.
type AssetName struct {
	h unique.Handle[string]
}

// NewAssetName creates an AssetName from s, trimming surrounding whitespace and
// lowering the case. It does not check membership in the known asset list.
func NewAssetName(s string) AssetName {
	return AssetName{
		h: unique.Make(canonicalName(s)),
	}
}

// String returns the underlying name.
func (n AssetName) String() string {
	var zero unique.Handle[string]
	if n.h == zero {
		return ""
	}
	return n.h.Value()
}

// IsZero reports whether n was never assigned.
func (n AssetName) IsZero() bool {
	var zero unique.Handle[string]
	return n.h == zero
}

// IsKnown reports whether n is a member of the known asset list.
func (n AssetName) IsKnown() bool {
	_, ok := knownAssetSet[n]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (n AssetName) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The text is canonicalized the same way NewAssetName does.
func (n *AssetName) UnmarshalText(text []byte) error {
	n.h = unique.Make(canonicalName(string(text)))
	return nil
}

// LookupAsset canonicalizes s and reports whether it names a known asset.
func LookupAsset(s string) (AssetName, bool) {
	name := NewAssetName(s)
	if !name.IsKnown() {
		return AssetName{}, false
	}
	return name, true
}

// KnownAssets returns the known asset list in declaration order.
// The returned slice is a copy and may be modified by the caller.
func KnownAssets() []AssetName {
	out := make([]AssetName, len(knownAssets))
	copy(out, knownAssets)
	return out
}

func canonicalName(s string) string {
	return strings.ToLower(s)
}
