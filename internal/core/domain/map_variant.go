package domain

const (
	// LegacyMapWidth is the pixel width of the overworld facets before the map expansion.
	LegacyMapWidth = 6144
	// ExtendedMapWidth is the pixel width of the facets after the map expansion.
	ExtendedMapWidth = 7168
	// OverworldMapHeight is shared by both layouts.
	OverworldMapHeight = 4096

	// FeluccaMapID and TrammelMapID are the two facets that exist in both layouts.
	FeluccaMapID = 0
	TrammelMapID = 1

	// ExtendedMapCompanion is the file whose presence means the client ships a
	// dedicated Trammel map instead of sharing map0.mul.
	ExtendedMapCompanion = "map1.mul"
)

// OverworldMapIDs lists the map ids the variant selector handles.
var OverworldMapIDs = []int{FeluccaMapID, TrammelMapID}

// MapLayout is one of the two physical tile-grid geometries of an overworld facet.
type MapLayout uint8

const (
	// LegacyLayout is the 6144x4096 grid.
	LegacyLayout MapLayout = iota
	// ExtendedLayout is the 7168x4096 grid.
	ExtendedLayout
)

// String returns the lower-case layout name.
func (l MapLayout) String() string {
	if l == ExtendedLayout {
		return "extended"
	}
	return "legacy"
}

// Width returns the pixel width of the layout.
func (l MapLayout) Width() int {
	if l == ExtendedLayout {
		return ExtendedMapWidth
	}
	return LegacyMapWidth
}

// LayoutForWidth maps a recorded width to a layout. Anything other than the
// extended width is treated as legacy.
func LayoutForWidth(width int) MapLayout {
	if width == ExtendedMapWidth {
		return ExtendedLayout
	}
	return LegacyLayout
}

// IsMapWidth reports whether width is one of the two supported widths.
func IsMapWidth(width int) bool {
	return width == LegacyMapWidth || width == ExtendedMapWidth
}

// MapVariant is the geometry selected for one map id.
type MapVariant struct {
	// MapID identifies the facet.
	MapID int
	// FileIndex selects which mapN.mul holds the facet's tiles.
	FileIndex int
	Width     int
	Height    int
	Layout    MapLayout
}
