// Package mapvariant infers the tile-grid geometry of the overworld facets.
package mapvariant

import (
	"slices"
	"strconv"
	"sync"

	"go.trai.ch/mulpath/internal/core/domain"
	"go.trai.ch/mulpath/internal/core/ports"
	"go.trai.ch/zerr"
)

// Choose derives the variant of mapID from the companion file and the recorded width.
func Choose(mapID int, companionPresent bool, recordedWidth int) domain.MapVariant {
	layout := domain.LayoutForWidth(recordedWidth)

	fileIndex := 0
	if companionPresent {
		fileIndex = 1
	}

	return domain.MapVariant{
		MapID:     mapID,
		FileIndex: fileIndex,
		Width:     layout.Width(),
		Height:    domain.OverworldMapHeight,
		Layout:    layout,
	}
}

// Selector caches the chosen variant per overworld map id.
type Selector struct {
	resolver ports.AssetResolver

	mu       sync.RWMutex
	widths   map[int]int
	variants map[int]domain.MapVariant
}

// NewSelector creates a Selector that looks up the companion file through resolver.
func NewSelector(resolver ports.AssetResolver) *Selector {
	return &Selector{
		resolver: resolver,
		widths:   make(map[int]int),
		variants: make(map[int]domain.MapVariant),
	}
}

// Select chooses and caches the variant for mapID.
func (s *Selector) Select(mapID int) (domain.MapVariant, error) {
	if err := checkMapID(mapID); err != nil {
		return domain.MapVariant{}, err
	}

	_, present := s.resolver.Resolve(domain.ExtendedMapCompanion)

	s.mu.Lock()
	defer s.mu.Unlock()

	v := Choose(mapID, present, s.widthLocked(mapID))
	s.variants[mapID] = v
	s.widths[mapID] = v.Width
	return v, nil
}

// RecordWidth stores the width last recorded for mapID.
func (s *Selector) RecordWidth(mapID, width int) error {
	if err := checkMapID(mapID); err != nil {
		return err
	}
	if !domain.IsMapWidth(width) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidMapWidth, strconv.Itoa(width)), "map", mapID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.widths[mapID] = width
	return nil
}

// Width returns the recorded width for mapID, defaulting to the extended width.
func (s *Selector) Width(mapID int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.widthLocked(mapID)
}

func (s *Selector) widthLocked(mapID int) int {
	if w, ok := s.widths[mapID]; ok {
		return w
	}
	return domain.ExtendedMapWidth
}

// Variant returns the cached variant for mapID, if one was selected.
func (s *Selector) Variant(mapID int) (domain.MapVariant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.variants[mapID]
	return v, ok
}

// Variants returns the cached variants ordered by map id.
func (s *Selector) Variants() []domain.MapVariant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.MapVariant, 0, len(s.variants))
	for _, v := range s.variants {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b domain.MapVariant) int { return a.MapID - b.MapID })
	return out
}

// Reset drops every cached variant. Recorded widths are kept.
func (s *Selector) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.variants)
}

func checkMapID(mapID int) error {
	if slices.Contains(domain.OverworldMapIDs, mapID) {
		return nil
	}
	return zerr.With(zerr.Wrap(domain.ErrUnknownMap, strconv.Itoa(mapID)), "map", mapID)
}
