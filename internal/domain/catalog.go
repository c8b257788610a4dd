package domain

import "slices"

// CatalogEntry is one listed pokemon, merged from the list summary, its
// detail record and its species record.
type CatalogEntry struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`           // Localized display name
	CanonicalName string        `json:"canonical_name"` // Name as returned by the list endpoint
	SpriteURL     string        `json:"sprite_url"`
	Tags          []CategoryTag `json:"tags"` // Type names in service order
}

// NewCatalogEntry builds an entry that owns its tag slice.
func NewCatalogEntry(id int, name, canonicalName, spriteURL string, tags []CategoryTag) CatalogEntry {
	return CatalogEntry{
		ID:            id,
		Name:          name,
		CanonicalName: canonicalName,
		SpriteURL:     spriteURL,
		Tags:          slices.Clone(tags),
	}
}

// HasAnyTag reports whether the entry carries at least one of tags.
func (e CatalogEntry) HasAnyTag(tags []CategoryTag) bool {
	for _, tag := range tags {
		if slices.Contains(e.Tags, tag) {
			return true
		}
	}
	return false
}

// PageSizes configures how many entries the first and every following
// page request asks for.
type PageSizes struct {
	Initial     int `json:"initial"`
	Incremental int `json:"incremental"`
}

// DefaultPageSizes mirrors the first generation on screen entry and
// hundred-entry increments afterwards.
var DefaultPageSizes = PageSizes{Initial: 151, Incremental: 100}

// DefaultListingLimit is the page size the catalog answers with when a
// listing request names no limit.
const DefaultListingLimit = 20

// PaginationState is the load-more cursor of a list screen.
type PaginationState struct {
	Cursor   int  `json:"cursor"`    // Next offset to request
	InFlight bool `json:"in_flight"` // A page request is outstanding
}
