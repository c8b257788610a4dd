// Package filter derives the visible subset of a list screen from its
// loaded entries and the user's selection.
package filter

import (
	"strings"

	"pokedex/browser/internal/domain"
)

// Filter returns the entries matching selection in their original order.
// It never mutates entries and returns a new slice even when nothing is
// filtered out.
func Filter(entries []domain.CatalogEntry, selection domain.SelectionState) []domain.CatalogEntry {
	search := strings.ToLower(selection.Search)

	out := make([]domain.CatalogEntry, 0, len(entries))
	for _, entry := range entries {
		if matches(entry, search, selection.Tags) {
			out = append(out, entry)
		}
	}
	return out
}

// Matches reports whether entry is visible under selection.
func Matches(entry domain.CatalogEntry, selection domain.SelectionState) bool {
	return matches(entry, strings.ToLower(selection.Search), selection.Tags)
}

func matches(entry domain.CatalogEntry, loweredSearch string, tags []domain.CategoryTag) bool {
	if loweredSearch != "" && !strings.Contains(strings.ToLower(entry.Name), loweredSearch) {
		return false
	}
	return len(tags) == 0 || entry.HasAnyTag(tags)
}
