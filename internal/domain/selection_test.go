package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pokedex/browser/internal/domain"
)

func TestSelectionToggle(t *testing.T) {
	sel := domain.SelectionState{Search: "pika"}

	sel = sel.Toggle(domain.TagFire)
	sel = sel.Toggle(domain.TagWater)
	assert.Equal(t, []domain.CategoryTag{domain.TagFire, domain.TagWater}, sel.Tags)
	assert.True(t, sel.HasTag(domain.TagWater))

	sel = sel.Toggle(domain.TagFire)
	assert.Equal(t, []domain.CategoryTag{domain.TagWater}, sel.Tags)
	assert.Equal(t, "pika", sel.Search)
	assert.False(t, sel.Empty())
}

func TestSelectionToggleDoesNotAlias(t *testing.T) {
	base := domain.SelectionState{Tags: make([]domain.CategoryTag, 0, 4)}
	a := base.Toggle(domain.TagFire)
	b := base.Toggle(domain.TagGrass)

	assert.Equal(t, []domain.CategoryTag{domain.TagFire}, a.Tags)
	assert.Equal(t, []domain.CategoryTag{domain.TagGrass}, b.Tags)
	assert.True(t, base.Empty())
}

func TestNewCatalogEntryOwnsTags(t *testing.T) {
	tags := []domain.CategoryTag{domain.TagGrass, domain.TagPoison}
	entry := domain.NewCatalogEntry(1, "Bisasam", "bulbasaur", "https://img/1.png", tags)
	tags[0] = domain.TagFire

	assert.Equal(t, domain.TagGrass, entry.Tags[0])
	assert.True(t, entry.HasAnyTag([]domain.CategoryTag{domain.TagPoison, domain.TagIce}))
	assert.False(t, entry.HasAnyTag(nil))
}
