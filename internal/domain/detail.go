package domain

// MaxDetailMoves bounds how many moves a detail page localizes and shows.
const MaxDetailMoves = 10

// LocalizedName pairs the service's canonical name with its display name.
type LocalizedName struct {
	Canonical string `json:"canonical"`
	Localized string `json:"localized"`
}

// DetailEntry is built fresh for every detail page visit.
type DetailEntry struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	CanonicalName string          `json:"canonical_name"`
	SpriteURL     string          `json:"sprite_url"`
	Abilities     []LocalizedName `json:"abilities"`
	Moves         []LocalizedName `json:"moves"` // First MaxDetailMoves in service order
}
