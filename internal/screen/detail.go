package screen

import (
	"context"

	"pokedex/browser/internal/domain"
	apperrors "pokedex/browser/internal/errors"
	"pokedex/browser/internal/service"
)

// DetailScreen loads a detail page per visit. Nothing is kept between visits.
type DetailScreen struct {
	catalog service.Catalog
}

// DetailView is either a complete entry or an error, never both.
type DetailView struct {
	ID           int                 `json:"id"`
	Entry        *domain.DetailEntry `json:"entry,omitempty"`
	Err          error               `json:"-"`
	ErrorMessage string              `json:"error,omitempty"`
}

func NewDetailScreen(catalog service.Catalog) *DetailScreen {
	return &DetailScreen{catalog: catalog}
}

// Load builds the view for id. Cancelling ctx abandons the visit.
func (d *DetailScreen) Load(ctx context.Context, id int) DetailView {
	entry, err := d.catalog.LoadDetail(ctx, id)
	if err != nil {
		return DetailView{ID: id, Err: err, ErrorMessage: apperrors.GetMessage(err)}
	}
	return DetailView{ID: id, Entry: entry}
}

// NotFound reports whether the catalog has no entry for the visited id.
func (v DetailView) NotFound() bool {
	return apperrors.IsNotFound(v.Err)
}
