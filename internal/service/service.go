package service

import (
	"context"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"pokedex/browser/internal/client"
	"pokedex/browser/internal/domain"
	apperrors "pokedex/browser/internal/errors"
)

//go:generate mockgen -destination=mock/mock_service.go -package=servicemock pokedex/browser/internal/service Catalog

// Catalog loads list pages and detail pages from the remote catalog
type Catalog interface {
	// LoadPage returns the enriched entries at [offset, offset+limit) in
	// listing order, or the first error of the fan-out.
	LoadPage(ctx context.Context, offset, limit int) ([]domain.CatalogEntry, error)
	// LoadDetail returns a fresh detail entry, never a partial one.
	LoadDetail(ctx context.Context, id int) (*domain.DetailEntry, error)
	// ListNames returns the canonical names of a listing page without
	// any enrichment.
	ListNames(ctx context.Context, offset, limit int) ([]string, error)
}

type Service struct {
	client     client.CatalogClient
	language   string
	maxWorkers int
}

func NewService(client client.CatalogClient, language string, maxWorkers int) *Service {
	return &Service{
		client:     client,
		language:   language,
		maxWorkers: maxWorkers,
	}
}

func (s *Service) ListNames(ctx context.Context, offset, limit int) ([]string, error) {
	if err := validatePage(offset, limit); err != nil {
		return nil, err
	}

	page, err := s.client.ListPokemon(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(page.Results))
	for _, ref := range page.Results {
		names = append(names, ref.Name)
	}
	return names, nil
}

func (s *Service) LoadPage(ctx context.Context, offset, limit int) ([]domain.CatalogEntry, error) {
	if err := validatePage(offset, limit); err != nil {
		return nil, err
	}

	log.Debugf("🔄 Loading page offset=%d limit=%d", offset, limit)

	page, err := s.client.ListPokemon(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.CatalogEntry, len(page.Results))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)

	for i, ref := range page.Results {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return apperrors.FromContext(gctx, err, "page load aborted")
			}

			entry, err := s.loadEntry(gctx, ref)
			if err != nil {
				return err
			}
			entries[i] = entry
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Warnf("❌ Page offset=%d limit=%d failed: %v", offset, limit, err)
		return nil, err
	}

	log.Debugf("✅ Loaded %d entries at offset %d", len(entries), offset)
	return entries, nil
}

// loadEntry fetches the detail record of ref and then its species record.
func (s *Service) loadEntry(ctx context.Context, ref client.NamedResource) (domain.CatalogEntry, error) {
	pokemon, err := s.client.GetPokemon(ctx, ref.URL)
	if err != nil {
		return domain.CatalogEntry{}, err
	}

	species, err := s.client.GetSpecies(ctx, pokemon.Species.URL)
	if err != nil {
		return domain.CatalogEntry{}, err
	}

	typeNames := pokemon.TypeNames()
	tags := make([]domain.CategoryTag, 0, len(typeNames))
	for _, name := range typeNames {
		tags = append(tags, domain.CategoryTag(name))
	}

	return domain.NewCatalogEntry(
		pokemon.ID,
		Localize(species.Names, s.language, ref.Name),
		ref.Name,
		pokemon.Sprites.FrontDefault,
		tags,
	), nil
}

func (s *Service) LoadDetail(ctx context.Context, id int) (*domain.DetailEntry, error) {
	vb := apperrors.NewValidationBuilder()
	apperrors.ValidatePositive("id", id, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	pokemon, err := s.client.GetPokemonByID(ctx, id)
	if err != nil {
		return nil, err
	}

	moves := pokemon.Moves
	if len(moves) > domain.MaxDetailMoves {
		moves = moves[:domain.MaxDetailMoves]
	}

	detail := &domain.DetailEntry{
		ID:            pokemon.ID,
		CanonicalName: pokemon.Name,
		SpriteURL:     pokemon.Sprites.FrontDefault,
		Abilities:     make([]domain.LocalizedName, len(pokemon.Abilities)),
		Moves:         make([]domain.LocalizedName, len(moves)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)

	g.Go(func() error {
		species, err := s.client.GetSpecies(gctx, pokemon.Species.URL)
		if err != nil {
			return err
		}
		detail.Name = Localize(species.Names, s.language, pokemon.Name)
		return nil
	})

	for i, a := range pokemon.Abilities {
		g.Go(func() error {
			name, err := s.localizeRef(gctx, a.Ability, s.client.GetAbility)
			if err != nil {
				return err
			}
			detail.Abilities[i] = name
			return nil
		})
	}

	for i, m := range moves {
		g.Go(func() error {
			name, err := s.localizeRef(gctx, m.Move, s.client.GetMove)
			if err != nil {
				return err
			}
			detail.Moves[i] = name
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Warnf("❌ Detail %d failed: %v", id, err)
		return nil, err
	}

	return detail, nil
}

func (s *Service) localizeRef(
	ctx context.Context,
	ref client.NamedResource,
	fetch func(context.Context, string) (*client.NamedRecord, error),
) (domain.LocalizedName, error) {
	if err := ctx.Err(); err != nil {
		return domain.LocalizedName{}, apperrors.FromContext(ctx, err, "detail load aborted")
	}

	record, err := fetch(ctx, ref.URL)
	if err != nil {
		return domain.LocalizedName{}, err
	}

	return domain.LocalizedName{
		Canonical: ref.Name,
		Localized: Localize(record.Names, s.language, ref.Name),
	}, nil
}

// Localize picks the name whose language is language, or fallback when
// there is none.
func Localize(names []client.Name, language, fallback string) string {
	for _, n := range names {
		if n.Language.Name == language {
			return n.Name
		}
	}
	return fallback
}

func validatePage(offset, limit int) error {
	vb := apperrors.NewValidationBuilder()
	apperrors.ValidateNonNegative("offset", offset, vb)
	apperrors.ValidatePositive("limit", limit, vb)
	return vb.Build()
}
