package screen

import (
	"context"
	"slices"
	"sync"

	log "github.com/sirupsen/logrus"

	"pokedex/browser/internal/domain"
	apperrors "pokedex/browser/internal/errors"
	"pokedex/browser/internal/filter"
	"pokedex/browser/internal/service"
)

type pageRequest struct {
	Offset int
	Limit  int
}

// ListScreen owns the state of one list screen session: the loaded
// entries, the user's selection and the load-more cursor. Entries only
// grow, and only by whole pages.
type ListScreen struct {
	catalog service.Catalog
	sizes   domain.PageSizes

	mu         sync.Mutex
	started    bool
	entries    []domain.CatalogEntry
	selection  domain.SelectionState
	pagination domain.PaginationState
	err        error
	failed     *pageRequest
}

// ListView is a consistent copy of a list screen taken under its lock.
type ListView struct {
	Entries      []domain.CatalogEntry `json:"-"`
	Visible      []domain.CatalogEntry `json:"entries"`
	Selection    domain.SelectionState  `json:"selection"`
	Pagination   domain.PaginationState `json:"pagination"`
	Loading      bool                   `json:"loading"` // First page outstanding
	NoResults    bool                   `json:"no_results"`
	Err          error                  `json:"-"`
	ErrorMessage string                 `json:"error,omitempty"`
}

func NewListScreen(catalog service.Catalog, sizes domain.PageSizes) *ListScreen {
	return &ListScreen{
		catalog: catalog,
		sizes:   sizes,
	}
}

// Init loads the first page. Only the first call does anything.
func (s *ListScreen) Init(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = true
	req := pageRequest{Offset: 0, Limit: s.sizes.Initial}
	s.pagination = domain.PaginationState{Cursor: s.sizes.Initial, InFlight: true}
	s.mu.Unlock()

	return s.load(ctx, req)
}

// LoadMore requests the next page at the cursor. It is a no-op while
// another page is in flight or before Init. The cursor advances whether or
// not the page arrives; Retry re-requests a failed page.
func (s *ListScreen) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	if !s.started || s.pagination.InFlight {
		s.mu.Unlock()
		return nil
	}
	req := pageRequest{Offset: s.pagination.Cursor, Limit: s.sizes.Incremental}
	s.pagination.Cursor += s.sizes.Incremental
	s.pagination.InFlight = true
	s.mu.Unlock()

	return s.load(ctx, req)
}

// Retry clears the error and re-requests the last failed page with the
// same offset and limit. The cursor is left alone.
func (s *ListScreen) Retry(ctx context.Context) error {
	s.mu.Lock()
	if s.failed == nil || s.pagination.InFlight {
		s.mu.Unlock()
		return nil
	}
	req := *s.failed
	s.err = nil
	s.pagination.InFlight = true
	s.mu.Unlock()

	return s.load(ctx, req)
}

func (s *ListScreen) load(ctx context.Context, req pageRequest) error {
	entries, err := s.catalog.LoadPage(ctx, req.Offset, req.Limit)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pagination.InFlight = false

	if err != nil {
		log.Warnf("❌ List page offset=%d limit=%d failed: %v", req.Offset, req.Limit, err)
		s.err = err
		s.failed = &req
		return err
	}

	s.err = nil
	s.failed = nil
	s.entries = append(s.entries, entries...)
	return nil
}

func (s *ListScreen) SetSearch(search string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Search = search
}

func (s *ListScreen) ToggleTag(tag domain.CategoryTag) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = s.selection.Toggle(tag)
}

func (s *ListScreen) ClearTags() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Tags = nil
}

// SetSelection replaces the whole selection, e.g. when a session is restored.
func (s *ListScreen) SetSelection(selection domain.SelectionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = selection.Clone()
}

func (s *ListScreen) Selection() domain.SelectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Clone()
}

func (s *ListScreen) Snapshot() ListView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := ListView{
		Entries:    slices.Clone(s.entries),
		Visible:    filter.Filter(s.entries, s.selection),
		Selection:  s.selection.Clone(),
		Pagination: s.pagination,
		Loading:    s.pagination.InFlight && len(s.entries) == 0,
		Err:        s.err,
	}
	view.NoResults = view.Selection.Search != "" && len(view.Visible) == 0
	if s.err != nil {
		view.ErrorMessage = apperrors.GetMessage(s.err)
	}
	return view
}
