package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pokedex/browser/internal/domain"
	apperrors "pokedex/browser/internal/errors"
	"pokedex/browser/internal/screen"
)

type listPage struct {
	View screen.ListView
	Tags []domain.CategoryTag
}

type detailPage struct {
	View screen.DetailView
}

type pokedexPage struct {
	Names        []string
	ErrorMessage string
}

// handleList renders the list screen, loading the first page on first visit
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	_, ls := s.session(w, r)

	// Failures are part of the view.
	_ = ls.Init(r.Context())

	s.render(w, http.StatusOK, "list.html", listPage{
		View: ls.Snapshot(),
		Tags: domain.CategoryTags,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	id, ls := s.session(w, r)

	ls.SetSearch(r.FormValue("search"))
	s.saveSelection(r, id, ls)

	redirectHome(w, r)
}

func (s *Server) handleToggleTag(w http.ResponseWriter, r *http.Request) {
	tag, ok := domain.ParseCategoryTag(chi.URLParam(r, "tag"))
	if !ok {
		http.Error(w, "unknown tag", http.StatusBadRequest)
		return
	}

	id, ls := s.session(w, r)
	ls.ToggleTag(tag)
	s.saveSelection(r, id, ls)

	redirectHome(w, r)
}

func (s *Server) handleClearTags(w http.ResponseWriter, r *http.Request) {
	id, ls := s.session(w, r)

	ls.ClearTags()
	s.saveSelection(r, id, ls)

	redirectHome(w, r)
}

func (s *Server) handleLoadMore(w http.ResponseWriter, r *http.Request) {
	_, ls := s.session(w, r)
	_ = ls.LoadMore(r.Context())
	redirectHome(w, r)
}

func (s *Server) handleRetry(w http.ResponseWriter, r *http.Request) {
	_, ls := s.session(w, r)
	_ = ls.Retry(r.Context())
	redirectHome(w, r)
}

// handleDetail renders one detail page, freshly loaded
func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	view := s.loadDetail(r)

	status := http.StatusOK
	if view.Err != nil {
		status = apperrors.GetCode(view.Err).HTTPStatus()
	}

	s.render(w, status, "detail.html", detailPage{View: view})
}

// handlePokedex renders the plain name listing of the catalog's default page
func (s *Server) handlePokedex(w http.ResponseWriter, r *http.Request) {
	names, err := s.catalog.ListNames(r.Context(), 0, domain.DefaultListingLimit)
	if err != nil {
		s.render(w, apperrors.GetCode(err).HTTPStatus(), "pokedex.html", pokedexPage{ErrorMessage: apperrors.GetMessage(err)})
		return
	}

	s.render(w, http.StatusOK, "pokedex.html", pokedexPage{Names: names})
}

func (s *Server) handleAPIList(w http.ResponseWriter, r *http.Request) {
	_, ls := s.session(w, r)
	_ = ls.Init(r.Context())
	s.respondListView(w, ls.Snapshot())
}

func (s *Server) handleAPILoadMore(w http.ResponseWriter, r *http.Request) {
	_, ls := s.session(w, r)
	_ = ls.LoadMore(r.Context())
	s.respondListView(w, ls.Snapshot())
}

func (s *Server) handleAPIRetry(w http.ResponseWriter, r *http.Request) {
	_, ls := s.session(w, r)
	_ = ls.Retry(r.Context())
	s.respondListView(w, ls.Snapshot())
}

func (s *Server) respondListView(w http.ResponseWriter, view screen.ListView) {
	if view.Err != nil {
		respondError(w, view.Err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleAPIDetail(w http.ResponseWriter, r *http.Request) {
	view := s.loadDetail(r)
	if view.Err != nil {
		respondError(w, view.Err)
		return
	}
	respondJSON(w, http.StatusOK, view.Entry)
}

func (s *Server) loadDetail(r *http.Request) screen.DetailView {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		err := apperrors.InvalidArgumentf("invalid pokemon id %q", raw)
		return screen.DetailView{Err: err, ErrorMessage: err.Message}
	}

	return s.detail.Load(r.Context(), id)
}
