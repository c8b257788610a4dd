package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	log "github.com/sirupsen/logrus"

	"pokedex/browser/internal/domain"
	apperrors "pokedex/browser/internal/errors"
	"pokedex/browser/internal/screen"
	"pokedex/browser/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

const sessionCookie = "pokedex_session"

// Server serves the list and detail screens as HTML and as JSON.
type Server struct {
	sessions  *screen.Sessions
	detail    *screen.DetailScreen
	catalog   service.Catalog
	sizes     domain.PageSizes
	templates *template.Template
	router    chi.Router
}

// New creates a new web server
func New(sessions *screen.Sessions, catalog service.Catalog, sizes domain.PageSizes) *Server {
	s := &Server{
		sessions:  sessions,
		detail:    screen.NewDetailScreen(catalog),
		catalog:   catalog,
		sizes:     sizes,
		templates: parseTemplates(),
		router:    chi.NewRouter(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func parseTemplates() *template.Template {
	funcs := template.FuncMap{
		"tagColor": func(t domain.CategoryTag) template.CSS { return template.CSS(t.Color()) },
		"tagLabel": func(t domain.CategoryTag) string { return t.Label() },
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	// List screen
	s.router.Get("/", s.handleList)
	s.router.Post("/search", s.handleSearch)
	s.router.Post("/tags/clear", s.handleClearTags)
	s.router.Post("/tags/{tag}", s.handleToggleTag)
	s.router.Post("/more", s.handleLoadMore)
	s.router.Post("/retry", s.handleRetry)

	// Detail screen
	s.router.Get("/pokemon/{id}", s.handleDetail)

	s.router.Get("/pokedex", s.handlePokedex)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/pokemon", s.handleAPIList)
		r.Post("/pokemon/more", s.handleAPILoadMore)
		r.Post("/pokemon/retry", s.handleAPIRetry)
		r.Get("/pokemon/{id}", s.handleAPIDetail)
	})

	// Health check
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			log.WithFields(log.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"bytes":      ww.BytesWritten(),
				"duration":   time.Since(start).Round(time.Microsecond),
				"request_id": middleware.GetReqID(r.Context()),
			}).Info("request")
		}()

		next.ServeHTTP(ww, r)
	})
}

// session resolves the caller's list screen and refreshes the cookie.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (string, *screen.ListScreen) {
	var raw string
	if c, err := r.Cookie(sessionCookie); err == nil {
		raw = c.Value
	}

	id, ls := s.sessions.Get(r.Context(), raw)
	if id != raw {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return id, ls
}

func (s *Server) saveSelection(r *http.Request, id string, ls *screen.ListScreen) {
	if err := s.sessions.SaveSelection(r.Context(), id, ls); err != nil {
		log.Warnf("⚠️ Failed to save selection of session %s: %v", id, err)
	}
}

// --- Response helpers ---

func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Errorf("❌ Failed to render %s: %v", name, err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	respondJSON(w, code.HTTPStatus(), map[string]string{
		"error": apperrors.GetMessage(err),
		"code":  code.String(),
	})
}
