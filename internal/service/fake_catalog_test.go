package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// fakeCatalog serves a deterministic catalog of total pokemon. Pokemon n is
// called "mon<n>", is of type fire when n is odd and water otherwise, has two
// abilities, fifteen moves and a German species name "Mon<n>-de".
type fakeCatalog struct {
	total int

	mu       sync.Mutex
	failures map[string]int // path -> status
	noGerman map[string]bool
	hits     map[string]int // first path segment -> count

	server *httptest.Server
}

func newFakeCatalog(t *testing.T, total int) *fakeCatalog {
	t.Helper()

	f := &fakeCatalog{
		total:    total,
		failures: map[string]int{},
		noGerman: map[string]bool{},
		hits:     map[string]int{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /pokemon", f.list)
	mux.HandleFunc("GET /pokemon/{id}", f.pokemon)
	mux.HandleFunc("GET /pokemon-species/{id}", f.species)
	mux.HandleFunc("GET /ability/{name}", f.named)
	mux.HandleFunc("GET /move/{name}", f.named)

	f.server = httptest.NewServer(f.intercept(mux))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeCatalog) URL() string { return f.server.URL }

func (f *fakeCatalog) fail(path string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[path] = status
}

func (f *fakeCatalog) withoutGerman(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.noGerman[path] = true
}

func (f *fakeCatalog) hitCount(segment string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[segment]
}

func (f *fakeCatalog) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		segment := strings.Split(strings.TrimPrefix(r.URL.Path, "/"), "/")[0]
		f.hits[segment]++
		status, failing := f.failures[r.URL.Path]
		f.mu.Unlock()

		if failing {
			w.WriteHeader(status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *fakeCatalog) list(w http.ResponseWriter, r *http.Request) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	results := []map[string]string{}
	for id := offset + 1; id <= offset+limit && id <= f.total; id++ {
		results = append(results, map[string]string{
			"name": fmt.Sprintf("mon%d", id),
			"url":  fmt.Sprintf("%s/pokemon/%d", f.server.URL, id),
		})
	}

	writeJSON(w, map[string]any{"count": f.total, "results": results})
}

func (f *fakeCatalog) pokemon(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 || id > f.total {
		http.NotFound(w, r)
		return
	}

	typeName := "water"
	if id%2 == 1 {
		typeName = "fire"
	}

	moves := make([]map[string]any, 0, 15)
	for i := 1; i <= 15; i++ {
		name := fmt.Sprintf("move%d", i)
		moves = append(moves, map[string]any{
			"move": map[string]string{"name": name, "url": f.server.URL + "/move/" + name},
		})
	}

	writeJSON(w, map[string]any{
		"id":      id,
		"name":    fmt.Sprintf("mon%d", id),
		"sprites": map[string]any{"front_default": fmt.Sprintf("https://img.example/%d.png", id)},
		"types": []map[string]any{
			{"slot": 1, "type": map[string]string{"name": typeName, "url": ""}},
		},
		"abilities": []map[string]any{
			{"slot": 1, "is_hidden": false, "ability": map[string]string{"name": "overgrow", "url": f.server.URL + "/ability/overgrow"}},
			{"slot": 3, "is_hidden": true, "ability": map[string]string{"name": "chlorophyll", "url": f.server.URL + "/ability/chlorophyll"}},
		},
		"moves":   moves,
		"species": map[string]string{"name": fmt.Sprintf("mon%d", id), "url": fmt.Sprintf("%s/pokemon-species/%d", f.server.URL, id)},
	})
}

func (f *fakeCatalog) species(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	f.writeNames(w, r.URL.Path, "mon"+id, "Mon"+id+"-de")
}

func (f *fakeCatalog) named(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	f.writeNames(w, r.URL.Path, name, strings.ToUpper(name[:1])+name[1:]+"-de")
}

func (f *fakeCatalog) writeNames(w http.ResponseWriter, path, canonical, german string) {
	f.mu.Lock()
	skipGerman := f.noGerman[path]
	f.mu.Unlock()

	names := []map[string]any{
		{"name": canonical + "-en", "language": map[string]string{"name": "en", "url": ""}},
	}
	if !skipGerman {
		names = append(names, map[string]any{"name": german, "language": map[string]string{"name": "de", "url": ""}})
	}

	writeJSON(w, map[string]any{"id": 1, "name": canonical, "names": names})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
