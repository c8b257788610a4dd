package screen

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"pokedex/browser/internal/domain"
	"pokedex/browser/internal/service"
	"pokedex/browser/internal/state"
)

type session struct {
	screen   *ListScreen
	lastSeen time.Time
}

// Sessions maps session ids to their list screens. Screens idle for longer
// than ttl are dropped by Sweep; their selection survives in the store.
type Sessions struct {
	catalog service.Catalog
	sizes   domain.PageSizes
	store   state.SelectionStore
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

func NewSessions(catalog service.Catalog, sizes domain.PageSizes, store state.SelectionStore, ttl time.Duration) *Sessions {
	return &Sessions{
		catalog:  catalog,
		sizes:    sizes,
		store:    store,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Get returns the screen of sessionID, creating it when the id is unknown
// or not a valid session id. The returned id is the one to hand back to the
// client. A new screen starts from the stored selection, if any.
func (s *Sessions) Get(ctx context.Context, sessionID string) (string, *ListScreen) {
	if _, err := uuid.Parse(sessionID); err != nil {
		sessionID = uuid.NewString()
	}

	s.mu.Lock()
	if sess, ok := s.sessions[sessionID]; ok {
		sess.lastSeen = s.now()
		s.mu.Unlock()
		return sessionID, sess.screen
	}
	s.mu.Unlock()

	screen := NewListScreen(s.catalog, s.sizes)

	selection, ok, err := s.store.Get(ctx, sessionID)
	if err != nil {
		log.Warnf("⚠️ Could not restore selection of session %s: %v", sessionID, err)
	} else if ok {
		screen.SetSelection(selection)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another request of the same session may have won the race.
	if sess, ok := s.sessions[sessionID]; ok {
		sess.lastSeen = s.now()
		return sessionID, sess.screen
	}

	s.sessions[sessionID] = &session{screen: screen, lastSeen: s.now()}
	log.Debugf("🆕 Session %s opened", sessionID)
	return sessionID, screen
}

// SaveSelection writes the current selection of the session's screen to
// the store.
func (s *Sessions) SaveSelection(ctx context.Context, sessionID string, screen *ListScreen) error {
	return s.store.Set(ctx, sessionID, screen.Selection())
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops screens idle for longer than the session ttl and returns how
// many were dropped.
func (s *Sessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	dropped := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			dropped++
		}
	}
	return dropped
}

// Run sweeps idle sessions until ctx is done.
func (s *Sessions) Run(ctx context.Context) {
	interval := s.ttl / 2
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Infof("🧹 Dropped %d idle sessions", n)
			}
		}
	}
}
