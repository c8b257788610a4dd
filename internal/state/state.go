package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"pokedex/browser/internal/domain"
)

// SelectionStore keeps the search text and tag toggles of a screen session.
type SelectionStore interface {
	Get(ctx context.Context, sessionID string) (domain.SelectionState, bool, error)
	Set(ctx context.Context, sessionID string, selection domain.SelectionState) error
	Delete(ctx context.Context, sessionID string) error
}

type redisSelectionStore struct {
	redisClient redis.UniversalClient
	keyPrefix   string
	ttl         time.Duration
}

// NewRedisSelectionStore stores selections as JSON that expires ttl after
// the last write.
func NewRedisSelectionStore(redisClient redis.UniversalClient, ttl time.Duration) SelectionStore {
	return &redisSelectionStore{
		redisClient: redisClient,
		keyPrefix:   "pokedex:session:selection:",
		ttl:         ttl,
	}
}

func (s *redisSelectionStore) Get(ctx context.Context, sessionID string) (domain.SelectionState, bool, error) {
	key := s.keyPrefix + sessionID
	val, err := s.redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.SelectionState{}, false, nil // Nothing saved yet
		}
		return domain.SelectionState{}, false, fmt.Errorf("failed to get selection for session %s: %w", sessionID, err)
	}

	var selection domain.SelectionState
	if err := json.Unmarshal([]byte(val), &selection); err != nil {
		return domain.SelectionState{}, false, fmt.Errorf("failed to parse selection for session %s: %w", sessionID, err)
	}

	return selection, true, nil
}

func (s *redisSelectionStore) Set(ctx context.Context, sessionID string, selection domain.SelectionState) error {
	data, err := json.Marshal(selection)
	if err != nil {
		return fmt.Errorf("failed to marshal selection for session %s: %w", sessionID, err)
	}

	key := s.keyPrefix + sessionID
	if err := s.redisClient.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set selection for session %s: %w", sessionID, err)
	}
	return nil
}

func (s *redisSelectionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.redisClient.Del(ctx, s.keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete selection for session %s: %w", sessionID, err)
	}
	return nil
}

type memorySelectionStore struct {
	mu         sync.RWMutex
	selections map[string]domain.SelectionState
}

// NewMemorySelectionStore keeps selections for the life of the process.
func NewMemorySelectionStore() SelectionStore {
	return &memorySelectionStore{selections: make(map[string]domain.SelectionState)}
}

func (s *memorySelectionStore) Get(_ context.Context, sessionID string) (domain.SelectionState, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	selection, ok := s.selections[sessionID]
	return selection.Clone(), ok, nil
}

func (s *memorySelectionStore) Set(_ context.Context, sessionID string, selection domain.SelectionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selections[sessionID] = selection.Clone()
	return nil
}

func (s *memorySelectionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.selections, sessionID)
	return nil
}
