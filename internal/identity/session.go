package identity

import (
	"context"
	"sync"

	"gigmatch/internal/models"
)

// SessionStore persists the current actor snapshot under a single
// well-known key. The snapshot survives process restarts until an
// explicit logout deletes it. This is the only durable state in the
// system.
type SessionStore interface {
	// Save overwrites the stored snapshot.
	Save(ctx context.Context, actor *models.Actor) error
	// Load returns the stored snapshot, or (nil, nil) when none exists.
	Load(ctx context.Context) (*models.Actor, error)
	// Delete removes the snapshot. Deleting a missing snapshot is not
	// an error.
	Delete(ctx context.Context) error
}

// MemorySessionStore keeps the snapshot in process memory. Used in tests
// and when no Redis backend is configured.
type MemorySessionStore struct {
	mu    sync.Mutex
	actor *models.Actor
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (s *MemorySessionStore) Save(_ context.Context, actor *models.Actor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actor = actor.Clone()
	return nil
}

func (s *MemorySessionStore) Load(_ context.Context) (*models.Actor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.actor.Clone(), nil
}

func (s *MemorySessionStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actor = nil
	return nil
}
