package wizard

import (
	"context"
	"sync"

	"rhiclean/models"
)

// SessionStore persists wizard sessions between steps.
type SessionStore interface {
	Save(ctx context.Context, s *models.WizardSession) error
	Fetch(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// MemoryStore keeps sessions in a process-local map. Used in tests and
// in redis-less deployments; sessions live until cancelled or the
// process exits.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.WizardSession
}

// NewMemoryStore returns an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]models.WizardSession)}
}

func (m *MemoryStore) Save(ctx context.Context, s *models.WizardSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.SessionID] = *s
	return nil
}

func (m *MemoryStore) Fetch(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, NewSessionNotFoundError(sessionID)
	}
	out := s
	return &out, nil
}

func (m *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}
