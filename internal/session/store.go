package session

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Store is the active-session registry. Implementations must never hold
// their own lock across a turn; per-session serialization belongs to
// the session itself.
type Store interface {
	// GetOrCreate returns the session for id, creating it when id is
	// empty or unknown. The returned session's id is authoritative.
	GetOrCreate(ctx context.Context, id string) (*Session, error)
	// Get returns the session for id, or false when untracked.
	Get(ctx context.Context, id string) (*Session, bool, error)
	// ActiveIDs lists tracked session ids, sorted.
	ActiveIDs(ctx context.Context) ([]string, error)
	// Count reports the number of tracked sessions.
	Count(ctx context.Context) (int, error)
}

// NewSessionID generates a fresh session identifier.
func NewSessionID() string {
	return "web_" + uuid.NewString()
}

// MemoryStore keeps all sessions in process memory. This is the default
// deployment: state lives and dies with the process.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

func (m *MemoryStore) GetOrCreate(_ context.Context, id string) (*Session, error) {
	if id == "" {
		id = NewSessionID()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	s := newSession(id)
	m.sessions[id] = s
	return s, nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok, nil
}

func (m *MemoryStore) ActiveIDs(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *MemoryStore) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions), nil
}
