package interview

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps sessions in process memory. It is the store used when no
// database is configured. Expiry is enforced on access: a session whose
// UpdatedAt is older than the TTL reads as missing, and stale entries are
// pruned whenever the store is written or listed. A TTL of zero disables
// expiry.
type MemoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[uuid.UUID]*Session
	order    []uuid.UUID // insertion order, oldest first
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[uuid.UUID]*Session),
	}
}

func (m *MemoryStore) Load(_ context.Context, id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok || m.expired(s, time.Now()) {
		return nil, ErrSessionNotFound
	}
	return s.clone(), nil
}

func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pruneLocked(time.Now())
	if _, ok := m.sessions[s.ID]; !ok {
		m.order = append(m.order, s.ID)
	}
	m.sessions[s.ID] = s.clone()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	m.removeLocked(id)
	return nil
}

func (m *MemoryStore) List(_ context.Context, limit, offset int) ([]*Session, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pruneLocked(time.Now())

	total := len(m.order)
	out := make([]*Session, 0, limit)
	// Newest first: walk the insertion order backwards.
	for i := total - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.sessions[m.order[i]].clone())
	}
	return out, total, nil
}

// DeleteExpired prunes stale sessions immediately instead of waiting for the
// next write.
func (m *MemoryStore) DeleteExpired(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pruneLocked(time.Now()), nil
}

func (m *MemoryStore) expired(s *Session, now time.Time) bool {
	return m.ttl > 0 && now.Sub(s.UpdatedAt) > m.ttl
}

func (m *MemoryStore) pruneLocked(now time.Time) int {
	if m.ttl <= 0 {
		return 0
	}
	kept := m.order[:0]
	dropped := 0
	for _, id := range m.order {
		if s := m.sessions[id]; s != nil && m.expired(s, now) {
			delete(m.sessions, id)
			dropped++
			continue
		}
		kept = append(kept, id)
	}
	m.order = kept
	return dropped
}

func (m *MemoryStore) removeLocked(id uuid.UUID) {
	delete(m.sessions, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			return
		}
	}
}
