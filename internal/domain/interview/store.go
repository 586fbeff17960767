package interview

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned by stores when no session has the given id,
// including sessions that have expired.
var ErrSessionNotFound = errors.New("assessment session not found")

// Store persists sessions. Implementations own their concurrency; the
// service never holds a lock across a gateway call, it loads, computes and
// saves. Load and List return copies the caller may mutate freely.
type Store interface {
	Load(ctx context.Context, id uuid.UUID) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns sessions newest-first plus the total count.
	List(ctx context.Context, limit, offset int) ([]*Session, int, error)
}

// Expirer is implemented by stores that can drop abandoned sessions. The
// server runs it on a ticker.
type Expirer interface {
	// DeleteExpired removes sessions idle longer than the store's TTL and
	// reports how many were dropped.
	DeleteExpired(ctx context.Context) (int, error)
}
