package interview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore persists sessions in PostgreSQL. The whole session is serialized
// as JSONB; symptom, phase and timestamps are lifted into columns for
// listing and expiry queries. Schema lives in migrations.
type PGStore struct {
	pool *pgxpool.Pool
	ttl  time.Duration
}

func NewPGStore(pool *pgxpool.Pool, ttl time.Duration) *PGStore {
	return &PGStore{pool: pool, ttl: ttl}
}

func (p *PGStore) Load(ctx context.Context, id uuid.UUID) (*Session, error) {
	var data []byte
	err := p.pool.QueryRow(ctx,
		`SELECT data FROM assessment_session WHERE id = $1`, id).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	return decodeSession(data)
}

func (p *PGStore) Save(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	_, err = p.pool.Exec(ctx, `
		INSERT INTO assessment_session (id, symptom, phase, emergency, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			symptom    = EXCLUDED.symptom,
			phase      = EXCLUDED.phase,
			emergency  = EXCLUDED.emergency,
			data       = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at`,
		s.ID, s.Symptom, string(s.Phase), s.Emergency, data, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (p *PGStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM assessment_session WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (p *PGStore) List(ctx context.Context, limit, offset int) ([]*Session, int, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT data FROM assessment_session
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []*Session
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, 0, fmt.Errorf("scan session: %w", err)
		}
		s, err := decodeSession(data)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list sessions: %w", err)
	}

	var total int
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM assessment_session`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sessions: %w", err)
	}
	return out, total, nil
}

// DeleteExpired drops sessions idle longer than the TTL. A TTL of zero
// disables expiry.
func (p *PGStore) DeleteExpired(ctx context.Context) (int, error) {
	if p.ttl <= 0 {
		return 0, nil
	}
	cutoff := time.Now().Add(-p.ttl)
	tag, err := p.pool.Exec(ctx,
		`DELETE FROM assessment_session WHERE updated_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func decodeSession(data []byte) (*Session, error) {
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}
