package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGStore persists sessions in the quiz_sessions table, with the
// answers held as one JSONB document per session.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

func (p *PGStore) Get(ctx context.Context, id string) (Session, error) {
	const q = `SELECT id, responses, created_at, updated_at
FROM quiz_sessions
WHERE id = $1 AND updated_at >= $2`

	cutoff := time.Now().Add(-Freshness)

	var (
		s   Session
		raw []byte
	)
	err := p.db.QueryRowContext(ctx, q, id, cutoff).Scan(&s.ID, &raw, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("get quiz session %s: %w", id, err)
	}
	if err := json.Unmarshal(raw, &s.Responses); err != nil {
		return Session{}, fmt.Errorf("decode quiz session %s: %w", id, err)
	}
	return s, nil
}

func (p *PGStore) Save(ctx context.Context, s Session) error {
	raw, err := json.Marshal(s.Responses)
	if err != nil {
		return fmt.Errorf("encode quiz session %s: %w", s.ID, err)
	}

	const q = `INSERT INTO quiz_sessions (id, responses, created_at, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET responses = EXCLUDED.responses, updated_at = EXCLUDED.updated_at`

	if _, err := p.db.ExecContext(ctx, q, s.ID, raw, s.CreatedAt, s.UpdatedAt); err != nil {
		return fmt.Errorf("save quiz session %s: %w", s.ID, err)
	}
	return nil
}

func (p *PGStore) Delete(ctx context.Context, id string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM quiz_sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete quiz session %s: %w", id, err)
	}
	return nil
}
