package quiz

import (
	"context"
	"errors"
	"time"
)

// Freshness is how long a saved session stays resumable. Older
// sessions are treated as absent so the user restarts the quiz.
const Freshness = 24 * time.Hour

var ErrNotFound = errors.New("quiz session not found")

type Session struct {
	ID        string    `json:"id"`
	Responses Responses `json:"responses"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store persists quiz sessions. Get must return ErrNotFound for
// sessions older than Freshness.
type Store interface {
	Get(ctx context.Context, id string) (Session, error)
	Save(ctx context.Context, s Session) error
	Delete(ctx context.Context, id string) error
}
