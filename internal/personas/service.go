package personas

import (
	"context"
	"errors"
	"sync"
	"time"

	"roadmap-backend/internal/quiz"
	"roadmap-backend/internal/shared/cache"
	"roadmap-backend/internal/shared/telemetry"
)

const cacheTTL = 15 * time.Minute

// Service resolves quiz responses to persona documents, with an
// in-process cache in front of the repository and an optional Redis
// layer shared across instances.
type Service struct {
	repo  Repo
	redis *cache.Cache

	mu  sync.RWMutex
	mem map[string]Persona
}

func NewService(repo Repo, redis *cache.Cache) *Service {
	return &Service{
		repo:  repo,
		redis: redis,
		mem:   map[string]Persona{},
	}
}

// Load fetches one persona document by filename, consulting caches
// first.
func (s *Service) Load(ctx context.Context, filename string) (Persona, error) {
	s.mu.RLock()
	p, ok := s.mem[filename]
	s.mu.RUnlock()
	if ok {
		return p, nil
	}

	if s.redis.GetJSON(ctx, "persona:"+filename, &p) {
		s.remember(filename, p)
		return p, nil
	}

	p, err := s.repo.Load(ctx, filename)
	if err != nil {
		return Persona{}, err
	}
	s.remember(filename, p)
	s.redis.SetJSON(ctx, "persona:"+filename, p, cacheTTL)
	return p, nil
}

// LoadFromQuiz resolves the responses to a key and loads that persona,
// retrying exactly once with the fallback document when the resolved
// one cannot be served. The original error is surfaced if the fallback
// fails too.
func (s *Service) LoadFromQuiz(ctx context.Context, r quiz.Responses) (Key, Persona, error) {
	key := Resolve(r)
	filename := key.Filename()

	p, err := s.Load(ctx, filename)
	if err == nil {
		return key, p, nil
	}
	if filename == FallbackFilename {
		return key, Persona{}, err
	}

	telemetry.Warn("persona load failed, using fallback", map[string]any{
		"personaFile": filename,
		"fallback":    FallbackFilename,
		"error":       err.Error(),
	})

	fp, ferr := s.Load(ctx, FallbackFilename)
	if ferr != nil {
		return key, Persona{}, err
	}
	return key, fp, nil
}

// Store writes a persona document through to the repository and
// invalidates both cache layers.
func (s *Service) Store(ctx context.Context, filename string, p Persona) error {
	if err := s.repo.Save(ctx, filename, p); err != nil {
		return err
	}
	s.Invalidate(ctx, filename)
	return nil
}

func (s *Service) Invalidate(ctx context.Context, filename string) {
	s.mu.Lock()
	delete(s.mem, filename)
	s.mu.Unlock()
	s.redis.Delete(ctx, "persona:"+filename)
}

func (s *Service) remember(filename string, p Persona) {
	s.mu.Lock()
	s.mem[filename] = p
	s.mu.Unlock()
}

// IsNotFound reports whether err means the document does not exist,
// as opposed to being unreadable.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
