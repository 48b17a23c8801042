package personas

import (
	"context"
	"fmt"
	"sync"
)

// MemoryRepo keeps persona documents in memory for tests and seeded
// local runs.
type MemoryRepo struct {
	mu   sync.RWMutex
	docs map[string]Persona
}

func NewMemoryRepo(docs map[string]Persona) *MemoryRepo {
	copied := make(map[string]Persona, len(docs))
	for k, v := range docs {
		copied[k] = v
	}
	return &MemoryRepo{docs: copied}
}

func (m *MemoryRepo) Load(_ context.Context, filename string) (Persona, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.docs[filename]
	if !ok {
		return Persona{}, fmt.Errorf("%w: %s", ErrNotFound, filename)
	}
	return p, nil
}

func (m *MemoryRepo) Save(_ context.Context, filename string, p Persona) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[filename] = p
	return nil
}
