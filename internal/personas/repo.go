package personas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"roadmap-backend/internal/shared/storage/object"
)

// Repo loads persona documents by filename.
type Repo interface {
	Load(ctx context.Context, filename string) (Persona, error)
	Save(ctx context.Context, filename string, p Persona) error
}

// ObjectRepo reads persona JSON from an object store under a fixed
// key prefix.
type ObjectRepo struct {
	store  object.Store
	prefix string
}

func NewObjectRepo(store object.Store, prefix string) *ObjectRepo {
	return &ObjectRepo{store: store, prefix: strings.Trim(prefix, "/")}
}

func (r *ObjectRepo) key(filename string) string {
	if r.prefix == "" {
		return filename
	}
	return r.prefix + "/" + filename
}

func (r *ObjectRepo) Load(ctx context.Context, filename string) (Persona, error) {
	rc, err := r.store.Open(ctx, r.key(filename))
	if errors.Is(err, object.ErrNotFound) {
		return Persona{}, fmt.Errorf("%w: %s", ErrNotFound, filename)
	}
	if err != nil {
		return Persona{}, fmt.Errorf("open persona %s: %w", filename, err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return Persona{}, fmt.Errorf("read persona %s: %w", filename, err)
	}

	var p Persona
	if err := json.Unmarshal(raw, &p); err != nil {
		return Persona{}, fmt.Errorf("%w: %s: %v", ErrMalformed, filename, err)
	}
	return p, nil
}

func (r *ObjectRepo) Save(ctx context.Context, filename string, p Persona) error {
	raw, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode persona %s: %w", filename, err)
	}
	if err := r.store.Put(ctx, r.key(filename), "application/json", strings.NewReader(string(raw))); err != nil {
		return fmt.Errorf("save persona %s: %w", filename, err)
	}
	return nil
}
