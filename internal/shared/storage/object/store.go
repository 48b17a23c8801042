package object

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound indicates the requested object does not exist in the store.
var ErrNotFound = errors.New("object not found")

// Store defines the contract for reading and writing persona documents
// addressed by a slash-separated key.
type Store interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Put(ctx context.Context, key string, contentType string, r io.Reader) error
}
