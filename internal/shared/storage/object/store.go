package object

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when no object exists for a key.
var ErrNotFound = errors.New("object not found")

// ObjectStore reads and writes static assets by key.
type ObjectStore interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	SaveWithKey(ctx context.Context, key string, contentType string, r io.Reader) (int64, error)
}
