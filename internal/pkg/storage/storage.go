package storage

import (
	"context"
	"io"
)

// FileStorage keeps rendered exports. Keys are slash-separated relative paths.
type FileStorage interface {
	// Put writes the content under key and returns the cleaned key.
	Put(ctx context.Context, key string, content io.Reader) (string, error)

	// Open returns the stored content for key.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists checks if key has been written
	Exists(ctx context.Context, key string) (bool, error)

	// URL is the public location of key
	URL(key string) string
}
