package storage

import (
	"context"
	"io"
	"time"
)

// ObjectStore is the object-storage boundary for guide documents. Keys are
// opaque to callers; only this package and the backing store interpret them.
type ObjectStore interface {
	// Put stores one object under key. The key must not be referenced by a
	// guide record until Put has returned nil.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Presign returns a time-bounded read URL for one object. A fresh URL is
	// issued on every call; previously issued URLs stay valid for their own
	// windows.
	Presign(ctx context.Context, key string, expiry time.Duration) (string, error)
	Remove(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
