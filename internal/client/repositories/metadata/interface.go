// Package metadata is a small key/value table in the client's SQLite file.
// The signed-in session is stored there.
package metadata

import (
	"context"
)

// Repository keeps opaque blobs by key. Get returns (nil, nil) for a key
// that was never written or has been deleted.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
