// Package storage hides the object store that keeps document files. Clients
// never talk to it with credentials: they get short-lived presigned URLs.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophdocs/internal/common"
	"github.com/dmitrijs2005/gophdocs/internal/server/config"
)

// ObjectStorage is implemented by S3Storage and MinioStorage.
type ObjectStorage interface {
	// PresignPut returns a URL accepting a single PUT of key.
	PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (string, error)
	// PresignGet returns a URL serving key.
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	// Exists reports whether key is present in the bucket.
	Exists(ctx context.Context, key string) (bool, error)
	// Delete removes key. Removing a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

const maxKeyLength = 1024

// ValidateKey rejects keys that are empty, absolute, too long, or that
// contain "." or ".." segments.
func ValidateKey(key string) error {
	if key == "" || len(key) > maxKeyLength {
		return fmt.Errorf("%w: bad object key length", common.ErrorValidation)
	}
	if strings.HasPrefix(key, "/") || strings.HasSuffix(key, "/") {
		return fmt.Errorf("%w: object key %q", common.ErrorValidation, key)
	}
	for _, seg := range strings.Split(key, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return fmt.Errorf("%w: object key %q", common.ErrorValidation, key)
		}
	}
	return nil
}

// New builds the driver selected by cfg.StorageDriver.
func New(ctx context.Context, cfg *config.Config) (ObjectStorage, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverS3, "":
		return NewS3Storage(ctx, cfg)
	case config.StorageDriverMinio:
		return NewMinioStorage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
