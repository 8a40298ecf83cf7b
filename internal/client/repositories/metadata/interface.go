// Package metadata persists small key/value records for the local client,
// such as the admin session token and the time it was saved.
package metadata

import (
	"context"
	"time"
)

// Repository is a key/value store. Get returns (nil, nil) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	UpdatedAt(ctx context.Context, key string) (time.Time, bool, error)
}
