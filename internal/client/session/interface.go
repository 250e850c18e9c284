package session

import (
	"context"
)

// Repository is a small key/value surface over the local session table.
// Get returns (nil, nil) when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
