package usecase

import (
	"context"
	"time"
)

// Cache is the cache-aside surface the usecases depend on. Every
// implementation must degrade to miss behavior on failure: a cache
// error never fails the enclosing request, the caller falls through
// to the graph store.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) (bool, error)
	DeleteByPattern(ctx context.Context, pattern string) (int, error)
	SetAdd(ctx context.Context, key, member string, ttl time.Duration) error
	SetRemove(ctx context.Context, key, member string) error
	SetMembers(ctx context.Context, key string) ([]string, error)
}
