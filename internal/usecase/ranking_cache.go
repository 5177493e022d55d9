package usecase

import (
	"context"
	"time"
)

// RankingCache is the read-through cache in front of the ranking
// operations. Implementations must degrade to misses when the backing
// store is unavailable.
type RankingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}
