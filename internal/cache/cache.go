// Package cache is the small JSON read-through layer in front of redis,
// used for keyword insight results and other model-derived values that are
// expensive to recompute.
package cache

import (
	"context"
	"time"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
