// Package cache stores rendered export artifacts between runs of a pipeline.
//
// A [Cache] maps string keys to byte slices. Keys are produced by a [Keyer]
// from a graph fingerprint and the export options, so an identical graph
// exported with identical options is served from the cache.
//
// Two implementations are provided: [NullCache], which never stores
// anything, and [MemoryCache], an in-process cache with expiration.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store.
//
// Get reports a miss with found == false and a nil error. A ttl of zero in
// Set uses the implementation's default expiration.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, found bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
