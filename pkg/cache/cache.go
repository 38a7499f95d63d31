// Package cache stores computed layouts and rendered artifacts.
//
// Layouts are keyed by a hash of the decoded document plus the layout
// options; artifacts by a hash of the serialized layout plus the render
// options. A Keyer builds the keys, a Cache stores the bytes.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry, used by the CLI
//   - [RedisCache]: shared cache for the HTTP server
//   - [NullCache]: disables caching
package cache

import (
	"context"
	"time"
)

// Default time-to-live values for cache entries.
const (
	// TTLLayout applies to computed layouts.
	TTLLayout = 7 * 24 * time.Hour

	// TTLArtifact applies to rendered outputs (SVG, PNG, ...).
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with expiry.
//
// Get reports a miss with (nil, false, nil); errors are reserved for
// backend failures. A ttl of zero means the entry does not expire.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
