// Package cache provides caching for rendered handwriting artifacts.
//
// The pipeline caches final artifacts (PDF bytes, encoded page images) keyed
// by the input text hash and the full set of rendering options. Caching only
// applies to seeded runs: an unseeded render is intentionally non-reproducible
// (glyph variants are drawn fresh each time), so there is nothing stable to
// key on.
//
// Three implementations are provided:
//   - FileCache: XDG cache directory storage for CLI usage
//   - RedisCache: shared cache for server deployments
//   - NullCache: caching disabled
package cache

import (
	"context"
	"time"
)

// TTL values for cached data types.
const (
	// TTLArtifact is how long rendered artifacts are kept.
	TTLArtifact = 24 * time.Hour
)

// Cache is the interface for artifact caching.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A TTL of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKeyOpts are the option fields that affect a rendered artifact.
// Two renders with identical text and identical ArtifactKeyOpts produce
// identical output, so they share a cache entry.
type ArtifactKeyOpts struct {
	OutputType string `json:"output_type"`
	InkColor   string `json:"ink_color"`
	Ruled      bool   `json:"ruled"`
	Seed       uint64 `json:"seed"`
}

// Keyer generates cache keys for the artifact cache.
type Keyer interface {
	// ArtifactKey generates a key for a rendered artifact.
	// textHash is the SHA-256 hash of the normalized input text.
	ArtifactKey(textHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(textHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", textHash, opts)
}
