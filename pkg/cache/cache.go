// Package cache provides artifact caching for the layout pipeline.
//
// Negotiation is deterministic, so layout results and rendered
// artifacts can be cached keyed by a hash of their inputs. The Cache
// interface abstracts the storage backend; FileCache stores entries on
// disk for CLI usage and NullCache disables caching entirely.
//
// Keys are produced by a Keyer so that every consumer derives them the
// same way. A key embeds every option that affects the output; two
// runs with identical options share cache entries.
package cache

import (
	"context"
	"time"
)

// Cache TTLs per entry type.
const (
	// TTLLayout is the lifetime of cached layout results.
	TTLLayout = 7 * 24 * time.Hour

	// TTLArtifact is the lifetime of cached rendered artifacts.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with TTL expiry.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl means the entry never
	// expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// LayoutKeyOpts are the options that affect a layout result. The stage
// origin is part of the key: directors pin placements to the stage's
// Left/Top edges, so moving the origin moves every placement.
type LayoutKeyOpts struct {
	Direction string
	Left      float64
	Top       float64
	Width     float64
	Height    float64
	MarginX   float64
	MarginY   float64
}

// ArtifactKeyOpts are the options that affect a rendered artifact.
type ArtifactKeyOpts struct {
	Format string
}

// Keyer derives cache keys from pipeline inputs.
type Keyer interface {
	// LayoutKey returns the key for a layout result. itemsHash is the
	// content hash of the item list.
	LayoutKey(itemsHash string, opts LayoutKeyOpts) string

	// ArtifactKey returns the key for a rendered artifact. layoutHash
	// is the content hash of the serialized layout result.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes inputs and options into prefixed sha256 keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(itemsHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", itemsHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
