// Package cache provides caching for plans, layouts, and rendered artifacts.
//
// The pipeline caches three kinds of values: loaded plans, computed layouts,
// and rendered artifacts. Layout and artifact keys are content hashes of
// their inputs, so a cached entry can never be stale - a changed plan hashes
// to a different key. Plan entries are keyed by mission name and expire
// quickly instead.
//
// # Backends
//
// Three backends implement [Cache]:
//   - [FileCache] stores entries on disk for CLI usage
//   - [RedisCache] stores entries in Redis for server deployments
//   - [NullCache] stores nothing (caching disabled)
//
// # Keys
//
// A [Keyer] turns pipeline inputs into cache keys. [DefaultKeyer] produces
// hash-based keys; [ScopedKeyer] adds a prefix for multi-tenant isolation.
package cache

import (
	"context"
	"time"
)

// TTL values for the different key types.
//
// Layout and artifact entries are content-addressed and never go stale, so
// their TTLs only bound cache growth. Plan entries can change underneath
// their key and expire quickly.
const (
	TTLPlan     = 1 * time.Hour
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache is the storage interface for cached pipeline results.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// PlanKeyOpts distinguishes plan entries for the same mission name.
type PlanKeyOpts struct {
	// Source identifies where the plan was loaded from, e.g. "file" or "store".
	Source string
}

// ArtifactKeyOpts distinguishes rendered artifacts built from the same layout.
// Every option that changes the rendered bytes must appear here.
type ArtifactKeyOpts struct {
	Format    string // "svg", "png", "dot", "json"
	Style     string // "light", "dark"
	VizType   string // "board", "nodelink"
	HideEdges bool
	Detailed  bool
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// PlanKey generates a key for plan caching.
	PlanKey(mission string, opts PlanKeyOpts) string

	// LayoutKey generates a key for layout caching. Layouts are fully
	// determined by the plan, so the key needs only the plan hash.
	LayoutKey(planHash string) string

	// ArtifactKey generates a key for rendered artifact caching.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates hash-based cache keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// PlanKey generates a key for plan caching.
func (k *DefaultKeyer) PlanKey(mission string, opts PlanKeyOpts) string {
	return hashKey("plan", mission, opts)
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(planHash string) string {
	return hashKey("layout", planHash)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
