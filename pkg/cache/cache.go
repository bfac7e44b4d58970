// Package cache stores rendered artifacts keyed by the DOT source and render
// options, so repeated renders of the same colored graph skip Graphviz.
//
// Two backends are provided: [FileCache] for the CLI, rooted in the XDG cache
// directory, and [NullCache] when caching is disabled.
//
//	c, _ := cache.NewFileCache(dir)
//	key := cache.ArtifactKey(dot, cache.ArtifactKeyOpts{Format: "svg", Engine: "neato"})
//	if data, hit, _ := c.Get(ctx, key); hit {
//	    return data
//	}
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long a rendered artifact stays valid.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the data stored under key and whether it was found.
	// Expired and unreadable entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
	Close() error
}
