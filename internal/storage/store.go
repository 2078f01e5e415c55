package storage

import (
	"context"
	"time"

	"github.com/sanjeevani-app/backend/internal/model/post"
)

// PostStore is the ephemeral backing for the community wall. Every operation
// fails soft: when the backing store is unreachable the degraded result is
// returned (false, empty) and never an error. Callers decide how to surface
// degradation.
type PostStore interface {
	// Put stores the post under its ID with the given time-to-live.
	Put(ctx context.Context, p post.Post, ttl time.Duration) bool
	// ListAll returns every live post, newest first. Entries that expire
	// between enumeration and fetch are skipped silently.
	ListAll(ctx context.Context) []post.Post
	// Available reports whether the backing store is reachable.
	Available(ctx context.Context) bool
	// SweepExpired eagerly deletes entries whose remaining TTL has run out
	// and reports how many it removed. Native per-key expiry remains
	// authoritative; this only trims enumeration cost.
	SweepExpired(ctx context.Context) int
}
