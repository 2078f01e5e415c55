package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sanjeevani-app/backend/internal/model/post"
)

type memoryEntry struct {
	post      post.Post
	expiresAt time.Time
}

// MemoryStore implements PostStore on a mutex-guarded map, honoring the same
// expiry and degraded-mode contract as the Redis store. It exists for unit
// tests that need a wall without a Redis instance.
type MemoryStore struct {
	mu        sync.RWMutex
	entries   map[string]memoryEntry
	available bool
	now       func() time.Time
}

// NewMemoryStore returns an empty, available in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries:   make(map[string]memoryEntry),
		available: true,
		now:       time.Now,
	}
}

// SetAvailable toggles the simulated liveness of the backing store.
func (s *MemoryStore) SetAvailable(available bool) {
	s.mu.Lock()
	s.available = available
	s.mu.Unlock()
}

// SetClock overrides the store's notion of now, for expiry tests.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

// Put stores the post until its TTL elapses.
func (s *MemoryStore) Put(_ context.Context, p post.Post, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.available {
		return false
	}
	s.entries[p.ID] = memoryEntry{post: p, expiresAt: s.now().Add(ttl)}
	return true
}

// ListAll returns live posts newest first, dropping expired entries on read.
func (s *MemoryStore) ListAll(_ context.Context) []post.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.available {
		return nil
	}

	now := s.now()
	posts := make([]post.Post, 0, len(s.entries))
	for id, entry := range s.entries {
		if !entry.expiresAt.After(now) {
			delete(s.entries, id)
			continue
		}
		posts = append(posts, entry.post)
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}

// Available reports the simulated liveness flag.
func (s *MemoryStore) Available(_ context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.available
}

// SweepExpired drops entries past their expiry.
func (s *MemoryStore) SweepExpired(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.available {
		return 0
	}

	now := s.now()
	removed := 0
	for id, entry := range s.entries {
		if !entry.expiresAt.After(now) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}
