package community

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/sanjeevani-app/backend/internal/model/post"
	"github.com/sanjeevani-app/backend/internal/moderation"
	"github.com/sanjeevani-app/backend/internal/storage"
)

var (
	// ErrEmptyMessage rejects blank submissions before moderation runs.
	ErrEmptyMessage = errors.New("message is required")
	// ErrUnavailable signals the backing store is down; wall features are
	// disabled, nothing crashed.
	ErrUnavailable = errors.New("community wall temporarily unavailable")
	// ErrSaveFailed signals the store refused the write after the gate
	// allowed the post.
	ErrSaveFailed = errors.New("failed to save post")
)

// RejectedError wraps the gate's decision so handlers can surface its reason
// and suggestion without string matching.
type RejectedError struct {
	Decision moderation.Decision
}

func (e *RejectedError) Error() string { return e.Decision.Reason }

// TimeBuckets counts posts by age. Buckets are cumulative: a ten-minute-old
// post lands in all three.
type TimeBuckets struct {
	Last15Min int `json:"last15min"`
	Last30Min int `json:"last30min"`
	Last60Min int `json:"last60min"`
}

// Stats is a read-time aggregation over the current wall snapshot. Nothing
// here is ever persisted.
type Stats struct {
	TotalPosts       int            `json:"totalPosts"`
	MoodDistribution map[string]int `json:"moodDistribution"`
	TimeDistribution TimeBuckets    `json:"timeDistribution"`
}

// Service orchestrates the community wall: moderation gate in front of the
// ephemeral store.
type Service struct {
	gate  *moderation.Gate
	store storage.PostStore
}

// NewService wires the wall orchestrator.
func NewService(gate *moderation.Gate, store storage.PostStore) *Service {
	return &Service{gate: gate, store: store}
}

// Submit validates, moderates, and stores one anonymous post. The error
// vocabulary distinguishes validation (ErrEmptyMessage), degraded service
// (ErrUnavailable), gate rejection (*RejectedError), and store write failure
// (ErrSaveFailed).
func (s *Service) Submit(ctx context.Context, message, mood string) (post.Post, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return post.Post{}, ErrEmptyMessage
	}

	if !s.store.Available(ctx) {
		return post.Post{}, ErrUnavailable
	}

	if decision := s.gate.Evaluate(trimmed); !decision.Allowed {
		return post.Post{}, &RejectedError{Decision: decision}
	}

	p := post.New(trimmed, mood)
	if !s.store.Put(ctx, p, post.TTL) {
		return post.Post{}, ErrSaveFailed
	}

	log.Printf("[community] created post %s", p.ID)
	return p, nil
}

// List returns the current wall, newest first. Degraded mode yields an empty
// wall, never an error.
func (s *Service) List(ctx context.Context) []post.Post {
	if !s.store.Available(ctx) {
		return nil
	}
	return s.store.ListAll(ctx)
}

// Stats aggregates mood and age distributions from the live snapshot.
func (s *Service) Stats(ctx context.Context) Stats {
	posts := s.List(ctx)

	stats := Stats{
		TotalPosts:       len(posts),
		MoodDistribution: make(map[string]int),
	}

	now := time.Now().UTC()
	for _, p := range posts {
		mood := p.Mood
		if mood == "" {
			mood = post.DefaultMood
		}
		stats.MoodDistribution[mood]++

		age := now.Sub(p.CreatedAt)
		if age <= 15*time.Minute {
			stats.TimeDistribution.Last15Min++
		}
		if age <= 30*time.Minute {
			stats.TimeDistribution.Last30Min++
		}
		if age <= 60*time.Minute {
			stats.TimeDistribution.Last60Min++
		}
	}

	return stats
}

// Cleanup eagerly sweeps expired entries. The store's native expiry is
// authoritative; this is an admin convenience.
func (s *Service) Cleanup(ctx context.Context) int {
	if !s.store.Available(ctx) {
		return 0
	}
	return s.store.SweepExpired(ctx)
}

// Available reports whether wall features are currently served.
func (s *Service) Available(ctx context.Context) bool {
	return s.store.Available(ctx)
}
