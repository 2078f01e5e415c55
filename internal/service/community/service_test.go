package community

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sanjeevani-app/backend/internal/analysis/crisis"
	"github.com/sanjeevani-app/backend/internal/model/post"
	"github.com/sanjeevani-app/backend/internal/moderation"
	"github.com/sanjeevani-app/backend/internal/storage"
)

func newWallService() (*Service, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	gate := moderation.NewGate(crisis.NewKeywordDetector())
	return NewService(gate, store), store
}

func TestSubmitStoresAllowedPost(t *testing.T) {
	svc, _ := newWallService()
	ctx := context.Background()

	p, err := svc.Submit(ctx, "  grateful for small wins today  ", "")
	if err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	if p.Message != "grateful for small wins today" {
		t.Fatalf("message not trimmed: %q", p.Message)
	}
	if p.Mood != post.DefaultMood {
		t.Fatalf("expected default mood, got %q", p.Mood)
	}

	posts := svc.List(ctx)
	if len(posts) != 1 || posts[0].ID != p.ID {
		t.Fatalf("expected submitted post on the wall, got %+v", posts)
	}
}

func TestSubmitRejectsEmptyMessage(t *testing.T) {
	svc, _ := newWallService()

	if _, err := svc.Submit(context.Background(), "   ", "calm"); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestSubmitSurfacesGateDecision(t *testing.T) {
	svc, _ := newWallService()

	_, err := svc.Submit(context.Background(), "I feel hopeless", "down")

	var rejected *RejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("expected RejectedError, got %v", err)
	}
	if !strings.Contains(rejected.Decision.Reason, "Crisis content") {
		t.Fatalf("unexpected reason: %q", rejected.Decision.Reason)
	}
	if len(svc.List(context.Background())) != 0 {
		t.Fatal("rejected post must not reach the store")
	}
}

func TestSubmitRejectsOverlongMessageUntouchedStore(t *testing.T) {
	svc, _ := newWallService()

	_, err := svc.Submit(context.Background(), strings.Repeat("a", moderation.MaxPostLength+1), "")

	var rejected *RejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("expected RejectedError, got %v", err)
	}
	if rejected.Decision.Reason != "Message too long" {
		t.Fatalf("unexpected reason: %q", rejected.Decision.Reason)
	}
	if len(svc.List(context.Background())) != 0 {
		t.Fatal("store must stay untouched on rejection")
	}
}

func TestSubmitDegradedStore(t *testing.T) {
	svc, store := newWallService()
	store.SetAvailable(false)

	if _, err := svc.Submit(context.Background(), "hello wall", ""); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if posts := svc.List(context.Background()); len(posts) != 0 {
		t.Fatalf("expected empty wall in degraded mode, got %d posts", len(posts))
	}
}

// rejectingStore answers the liveness probe but refuses every write.
type rejectingStore struct {
	storage.PostStore
}

func (rejectingStore) Put(context.Context, post.Post, time.Duration) bool { return false }

func TestSubmitStoreWriteFailure(t *testing.T) {
	gate := moderation.NewGate(crisis.NewKeywordDetector())
	svc := NewService(gate, rejectingStore{PostStore: storage.NewMemoryStore()})

	if _, err := svc.Submit(context.Background(), "hello wall", ""); !errors.Is(err, ErrSaveFailed) {
		t.Fatalf("expected ErrSaveFailed, got %v", err)
	}
}

func TestStatsDistributions(t *testing.T) {
	svc, store := newWallService()
	ctx := context.Background()

	now := time.Now().UTC()
	seed := []struct {
		mood string
		age  time.Duration
	}{
		{"hopeful", 5 * time.Minute},
		{"hopeful", 20 * time.Minute},
		{"neutral", 45 * time.Minute},
	}
	for i, s := range seed {
		p := post.Post{
			ID:        post.KeyPrefix + string(rune('a'+i)),
			Message:   "m",
			Mood:      s.mood,
			CreatedAt: now.Add(-s.age),
			ExpiresAt: now.Add(-s.age).Add(post.TTL),
		}
		store.Put(ctx, p, post.TTL)
	}

	stats := svc.Stats(ctx)
	if stats.TotalPosts != 3 {
		t.Fatalf("expected 3 posts, got %d", stats.TotalPosts)
	}
	if stats.MoodDistribution["hopeful"] != 2 || stats.MoodDistribution["neutral"] != 1 {
		t.Fatalf("unexpected mood distribution: %v", stats.MoodDistribution)
	}
	// Buckets are cumulative: the 5-minute-old post counts in all three.
	if stats.TimeDistribution.Last15Min != 1 {
		t.Fatalf("last15min: got %d want 1", stats.TimeDistribution.Last15Min)
	}
	if stats.TimeDistribution.Last30Min != 2 {
		t.Fatalf("last30min: got %d want 2", stats.TimeDistribution.Last30Min)
	}
	if stats.TimeDistribution.Last60Min != 3 {
		t.Fatalf("last60min: got %d want 3", stats.TimeDistribution.Last60Min)
	}
}

func TestStatsEmptyWall(t *testing.T) {
	svc, _ := newWallService()

	stats := svc.Stats(context.Background())
	if stats.TotalPosts != 0 || len(stats.MoodDistribution) != 0 {
		t.Fatalf("expected empty stats, got %+v", stats)
	}
}

func TestCleanupDelegatesToSweep(t *testing.T) {
	svc, store := newWallService()
	ctx := context.Background()

	now := time.Now().UTC()
	store.SetClock(func() time.Time { return now })
	store.Put(ctx, post.Post{ID: post.KeyPrefix + "old", CreatedAt: now}, time.Minute)
	store.SetClock(func() time.Time { return now.Add(2 * time.Minute) })

	if removed := svc.Cleanup(ctx); removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
}
