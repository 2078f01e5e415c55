package post

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TTL is how long a wall post stays visible before the store expires it.
const TTL = time.Hour

// KeyPrefix namespaces post keys in the backing store so enumeration can
// match on it.
const KeyPrefix = "post:"

// DefaultMood is used when the author does not tag their post.
const DefaultMood = "neutral"

// Post is an anonymous community wall entry. Posts are immutable after
// creation and exist only until ExpiresAt.
type Post struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Mood      string    `json:"mood"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// New builds a post with a fresh random identifier. A 128-bit UUID makes
// collisions under concurrent submission a non-concern, so there is no
// retry loop.
func New(message, mood string) Post {
	mood = strings.TrimSpace(mood)
	if mood == "" {
		mood = DefaultMood
	}

	now := time.Now().UTC()
	return Post{
		ID:        KeyPrefix + uuid.NewString(),
		Message:   strings.TrimSpace(message),
		Mood:      mood,
		CreatedAt: now,
		ExpiresAt: now.Add(TTL),
	}
}
