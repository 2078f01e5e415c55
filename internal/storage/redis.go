package storage

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sanjeevani-app/backend/internal/model/post"
)

const scanCount = 100

// RedisStore implements PostStore on a Redis instance, leaning on per-key
// expiry (SET ... EX) so posts vanish without any bookkeeping of ours.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects a store to the Redis at addr. The connection is
// lazy; use Available to probe it.
func NewRedisStore(addr, password string, db int) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisStore{client: client}
}

// Put stores the post with the given TTL. Returns false when Redis is
// unreachable or rejects the write.
func (s *RedisStore) Put(ctx context.Context, p post.Post, ttl time.Duration) bool {
	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("[store] failed to encode post %s: %v", p.ID, err)
		return false
	}
	if err := s.client.Set(ctx, p.ID, data, ttl).Err(); err != nil {
		log.Printf("[store] failed to save post %s: %v", p.ID, err)
		return false
	}
	return true
}

// ListAll scans for post keys and fetches them in one MGET. A key that
// expires between the scan and the fetch simply yields a nil value and is
// skipped; that race is benign.
func (s *RedisStore) ListAll(ctx context.Context) []post.Post {
	keys := s.scanKeys(ctx)
	if len(keys) == 0 {
		return nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		log.Printf("[store] failed to fetch posts: %v", err)
		return nil
	}

	posts := make([]post.Post, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue // expired between SCAN and MGET
		}
		var p post.Post
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			log.Printf("[store] skipping undecodable post: %v", err)
			continue
		}
		posts = append(posts, p)
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}

// Available pings Redis.
func (s *RedisStore) Available(ctx context.Context) bool {
	return s.client.Ping(ctx).Err() == nil
}

// SweepExpired deletes post keys whose TTL has run out. Redis already
// expires them on its own; the sweep only reclaims eagerly so later scans
// stay short.
func (s *RedisStore) SweepExpired(ctx context.Context) int {
	removed := 0
	for _, key := range s.scanKeys(ctx) {
		ttl, err := s.client.TTL(ctx, key).Result()
		if err != nil || ttl > 0 {
			continue
		}
		n, err := s.client.Del(ctx, key).Result()
		if err != nil {
			continue
		}
		removed += int(n)
	}
	if removed > 0 {
		log.Printf("[store] swept %d expired posts", removed)
	}
	return removed
}

func (s *RedisStore) scanKeys(ctx context.Context) []string {
	var keys []string
	iter := s.client.Scan(ctx, 0, post.KeyPrefix+"*", scanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("[store] key scan failed: %v", err)
		return nil
	}
	return keys
}
