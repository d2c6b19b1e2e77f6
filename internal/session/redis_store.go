// Package session stores per-session thread expansion state.
package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"comment-threads/internal/domain"
	"comment-threads/internal/thread"
)

// ExpansionStore persists the set of expanded boundary comments for a session and
// content item.
type ExpansionStore interface {
	Load(ctx context.Context, sessionID string, item domain.ContentItem) (thread.ExpansionSet, error)
	// Toggle flips one boundary id and reports whether it is now expanded.
	// Concurrent toggles of different ids never overwrite each other.
	Toggle(ctx context.Context, sessionID string, item domain.ContentItem, boundaryID int64) (bool, error)
}

// toggleScript flips ARGV[1] in the set at KEYS[1] and refreshes the TTL
// (ARGV[2], milliseconds) while the set is non-empty. Returns 1 when expanded.
var toggleScript = redis.NewScript(`
local expanded = 0
if redis.call('SISMEMBER', KEYS[1], ARGV[1]) == 1 then
	redis.call('SREM', KEYS[1], ARGV[1])
else
	redis.call('SADD', KEYS[1], ARGV[1])
	expanded = 1
end
local ttl = tonumber(ARGV[2])
if ttl > 0 and redis.call('EXISTS', KEYS[1]) == 1 then
	redis.call('PEXPIRE', KEYS[1], ttl)
end
return expanded
`)

// RedisStore keeps each expansion set in a Redis set that expires after ttl of inactivity.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a new Redis-backed expansion store
func NewRedisStore(redisURL string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisStoreWithClient(client, ttl), nil
}

// NewRedisStoreWithClient creates a store from an existing Redis client
func NewRedisStoreWithClient(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "expanded:",
		ttl:    ttl,
	}
}

func (s *RedisStore) key(sessionID string, item domain.ContentItem) string {
	return s.prefix + sessionID + ":" + item.String()
}

// Load returns the expanded boundary ids. Unknown sessions yield an empty set.
func (s *RedisStore) Load(ctx context.Context, sessionID string, item domain.ContentItem) (thread.ExpansionSet, error) {
	members, err := s.client.SMembers(ctx, s.key(sessionID, item)).Result()
	if err != nil {
		return nil, fmt.Errorf("load expansion state: %w", err)
	}

	set := thread.NewExpansionSet()
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		set[id] = struct{}{}
	}
	return set, nil
}

// Toggle atomically adds or removes boundaryID. Removing the last member
// deletes the key.
func (s *RedisStore) Toggle(ctx context.Context, sessionID string, item domain.ContentItem, boundaryID int64) (bool, error) {
	keys := []string{s.key(sessionID, item)}
	expanded, err := toggleScript.Run(ctx, s.client, keys, strconv.FormatInt(boundaryID, 10), s.ttl.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("toggle expansion state: %w", err)
	}
	return expanded == 1, nil
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ping checks if Redis is reachable
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
