package content

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// PrefixLastSent namespaces last-sent keys.
	PrefixLastSent = "sleepbot:last_sent:"

	// TTLLastSent bounds how long a last-sent entry is remembered.
	TTLLastSent = 30 * 24 * time.Hour

	redisDialTimeout = 5 * time.Second
)

// RedisClient is the subset of *redis.Client the store uses.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Close() error
}

// RedisStore keeps last-sent items in Redis so they survive restarts and are
// shared between replicas.
type RedisStore struct {
	client RedisClient
	ttl    time.Duration
}

// NewRedisStore connects to the Redis URL (redis://[:password@]host:port/db)
// and verifies the connection.
func NewRedisStore(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewRedisStoreFromClient(client, TTLLastSent), nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client RedisClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) LastSent(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, PrefixLastSent+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisStore) SetLastSent(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, PrefixLastSent+key, value, s.ttl).Err()
}

// Close releases the connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
