package prefs

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig describes the Redis connection used by RedisStore.
type RedisConfig struct {
	ConnectionURL  string        `env:"REDIS_URL"` // "redis://:password@localhost:6379/0"; empty disables Redis
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"`
	TTL            time.Duration `env:"REDIS_PREFS_TTL" envDefault:"8760h"`
}

// ConnectRedis opens a client and pings it, retrying per cfg.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisURL, err)
	}

	for range max(cfg.RetryAttempts, 1) {
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}
	return nil, ErrRedisNotReady
}

// RedisStore keeps one visitor's preferences in a Redis hash
// "sitekit:prefs:{visitor}".
type RedisStore struct {
	db  redis.UniversalClient
	key string
	ttl time.Duration
}

// NewRedisStore scopes a store to visitor. A zero ttl never expires.
func NewRedisStore(db redis.UniversalClient, visitor string, ttl time.Duration) *RedisStore {
	return &RedisStore{db: db, key: "sitekit:prefs:" + visitor, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}
	v, err := s.db.HGet(ctx, s.key, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Join(ErrReadStore, err)
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	_, err := s.db.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, s.key, key, value)
		if s.ttl > 0 {
			p.Expire(ctx, s.key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return errors.Join(ErrWriteStore, err)
	}
	return nil
}

// RedisHealthcheck returns a readiness probe for client.
func RedisHealthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
