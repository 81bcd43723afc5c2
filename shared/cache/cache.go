package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"linka/infras/otel"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	scanBatch             = 100
)

// Nil is returned by Get when the key does not exist.
const Nil = redis.Nil

// RedisCache is the read-model cache plus the counters and locks the request
// protection middleware keeps. Durations and windows are in seconds.
type RedisCache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	SaveNX(ctx context.Context, key string, value any, duration int) (saved bool, err error)
	Increment(ctx context.Context, key string, window int) (count int64, ttl time.Duration, err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, pattern string) error
	Ping(ctx context.Context) error
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

func (cache *redisCache) start(ctx context.Context, op, key string) (context.Context, otel.Scope) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+"."+op)
	if key != "" {
		scope.SetAttribute(otelCacheKeyAttribute, key)
	}

	return ctx, scope
}

// encode stores strings as-is and everything else as JSON.
func encode(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		payload, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal cache value: %w", err)
		}

		return payload, nil
	}
}

// decode is the inverse of encode.
func decode(raw string, value any) error {
	if v, ok := value.(*string); ok {
		*v = raw

		return nil
	}

	if err := json.Unmarshal([]byte(raw), value); err != nil {
		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

// Clear deletes every key matching pattern, one SCAN page at a time.
func (cache *redisCache) Clear(ctx context.Context, pattern string) (err error) {
	ctx, scope := cache.start(ctx, "Clear", pattern)
	defer scope.End()
	defer scope.TraceIfError(&err)

	var cursor uint64

	for {
		var keys []string

		keys, cursor, err = cache.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return fmt.Errorf("failed to scan cache keys: %w", err)
		}

		if len(keys) > 0 {
			if err = cache.client.Unlink(ctx, keys...).Err(); err != nil {
				log.Error().Err(err).Str("pattern", pattern).Int("keys", len(keys)).Msg("failed to clear cache")

				return fmt.Errorf("failed to delete cache value: %w", err)
			}
		}

		if cursor == 0 {
			return nil
		}
	}
}

func (cache *redisCache) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := cache.start(ctx, "Delete", key)
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = cache.client.Del(ctx, key).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete cache")

		return fmt.Errorf("failed to delete cache value: %w", err)
	}

	return nil
}

// Get decodes the stored value into value. A miss returns an error wrapping Nil.
func (cache *redisCache) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := cache.start(ctx, "Get", key)
	defer scope.End()
	defer scope.TraceIfError(&err)

	raw, err := cache.client.Get(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to get cache value: %w", err)
	}

	if err = decode(raw, value); err != nil {
		log.Error().Err(err).Str("key", key).Msg("corrupt cache entry")

		return err
	}

	return nil
}

func (cache *redisCache) Ping(ctx context.Context) (err error) {
	ctx, scope := cache.start(ctx, "Ping", "")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = cache.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping cache: %w", err)
	}

	return nil
}

func (cache *redisCache) Save(ctx context.Context, key string, value any, duration int) (err error) {
	ctx, scope := cache.start(ctx, "Save", key)
	defer scope.End()
	defer scope.TraceIfError(&err)

	payload, err := encode(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to encode cache value")

		return err
	}

	if err = cache.client.Set(ctx, key, payload, seconds(duration)).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to set cache")

		return fmt.Errorf("failed to set cache value: %w", err)
	}

	log.Debug().Str("key", key).Msg("cache saved")

	return nil
}

// SaveNX stores value only when key is absent and reports whether it did.
func (cache *redisCache) SaveNX(ctx context.Context, key string, value any, duration int) (saved bool, err error) {
	ctx, scope := cache.start(ctx, "SaveNX", key)
	defer scope.End()
	defer scope.TraceIfError(&err)

	payload, err := encode(value)
	if err != nil {
		return false, err
	}

	saved, err = cache.client.SetNX(ctx, key, payload, seconds(duration)).Result()
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to set cache")

		return false, fmt.Errorf("failed to set cache value: %w", err)
	}

	return saved, nil
}

// Increment bumps a counter that expires window seconds after its first hit.
// It returns the new count and the time left in the window.
func (cache *redisCache) Increment(ctx context.Context, key string, window int) (count int64, ttl time.Duration, err error) {
	ctx, scope := cache.start(ctx, "Increment", key)
	defer scope.End()
	defer scope.TraceIfError(&err)

	pipe := cache.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, seconds(window))
	pttl := pipe.PTTL(ctx, key)

	if _, err = pipe.Exec(ctx); err != nil {
		return 0, 0, fmt.Errorf("failed to increment counter: %w", err)
	}

	return incr.Val(), pttl.Val(), nil
}
