package translate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"fjacquet/voice-ledger/internal/config"
	"fjacquet/voice-ledger/internal/logging"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "voice-ledger:translate:"

// ErrCacheMiss is returned by Cache.Get when no entry exists.
var ErrCacheMiss = errors.New("cache miss")

// Cache stores translated text by key.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// RedisCache is a Cache backed by a Redis server.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to the server named in cfg. A failed ping is
// logged and the cache is still returned; lookups then fail and fall
// through to the provider.
func NewRedisCache(ctx context.Context, cfg config.CacheConfig, logger logging.Logger) *RedisCache {
	if logger == nil {
		logger = logging.Discard()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.WithError(err).Warn("Translation cache unreachable",
			logging.Field{Key: "address", Value: cfg.Address})
	} else {
		logger.Debug("Connected to translation cache",
			logging.Field{Key: "address", Value: cfg.Address})
	}

	return &RedisCache{client: client}
}

// Get implements Cache.
func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return val, err
}

// Set implements Cache.
func (r *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Close closes the Redis connection pool.
func (r *RedisCache) Close() error {
	return r.client.Close()
}

// CachedTranslator serves repeated translations from a Cache. Cache errors
// never fail a translation.
type CachedTranslator struct {
	next   Translator
	cache  Cache
	ttl    time.Duration
	logger logging.Logger
}

// NewCachedTranslator wraps next with cache. A ttl of 0 stores entries
// without expiry.
func NewCachedTranslator(next Translator, cache Cache, ttl time.Duration, logger logging.Logger) *CachedTranslator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &CachedTranslator{next: next, cache: cache, ttl: ttl, logger: logger}
}

// Translate implements Translator.
func (c *CachedTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	key := cacheKey(text, source, target)

	cached, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		c.logger.Debug("Translation cache hit")
		return cached, nil
	case !errors.Is(err, ErrCacheMiss):
		c.logger.WithError(err).Warn("Translation cache lookup failed")
	}

	translated, err := c.next.Translate(ctx, text, source, target)
	if err != nil {
		return "", err
	}
	if translated == "" {
		return translated, nil
	}

	if err := c.cache.Set(ctx, key, translated, c.ttl); err != nil {
		c.logger.WithError(err).Warn("Translation cache store failed")
	}
	return translated, nil
}

func cacheKey(text, source, target string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s", source, target, text)))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
