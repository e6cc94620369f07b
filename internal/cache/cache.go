// Package cache stores encoded projection results keyed by a hash of their
// inputs.
package cache

import (
	"context"
	"log"

	"lifeplan-engine/internal/config"
)

// Cache is a byte-oriented key/value store. Get reports false on a miss and
// on any backend failure.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
}

// New picks the Redis backend when an address is configured, the in-memory
// one otherwise.
func New(cfg config.Config) Cache {
	if cfg.RedisAddr != "" {
		log.Printf("Using Redis projection cache at %s", cfg.RedisAddr)
		return NewRedis(RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
			TTL:      cfg.CacheTTL,
		})
	}
	log.Printf("Using in-memory projection cache (ttl %s)", cfg.CacheTTL)
	return NewMemory(cfg.CacheTTL)
}
