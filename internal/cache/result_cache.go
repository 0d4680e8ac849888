// Package cache provides a two-tier cache for analysis results: an in-memory
// LRU for hot queries and an optional Redis tier shared across instances.
// Caching is sound because an analysis is a pure function of the query and the
// catalog snapshot it ran against.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/symptom-triage-server/internal/domain"
)

// Stats tracks cache performance counters.
type Stats struct {
	MemoryHits   int64 `json:"memory_hits"`
	MemoryMisses int64 `json:"memory_misses"`
	RedisHits    int64 `json:"redis_hits"`
	RedisMisses  int64 `json:"redis_misses"`
	Errors       int64 `json:"errors"`
}

// ResultCache caches AnalysisResults keyed by a deterministic hash of the
// query and the catalog generation it was computed against. The Redis tier is
// optional; all Redis failures degrade silently to a miss.
type ResultCache struct {
	logger *logrus.Logger

	memory *lru.Cache[string, *domain.AnalysisResult]
	redis  *redis.Client
	ttl    time.Duration

	stats   Stats
	statsMu sync.Mutex
}

// New creates a result cache. memorySize must be positive; redisClient may be
// nil to run memory-only.
func New(memorySize int, redisClient *redis.Client, ttl time.Duration, logger *logrus.Logger) (*ResultCache, error) {
	if memorySize <= 0 {
		memorySize = 512
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	memory, err := lru.New[string, *domain.AnalysisResult](memorySize)
	if err != nil {
		return nil, err
	}

	return &ResultCache{
		logger: logger,
		memory: memory,
		redis:  redisClient,
		ttl:    ttl,
	}, nil
}

// Key derives the deterministic cache key for a query against a catalog
// generation. Queries are canonicalized by JSON encoding, so field order is
// stable.
func Key(query *domain.Query, catalogGen string) string {
	payload, _ := json.Marshal(query)
	hash := sha256.Sum256(append([]byte(catalogGen+"::"), payload...))
	return "triage:analysis:" + hex.EncodeToString(hash[:])
}

// Get returns a cached result, checking memory first and Redis second.
func (c *ResultCache) Get(ctx context.Context, key string) (*domain.AnalysisResult, bool) {
	if result, ok := c.memory.Get(key); ok {
		c.bump(func(s *Stats) { s.MemoryHits++ })
		return result, true
	}
	c.bump(func(s *Stats) { s.MemoryMisses++ })

	if c.redis == nil {
		return nil, false
	}

	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.bump(func(s *Stats) { s.Errors++ })
			c.logger.WithError(err).Warn("Redis cache read failed, treating as miss")
		} else {
			c.bump(func(s *Stats) { s.RedisMisses++ })
		}
		return nil, false
	}

	var result domain.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		c.bump(func(s *Stats) { s.Errors++ })
		c.logger.WithError(err).Warn("Discarding undecodable cached analysis result")
		return nil, false
	}

	c.bump(func(s *Stats) { s.RedisHits++ })
	c.memory.Add(key, &result)
	return &result, true
}

// Set stores a result in both tiers. Redis write failures are logged and
// ignored; the memory tier always succeeds.
func (c *ResultCache) Set(ctx context.Context, key string, result *domain.AnalysisResult) {
	c.memory.Add(key, result)

	if c.redis == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		c.bump(func(s *Stats) { s.Errors++ })
		return
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.bump(func(s *Stats) { s.Errors++ })
		c.logger.WithError(err).Warn("Redis cache write failed")
	}
}

// Purge drops the in-memory tier, used after a catalog snapshot swap. Redis
// entries age out via TTL since their keys embed the catalog generation.
func (c *ResultCache) Purge() {
	c.memory.Purge()
}

// Snapshot returns a copy of the current counters.
func (c *ResultCache) Snapshot() Stats {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	return c.stats
}

func (c *ResultCache) bump(update func(*Stats)) {
	c.statsMu.Lock()
	update(&c.stats)
	c.statsMu.Unlock()
}
