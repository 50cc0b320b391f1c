package db

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"lostfound/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const itemCacheKey = "laf:items"

// ItemCache holds the full item list as one JSON blob in Redis. Every write
// path invalidates it; the next list read repopulates it. Cache trouble is
// never an error to callers, only a miss.
type ItemCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewItemCache(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *ItemCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &ItemCache{rdb: rdb, ttl: ttl, log: log}
}

func (c *ItemCache) Get(ctx context.Context) ([]models.Item, bool) {
	b, err := c.rdb.Get(ctx, itemCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Debug("item cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var items []models.Item
	if err := json.Unmarshal(b, &items); err != nil {
		c.log.Warn("item cache payload corrupt, dropping", zap.Error(err))
		c.Invalidate(ctx)
		return nil, false
	}
	return items, true
}

func (c *ItemCache) Set(ctx context.Context, items []models.Item) {
	b, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, itemCacheKey, b, c.ttl).Err(); err != nil {
		c.log.Debug("item cache write failed", zap.Error(err))
	}
}

func (c *ItemCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, itemCacheKey).Err(); err != nil {
		c.log.Debug("item cache invalidate failed", zap.Error(err))
	}
}
