package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/burgerclub/gin-burger-api/internal/models"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const menuKey = "menu:burgers"

// MenuCache is an optional Redis read-through cache for the public menu
// listing. A nil *MenuCache is valid and disables caching, so callers never
// branch on configuration.
type MenuCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMenuCache connects to Redis at addr. Returns nil (caching disabled)
// when addr is empty or the server is unreachable.
func NewMenuCache(addr, password string, ttl time.Duration) *MenuCache {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Warn("Redis unreachable, menu cache disabled")
		return nil
	}
	log.WithField("addr", addr).Info("Menu cache enabled")
	return &MenuCache{client: client, ttl: ttl}
}

// GetMenu returns the cached menu listing, or ok=false on miss
func (c *MenuCache) GetMenu(ctx context.Context) ([]models.Burger, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, menuKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.WithError(err).Warn("Menu cache read failed")
		}
		return nil, false
	}
	var burgers []models.Burger
	if err := json.Unmarshal(raw, &burgers); err != nil {
		log.WithError(err).Warn("Menu cache payload malformed, ignoring")
		return nil, false
	}
	return burgers, true
}

// SetMenu stores the menu listing for the configured TTL
func (c *MenuCache) SetMenu(ctx context.Context, burgers []models.Burger) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(burgers)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, menuKey, raw, c.ttl).Err(); err != nil {
		log.WithError(err).Warn("Menu cache write failed")
	}
}

// Invalidate drops the cached listing after a catalog mutation
func (c *MenuCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, menuKey).Err(); err != nil {
		log.WithError(err).Warn("Menu cache invalidation failed")
	}
}
