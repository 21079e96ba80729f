package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/SpinCityEvents/gig-manager/internal/config"
)

const revokedPrefix = "revoked_token:"

// Cache wraps Redis for the two cross-request concerns that need it:
// the revoked-JWT set consulted on every authenticated request, and the
// dashboard stats snapshot.
type Cache struct {
	rdb *redis.Client
}

func New(cfg *config.Config) *Cache {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	return &Cache{rdb: redis.NewClient(opts)}
}

// RevokeToken blacklists a JWT until its natural expiry.
func (c *Cache) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.rdb.Set(ctx, revokedPrefix+tokenID, 1, ttl).Err()
}

// IsTokenRevoked fails open: if Redis is unreachable the token is treated
// as valid rather than locking everyone out.
func (c *Cache) IsTokenRevoked(ctx context.Context, tokenID string) bool {
	n, err := c.rdb.Exists(ctx, revokedPrefix+tokenID).Result()
	if err != nil {
		return false
	}
	return n > 0
}

func (c *Cache) GetJSON(ctx context.Context, key string) ([]byte, bool) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *Cache) SetJSON(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Println("cache set error:", err)
	}
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Println("cache invalidate error:", err)
	}
}
