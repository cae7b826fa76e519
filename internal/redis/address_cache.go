package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Aftab0008/car-end/pkg/e"
)

// AddressCache stores resolved display addresses keyed by coordinates so
// repeated reports from the same spot skip the provider round trip.
type AddressCache struct {
	client *goredis.Client
	prefix string
}

func NewAddressCache(r *Redis) *AddressCache {
	return &AddressCache{
		client: r.Client,
		prefix: "geocode:",
	}
}

func (c *AddressCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", e.ErrCacheMiss
		}
		return "", err
	}
	return val, nil
}

func (c *AddressCache) Set(ctx context.Context, key, address string, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, address, ttl).Err()
}
