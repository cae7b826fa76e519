package geocode

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Aftab0008/car-end/internal/domain"
	"github.com/Aftab0008/car-end/internal/observability"
	"github.com/Aftab0008/car-end/pkg/e"
)

// AddressStore is the cache backing for resolved addresses. A miss is
// signalled with e.ErrCacheMiss.
type AddressStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, address string, ttl time.Duration) error
}

// CachedResolver decorates a Resolver with a shared cache. Cache trouble is
// logged and bypassed; like the inner resolver, it never fails.
type CachedResolver struct {
	inner   Resolver
	store   AddressStore
	ttl     time.Duration
	logger  *slog.Logger
	metrics *observability.Metrics
}

func NewCachedResolver(inner Resolver, store AddressStore, ttl time.Duration, logger *slog.Logger, metrics *observability.Metrics) *CachedResolver {
	return &CachedResolver{
		inner:   inner,
		store:   store,
		ttl:     ttl,
		logger:  logger,
		metrics: metrics,
	}
}

func (c *CachedResolver) Resolve(ctx context.Context, lat, lng float64) domain.AddressResolution {
	key := FormatCoords(lat, lng)

	address, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		c.metrics.GeocodeCache.WithLabelValues("hit").Inc()
		return domain.ResolvedAddress(address)
	case errors.Is(err, e.ErrCacheMiss):
		c.metrics.GeocodeCache.WithLabelValues("miss").Inc()
	default:
		c.metrics.GeocodeCache.WithLabelValues("error").Inc()
		c.logger.Warn("geocode cache get failed", slog.String("key", key), slog.Any("error", err))
	}

	res := c.inner.Resolve(ctx, lat, lng)

	// Only resolved values are cached so a degraded lookup can be retried.
	if !res.Degraded {
		if err := c.store.Set(ctx, key, res.Address, c.ttl); err != nil {
			c.logger.Warn("geocode cache set failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	return res
}
