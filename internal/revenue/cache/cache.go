package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/stayops/revenued/internal/config"
	revenuedomain "github.com/stayops/revenued/internal/revenue/domain"
	"github.com/stayops/revenued/internal/telemetry"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Store is a best-effort byte cache. Both methods may fail without
// affecting request outcomes.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Key derives the shared cache key for a summary request. The format is a
// cross-process contract: other services hitting the same cache store must
// produce byte-identical keys.
func Key(tenantID, propertyID string, month, year *int) string {
	scope := "latest"
	if month != nil && year != nil {
		scope = fmt.Sprintf("%d-%d", *year, *month)
	}
	return fmt.Sprintf("revenue:%s:%s:%s", tenantID, propertyID, scope)
}

type Params struct {
	fx.In

	Cfg     config.Config
	Store   Store
	Service revenuedomain.Service
	Log     *zap.Logger
	Metrics *telemetry.Metrics `optional:"true"`
}

type Cache struct {
	store   Store
	service revenuedomain.Service
	ttl     time.Duration
	log     *zap.Logger
	metrics *telemetry.Metrics
}

func New(p Params) revenuedomain.Cache {
	ttl := p.Cfg.RevenueCacheTTL
	if ttl <= 0 {
		ttl = 300 * time.Second
	}
	return &Cache{
		store:   p.Store,
		service: p.Service,
		ttl:     ttl,
		log:     p.Log.Named("revenue.cache"),
		metrics: p.Metrics,
	}
}

// GetOrCompute serves a cached summary when one is fresh, otherwise
// computes, stores, and returns. Cache failures on either side fall
// through to computation; a broken cache never breaks a request.
func (c *Cache) GetOrCompute(ctx context.Context, q revenuedomain.Query) revenuedomain.Summary {
	key := Key(q.TenantID, q.PropertyID, q.Month, q.Year)

	raw, ok, err := c.store.Get(ctx, key)
	switch {
	case err != nil:
		c.metrics.CacheLookup("error")
		c.log.Warn("revenue cache read failed", zap.String("key", key), zap.Error(err))
	case ok:
		var cached revenuedomain.Summary
		if err := json.Unmarshal(raw, &cached); err == nil {
			c.metrics.CacheLookup("hit")
			return cached
		}
		c.log.Warn("discarding undecodable revenue cache entry", zap.String("key", key))
	}

	c.metrics.CacheLookup("miss")
	summary := c.service.Compute(ctx, q)

	if raw, err := json.Marshal(summary); err == nil {
		if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
			c.log.Warn("revenue cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return summary
}
