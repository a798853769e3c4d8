package catalogcache

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/shopsearch/internal/domain/product"
	"github.com/kailas-cloud/shopsearch/internal/repository/catalog"
)

const snapshotKey = "catalog"

// source is the consumer interface for the wrapped catalog (ISP).
type source interface {
	List(ctx context.Context) ([]product.Product, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Catalog caches the full catalog snapshot in memory for a fixed TTL.
// Callers share the cached slice and must not modify it.
type Catalog struct {
	inner      source
	cache      *gocache.Cache
	cacheTotal *prometheus.CounterVec
	size       prometheus.Gauge
	logger     *zap.Logger
}

// New creates a caching decorator around inner.
// cacheTotal has label "result" ("hit"/"miss"); size tracks the snapshot length. Both may be nil.
func New(
	inner source,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	size prometheus.Gauge,
	logger *zap.Logger,
) *Catalog {
	return &Catalog{
		inner:      inner,
		cache:      gocache.New(ttl, 2*ttl),
		cacheTotal: cacheTotal,
		size:       size,
		logger:     logger,
	}
}

// List returns the cached snapshot or loads a fresh one.
// Load failures are not cached.
func (c *Catalog) List(ctx context.Context) ([]product.Product, error) {
	if v, ok := c.cache.Get(snapshotKey); ok {
		c.incCache("hit")
		return v.([]product.Product), nil
	}
	c.incCache("miss")

	products, err := c.inner.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	c.cache.SetDefault(snapshotKey, products)
	if c.size != nil {
		c.size.Set(float64(len(products)))
	}
	c.logger.Debug("catalog snapshot refreshed", zap.Int("products", len(products)))
	return products, nil
}

// Get looks the product up in the current snapshot.
func (c *Catalog) Get(ctx context.Context, id string) (product.Product, error) {
	products, err := c.List(ctx)
	if err != nil {
		return product.Product{}, err
	}
	return catalog.Find(products, id)
}

// Invalidate drops the snapshot so the next read hits the source.
func (c *Catalog) Invalidate() {
	c.cache.Delete(snapshotKey)
}

// Ping forwards to the wrapped source when it supports health checks.
func (c *Catalog) Ping(ctx context.Context) error {
	if p, ok := c.inner.(pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func (c *Catalog) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}
