package shopsearch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/shopsearch/internal/db"
	dbRedis "github.com/kailas-cloud/shopsearch/internal/db/redis"
	"github.com/kailas-cloud/shopsearch/internal/domain/product"
	"github.com/kailas-cloud/shopsearch/internal/domain/search/request"
	"github.com/kailas-cloud/shopsearch/internal/repository/catalogcache"
	"github.com/kailas-cloud/shopsearch/internal/repository/catalogfile"
	"github.com/kailas-cloud/shopsearch/internal/repository/catalogkv"
	cataloguc "github.com/kailas-cloud/shopsearch/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/shopsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/shopsearch/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces, swapped for mocks in tests.
type searchUseCase interface {
	Search(ctx context.Context, req *request.Request) (searchuc.Outcome, error)
}

type catalogUseCase interface {
	List(ctx context.Context, category string) ([]product.Product, error)
	Get(ctx context.Context, id string) (product.Product, error)
}

type catalogSource interface {
	List(ctx context.Context) ([]product.Product, error)
	Get(ctx context.Context, id string) (product.Product, error)
	Ping(ctx context.Context) error
}

type catalogImporter interface {
	Replace(ctx context.Context, products []product.Product) error
}

// Client is the shopsearch SDK entry point.
type Client struct {
	store      db.Store // nil for file catalogs
	importer   catalogImporter
	cache      *catalogcache.Catalog
	searchSvc  searchUseCase
	catalogSvc catalogUseCase
	healthSvc  healthUseCase
	obs        *observer
}

// New creates a Client. Exactly one of WithCatalogFile, WithRedis or WithValkey is required.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{readinessTimeout: defaultReadinessTimeout}
	for _, o := range opts {
		o.apply(cfg)
	}

	switch {
	case cfg.catalogFile == "" && len(cfg.addrs) == 0:
		return nil, errors.New("shopsearch: catalog source required (use WithCatalogFile, WithRedis or WithValkey)")
	case cfg.catalogFile != "" && len(cfg.addrs) > 0:
		return nil, errors.New("shopsearch: choose either a catalog file or a database, not both")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	if cfg.catalogFile != "" {
		return wireClient(nil, catalogfile.New(cfg.catalogFile, zap.NewNop()), nil, cfg, obs), nil
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}
	if err := store.WaitForReady(ctx, cfg.readinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("shopsearch: database not ready: %w", err)
	}

	repo := catalogkv.New(store, cfg.keyPrefix)
	return wireClient(store, repo, repo, cfg, obs), nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "valkey", "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("shopsearch: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("shopsearch: unknown driver %q", cfg.driver)
	}
}

func wireClient(
	store db.Store,
	source catalogSource,
	importer catalogImporter,
	cfg *clientConfig,
	obs *observer,
) *Client {
	var cache *catalogcache.Catalog
	if cfg.cacheTTL > 0 {
		cache = catalogcache.New(source, cfg.cacheTTL, nil, nil, zap.NewNop())
		source = cache
	}

	return &Client{
		store:      store,
		importer:   importer,
		cache:      cache,
		searchSvc:  searchuc.New(source, searchuc.NewEngine()),
		catalogSvc: cataloguc.New(source),
		healthSvc:  healthuc.New(source),
		obs:        obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks that the catalog source is reachable.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if h := c.Health(ctx); h.Status != string(healthuc.Healthy) {
		return fmt.Errorf("ping: %w", ErrCatalogUnavailable)
	}
	return nil
}

// Search runs a smart search over the current catalog.
func (c *Client) Search(ctx context.Context, query string) (resp SearchResponse, err error) {
	start := time.Now()
	defer func() { c.obs.observe("search", start, err) }()

	req, err := request.New(query)
	if err != nil {
		return SearchResponse{}, fmt.Errorf("search: %w", err)
	}

	out, err := c.searchSvc.Search(ctx, &req)
	if err != nil {
		return SearchResponse{}, fmt.Errorf("search: %w", err)
	}

	hits := make([]Hit, len(out.Results))
	for i := range out.Results {
		if hits[i], err = hitFromDomain(&out.Results[i]); err != nil {
			return SearchResponse{}, fmt.Errorf("search: %w", err)
		}
	}
	c.obs.recordHits(out.TotalResults)

	return SearchResponse{Query: query, Hits: hits, Total: out.TotalResults}, nil
}

// Products lists the catalog. A non-empty category keeps exact matches only.
func (c *Client) Products(ctx context.Context, category string) (_ []Product, err error) {
	start := time.Now()
	defer func() { c.obs.observe("products", start, err) }()

	products, err := c.catalogSvc.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	out := make([]Product, len(products))
	for i := range products {
		if out[i], err = productFromDomain(&products[i]); err != nil {
			return nil, fmt.Errorf("list products: %w", err)
		}
	}
	return out, nil
}

// Product returns one product by id.
func (c *Client) Product(ctx context.Context, id string) (_ Product, err error) {
	start := time.Now()
	defer func() { c.obs.observe("product", start, err) }()

	p, err := c.catalogSvc.Get(ctx, id)
	if err != nil {
		return Product{}, fmt.Errorf("get product: %w", err)
	}
	return productFromDomain(&p)
}

// Import replaces the stored catalog, keeping the given order.
// Only Redis/Valkey catalogs accept imports.
func (c *Client) Import(ctx context.Context, products []Product) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("import", start, err) }()

	if c.importer == nil {
		return ErrImportUnsupported
	}

	domProducts := make([]product.Product, len(products))
	for i := range products {
		if domProducts[i], err = productToDomain(&products[i]); err != nil {
			return fmt.Errorf("import: %w", err)
		}
	}

	if err = c.importer.Replace(ctx, domProducts); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if c.cache != nil {
		c.cache.Invalidate()
	}
	return nil
}
