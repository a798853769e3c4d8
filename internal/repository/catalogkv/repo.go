package catalogkv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kailas-cloud/shopsearch/internal/db"
	"github.com/kailas-cloud/shopsearch/internal/domain"
	"github.com/kailas-cloud/shopsearch/internal/domain/product"
	"github.com/kailas-cloud/shopsearch/internal/repository/catalog"
)

// store is the consumer interface for the key-value catalog (ISP).
type store interface {
	Ping(ctx context.Context) error
	Get(ctx context.Context, key string) ([]byte, error)
	MGet(ctx context.Context, keys []string) ([][]byte, error)
	SetMulti(ctx context.Context, items []db.KVItem) error
	Del(ctx context.Context, keys ...string) error
	RPush(ctx context.Context, key string, values ...string) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
}

// Repo keeps products as JSON strings under <prefix>product:<id>.
// Catalog order lives in the list <prefix>catalog:order.
type Repo struct {
	store  store
	prefix string
}

// New creates a key-value catalog repository. Empty prefix falls back to domain.KeyPrefix.
func New(s store, prefix string) *Repo {
	if prefix == "" {
		prefix = domain.KeyPrefix
	}
	return &Repo{store: s, prefix: prefix}
}

// List returns products in import order. Ids whose value has gone missing are skipped.
func (r *Repo) List(ctx context.Context) ([]product.Product, error) {
	ids, err := r.store.LRange(ctx, r.orderKey(), 0, -1)
	if err != nil {
		return nil, fmt.Errorf("lrange %s: %w", r.orderKey(), err)
	}
	if len(ids) == 0 {
		return []product.Product{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.productKey(id)
	}

	values, err := r.store.MGet(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("mget products: %w", err)
	}

	products := make([]product.Product, 0, len(values))
	for i, raw := range values {
		if raw == nil {
			continue
		}
		var p product.Product
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		products = append(products, p)
	}
	return products, nil
}

// Get returns one product by id.
func (r *Repo) Get(ctx context.Context, id string) (product.Product, error) {
	key := r.productKey(id)
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return product.Product{}, fmt.Errorf("product %q: %w", id, domain.ErrProductNotFound)
		}
		return product.Product{}, fmt.Errorf("get %s: %w", key, err)
	}

	var p product.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		return product.Product{}, fmt.Errorf("decode %s: %w", key, err)
	}
	return p, nil
}

// Replace swaps the stored catalog for products, keeping their order.
// Products from the previous import that are absent now are removed.
func (r *Repo) Replace(ctx context.Context, products []product.Product) error {
	if err := catalog.Check(products); err != nil {
		return err
	}

	previous, err := r.store.LRange(ctx, r.orderKey(), 0, -1)
	if err != nil {
		return fmt.Errorf("lrange %s: %w", r.orderKey(), err)
	}

	stale := make([]string, 0, len(previous)+1)
	stale = append(stale, r.orderKey())
	for _, id := range previous {
		stale = append(stale, r.productKey(id))
	}
	if err := r.store.Del(ctx, stale...); err != nil {
		return fmt.Errorf("clear catalog: %w", err)
	}

	if len(products) == 0 {
		return nil
	}

	items := make([]db.KVItem, len(products))
	ids := make([]string, len(products))
	for i := range products {
		data, err := json.Marshal(products[i])
		if err != nil {
			return fmt.Errorf("marshal product %s: %w", products[i].ID(), err)
		}
		ids[i] = products[i].ID()
		items[i] = db.KVItem{Key: r.productKey(ids[i]), Value: data}
	}

	if err := r.store.SetMulti(ctx, items); err != nil {
		return fmt.Errorf("store products: %w", err)
	}
	if err := r.store.RPush(ctx, r.orderKey(), ids...); err != nil {
		return fmt.Errorf("rpush %s: %w", r.orderKey(), err)
	}
	return nil
}

// Ping checks the underlying store.
func (r *Repo) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

func (r *Repo) productKey(id string) string {
	return r.prefix + "product:" + id
}

func (r *Repo) orderKey() string {
	return r.prefix + "catalog:order"
}
