package catalogfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/kailas-cloud/shopsearch/internal/domain/product"
	"github.com/kailas-cloud/shopsearch/internal/repository/catalog"
)

// Repo reads the catalog from a JSON file holding an array of products.
// The file is re-read on every call; wrap it with catalogcache to avoid that.
type Repo struct {
	path   string
	logger *zap.Logger
}

// New creates a file-backed catalog source.
func New(path string, logger *zap.Logger) *Repo {
	return &Repo{path: filepath.Clean(path), logger: logger}
}

// List returns every product in file order.
func (r *Repo) List(ctx context.Context) ([]product.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", r.path, err)
	}

	products, err := catalog.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", r.path, err)
	}

	r.logger.Debug("catalog file loaded",
		zap.String("path", r.path),
		zap.Int("products", len(products)),
	)
	return products, nil
}

// Get returns one product by id.
func (r *Repo) Get(ctx context.Context, id string) (product.Product, error) {
	products, err := r.List(ctx)
	if err != nil {
		return product.Product{}, err
	}
	return catalog.Find(products, id)
}

// Ping reports whether the catalog file is readable.
func (r *Repo) Ping(_ context.Context) error {
	f, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("open catalog %s: %w", r.path, err)
	}
	return f.Close()
}
