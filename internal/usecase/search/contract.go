package search

import (
	"context"

	"github.com/kailas-cloud/shopsearch/internal/domain/product"
)

// CatalogReader supplies the product catalog searched on every request.
type CatalogReader interface {
	List(ctx context.Context) ([]product.Product, error)
}
