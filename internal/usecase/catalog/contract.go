package catalog

import (
	"context"

	"github.com/kailas-cloud/shopsearch/internal/domain/product"
)

// Repository is the catalog source the service reads from.
type Repository interface {
	List(ctx context.Context) ([]product.Product, error)
	Get(ctx context.Context, id string) (product.Product, error)
}
