package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/shopsearch/internal/domain"
	"github.com/kailas-cloud/shopsearch/internal/domain/product"
)

// Service serves product listing and product details.
type Service struct {
	repo Repository
}

// New creates a catalog service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the catalog in source order.
// A non-empty category keeps only products whose category equals it exactly.
func (s *Service) List(ctx context.Context, category string) ([]product.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list products: %w", domain.ErrCatalogUnavailable, err)
	}
	if category == "" {
		return products, nil
	}

	out := make([]product.Product, 0, len(products))
	for i := range products {
		if products[i].Category() == category {
			out = append(out, products[i])
		}
	}
	return out, nil
}

// Get returns a single product by id.
func (s *Service) Get(ctx context.Context, id string) (product.Product, error) {
	if id == "" {
		return product.Product{}, fmt.Errorf("empty id: %w", domain.ErrProductNotFound)
	}

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return product.Product{}, fmt.Errorf("get product: %w", err)
		}
		return product.Product{}, fmt.Errorf("%w: get product: %w", domain.ErrCatalogUnavailable, err)
	}
	return p, nil
}
