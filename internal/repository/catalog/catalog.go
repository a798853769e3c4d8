// Package catalog holds helpers shared by every catalog source.
package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/shopsearch/internal/domain"
	"github.com/kailas-cloud/shopsearch/internal/domain/product"
)

// Decode parses a JSON array of products and checks every entry.
// Catalog order is the array order; ids must be unique.
func Decode(data []byte) ([]product.Product, error) {
	var products []product.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := Check(products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []product.Product{}
	}
	return products, nil
}

// Check validates products and rejects duplicate ids.
func Check(products []product.Product) error {
	seen := make(map[string]struct{}, len(products))
	for i := range products {
		if err := products[i].Validate(); err != nil {
			return domain.NewProductError(i, err.Error())
		}
		id := products[i].ID()
		if _, dup := seen[id]; dup {
			return domain.NewProductError(i, fmt.Sprintf("duplicate id %q", id))
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Find returns the product with the given id.
func Find(products []product.Product, id string) (product.Product, error) {
	for i := range products {
		if products[i].ID() == id {
			return products[i], nil
		}
	}
	return product.Product{}, fmt.Errorf("product %q: %w", id, domain.ErrProductNotFound)
}
