package search

import (
	"strings"

	"github.com/kailas-cloud/shopsearch/internal/domain/product"
	"github.com/kailas-cloud/shopsearch/internal/domain/search/constraints"
)

// Filter applies the hard constraints and returns the products still eligible
// for scoring, in catalog order. Absent constraints filter nothing.
func Filter(products []product.Product, c constraints.Constraints) []product.Product {
	out := make([]product.Product, 0, len(products))
	for i := range products {
		if admits(&products[i], c) {
			out = append(out, products[i])
		}
	}
	return out
}

// admits evaluates type, then price ceiling, then rating floor.
func admits(p *product.Product, c constraints.Constraints) bool {
	if types := c.RequestedTypes(); len(types) > 0 && !matchesAnyType(p, types) {
		return false
	}
	if maxPrice, ok := c.MaxPrice(); ok && p.Price() > maxPrice {
		return false
	}
	if minRating, ok := c.MinRating(); ok && p.Rating() < minRating {
		return false
	}
	return true
}

func matchesAnyType(p *product.Product, types []string) bool {
	text := searchText(p)
	for _, t := range types {
		if strings.Contains(text, t) || strings.Contains(p.Category(), t) {
			return true
		}
	}
	return false
}

// searchText is the lower-cased title, description and category used for matching.
func searchText(p *product.Product) string {
	return strings.ToLower(p.Title() + " " + p.Description() + " " + p.Category())
}
