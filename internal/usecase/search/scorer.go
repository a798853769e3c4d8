package search

import (
	"strconv"
	"strings"

	"github.com/kailas-cloud/shopsearch/internal/domain/product"
	"github.com/kailas-cloud/shopsearch/internal/domain/search/constraints"
)

// Signal weights.
const (
	keywordWeight  = 2
	priceWeight    = 3
	ratingWeight   = 2
	categoryWeight = 5
)

// Score computes the additive relevance score of a product that already passed
// Filter, together with the labels explaining each signal in discovery order.
func Score(p product.Product, c constraints.Constraints) (int, []string) {
	var (
		score   int
		matched []string
	)

	text := searchText(&p)
	for _, kw := range c.Keywords() {
		if strings.Contains(text, kw) {
			score += keywordWeight
			matched = append(matched, kw)
		}
	}

	if maxPrice, ok := c.MaxPrice(); ok {
		score += priceWeight
		matched = append(matched, "under $"+formatNumber(maxPrice))
	}

	if _, ok := c.MinRating(); ok {
		score += ratingWeight
		matched = append(matched, "good reviews ("+formatNumber(p.Rating())+"⭐)")
	}

	if category := p.Category(); category != "" && strings.Contains(c.Query(), category) {
		score += categoryWeight
		matched = append(matched, category)
	}

	return score, matched
}

// formatNumber prints the shortest decimal form: 100, 4.5.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
