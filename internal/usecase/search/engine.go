package search

import (
	"github.com/kailas-cloud/shopsearch/internal/domain/product"
	"github.com/kailas-cloud/shopsearch/internal/domain/search/result"
)

// Outcome is the ranked answer to one query.
type Outcome struct {
	// Results holds at most TopK hits, best first.
	Results []result.Result
	// TotalResults counts every product that scored above zero, before truncation.
	TotalResults int
}

// Engine is the rule-based relevance engine: interpret, filter, score, rank.
// It holds no state and is safe for concurrent use; the catalog is never mutated.
type Engine struct{}

// NewEngine creates a search engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Search runs the full pipeline over catalog in a single linear pass.
func (e *Engine) Search(query string, catalog []product.Product) Outcome {
	c := Interpret(query)

	candidates := Filter(catalog, c)
	scored := make([]result.Result, 0, len(candidates))
	for _, p := range candidates {
		score, matched := Score(p, c)
		if score <= 0 {
			continue
		}
		scored = append(scored, result.New(p, score, matched))
	}

	return Outcome{
		Results:      Rank(scored),
		TotalResults: len(scored),
	}
}
