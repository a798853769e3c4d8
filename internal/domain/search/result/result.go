package result

import (
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/shopsearch/internal/domain/product"
)

// Result is a single scored search hit.
type Result struct {
	product      product.Product
	score        int
	matchedTerms []string
}

// New creates a search result.
func New(p product.Product, score int, matchedTerms []string) Result {
	return Result{product: p, score: score, matchedTerms: matchedTerms}
}

// Product returns the matched product.
func (r *Result) Product() product.Product { return r.product }

// ID returns the product identifier.
func (r *Result) ID() string { return r.product.ID() }

// Score returns the relevance score.
func (r *Result) Score() int { return r.score }

// MatchedTerms returns the match labels in discovery order.
func (r *Result) MatchedTerms() []string { return r.matchedTerms }

// MarshalJSON renders the product attributes plus searchScore and matchedTerms.
func (r Result) MarshalJSON() ([]byte, error) {
	fields, err := r.product.Fields()
	if err != nil {
		return nil, err
	}

	terms := r.matchedTerms
	if terms == nil {
		terms = []string{}
	}
	score, err := json.Marshal(r.score)
	if err != nil {
		return nil, fmt.Errorf("encode search score: %w", err)
	}
	matched, err := json.Marshal(terms)
	if err != nil {
		return nil, fmt.Errorf("encode matched terms: %w", err)
	}
	fields["searchScore"] = score
	fields["matchedTerms"] = matched

	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode result %s: %w", r.product.ID(), err)
	}
	return data, nil
}
