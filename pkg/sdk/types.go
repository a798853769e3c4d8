package shopsearch

import (
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/shopsearch/internal/domain/product"
	"github.com/kailas-cloud/shopsearch/internal/domain/search/result"
)

// coreFields are the product attributes the engine reads; the rest go to Attributes.
var coreFields = []string{"id", "title", "description", "category", "price", "rating"}

// Product is a catalog entry.
type Product struct {
	ID          string
	Title       string
	Description string
	Category    string
	Price       float64
	Rating      float64
	// Attributes holds every other JSON attribute (images, review counts, ...) untouched.
	Attributes map[string]json.RawMessage
}

// Hit is one ranked search result.
type Hit struct {
	Product      Product
	Score        int
	MatchedTerms []string
}

// SearchResponse is the answer to one query.
type SearchResponse struct {
	Query string
	// Hits holds at most eight results, best first.
	Hits []Hit
	// Total counts every matching product before truncation.
	Total int
}

func productFromDomain(p *product.Product) (Product, error) {
	fields, err := p.Fields()
	if err != nil {
		return Product{}, fmt.Errorf("product %s: %w", p.ID(), err)
	}
	for _, name := range coreFields {
		delete(fields, name)
	}
	if len(fields) == 0 {
		fields = nil
	}
	return Product{
		ID:          p.ID(),
		Title:       p.Title(),
		Description: p.Description(),
		Category:    p.Category(),
		Price:       p.Price(),
		Rating:      p.Rating(),
		Attributes:  fields,
	}, nil
}

// productToDomain round-trips through JSON so pass-through attributes survive.
func productToDomain(p *Product) (product.Product, error) {
	doc := make(map[string]any, len(p.Attributes)+len(coreFields))
	for k, v := range p.Attributes {
		doc[k] = v
	}
	doc["id"] = p.ID
	doc["title"] = p.Title
	doc["description"] = p.Description
	doc["category"] = p.Category
	doc["price"] = p.Price
	doc["rating"] = p.Rating

	data, err := json.Marshal(doc)
	if err != nil {
		return product.Product{}, fmt.Errorf("encode product %s: %w", p.ID, err)
	}
	var out product.Product
	if err := json.Unmarshal(data, &out); err != nil {
		return product.Product{}, fmt.Errorf("decode product %s: %w", p.ID, err)
	}
	return out, nil
}

func hitFromDomain(r *result.Result) (Hit, error) {
	p := r.Product()
	prod, err := productFromDomain(&p)
	if err != nil {
		return Hit{}, err
	}
	terms := make([]string, len(r.MatchedTerms()))
	copy(terms, r.MatchedTerms())
	return Hit{Product: prod, Score: r.Score(), MatchedTerms: terms}, nil
}
