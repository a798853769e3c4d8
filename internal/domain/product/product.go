package product

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Rating bounds accepted for a catalog product.
const (
	MinRating = 0
	MaxRating = 5
)

// JSON attributes the service reads. Everything else passes through untouched.
const (
	fieldID          = "id"
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldCategory    = "category"
	fieldPrice       = "price"
	fieldRating      = "rating"
)

// Product is a read-only catalog entry.
// Display attributes (images, review counts, ...) are kept as raw JSON and never inspected.
type Product struct {
	id          string
	rawID       json.RawMessage
	title       string
	description string
	category    string
	price       float64
	rating      float64
	extra       map[string]json.RawMessage
}

// New creates a product without pass-through attributes.
func New(id, title, description, category string, price, rating float64) Product {
	return Product{
		id:          id,
		title:       title,
		description: description,
		category:    category,
		price:       price,
		rating:      rating,
	}
}

// ID returns the product identifier.
func (p *Product) ID() string { return p.id }

// Title returns the product title.
func (p *Product) Title() string { return p.title }

// Description returns the product description.
func (p *Product) Description() string { return p.description }

// Category returns the category exactly as stored.
func (p *Product) Category() string { return p.category }

// Price returns the product price.
func (p *Product) Price() float64 { return p.price }

// Rating returns the average rating in [0, 5].
func (p *Product) Rating() float64 { return p.rating }

// Extra returns the raw value of a pass-through attribute.
func (p *Product) Extra(name string) (json.RawMessage, bool) {
	v, ok := p.extra[name]
	return v, ok
}

// Validate checks the numeric and identity invariants the search engine relies on.
func (p *Product) Validate() error {
	if p.id == "" {
		return fmt.Errorf("id is required")
	}
	if math.IsNaN(p.price) || p.price < 0 {
		return fmt.Errorf("product %s: price must be non-negative", p.id)
	}
	if math.IsNaN(p.rating) || p.rating < MinRating || p.rating > MaxRating {
		return fmt.Errorf("product %s: rating must be between %d and %d", p.id, MinRating, MaxRating)
	}
	return nil
}

// Fields returns the product as a JSON object keyed by attribute name.
// The original id token and all pass-through attributes are preserved.
func (p *Product) Fields() (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage, len(p.extra)+6)
	for k, v := range p.extra {
		out[k] = v
	}

	if len(p.rawID) > 0 {
		out[fieldID] = p.rawID
	} else if err := setField(out, fieldID, p.id); err != nil {
		return nil, err
	}
	for _, f := range []struct {
		name  string
		value any
	}{
		{fieldTitle, p.title},
		{fieldDescription, p.description},
		{fieldCategory, p.category},
		{fieldPrice, p.price},
		{fieldRating, p.rating},
	} {
		if err := setField(out, f.name, f.value); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// MarshalJSON implements json.Marshaler.
func (p Product) MarshalJSON() ([]byte, error) {
	fields, err := p.Fields()
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode product %s: %w", p.id, err)
	}
	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler.
// The id may be a JSON string or number; both decode to the same string form.
func (p *Product) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("decode product: %w", err)
	}

	var out Product
	if raw, ok := fields[fieldID]; ok {
		id, err := decodeID(raw)
		if err != nil {
			return err
		}
		out.id = id
		out.rawID = append(json.RawMessage(nil), bytes.TrimSpace(raw)...)
	}

	targets := []struct {
		name string
		dest any
	}{
		{fieldTitle, &out.title},
		{fieldDescription, &out.description},
		{fieldCategory, &out.category},
		{fieldPrice, &out.price},
		{fieldRating, &out.rating},
	}
	for _, t := range targets {
		raw, ok := fields[t.name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, t.dest); err != nil {
			return fmt.Errorf("decode product %s field %q: %w", out.id, t.name, err)
		}
	}

	for _, name := range []string{fieldID, fieldTitle, fieldDescription, fieldCategory, fieldPrice, fieldRating} {
		delete(fields, name)
	}
	if len(fields) > 0 {
		out.extra = fields
	}

	*p = out
	return nil
}

func decodeID(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}
	return "", fmt.Errorf("decode product: id must be a string or number, got %s", raw)
}

func setField(out map[string]json.RawMessage, name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode product field %q: %w", name, err)
	}
	out[name] = data
	return nil
}
