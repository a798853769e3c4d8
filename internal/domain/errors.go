package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrProductNotFound signals a missing catalog product.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidQuery signals a search query rejected before it reaches the engine.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrInvalidProduct signals a catalog entry that fails integrity checks.
	ErrInvalidProduct = errors.New("invalid product")
	// ErrCatalogUnavailable signals that the catalog source could not be read.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

// ProductError wraps ErrInvalidProduct with the offending product position in its source.
type ProductError struct {
	Index  int
	Reason string
}

func (e *ProductError) Error() string {
	return fmt.Sprintf("%s at index %d: %s", ErrInvalidProduct.Error(), e.Index, e.Reason)
}

func (e *ProductError) Unwrap() error { return ErrInvalidProduct }

// NewProductError creates an invalid product error.
func NewProductError(index int, reason string) error {
	return &ProductError{Index: index, Reason: reason}
}
