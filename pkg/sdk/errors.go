package shopsearch

import (
	"errors"

	"github.com/kailas-cloud/shopsearch/internal/domain"
)

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrProductNotFound    = domain.ErrProductNotFound
	ErrInvalidQuery       = domain.ErrInvalidQuery
	ErrInvalidProduct     = domain.ErrInvalidProduct
	ErrCatalogUnavailable = domain.ErrCatalogUnavailable
)

// ErrImportUnsupported is returned by Import when the catalog is a read-only file.
var ErrImportUnsupported = errors.New("shopsearch: import requires a Redis or Valkey catalog")
