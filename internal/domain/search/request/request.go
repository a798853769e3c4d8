package request

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/shopsearch/internal/domain"
)

// MaxQueryLength is the maximum allowed search query length in bytes.
const MaxQueryLength = 4096

// Request is a validated smart-search query.
type Request struct {
	query string
}

// New validates a raw query. Blank queries never reach the engine.
// The query is kept verbatim; the engine does its own normalization.
func New(query string) (Request, error) {
	if strings.TrimSpace(query) == "" {
		return Request{}, fmt.Errorf("%w: search query is required", domain.ErrInvalidQuery)
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidQuery, MaxQueryLength)
	}
	return Request{query: query}, nil
}

// Query returns the search query text.
func (r *Request) Query() string { return r.query }
