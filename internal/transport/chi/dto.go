package chi

import (
	"github.com/kailas-cloud/shopsearch/internal/domain/product"
	"github.com/kailas-cloud/shopsearch/internal/domain/search/result"
)

// ErrorCode is the machine-readable error kind returned to clients.
type ErrorCode string

// Error codes.
const (
	CodeBadRequest       ErrorCode = "bad_request"
	CodeValidationFailed ErrorCode = "validation_failed"
	CodeUnauthorized     ErrorCode = "unauthorized"
	CodeNotFound         ErrorCode = "not_found"
	CodeProductNotFound  ErrorCode = "product_not_found"
	CodeMethodNotAllowed ErrorCode = "method_not_allowed"
	CodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// SearchRequest is the body of POST /api/v1/ai-search.
type SearchRequest struct {
	Query string `json:"query"`
}

// SearchResponse carries ranked hits plus the pre-truncation match count.
type SearchResponse struct {
	Success      bool            `json:"success"`
	Query        string          `json:"query"`
	Results      []result.Result `json:"results"`
	TotalResults int             `json:"totalResults"`
}

// ProductListResponse is the body of GET /api/v1/local-products.
type ProductListResponse struct {
	Success  bool              `json:"success"`
	Products []product.Product `json:"products"`
}

// ProductResponse is the body of GET /api/v1/products/{id}.
type ProductResponse struct {
	Success bool            `json:"success"`
	Product product.Product `json:"product"`
}

// HealthResponse reports the aggregated and per-component health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
