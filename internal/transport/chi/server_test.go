package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/shopsearch/internal/domain/product"
	"github.com/kailas-cloud/shopsearch/internal/repository/catalog"
	cataloguc "github.com/kailas-cloud/shopsearch/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/shopsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/shopsearch/internal/usecase/search"
)

const testCatalog = `[
	{"id": 1, "title": "Nike Running Shoes", "description": "Lightweight running shoes", "category": "shoes", "price": 89.99, "rating": 4.5, "imageUrl": "/img/1.png"},
	{"id": 2, "title": "Gaming Laptop", "description": "RTX 4070 laptop", "category": "laptops", "price": 1499, "rating": 4.7},
	{"id": "sku-3", "title": "Budget Sneakers", "description": "Casual running shoes", "category": "shoes", "price": 39, "rating": 3.6}
]`

// --- Mocks ---

type fakeCatalog struct {
	products []product.Product
	err      error
	pingErr  error
}

func (f *fakeCatalog) List(_ context.Context) ([]product.Product, error) {
	return f.products, f.err
}

func (f *fakeCatalog) Get(_ context.Context, id string) (product.Product, error) {
	if f.err != nil {
		return product.Product{}, f.err
	}
	return catalog.Find(f.products, id)
}

func (f *fakeCatalog) Ping(_ context.Context) error { return f.pingErr }

func newFakeCatalog(t *testing.T) *fakeCatalog {
	t.Helper()
	products, err := catalog.Decode([]byte(testCatalog))
	if err != nil {
		t.Fatalf("decode test catalog: %v", err)
	}
	return &fakeCatalog{products: products}
}

func newTestRouter(c *fakeCatalog) http.Handler {
	srv := NewServer(
		searchuc.New(c, searchuc.NewEngine()),
		cataloguc.New(c),
		healthuc.New(c),
		zap.NewNop(),
	)
	r := chi.NewRouter()
	srv.Routes(r)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return resp
}

// --- AI search ---

type searchBody struct {
	Success      bool             `json:"success"`
	Query        string           `json:"query"`
	Results      []map[string]any `json:"results"`
	TotalResults int              `json:"totalResults"`
}

func TestAISearch_Success(t *testing.T) {
	rr := do(t, newTestRouter(newFakeCatalog(t)), http.MethodPost, "/api/v1/ai-search",
		`{"query": "Running shoes under $100"}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rr.Code, rr.Body)
	}
	var body searchBody
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Query != "Running shoes under $100" {
		t.Errorf("unexpected envelope: %+v", body)
	}
	if body.TotalResults != 2 || len(body.Results) != 2 {
		t.Fatalf("expected 2 results, got total=%d len=%d", body.TotalResults, len(body.Results))
	}

	top := body.Results[0]
	if top["id"] != float64(1) {
		t.Errorf("expected product 1 first, got %v", top["id"])
	}
	if top["searchScore"] != float64(12) {
		t.Errorf("expected score 12, got %v", top["searchScore"])
	}
	if top["imageUrl"] != "/img/1.png" {
		t.Errorf("pass-through attribute lost: %v", top["imageUrl"])
	}
	terms, _ := top["matchedTerms"].([]any)
	want := []string{"running", "shoes", "under $100", "shoes"}
	if len(terms) != len(want) {
		t.Fatalf("matchedTerms = %v", terms)
	}
	for i := range want {
		if terms[i] != want[i] {
			t.Errorf("matchedTerms[%d] = %v, want %s", i, terms[i], want[i])
		}
	}
	if body.Results[1]["id"] != "sku-3" {
		t.Errorf("expected sku-3 second, got %v", body.Results[1]["id"])
	}
}

func TestAISearch_NoMatches_EmptyArray(t *testing.T) {
	rr := do(t, newTestRouter(newFakeCatalog(t)), http.MethodPost, "/api/v1/ai-search", `{"query": "xyz"}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"results":[]`) {
		t.Errorf("expected empty results array, got %s", rr.Body)
	}
	if !strings.Contains(rr.Body.String(), `"totalResults":0`) {
		t.Errorf("expected totalResults 0, got %s", rr.Body)
	}
}

func TestAISearch_BadRequests(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode ErrorCode
		wantMsg  string
	}{
		{"blank query", `{"query": "   "}`, CodeBadRequest, msgQueryRequired},
		{"missing query", `{}`, CodeBadRequest, msgQueryRequired},
		{"invalid json", `{"query": `, CodeBadRequest, "Invalid request body"},
		{"non-string query", `{"query": 5}`, CodeBadRequest, "Invalid request body"},
		{"too long", `{"query": "` + strings.Repeat("a", 4097) + `"}`, CodeValidationFailed, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newFakeCatalog(t)
			c.err = errors.New("catalog must not be read")
			rr := do(t, newTestRouter(c), http.MethodPost, "/api/v1/ai-search", tc.body)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status %d, want 400", rr.Code)
			}
			resp := decodeError(t, rr)
			if resp.Success || resp.Code != tc.wantCode {
				t.Errorf("unexpected body: %+v", resp)
			}
			if tc.wantMsg != "" && resp.Message != tc.wantMsg {
				t.Errorf("message = %q, want %q", resp.Message, tc.wantMsg)
			}
		})
	}
}

func TestAISearch_CatalogError_500(t *testing.T) {
	c := newFakeCatalog(t)
	c.err = errors.New("dial tcp 10.0.0.1:6379: connection refused")
	rr := do(t, newTestRouter(c), http.MethodPost, "/api/v1/ai-search", `{"query": "shoes"}`)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", rr.Code)
	}
	resp := decodeError(t, rr)
	if resp.Code != CodeInternalError {
		t.Errorf("code = %s", resp.Code)
	}
	if strings.Contains(resp.Message, "10.0.0.1") {
		t.Errorf("internal details leaked: %q", resp.Message)
	}
}

// --- Products ---

func TestListLocalProducts(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantIDs []any
	}{
		{"all", "/api/v1/local-products", []any{float64(1), float64(2), "sku-3"}},
		{"by category", "/api/v1/local-products?category=shoes", []any{float64(1), "sku-3"}},
		{"unknown category", "/api/v1/local-products?category=garden", []any{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := do(t, newTestRouter(newFakeCatalog(t)), http.MethodGet, tc.path, "")
			if rr.Code != http.StatusOK {
				t.Fatalf("status %d", rr.Code)
			}

			var body struct {
				Success  bool             `json:"success"`
				Products []map[string]any `json:"products"`
			}
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !body.Success {
				t.Error("expected success")
			}
			if body.Products == nil {
				t.Fatal("products must be an array")
			}
			if len(body.Products) != len(tc.wantIDs) {
				t.Fatalf("got %d products, want %d", len(body.Products), len(tc.wantIDs))
			}
			for i, id := range tc.wantIDs {
				if body.Products[i]["id"] != id {
					t.Errorf("products[%d].id = %v, want %v", i, body.Products[i]["id"], id)
				}
			}
		})
	}
}

func TestListLocalProducts_CatalogError(t *testing.T) {
	c := newFakeCatalog(t)
	c.err = errors.New("boom")
	rr := do(t, newTestRouter(c), http.MethodGet, "/api/v1/local-products", "")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", rr.Code)
	}
}

func TestGetProduct(t *testing.T) {
	rr := do(t, newTestRouter(newFakeCatalog(t)), http.MethodGet, "/api/v1/products/sku-3", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	var body struct {
		Success bool           `json:"success"`
		Product map[string]any `json:"product"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Product["title"] != "Budget Sneakers" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	rr := do(t, newTestRouter(newFakeCatalog(t)), http.MethodGet, "/api/v1/products/999", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rr.Code)
	}
	if resp := decodeError(t, rr); resp.Code != CodeProductNotFound {
		t.Errorf("code = %s", resp.Code)
	}
}

// --- Health and routing ---

func TestHealthCheck(t *testing.T) {
	c := newFakeCatalog(t)
	rr := do(t, newTestRouter(c), http.MethodGet, "/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	var body HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "ok" || body.Checks["catalog"] != "ok" {
		t.Errorf("unexpected body: %+v", body)
	}

	c.pingErr = errors.New("down")
	rr = do(t, newTestRouter(c), http.MethodGet, "/health", "")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status %d, want 503", rr.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	rr := do(t, newTestRouter(newFakeCatalog(t)), http.MethodGet, "/metrics", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
}

func TestUnknownRoute_JSON404(t *testing.T) {
	rr := do(t, newTestRouter(newFakeCatalog(t)), http.MethodGet, "/api/v1/nope", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status %d", rr.Code)
	}
	if resp := decodeError(t, rr); resp.Code != CodeNotFound {
		t.Errorf("code = %s", resp.Code)
	}
}

func TestWrongMethod_JSON405(t *testing.T) {
	rr := do(t, newTestRouter(newFakeCatalog(t)), http.MethodGet, "/api/v1/ai-search", "")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d", rr.Code)
	}
}
