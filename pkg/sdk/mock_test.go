package shopsearch

import (
	"context"

	"github.com/kailas-cloud/shopsearch/internal/domain/product"
	"github.com/kailas-cloud/shopsearch/internal/domain/search/request"
	healthuc "github.com/kailas-cloud/shopsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/shopsearch/internal/usecase/search"
)

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchFn func(ctx context.Context, req *request.Request) (searchuc.Outcome, error)
}

func (m *mockSearchUC) Search(ctx context.Context, req *request.Request) (searchuc.Outcome, error) {
	return m.searchFn(ctx, req)
}

// --- catalogUseCase mock ---

type mockCatalogUC struct {
	listFn func(ctx context.Context, category string) ([]product.Product, error)
	getFn  func(ctx context.Context, id string) (product.Product, error)
}

func (m *mockCatalogUC) List(ctx context.Context, category string) ([]product.Product, error) {
	return m.listFn(ctx, category)
}

func (m *mockCatalogUC) Get(ctx context.Context, id string) (product.Product, error) {
	return m.getFn(ctx, id)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(_ context.Context) healthuc.Report { return m.report }

// --- catalogImporter mock ---

type mockImporter struct {
	got []product.Product
	err error
}

func (m *mockImporter) Replace(_ context.Context, products []product.Product) error {
	m.got = products
	return m.err
}

// --- helpers ---

func testClient(searchSvc searchUseCase, catalogSvc catalogUseCase, importer catalogImporter) *Client {
	return &Client{
		searchSvc:  searchSvc,
		catalogSvc: catalogSvc,
		healthSvc:  &mockHealthUC{report: healthuc.Report{Status: healthuc.Healthy}},
		importer:   importer,
	}
}
