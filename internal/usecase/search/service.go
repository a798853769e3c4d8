package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/shopsearch/internal/domain"
	"github.com/kailas-cloud/shopsearch/internal/domain/search/request"
	logpkg "github.com/kailas-cloud/shopsearch/internal/logger"
	"github.com/kailas-cloud/shopsearch/internal/metrics"
)

// Service answers smart-search requests against the current catalog.
type Service struct {
	catalog CatalogReader
	engine  *Engine
}

// New creates a search service.
func New(catalog CatalogReader, engine *Engine) *Service {
	return &Service{catalog: catalog, engine: engine}
}

// Search loads the catalog and runs the engine over it.
func (s *Service) Search(ctx context.Context, req *request.Request) (Outcome, error) {
	log := logpkg.FromContext(ctx)

	products, err := s.catalog.List(ctx)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return Outcome{}, fmt.Errorf("%w: load catalog: %w", domain.ErrCatalogUnavailable, err)
	}

	start := time.Now()
	out := s.engine.Search(req.Query(), products)
	elapsed := time.Since(start)

	outcome := metrics.OutcomeHit
	if out.TotalResults == 0 {
		outcome = metrics.OutcomeEmpty
	}
	metrics.SearchRequestsTotal.WithLabelValues(outcome).Inc()
	metrics.SearchResults.Observe(float64(out.TotalResults))
	metrics.SearchDuration.Observe(elapsed.Seconds())

	log.Debug("search completed",
		zap.String("query", req.Query()),
		zap.Int("catalog_size", len(products)),
		zap.Int("total_results", out.TotalResults),
		zap.Int("returned", len(out.Results)),
		zap.Duration("engine_latency", elapsed),
	)

	return out, nil
}
