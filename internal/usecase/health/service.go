package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// CheckCatalog names the catalog source check in a Report.
const CheckCatalog = "catalog"

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	catalog CatalogPinger
}

// New creates a Service.
func New(catalog CatalogPinger) *Service {
	return &Service{catalog: catalog}
}

// Check pings every component and folds the results into one status.
func (s *Service) Check(ctx context.Context) Report {
	checks := map[string]CheckResult{CheckCatalog: CheckOK}
	if err := s.catalog.Ping(ctx); err != nil {
		checks[CheckCatalog] = CheckError
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
