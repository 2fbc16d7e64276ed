package health

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/jobsearch/internal/logger"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates the facet cache is down; searches still work.
	Degraded Status = "degraded"
	// Unhealthy indicates the search engine is down.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Component names in Report.Checks.
const (
	ComponentEngine = "engine"
	ComponentCache  = "cache"
)

// Report aggregates health check results.
type Report struct {
	Status Status                 `json:"status"`
	Checks map[string]CheckResult `json:"checks"`
}

// Service coordinates health checks.
type Service struct {
	engine Pinger
	cache  Pinger
}

// New creates a Service. Either pinger can be nil: engine when serving
// fixtures, cache when facet caching is disabled.
func New(engine, cache Pinger) *Service {
	return &Service{engine: engine, cache: cache}
}

// Check runs health checks against all configured components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)
	status := Healthy

	if s.cache != nil {
		checks[ComponentCache] = ping(ctx, ComponentCache, s.cache)
		if checks[ComponentCache] == CheckError {
			status = Degraded
		}
	}
	if s.engine != nil {
		checks[ComponentEngine] = ping(ctx, ComponentEngine, s.engine)
		if checks[ComponentEngine] == CheckError {
			status = Unhealthy
		}
	}

	return Report{Status: status, Checks: checks}
}

func ping(ctx context.Context, name string, p Pinger) CheckResult {
	if err := p.Ping(ctx); err != nil {
		logger.FromContext(ctx).Warn("health check failed", zap.String("component", name), zap.Error(err))
		return CheckError
	}
	return CheckOK
}
