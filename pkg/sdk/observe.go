package jobsearch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/jobsearch/internal/domain"
	"github.com/kailas-cloud/jobsearch/internal/metrics"
)

// operation names an SDK call in logs and metrics.
type operation string

const (
	opJobsSearch       operation = "jobs.search"
	opJobsGet          operation = "jobs.get"
	opJobsFacets       operation = "jobs.facets"
	opCandidatesSearch operation = "candidates.search"
	opCandidatesGet    operation = "candidates.get"
	opCandidatesFacets operation = "candidates.facets"
	opSitemapWalk      operation = "sitemap.walk"
)

// Outcome labels. A missing document or a rejected query is not a failure.
const (
	outcomeOK       = "ok"
	outcomeNotFound = "not_found"
	outcomeInvalid  = "invalid"
	outcomeDecode   = "decode_error"
	outcomeCanceled = "canceled"
	outcomeError    = "error"
)

// Brand labels for brand-independent calls and for brands the SDK rejected.
const (
	brandless    = "none"
	brandUnknown = "unknown"
)

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, domain.ErrNotFound):
		return outcomeNotFound
	case errors.Is(err, domain.ErrInvalidArgument):
		return outcomeInvalid
	case errors.Is(err, domain.ErrDecode):
		return outcomeDecode
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return outcomeCanceled
	default:
		return outcomeError
	}
}

type sdkMetrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// newSDKMetrics registers the SDK operation metrics and the engine, fallback,
// facet cache and sitemap metrics the client's components report into.
func newSDKMetrics(reg prometheus.Registerer) (*sdkMetrics, error) {
	m := &sdkMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jobsearch",
			Subsystem: "sdk",
			Name:      "operations_total",
			Help:      "SDK operations by brand and outcome.",
		}, []string{"operation", "brand", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "jobsearch",
			Subsystem: "sdk",
			Name:      "operation_duration_seconds",
			Help:      "SDK operation duration in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation"}),
	}
	if err := registerOrReuse(reg, &m.operations); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.duration); err != nil {
		return nil, err
	}
	for _, c := range metrics.SearchCollectors() {
		if err := registerShared(reg, c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// registerOrReuse registers a collector or reuses an existing one.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(T)
			if !ok {
				return fmt.Errorf("jobsearch: metric already registered with incompatible type: %T", are.ExistingCollector)
			}
			*c = existing
			return nil
		}
		return fmt.Errorf("jobsearch: register metric: %w", err)
	}
	return nil
}

// registerShared registers a process-wide collector. Registering it twice on
// the same registry is fine; a different collector under its name is not.
func registerShared(reg prometheus.Registerer, c prometheus.Collector) error {
	err := reg.Register(c)
	if err == nil {
		return nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) && are.ExistingCollector == c {
		return nil
	}
	return fmt.Errorf("jobsearch: register search metric: %w", err)
}

// observer logs and counts SDK operations.
type observer struct {
	logger  *slog.Logger
	metrics *sdkMetrics
}

func newObserver(logger *slog.Logger, reg prometheus.Registerer) (*observer, error) {
	var m *sdkMetrics
	if reg != nil {
		var err error
		m, err = newSDKMetrics(reg)
		if err != nil {
			return nil, err
		}
	}
	return &observer{logger: logger, metrics: m}, nil
}

// observe records one operation. brand is empty for brand-independent calls.
func (o *observer) observe(op operation, brand domain.Brand, start time.Time, err error) {
	if o == nil {
		return
	}
	dur := time.Since(start)
	result := outcome(err)
	brandLabel := string(brand)
	switch {
	case brand == "":
		brandLabel = brandless
	case !brand.IsValid():
		brandLabel = brandUnknown
	}

	if o.metrics != nil {
		o.metrics.operations.WithLabelValues(string(op), brandLabel, result).Inc()
		o.metrics.duration.WithLabelValues(string(op)).Observe(dur.Seconds())
	}

	if o.logger == nil {
		return
	}
	attrs := []any{"op", string(op), "brand", brandLabel, "outcome", result, "duration", dur}
	var de *domain.DecodeError
	if errors.As(err, &de) {
		attrs = append(attrs, "shape", de.Shape)
	}
	switch result {
	case outcomeOK, outcomeNotFound:
		o.logger.Debug("operation completed", attrs...)
	case outcomeInvalid, outcomeCanceled:
		o.logger.Info("operation rejected", append(attrs, "error", err)...)
	default:
		o.logger.Warn("operation failed", append(attrs, "error", err)...)
	}
}
