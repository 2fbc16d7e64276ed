package search

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/jobsearch/internal/logger"
	"github.com/kailas-cloud/jobsearch/internal/metrics"
)

type emptier interface {
	Empty() bool
}

// withLocationFallback runs one search and, when it is empty and the
// location can be retokenized, exactly one more with the retokenized
// arguments. The second result is returned as is, empty or not.
// Errors are never retried.
func withLocationFallback[A any, R emptier](
	ctx context.Context,
	domainName string,
	a A,
	retokenize func(A) (A, bool),
	run func(context.Context, A) (R, error),
) (R, error) {
	res, err := run(ctx, a)
	if err != nil || !res.Empty() {
		return res, err
	}

	retried, ok := retokenize(a)
	if !ok {
		return res, nil
	}

	res, err = run(ctx, retried)
	if err != nil {
		return res, err
	}
	recordFallback(ctx, domainName, !res.Empty())
	return res, nil
}

// matchingLocation decides which arguments facets are computed for: the
// original ones if they match anything, otherwise the retokenized ones.
// Arguments without a retokenizable location skip the preliminary search.
func matchingLocation[A any, R emptier](
	ctx context.Context,
	domainName string,
	a A,
	retokenize func(A) (A, bool),
	run func(context.Context, A) (R, error),
) (A, error) {
	retried, ok := retokenize(a)
	if !ok {
		return a, nil
	}

	res, err := run(ctx, a)
	if err != nil {
		return a, err
	}
	if !res.Empty() {
		return a, nil
	}
	logger.FromContext(ctx).Debug("facets use retokenized location", zap.String("domain", domainName))
	return retried, nil
}

func recordFallback(ctx context.Context, domainName string, found bool) {
	outcome := "miss"
	if found {
		outcome = "hit"
	}
	metrics.LocationFallbackTotal.WithLabelValues(domainName, outcome).Inc()
	logger.FromContext(ctx).Debug("location fallback",
		zap.String("domain", domainName),
		zap.String("outcome", outcome),
	)
}
