// Package sitemap streams every live job for sitemap export by walking the
// index with search_after cursors.
package sitemap

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/jobsearch/internal/domain"
	"github.com/kailas-cloud/jobsearch/internal/domain/job"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/page"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/query"
	"github.com/kailas-cloud/jobsearch/internal/logger"
	"github.com/kailas-cloud/jobsearch/internal/metrics"
)

// Variant selects the fields and page size of an export.
type Variant string

// Export variants.
const (
	// Minimal returns the fields a sitemap needs.
	Minimal Variant = "minimal"
	// Full adds the description. Pages are smaller to bound response size.
	Full Variant = "full"
)

// Default page sizes.
const (
	DefaultPageSize     = 5000
	DefaultFullPageSize = 500
)

// Config holds the page sizes of each variant.
type Config struct {
	PageSize     int
	FullPageSize int
}

// Walker drives sequential cursor scans.
type Walker struct {
	scanner Scanner
	cfg     Config
}

// New creates a walker. Non-positive page sizes fall back to the defaults.
func New(s Scanner, cfg Config) *Walker {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.FullPageSize <= 0 {
		cfg.FullPageSize = DefaultFullPageSize
	}
	return &Walker{scanner: s, cfg: cfg}
}

func (w *Walker) request(v Variant) (job.ScanRequest, error) {
	switch v {
	case Minimal:
		return job.ScanRequest{Source: job.SitemapFields, Size: w.cfg.PageSize}, nil
	case Full:
		return job.ScanRequest{Source: job.SitemapFullFields, Size: w.cfg.FullPageSize}, nil
	default:
		return job.ScanRequest{}, fmt.Errorf("%w: unknown sitemap variant %q", domain.ErrInvalidArgument, v)
	}
}

// Walk calls fn for every job after the given cursor, in
// [lastModified, reference] order, one page at a time. It stops at the first
// empty page and returns the last cursor seen, which resumes the walk when
// passed back as after. Jobs changed during the walk may be missed or
// repeated.
func (w *Walker) Walk(
	ctx context.Context, v Variant, after page.Cursor, fn func(job.SitemapEntry) error,
) (page.Cursor, error) {
	req, err := w.request(v)
	if err != nil {
		return after, err
	}

	ctx = logger.With(ctx, zap.String("variant", string(v)))
	cursor := after
	pages := 0
	for {
		req.After = cursor
		entries, err := w.scanner.ScanJobs(ctx, req, query.Options{})
		if err != nil {
			return cursor, fmt.Errorf("sitemap page %d: %w", pages+1, err)
		}
		pages++
		metrics.SitemapPagesTotal.WithLabelValues(string(v)).Inc()

		if len(entries) == 0 {
			logger.FromContext(ctx).Debug("sitemap walk done",
				zap.Int("pages", pages),
			)
			return cursor, nil
		}
		for _, e := range entries {
			if err := fn(e); err != nil {
				return cursor, err
			}
		}
		cursor = entries[len(entries)-1].Cursor
	}
}

// Collect walks the whole export and returns it in order.
func (w *Walker) Collect(ctx context.Context, v Variant, after page.Cursor) ([]job.SitemapEntry, page.Cursor, error) {
	var out []job.SitemapEntry
	last, err := w.Walk(ctx, v, after, func(e job.SitemapEntry) error {
		out = append(out, e)
		return nil
	})
	if err != nil {
		return nil, last, err
	}
	return out, last, nil
}
