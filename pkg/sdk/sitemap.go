package jobsearch

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/jobsearch/internal/domain/search/page"
	sitemapuc "github.com/kailas-cloud/jobsearch/internal/usecase/sitemap"
)

// SitemapService exports every live job in [lastModified, reference] order.
type SitemapService struct {
	svc sitemapUseCase
	obs *observer
}

// Walk calls fn for every job after the resume token, page by page. It
// returns a token that resumes after the last job seen; pass "" to start
// from the beginning. An error from fn stops the walk.
func (s *SitemapService) Walk(
	ctx context.Context, v SitemapVariant, after string, fn func(SitemapEntry) error,
) (_ string, err error) {
	start := time.Now()
	defer func() { s.obs.observe(opSitemapWalk, "", start, err) }()

	cursor, err := page.DecodeCursor(after)
	if err != nil {
		return after, err
	}
	last, walkErr := s.svc.Walk(ctx, sitemapuc.Variant(v), cursor, fn)
	token, err := last.Encode()
	if err != nil {
		return after, err
	}
	if walkErr != nil {
		return token, fmt.Errorf("sitemap: %w", walkErr)
	}
	return token, nil
}

// Collect walks the whole export into memory.
func (s *SitemapService) Collect(ctx context.Context, v SitemapVariant) ([]SitemapEntry, error) {
	var out []SitemapEntry
	if _, err := s.Walk(ctx, v, "", func(e SitemapEntry) error {
		out = append(out, e)
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}
