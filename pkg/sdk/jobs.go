package jobsearch

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/jobsearch/internal/domain"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/query"
)

// JobService searches jobs for one brand.
type JobService struct {
	svc            searchUseCase
	brand          domain.Brand
	includeExpired bool
	obs            *observer
}

// WithBrand returns a copy of the service bound to another brand.
func (s *JobService) WithBrand(b Brand) *JobService {
	cp := *s
	cp.brand = domain.Brand(b)
	return &cp
}

// IncludeExpired returns a copy of the service that also matches jobs past
// their advert expiry.
func (s *JobService) IncludeExpired() *JobService {
	cp := *s
	cp.includeExpired = true
	return &cp
}

func (s *JobService) options() (query.Options, error) {
	if !s.brand.IsValid() {
		return query.Options{}, fmt.Errorf("%w: unknown brand %q", domain.ErrInvalidArgument, s.brand)
	}
	return query.Options{IgnoreExpiryDate: s.includeExpired, Brand: s.brand}, nil
}

// Search returns one page of jobs matching q.
func (s *JobService) Search(ctx context.Context, q JobQuery) (_ JobPage, err error) {
	start := time.Now()
	defer func() { s.obs.observe(opJobsSearch, s.brand, start, err) }()

	opts, err := s.options()
	if err != nil {
		return JobPage{}, err
	}
	p, err := s.svc.SearchJobs(ctx, q.toArgs(), opts)
	if err != nil {
		return JobPage{}, fmt.Errorf("search jobs: %w", err)
	}
	return p, nil
}

// Get returns the job with the given reference, or ErrNotFound.
func (s *JobService) Get(ctx context.Context, reference string) (_ Job, err error) {
	start := time.Now()
	defer func() { s.obs.observe(opJobsGet, s.brand, start, err) }()

	opts, err := s.options()
	if err != nil {
		return Job{}, err
	}
	j, ok, err := s.svc.GetJob(ctx, reference, opts)
	if err != nil {
		return Job{}, fmt.Errorf("get job: %w", err)
	}
	if !ok {
		return Job{}, fmt.Errorf("job %q: %w", reference, ErrNotFound)
	}
	return j, nil
}

// Facets returns the facet buckets for jobs matching q. q.Page is ignored.
func (s *JobService) Facets(ctx context.Context, q JobQuery) (_ JobFacets, err error) {
	start := time.Now()
	defer func() { s.obs.observe(opJobsFacets, s.brand, start, err) }()

	opts, err := s.options()
	if err != nil {
		return JobFacets{}, err
	}
	f, err := s.svc.JobFacets(ctx, q.toArgs(), opts)
	if err != nil {
		return JobFacets{}, fmt.Errorf("job facets: %w", err)
	}
	return f, nil
}
