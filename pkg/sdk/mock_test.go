package jobsearch

import (
	"context"

	"github.com/kailas-cloud/jobsearch/internal/domain/candidate"
	"github.com/kailas-cloud/jobsearch/internal/domain/job"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/args"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/facet"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/page"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/query"
	sitemapuc "github.com/kailas-cloud/jobsearch/internal/usecase/sitemap"
)

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchJobsFn       func(ctx context.Context, a args.Job, opts query.Options) (job.Page, error)
	getJobFn           func(ctx context.Context, reference string, opts query.Options) (job.Job, bool, error)
	jobFacetsFn        func(ctx context.Context, a args.Job, opts query.Options) (facet.JobFacets, error)
	searchCandidatesFn func(ctx context.Context, a args.Candidate) (candidate.Page, error)
	getCandidateFn     func(ctx context.Context, id string) (candidate.Candidate, bool, error)
	candidateFacetsFn  func(ctx context.Context, a args.Candidate) (facet.CandidateFacets, error)
}

func (m *mockSearchUC) SearchJobs(ctx context.Context, a args.Job, opts query.Options) (job.Page, error) {
	return m.searchJobsFn(ctx, a, opts)
}

func (m *mockSearchUC) GetJob(ctx context.Context, reference string, opts query.Options) (job.Job, bool, error) {
	return m.getJobFn(ctx, reference, opts)
}

func (m *mockSearchUC) JobFacets(ctx context.Context, a args.Job, opts query.Options) (facet.JobFacets, error) {
	return m.jobFacetsFn(ctx, a, opts)
}

func (m *mockSearchUC) SearchCandidates(ctx context.Context, a args.Candidate) (candidate.Page, error) {
	return m.searchCandidatesFn(ctx, a)
}

func (m *mockSearchUC) GetCandidate(ctx context.Context, id string) (candidate.Candidate, bool, error) {
	return m.getCandidateFn(ctx, id)
}

func (m *mockSearchUC) CandidateFacets(ctx context.Context, a args.Candidate) (facet.CandidateFacets, error) {
	return m.candidateFacetsFn(ctx, a)
}

// --- sitemapUseCase mock ---

type mockSitemapUC struct {
	walkFn func(
		ctx context.Context, v sitemapuc.Variant, after page.Cursor, fn func(job.SitemapEntry) error,
	) (page.Cursor, error)
}

func (m *mockSitemapUC) Walk(
	ctx context.Context, v sitemapuc.Variant, after page.Cursor, fn func(job.SitemapEntry) error,
) (page.Cursor, error) {
	return m.walkFn(ctx, v, after, fn)
}
