package search

import (
	"context"

	"github.com/kailas-cloud/jobsearch/internal/domain/candidate"
	"github.com/kailas-cloud/jobsearch/internal/domain/job"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/args"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/facet"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/query"
)

// JobRepository runs single job queries against the engine.
type JobRepository interface {
	SearchJobs(ctx context.Context, a args.Job, opts query.Options) (job.Page, error)
	GetJob(ctx context.Context, reference string, opts query.Options) (job.Job, bool, error)
}

// CandidateRepository runs single candidate queries against the engine.
type CandidateRepository interface {
	SearchCandidates(ctx context.Context, a args.Candidate) (candidate.Page, error)
	GetCandidate(ctx context.Context, id string) (candidate.Candidate, bool, error)
}

// FacetRepository computes facet counts in one aggregation query.
type FacetRepository interface {
	JobFacets(ctx context.Context, a args.Job, opts query.Options) (facet.JobFacets, error)
	CandidateFacets(ctx context.Context, a args.Candidate) (facet.CandidateFacets, error)
}
