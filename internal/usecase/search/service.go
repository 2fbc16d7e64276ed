// Package search serves job and candidate searches with the location
// retokenization fallback, and computes facets against the location form
// that actually matches.
package search

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/jobsearch/internal/domain/candidate"
	"github.com/kailas-cloud/jobsearch/internal/domain/job"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/args"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/facet"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/query"
)

const (
	domainJobs       = "jobs"
	domainCandidates = "candidates"
)

// Service handles job and candidate search.
type Service struct {
	jobs       JobRepository
	candidates CandidateRepository
	facets     FacetRepository
}

// New creates a search service.
func New(jobs JobRepository, candidates CandidateRepository, facets FacetRepository) *Service {
	return &Service{jobs: jobs, candidates: candidates, facets: facets}
}

// SearchJobs searches job listings. An empty result for a location with a
// space is retried once with the first space replaced by a comma.
func (s *Service) SearchJobs(ctx context.Context, a args.Job, opts query.Options) (job.Page, error) {
	run := func(ctx context.Context, a args.Job) (job.Page, error) {
		return s.jobs.SearchJobs(ctx, a, opts)
	}
	return withLocationFallback(ctx, domainJobs, a, args.Job.WithRetokenizedLocation, run)
}

// GetJob returns a job by reference. The bool is false when it does not exist.
func (s *Service) GetJob(ctx context.Context, reference string, opts query.Options) (job.Job, bool, error) {
	return s.jobs.GetJob(ctx, reference, opts)
}

// JobFacets computes job facet counts for the same location form SearchJobs
// would end up using.
func (s *Service) JobFacets(ctx context.Context, a args.Job, opts query.Options) (facet.JobFacets, error) {
	firstPage := func(ctx context.Context, a args.Job) (job.Page, error) {
		a.Page = 1
		return s.jobs.SearchJobs(ctx, a, opts)
	}
	effective, err := matchingLocation(ctx, domainJobs, a, args.Job.WithRetokenizedLocation, firstPage)
	if err != nil {
		return facet.JobFacets{}, fmt.Errorf("job facets location check: %w", err)
	}
	return s.facets.JobFacets(ctx, effective, opts)
}

// SearchCandidates searches candidate profiles with the same location fallback as jobs.
func (s *Service) SearchCandidates(ctx context.Context, a args.Candidate) (candidate.Page, error) {
	return withLocationFallback(ctx, domainCandidates, a,
		args.Candidate.WithRetokenizedLocation, s.candidates.SearchCandidates)
}

// GetCandidate returns a profile by id. The bool is false when it does not exist.
func (s *Service) GetCandidate(ctx context.Context, id string) (candidate.Candidate, bool, error) {
	return s.candidates.GetCandidate(ctx, id)
}

// CandidateFacets computes candidate facet counts. Only keyword, location
// and jobType scope the counts.
func (s *Service) CandidateFacets(ctx context.Context, a args.Candidate) (facet.CandidateFacets, error) {
	firstPage := func(ctx context.Context, a args.Candidate) (candidate.Page, error) {
		a.Page = 1
		return s.candidates.SearchCandidates(ctx, a)
	}
	effective, err := matchingLocation(ctx, domainCandidates, a,
		args.Candidate.WithRetokenizedLocation, firstPage)
	if err != nil {
		return facet.CandidateFacets{}, fmt.Errorf("candidate facets location check: %w", err)
	}
	return s.facets.CandidateFacets(ctx, effective.FacetArgs())
}
