package search

import (
	"context"
	"strings"

	"github.com/kailas-cloud/jobsearch/internal/domain/candidate"
	"github.com/kailas-cloud/jobsearch/internal/domain/job"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/args"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/facet"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/page"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/query"
)

// --- Mocks ---

type mockJobs struct {
	// byLocation maps a location to the page returned for it; other
	// locations get an empty page.
	byLocation map[string]job.Page
	err        error
	calls      []args.Job
	getCalled  bool
}

func (m *mockJobs) SearchJobs(_ context.Context, a args.Job, _ query.Options) (job.Page, error) {
	m.calls = append(m.calls, a)
	if m.err != nil {
		return job.Page{}, m.err
	}
	return m.byLocation[a.Location], nil
}

func (m *mockJobs) GetJob(_ context.Context, reference string, _ query.Options) (job.Job, bool, error) {
	m.getCalled = true
	if reference == "REF-1" {
		return job.Job{Reference: "REF-1", Title: "Go Engineer"}, true, nil
	}
	return job.Job{}, false, m.err
}

type mockCandidates struct {
	byLocation map[string]candidate.Page
	err        error
	calls      []args.Candidate
}

func (m *mockCandidates) SearchCandidates(_ context.Context, a args.Candidate) (candidate.Page, error) {
	m.calls = append(m.calls, a)
	if m.err != nil {
		return candidate.Page{}, m.err
	}
	return m.byLocation[a.Location], nil
}

func (m *mockCandidates) GetCandidate(_ context.Context, id string) (candidate.Candidate, bool, error) {
	return candidate.Candidate{ID: id, JobTitle: "Engineer"}, true, nil
}

type mockFacets struct {
	jobArgs       []args.Job
	candidateArgs []args.Candidate
	err           error
}

func (m *mockFacets) JobFacets(_ context.Context, a args.Job, _ query.Options) (facet.JobFacets, error) {
	m.jobArgs = append(m.jobArgs, a)
	return facet.JobFacets{Roles: []facet.Bucket{{Key: "Engineer", DocCount: 1}}}, m.err
}

func (m *mockFacets) CandidateFacets(_ context.Context, a args.Candidate) (facet.CandidateFacets, error) {
	m.candidateArgs = append(m.candidateArgs, a)
	return facet.CandidateFacets{}, m.err
}

func newTestService() (*Service, *mockJobs, *mockCandidates, *mockFacets) {
	mj := &mockJobs{byLocation: map[string]job.Page{}}
	mc := &mockCandidates{byLocation: map[string]candidate.Page{}}
	mf := &mockFacets{}
	return New(mj, mc, mf), mj, mc, mf
}

func jobPage(refs ...string) job.Page {
	items := make([]job.Job, 0, len(refs))
	for _, r := range refs {
		items = append(items, job.Job{ID: strings.ToLower(r), Reference: r, Title: "Title " + r})
	}
	return job.Page{Items: items, Pagination: page.Total{Value: len(refs), Relation: page.RelationEq}}
}
