// Package search is the search executor: one engine round trip per call,
// with the response validated against the domain schema before use.
package search

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/jobsearch/internal/db"
	"github.com/kailas-cloud/jobsearch/internal/domain"
	"github.com/kailas-cloud/jobsearch/internal/domain/candidate"
	"github.com/kailas-cloud/jobsearch/internal/domain/job"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/args"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/clause"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/facet"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/page"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/query"
)

// store is the consumer interface for engine access (ISP).
type store interface {
	Search(ctx context.Context, req *db.SearchRequest) ([]byte, error)
}

// Indexes names the engine indexes of each domain.
type Indexes struct {
	Jobs       string
	Candidates string
}

// Repo implements the job and candidate repositories of usecase/search and
// the scanner of usecase/sitemap.
type Repo struct {
	store   store
	indexes Indexes
}

// New creates a search repository.
func New(s store, idx Indexes) *Repo {
	return &Repo{store: s, indexes: idx}
}

// SearchJobs runs one page of a job search.
func (r *Repo) SearchJobs(ctx context.Context, a args.Job, opts query.Options) (job.Page, error) {
	env, err := r.search(ctx, &db.SearchRequest{
		Index: r.indexes.Jobs,
		Query: query.BuildJobQuery(a, opts),
		From:  db.IntPtr(page.Offset(a.Page)),
		Size:  db.IntPtr(page.Size),
	})
	if err != nil {
		return job.Page{}, fmt.Errorf("search jobs: %w", err)
	}
	p, err := decodeJobPage(env)
	if err != nil {
		return job.Page{}, fmt.Errorf("search jobs: %w", err)
	}
	return p, nil
}

// GetJob looks a job up by reference. The bool is false when no job matches.
func (r *Repo) GetJob(ctx context.Context, reference string, opts query.Options) (job.Job, bool, error) {
	if reference == "" {
		return job.Job{}, false, domain.Invalid("reference is required")
	}
	env, err := r.search(ctx, &db.SearchRequest{
		Index: r.indexes.Jobs,
		Query: query.BuildJobQuery(args.Job{Reference: reference}, opts),
		Size:  db.IntPtr(1),
	})
	if err != nil {
		return job.Job{}, false, fmt.Errorf("get job %s: %w", reference, err)
	}
	p, err := decodeJobPage(env)
	if err != nil {
		return job.Job{}, false, fmt.Errorf("get job %s: %w", reference, err)
	}
	if p.Empty() {
		return job.Job{}, false, nil
	}
	return p.Items[0], true, nil
}

// JobFacets computes facet counts for the jobs matching a.
func (r *Repo) JobFacets(ctx context.Context, a args.Job, opts query.Options) (facet.JobFacets, error) {
	env, err := r.search(ctx, &db.SearchRequest{
		Index: r.indexes.Jobs,
		Query: query.BuildJobQuery(a, opts),
		Aggs:  facet.JobAggregations(),
		Size:  db.IntPtr(0),
	})
	if err != nil {
		return facet.JobFacets{}, fmt.Errorf("job facets: %w", err)
	}
	aggs, err := env.aggregations()
	if err != nil {
		return facet.JobFacets{}, fmt.Errorf("job facets: %w", err)
	}
	f, err := facet.DecodeJobFacets(aggs)
	if err != nil {
		return facet.JobFacets{}, fmt.Errorf("job facets: %w", err)
	}
	return f, nil
}

// SearchCandidates runs one page of a candidate search.
func (r *Repo) SearchCandidates(ctx context.Context, a args.Candidate) (candidate.Page, error) {
	env, err := r.search(ctx, &db.SearchRequest{
		Index: r.indexes.Candidates,
		Query: query.BuildCandidateQuery(a),
		From:  db.IntPtr(page.Offset(a.Page)),
		Size:  db.IntPtr(page.Size),
	})
	if err != nil {
		return candidate.Page{}, fmt.Errorf("search candidates: %w", err)
	}
	p, err := decodeCandidatePage(env)
	if err != nil {
		return candidate.Page{}, fmt.Errorf("search candidates: %w", err)
	}
	return p, nil
}

// GetCandidate looks a profile up by engine id. The bool is false when absent.
func (r *Repo) GetCandidate(ctx context.Context, id string) (candidate.Candidate, bool, error) {
	if id == "" {
		return candidate.Candidate{}, false, domain.Invalid("candidate id is required")
	}
	env, err := r.search(ctx, &db.SearchRequest{
		Index: r.indexes.Candidates,
		Query: clause.Must(clause.IDs(id)),
		Size:  db.IntPtr(1),
	})
	if err != nil {
		return candidate.Candidate{}, false, fmt.Errorf("get candidate %s: %w", id, err)
	}
	p, err := decodeCandidatePage(env)
	if err != nil {
		return candidate.Candidate{}, false, fmt.Errorf("get candidate %s: %w", id, err)
	}
	if p.Empty() {
		return candidate.Candidate{}, false, nil
	}
	return p.Items[0], true, nil
}

// CandidateFacets computes facet counts scoped by keyword, location and jobType only.
func (r *Repo) CandidateFacets(ctx context.Context, a args.Candidate) (facet.CandidateFacets, error) {
	env, err := r.search(ctx, &db.SearchRequest{
		Index: r.indexes.Candidates,
		Query: clause.Must(query.BuildCandidateFacetClauses(a)...),
		Aggs:  facet.CandidateAggregations(),
		Size:  db.IntPtr(0),
	})
	if err != nil {
		return facet.CandidateFacets{}, fmt.Errorf("candidate facets: %w", err)
	}
	aggs, err := env.aggregations()
	if err != nil {
		return facet.CandidateFacets{}, fmt.Errorf("candidate facets: %w", err)
	}
	f, err := facet.DecodeCandidateFacets(aggs)
	if err != nil {
		return facet.CandidateFacets{}, fmt.Errorf("candidate facets: %w", err)
	}
	return f, nil
}

// ScanJobs fetches one page of live jobs in sitemap order, starting after
// req.After. Each entry carries its sort tuple as a cursor.
func (r *Repo) ScanJobs(ctx context.Context, req job.ScanRequest, opts query.Options) ([]job.SitemapEntry, error) {
	if req.Size <= 0 {
		return nil, domain.Invalid("scan size must be positive")
	}
	sort := make([]db.SortField, 0, len(job.ScanSort))
	for _, f := range job.ScanSort {
		sort = append(sort, db.SortField{Field: f, Order: db.Asc})
	}
	env, err := r.search(ctx, &db.SearchRequest{
		Index:       r.indexes.Jobs,
		Query:       query.BuildJobQuery(args.Job{}, opts),
		Size:        db.IntPtr(req.Size),
		Sort:        sort,
		SearchAfter: req.After,
		Source:      req.Source,
	})
	if err != nil {
		return nil, fmt.Errorf("scan jobs: %w", err)
	}

	hits := env.hits()
	out := make([]job.SitemapEntry, 0, len(hits))
	for i, h := range hits {
		e, err := decodeSource[job.SitemapEntry](h, i, "jobs")
		if err != nil {
			return nil, fmt.Errorf("scan jobs: %w", err)
		}
		if e.Cursor, err = hitCursor(h, i, "jobs"); err != nil {
			return nil, fmt.Errorf("scan jobs: %w", err)
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *Repo) search(ctx context.Context, req *db.SearchRequest) (*envelope, error) {
	body, err := r.store.Search(ctx, req)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope(body)
}

func decodeJobPage(env *envelope) (job.Page, error) {
	total, err := env.total()
	if err != nil {
		return job.Page{}, err
	}
	hits := env.hits()
	items := make([]job.Job, 0, len(hits))
	for i, h := range hits {
		j, err := decodeSource[job.Job](h, i, "jobs")
		if err != nil {
			return job.Page{}, err
		}
		j.ID = *h.ID
		items = append(items, j)
	}
	return job.Page{Items: items, Pagination: total}, nil
}

func decodeCandidatePage(env *envelope) (candidate.Page, error) {
	total, err := env.total()
	if err != nil {
		return candidate.Page{}, err
	}
	hits := env.hits()
	items := make([]candidate.Candidate, 0, len(hits))
	for i, h := range hits {
		c, err := decodeSource[candidate.Candidate](h, i, "candidates")
		if err != nil {
			return candidate.Page{}, err
		}
		c.ID = *h.ID
		items = append(items, c)
	}
	return candidate.Page{Items: items, Pagination: total}, nil
}
