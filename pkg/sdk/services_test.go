package jobsearch

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/jobsearch/internal/domain"
	"github.com/kailas-cloud/jobsearch/internal/domain/candidate"
	"github.com/kailas-cloud/jobsearch/internal/domain/job"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/args"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/facet"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/page"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/query"
	sitemapuc "github.com/kailas-cloud/jobsearch/internal/usecase/sitemap"
)

// --- JobService ---

func TestJobService_Search(t *testing.T) {
	from := 50000.0
	mock := &mockSearchUC{
		searchJobsFn: func(_ context.Context, a args.Job, opts query.Options) (job.Page, error) {
			if a.Keyword != "go" || len(a.Role) != 1 || a.Role[0] != "Engineer" || *a.SalaryFrom != from {
				t.Errorf("args = %+v", a)
			}
			if opts.Brand != domain.BrandStandard || opts.IgnoreExpiryDate {
				t.Errorf("opts = %+v", opts)
			}
			return job.Page{Items: []job.Job{{Reference: "R1"}}, Pagination: page.Total{Value: 1}}, nil
		},
	}

	svc := &JobService{svc: mock, brand: domain.BrandStandard}
	p, err := svc.Search(context.Background(), JobQuery{Keyword: "go", Roles: []string{"Engineer"}, SalaryFrom: &from})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Items) != 1 || p.Items[0].Reference != "R1" {
		t.Errorf("items = %+v", p.Items)
	}
}

func TestJobService_BrandAndExpiry(t *testing.T) {
	var got query.Options
	mock := &mockSearchUC{
		searchJobsFn: func(_ context.Context, _ args.Job, opts query.Options) (job.Page, error) {
			got = opts
			return job.Page{}, nil
		},
	}

	base := &JobService{svc: mock, brand: domain.BrandStandard}
	svc := base.WithBrand(BrandSpecialist).IncludeExpired()
	if _, err := svc.Search(context.Background(), JobQuery{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Brand != domain.BrandSpecialist || !got.IgnoreExpiryDate {
		t.Errorf("opts = %+v", got)
	}
	if base.brand != domain.BrandStandard || base.includeExpired {
		t.Error("WithBrand/IncludeExpired mutated the original service")
	}
}

func TestJobService_UnknownBrand(t *testing.T) {
	mock := &mockSearchUC{}
	svc := (&JobService{svc: mock}).WithBrand("acme")
	_, err := svc.Search(context.Background(), JobQuery{})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestJobService_Search_Error(t *testing.T) {
	mock := &mockSearchUC{
		searchJobsFn: func(_ context.Context, _ args.Job, _ query.Options) (job.Page, error) {
			return job.Page{}, domain.NewDecodeError("hits", errors.New("missing"))
		},
	}
	svc := &JobService{svc: mock, brand: domain.BrandStandard}
	_, err := svc.Search(context.Background(), JobQuery{})
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestJobService_Get(t *testing.T) {
	mock := &mockSearchUC{
		getJobFn: func(_ context.Context, reference string, _ query.Options) (job.Job, bool, error) {
			if reference == "R1" {
				return job.Job{Reference: "R1", Title: "Engineer"}, true, nil
			}
			return job.Job{}, false, nil
		},
	}
	svc := &JobService{svc: mock, brand: domain.BrandStandard}

	j, err := svc.Get(context.Background(), "R1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if j.Title != "Engineer" {
		t.Errorf("Title = %q", j.Title)
	}

	if _, err := svc.Get(context.Background(), "R2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJobService_Facets(t *testing.T) {
	mock := &mockSearchUC{
		jobFacetsFn: func(_ context.Context, a args.Job, _ query.Options) (facet.JobFacets, error) {
			if a.Location != "Leeds" {
				t.Errorf("location = %q", a.Location)
			}
			return facet.JobFacets{Roles: []facet.Bucket{{Key: "Analyst", DocCount: 1}}}, nil
		},
	}
	svc := &JobService{svc: mock, brand: domain.BrandStandard}
	f, err := svc.Facets(context.Background(), JobQuery{Location: "Leeds"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Roles) != 1 {
		t.Errorf("roles = %+v", f.Roles)
	}
}

// --- CandidateService ---

func TestCandidateService(t *testing.T) {
	mock := &mockSearchUC{
		searchCandidatesFn: func(_ context.Context, a args.Candidate) (candidate.Page, error) {
			if len(a.Skills) != 1 || a.Page != 2 {
				t.Errorf("args = %+v", a)
			}
			return candidate.Page{Items: []candidate.Candidate{{ID: "c1"}}}, nil
		},
		getCandidateFn: func(_ context.Context, id string) (candidate.Candidate, bool, error) {
			return candidate.Candidate{}, false, nil
		},
		candidateFacetsFn: func(_ context.Context, _ args.Candidate) (facet.CandidateFacets, error) {
			return facet.CandidateFacets{}, errors.New("engine down")
		},
	}
	svc := &CandidateService{svc: mock}

	p, err := svc.Search(context.Background(), CandidateQuery{Skills: []string{"go"}, Page: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Items) != 1 {
		t.Errorf("items = %+v", p.Items)
	}
	if _, err := svc.Get(context.Background(), "c9"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Facets(context.Background(), CandidateQuery{}); err == nil {
		t.Error("expected facets error")
	}
}

// --- SitemapService ---

func TestSitemapService_Walk(t *testing.T) {
	mock := &mockSitemapUC{
		walkFn: func(
			_ context.Context, v sitemapuc.Variant, after page.Cursor, fn func(job.SitemapEntry) error,
		) (page.Cursor, error) {
			if v != sitemapuc.Full {
				t.Errorf("variant = %s", v)
			}
			if !after.IsZero() {
				t.Errorf("after = %v", after)
			}
			last := page.Cursor{"2026-10-02", "R1"}
			if err := fn(job.SitemapEntry{Reference: "R1", Cursor: last}); err != nil {
				return nil, err
			}
			return last, nil
		},
	}
	svc := &SitemapService{svc: mock}

	var refs []string
	token, err := svc.Walk(context.Background(), SitemapFull, "", func(e SitemapEntry) error {
		refs = append(refs, e.Reference)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 1 || refs[0] != "R1" {
		t.Errorf("refs = %v", refs)
	}
	want, _ := page.Cursor{"2026-10-02", "R1"}.Encode()
	if token != want {
		t.Errorf("token = %q, want %q", token, want)
	}
}

func TestSitemapService_Walk_BadToken(t *testing.T) {
	svc := &SitemapService{svc: &mockSitemapUC{}}
	_, err := svc.Walk(context.Background(), SitemapMinimal, "%%%", func(SitemapEntry) error { return nil })
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
