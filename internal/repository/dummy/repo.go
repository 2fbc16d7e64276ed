// Package dummy serves search operations from embedded fixtures, for local
// development without a search engine.
package dummy

import (
	"context"
	_ "embed"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/jobsearch/internal/domain"
	"github.com/kailas-cloud/jobsearch/internal/domain/candidate"
	"github.com/kailas-cloud/jobsearch/internal/domain/job"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/args"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/facet"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/page"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/query"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type fixtures struct {
	Jobs       []job.Job             `yaml:"jobs"`
	Candidates []candidate.Candidate `yaml:"candidates"`
}

// Repo implements the same contracts as the engine-backed repository.
type Repo struct {
	jobs       []job.Job
	candidates []candidate.Candidate
	now        func() time.Time
}

// New loads the embedded fixtures.
func New() (*Repo, error) {
	return Load(defaultFixtures)
}

// Load parses YAML fixtures. Every document must pass schema validation.
func Load(data []byte) (*Repo, error) {
	var fx fixtures
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	for i := range fx.Jobs {
		if err := fx.Jobs[i].Validate(); err != nil {
			return nil, fmt.Errorf("fixture job %d: %w", i, err)
		}
	}
	for i := range fx.Candidates {
		if err := fx.Candidates[i].Validate(); err != nil {
			return nil, fmt.Errorf("fixture candidate %d: %w", i, err)
		}
	}
	return &Repo{jobs: fx.Jobs, candidates: fx.Candidates, now: time.Now}, nil
}

// SearchJobs filters the fixture jobs and returns one page.
func (r *Repo) SearchJobs(_ context.Context, a args.Job, opts query.Options) (job.Page, error) {
	matched := r.matchJobs(a, opts)
	return job.Page{Items: pageOf(matched, a.Page), Pagination: totalOf(len(matched))}, nil
}

// GetJob finds a fixture job by reference.
func (r *Repo) GetJob(_ context.Context, reference string, opts query.Options) (job.Job, bool, error) {
	if reference == "" {
		return job.Job{}, false, domain.Invalid("reference is required")
	}
	matched := r.matchJobs(args.Job{Reference: reference}, opts)
	if len(matched) == 0 {
		return job.Job{}, false, nil
	}
	return matched[0], true, nil
}

// JobFacets counts facet values over the matching fixture jobs.
func (r *Repo) JobFacets(_ context.Context, a args.Job, opts query.Options) (facet.JobFacets, error) {
	matched := r.matchJobs(a, opts)
	var roles, levels, skills, currencies []string
	remote, security, recent := 0, 0, 0
	weekAgo := r.now().AddDate(0, 0, -7).Format(time.DateOnly)
	for _, j := range matched {
		roles = appendNonEmpty(roles, j.Role)
		levels = appendNonEmpty(levels, j.Seniority)
		skills = append(skills, j.Skills...)
		if j.Salary != nil {
			currencies = appendNonEmpty(currencies, j.Salary.Currency)
		}
		if j.Remote {
			remote++
		}
		if j.Security {
			security++
		}
		if j.DatePosted >= weekAgo {
			recent++
		}
	}
	return facet.JobFacets{
		Roles:      countTerms(roles),
		Levels:     countTerms(levels),
		Skills:     countTerms(skills),
		Currencies: countTerms(currencies),
		Remote:     flagBucket(remote, "Remote", "remote"),
		Security:   flagBucket(security, "Security clearance", "security"),
		New:        flagBucket(recent, "New jobs", "newJobs"),
	}, nil
}

// ScanJobs returns fixture jobs in sitemap order after the given cursor.
// Cursors are [lastModified, reference].
func (r *Repo) ScanJobs(_ context.Context, req job.ScanRequest, opts query.Options) ([]job.SitemapEntry, error) {
	if req.Size <= 0 {
		return nil, domain.Invalid("scan size must be positive")
	}
	matched := r.matchJobs(args.Job{}, opts)
	sort.Slice(matched, func(i, k int) bool {
		if matched[i].LastModified != matched[k].LastModified {
			return matched[i].LastModified < matched[k].LastModified
		}
		return matched[i].Reference < matched[k].Reference
	})

	afterMod, afterRef, err := scanPosition(req.After)
	if err != nil {
		return nil, err
	}
	withDesc := slices.Contains(req.Source, "description")

	var out []job.SitemapEntry
	for _, j := range matched {
		if !req.After.IsZero() && (j.LastModified < afterMod || (j.LastModified == afterMod && j.Reference <= afterRef)) {
			continue
		}
		loc := j.Location
		e := job.SitemapEntry{
			Reference:    j.Reference,
			Title:        j.Title,
			LastModified: j.LastModified,
			Location:     &loc,
			Cursor:       page.Cursor{j.LastModified, j.Reference},
		}
		if withDesc {
			e.Description = j.Description
		}
		out = append(out, e)
		if len(out) == req.Size {
			break
		}
	}
	return out, nil
}

// SearchCandidates filters the fixture candidates and returns one page.
func (r *Repo) SearchCandidates(_ context.Context, a args.Candidate) (candidate.Page, error) {
	matched := r.matchCandidates(a)
	return candidate.Page{Items: pageOf(matched, a.Page), Pagination: totalOf(len(matched))}, nil
}

// GetCandidate finds a fixture candidate by id.
func (r *Repo) GetCandidate(_ context.Context, id string) (candidate.Candidate, bool, error) {
	if id == "" {
		return candidate.Candidate{}, false, domain.Invalid("candidate id is required")
	}
	for _, c := range r.candidates {
		if c.ID == id {
			return c, true, nil
		}
	}
	return candidate.Candidate{}, false, nil
}

// CandidateFacets counts facet values over candidates matching the soft filters.
func (r *Repo) CandidateFacets(_ context.Context, a args.Candidate) (facet.CandidateFacets, error) {
	matched := r.matchCandidates(a.FacetArgs())
	var skills, titles, levels []string
	for _, c := range matched {
		skills = append(skills, c.Skills...)
		titles = appendNonEmpty(titles, c.JobTitle)
		levels = appendNonEmpty(levels, c.Level)
	}
	return facet.CandidateFacets{
		Skills:    countTerms(skills),
		JobTitles: countTerms(titles),
		Levels:    countTerms(levels),
	}, nil
}

func (r *Repo) matchJobs(a args.Job, opts query.Options) []job.Job {
	today := r.now().Format(time.DateOnly)
	var out []job.Job
	for _, j := range r.jobs {
		if !opts.IgnoreExpiryDate && j.AdvertExpiry != "" && j.AdvertExpiry < today {
			continue
		}
		if a.Reference != "" && j.Reference != a.Reference {
			continue
		}
		if a.Keyword != "" && !containsFold(a.Keyword, j.Title, j.Description, j.Role, j.Seniority,
			j.Location.City, j.Location.Region, j.Location.Country, strings.Join(j.Skills, " ")) {
			continue
		}
		if a.Location != "" && !locationMatches(a.Location, j.Location) {
			continue
		}
		if !anyIn(a.Role, j.Role) || !anyIn(a.Levels, j.Seniority) || !anyOverlap(a.Skills, j.Skills) {
			continue
		}
		if a.JobType != "" && !slices.Contains(query.JobTypeValues(a.JobType, opts.Brand), j.JobType) {
			continue
		}
		if (a.Remote && !j.Remote) || (a.Security && !j.Security) {
			continue
		}
		if a.AddedSince != "" && j.DatePosted < a.AddedSince {
			continue
		}
		if !salaryMatches(a, j.Salary) {
			continue
		}
		if opts.Brand == domain.BrandSpecialist {
			if (a.Product != "" && j.Product != a.Product) || (a.Segment != "" && j.Segment != a.Segment) {
				continue
			}
		}
		out = append(out, j)
	}
	return out
}

func (r *Repo) matchCandidates(a args.Candidate) []candidate.Candidate {
	var out []candidate.Candidate
	for _, c := range r.candidates {
		if a.Keyword != "" && !containsFold(a.Keyword, c.Profile, c.JobTitle, c.AdvertTitle,
			strings.Join(c.Skills, " "), c.Location.City, c.Location.Region, c.Location.Country) {
			continue
		}
		if a.Location != "" && !locationMatches(a.Location, c.Location) {
			continue
		}
		if a.JobType != "" && c.JobType != a.JobType {
			continue
		}
		if !anyOverlap(a.Skills, c.Skills) || !anyIn(a.JobTitles, c.JobTitle) || !anyIn(a.Levels, c.Level) {
			continue
		}
		if a.AddedSince != "" && c.LastUpdated < a.AddedSince {
			continue
		}
		out = append(out, c)
	}
	return out
}

func salaryMatches(a args.Job, s *job.Salary) bool {
	if a.SalaryFrom == nil && a.SalaryTo == nil && a.SalaryCurrency == "" {
		return true
	}
	if s == nil {
		return false
	}
	if a.SalaryFrom != nil && (s.To == nil || *s.To < *a.SalaryFrom) {
		return false
	}
	if a.SalaryTo != nil && (s.From == nil || *s.From > *a.SalaryTo) {
		return false
	}
	return a.SalaryCurrency == "" || s.Currency == a.SalaryCurrency
}

// locationMatches requires every token of loc in some location field.
func locationMatches(loc string, l domain.Location) bool {
	fields := strings.ToLower(l.City + " " + l.Region + " " + l.Country)
	tokens := strings.FieldsFunc(strings.ToLower(loc), func(r rune) bool { return r == ' ' || r == ',' })
	for _, t := range tokens {
		if !strings.Contains(fields, t) {
			return false
		}
	}
	return true
}

func containsFold(needle string, haystack ...string) bool {
	needle = strings.ToLower(needle)
	for _, h := range haystack {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

func anyIn(want []string, v string) bool {
	return len(want) == 0 || slices.Contains(want, v)
}

func anyOverlap(want, have []string) bool {
	if len(want) == 0 {
		return true
	}
	for _, h := range have {
		if slices.Contains(want, h) {
			return true
		}
	}
	return false
}

func scanPosition(c page.Cursor) (string, string, error) {
	if c.IsZero() {
		return "", "", nil
	}
	if len(c) != 2 {
		return "", "", domain.Invalid("cursor must have two keys")
	}
	mod, ok1 := c[0].(string)
	ref, ok2 := c[1].(string)
	if !ok1 || !ok2 {
		return "", "", domain.Invalid("cursor keys must be strings")
	}
	return mod, ref, nil
}

func pageOf[T any](items []T, p int) []T {
	from := page.Offset(p)
	if from >= len(items) {
		return []T{}
	}
	to := min(from+page.Size, len(items))
	return items[from:to]
}

func totalOf(n int) page.Total {
	return page.Total{Value: n, Relation: page.RelationEq}
}

func appendNonEmpty(s []string, v string) []string {
	if v == "" {
		return s
	}
	return append(s, v)
}

// countTerms mirrors a terms aggregation: doc count descending, then key.
func countTerms(values []string) []facet.Bucket {
	counts := map[string]int{}
	for _, v := range values {
		counts[v]++
	}
	out := make([]facet.Bucket, 0, len(counts))
	for k, n := range counts {
		out = append(out, facet.Bucket{Key: k, DocCount: n})
	}
	sort.Slice(out, func(i, k int) bool {
		if out[i].DocCount != out[k].DocCount {
			return out[i].DocCount > out[k].DocCount
		}
		return out[i].Key < out[k].Key
	})
	return out
}

func flagBucket(n int, label, value string) []facet.Bucket {
	if n == 0 {
		return []facet.Bucket{}
	}
	return []facet.Bucket{{Key: label, DocCount: n, Value: value}}
}
