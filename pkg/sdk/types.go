package jobsearch

import (
	"github.com/kailas-cloud/jobsearch/internal/domain"
	"github.com/kailas-cloud/jobsearch/internal/domain/candidate"
	"github.com/kailas-cloud/jobsearch/internal/domain/job"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/args"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/facet"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/page"
)

// Brand selects brand-specific filters and job type matching.
type Brand string

// Brand constants.
const (
	BrandStandard   Brand = Brand(domain.BrandStandard)
	BrandSpecialist Brand = Brand(domain.BrandSpecialist)
)

// Job type values understood by JobQuery.JobType. Other values match verbatim.
const (
	JobTypeContract  = "contract"
	JobTypePermanent = "permanent"
)

// SitemapVariant selects the sitemap export shape.
type SitemapVariant string

// Sitemap variants.
const (
	SitemapMinimal SitemapVariant = "minimal"
	SitemapFull    SitemapVariant = "full"
)

// Result types shared with the engine layer.
type (
	Job             = job.Job
	Salary          = job.Salary
	JobPage         = job.Page
	Candidate       = candidate.Candidate
	CandidatePage   = candidate.Page
	Location        = domain.Location
	Total           = page.Total
	Bucket          = facet.Bucket
	JobFacets       = facet.JobFacets
	CandidateFacets = facet.CandidateFacets
	SitemapEntry    = job.SitemapEntry
)

// JobQuery holds job search filters. Zero values are ignored.
type JobQuery struct {
	Reference      string
	Keyword        string
	Location       string
	Roles          []string
	Levels         []string
	Skills         []string
	JobType        string
	Remote         bool
	Security       bool
	AddedSince     string // date math or ISO date, e.g. "now-7d/d"
	SalaryFrom     *float64
	SalaryTo       *float64
	SalaryCurrency string
	Product        string // specialist brand only
	Segment        string // specialist brand only
	Page           int    // 1-based
}

func (q JobQuery) toArgs() args.Job {
	return args.Job{
		Reference:      q.Reference,
		Keyword:        q.Keyword,
		Location:       q.Location,
		Role:           q.Roles,
		Levels:         q.Levels,
		Skills:         q.Skills,
		JobType:        q.JobType,
		Remote:         q.Remote,
		Security:       q.Security,
		AddedSince:     q.AddedSince,
		SalaryFrom:     q.SalaryFrom,
		SalaryTo:       q.SalaryTo,
		SalaryCurrency: q.SalaryCurrency,
		Product:        q.Product,
		Segment:        q.Segment,
		Page:           q.Page,
	}
}

// CandidateQuery holds candidate search filters. Zero values are ignored.
type CandidateQuery struct {
	Keyword    string
	Location   string
	JobType    string
	Skills     []string
	JobTitles  []string
	Levels     []string
	AddedSince string
	Page       int
}

func (q CandidateQuery) toArgs() args.Candidate {
	return args.Candidate{
		Keyword:    q.Keyword,
		Location:   q.Location,
		JobType:    q.JobType,
		Skills:     q.Skills,
		JobTitles:  q.JobTitles,
		Levels:     q.Levels,
		AddedSince: q.AddedSince,
		Page:       q.Page,
	}
}
