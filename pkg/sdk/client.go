package jobsearch

import (
	"context"
	"errors"
	"fmt"
	"time"

	dbElastic "github.com/kailas-cloud/jobsearch/internal/db/elastic"
	dbRedis "github.com/kailas-cloud/jobsearch/internal/db/redis"
	"github.com/kailas-cloud/jobsearch/internal/domain"
	"github.com/kailas-cloud/jobsearch/internal/domain/candidate"
	"github.com/kailas-cloud/jobsearch/internal/domain/job"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/args"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/facet"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/page"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/query"
	"github.com/kailas-cloud/jobsearch/internal/metrics"
	"github.com/kailas-cloud/jobsearch/internal/repository/dummy"
	"github.com/kailas-cloud/jobsearch/internal/repository/facetcache"
	searchrepo "github.com/kailas-cloud/jobsearch/internal/repository/search"
	healthuc "github.com/kailas-cloud/jobsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/jobsearch/internal/usecase/search"
	sitemapuc "github.com/kailas-cloud/jobsearch/internal/usecase/sitemap"
)

const defaultReadinessTimeout = 10 * time.Second

const (
	driverElastic  = "elastic"
	driverFixtures = "fixtures"
)

// Internal interfaces, replaced in tests.
type searchUseCase interface {
	SearchJobs(ctx context.Context, a args.Job, opts query.Options) (job.Page, error)
	GetJob(ctx context.Context, reference string, opts query.Options) (job.Job, bool, error)
	JobFacets(ctx context.Context, a args.Job, opts query.Options) (facet.JobFacets, error)
	SearchCandidates(ctx context.Context, a args.Candidate) (candidate.Page, error)
	GetCandidate(ctx context.Context, id string) (candidate.Candidate, bool, error)
	CandidateFacets(ctx context.Context, a args.Candidate) (facet.CandidateFacets, error)
}

type sitemapUseCase interface {
	Walk(ctx context.Context, v sitemapuc.Variant, after page.Cursor, fn func(job.SitemapEntry) error) (page.Cursor, error)
}

// backend is what a driver serves.
type backend interface {
	searchuc.JobRepository
	searchuc.CandidateRepository
	searchuc.FacetRepository
	sitemapuc.Scanner
}

// Client is the jobsearch SDK entry point.
type Client struct {
	closers    []func()
	searchSvc  searchUseCase
	sitemapSvc sitemapUseCase
	healthSvc  healthUseCase
	brand      domain.Brand
	obs        *observer
}

// New creates a jobsearch Client. For a cluster backend the provided
// context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		jobIndex:       "jobs",
		candidateIndex: "candidates",
		brand:          BrandStandard,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	brand, err := domain.ParseBrand(string(cfg.brand), domain.BrandStandard)
	if err != nil {
		return nil, fmt.Errorf("jobsearch: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	c := &Client{brand: brand, obs: obs}
	repo, engine, err := createBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var facets searchuc.FacetRepository = repo
	var cache healthuc.Pinger
	if cfg.cacheAddr != "" {
		kv, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    []string{cfg.cacheAddr},
			Password: cfg.cachePassword,
		})
		if err != nil {
			return nil, fmt.Errorf("jobsearch: create cache store: %w", err)
		}
		c.closers = append(c.closers, kv.Close)
		cache = kv
		facets = facetcache.New(repo, kv, cfg.cacheTTL, metrics.FacetCacheTotal, nil)
	}

	c.searchSvc = searchuc.New(repo, repo, facets)
	c.sitemapSvc = sitemapuc.New(repo, sitemapuc.Config{
		PageSize:     cfg.sitemapPageSize,
		FullPageSize: cfg.sitemapFullPageSize,
	})
	c.healthSvc = healthuc.New(engine, cache)
	return c, nil
}

// createBackend returns the driver and, for a cluster, its pinger. The
// pinger is a nil interface for fixtures.
func createBackend(ctx context.Context, cfg *clientConfig) (backend, healthuc.Pinger, error) {
	switch cfg.driver {
	case driverElastic:
		if len(cfg.addrs) == 0 {
			return nil, nil, errors.New("jobsearch: engine address required (use WithElasticsearch)")
		}
		store, err := dbElastic.NewStore(dbElastic.Config{
			Addrs:    cfg.addrs,
			Username: cfg.username,
			Password: cfg.password,
			APIKey:   cfg.apiKey,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("jobsearch: create engine store: %w", err)
		}
		if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			return nil, nil, fmt.Errorf("jobsearch: engine not ready: %w", err)
		}
		return searchrepo.New(store, searchrepo.Indexes{
			Jobs:       cfg.jobIndex,
			Candidates: cfg.candidateIndex,
		}), store, nil
	case driverFixtures:
		d, err := dummy.New()
		if err != nil {
			return nil, nil, fmt.Errorf("jobsearch: load fixtures: %w", err)
		}
		return d, nil, nil
	case "":
		return nil, nil, errors.New("jobsearch: backend required (use WithElasticsearch or WithFixtures)")
	default:
		return nil, nil, fmt.Errorf("jobsearch: unknown driver %q", cfg.driver)
	}
}

// Close releases all resources.
func (c *Client) Close() {
	for _, closeFn := range c.closers {
		closeFn()
	}
}

// Jobs returns the job search service for the client's brand.
func (c *Client) Jobs() *JobService {
	return &JobService{svc: c.searchSvc, brand: c.brand, obs: c.obs}
}

// Candidates returns the candidate search service.
func (c *Client) Candidates() *CandidateService {
	return &CandidateService{svc: c.searchSvc, obs: c.obs}
}

// Sitemap returns the sitemap export service.
func (c *Client) Sitemap() *SitemapService {
	return &SitemapService{svc: c.sitemapSvc, obs: c.obs}
}
