package jobsearch

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver   string // "elastic" or "fixtures"
	addrs    []string
	username string
	password string
	apiKey   string

	jobIndex       string
	candidateIndex string
	brand          Brand

	cacheAddr     string
	cachePassword string
	cacheTTL      time.Duration

	sitemapPageSize     int
	sitemapFullPageSize int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithElasticsearch configures the client to query an Elasticsearch cluster.
func WithElasticsearch(addrs ...string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverElastic
		c.addrs = addrs
	})
}

// WithBasicAuth sets cluster credentials.
func WithBasicAuth(username, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.username = username
		c.password = password
	})
}

// WithAPIKey sets a cluster API key. Takes precedence over basic auth.
func WithAPIKey(key string) Option {
	return optionFunc(func(c *clientConfig) {
		c.apiKey = key
	})
}

// WithFixtures serves the embedded fixture data set instead of a cluster.
func WithFixtures() Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverFixtures
	})
}

// WithIndexes overrides the job and candidate index names.
// Defaults: "jobs" and "candidates".
func WithIndexes(jobs, candidates string) Option {
	return optionFunc(func(c *clientConfig) {
		c.jobIndex = jobs
		c.candidateIndex = candidates
	})
}

// WithBrand sets the brand used by Jobs(). Default: BrandStandard.
func WithBrand(b Brand) Option {
	return optionFunc(func(c *clientConfig) {
		c.brand = b
	})
}

// WithFacetCache caches facet results in Redis or Valkey.
// A non-positive ttl uses the cache default.
func WithFacetCache(addr, password string, ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.cacheAddr = addr
		c.cachePassword = password
		c.cacheTTL = ttl
	})
}

// WithSitemapPageSizes sets the cursor page sizes of the minimal and full
// sitemap exports. Defaults: 5000 and 500.
func WithSitemapPageSizes(minimal, full int) Option {
	return optionFunc(func(c *clientConfig) {
		c.sitemapPageSize = minimal
		c.sitemapFullPageSize = full
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
