// Package facetcache caches facet counts in a key-value store. Identical
// concurrent computations are collapsed into one engine query.
package facetcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/kailas-cloud/jobsearch/internal/db"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/args"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/facet"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/query"
)

const cacheKeyPrefix = "jobsearch:facets:"

// DefaultTTL is used when New is given a non-positive TTL.
const DefaultTTL = 5 * time.Minute

// flightTimeout bounds a shared computation, which outlives the caller that
// started it.
const flightTimeout = 30 * time.Second

// store is the consumer interface for the facet cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Facets computes facet counts. Implemented by the search repository.
type Facets interface {
	JobFacets(ctx context.Context, a args.Job, opts query.Options) (facet.JobFacets, error)
	CandidateFacets(ctx context.Context, a args.Candidate) (facet.CandidateFacets, error)
}

// CachedFacets is a caching decorator over Facets.
type CachedFacets struct {
	inner      Facets
	store      store
	ttl        time.Duration
	sf         singleflight.Group
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
// A non-positive ttl falls back to DefaultTTL.
func New(
	inner Facets,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedFacets {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedFacets{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// JobFacets returns cached job facets or computes them.
func (c *CachedFacets) JobFacets(ctx context.Context, a args.Job, opts query.Options) (facet.JobFacets, error) {
	a.Page = 0
	key, err := cacheKey("jobs", a, opts)
	if err != nil {
		return c.inner.JobFacets(ctx, a, opts)
	}
	return load(ctx, c, key, func(ctx context.Context) (facet.JobFacets, error) {
		return c.inner.JobFacets(ctx, a, opts)
	})
}

// CandidateFacets returns cached candidate facets or computes them.
func (c *CachedFacets) CandidateFacets(ctx context.Context, a args.Candidate) (facet.CandidateFacets, error) {
	a.Page = 0
	key, err := cacheKey("candidates", a, nil)
	if err != nil {
		return c.inner.CandidateFacets(ctx, a)
	}
	return load(ctx, c, key, func(ctx context.Context) (facet.CandidateFacets, error) {
		return c.inner.CandidateFacets(ctx, a)
	})
}

// load runs one shared computation per key. Each caller waits on its own
// context; the computation itself is detached from the caller that started it.
func load[T any](ctx context.Context, c *CachedFacets, key string, compute func(context.Context) (T, error)) (T, error) {
	var zero T
	ch := c.sf.DoChan(key, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flightTimeout)
		defer cancel()

		var cached T
		if c.getFromCache(fctx, key, &cached) {
			c.incCache("hit")
			return cached, nil
		}
		c.incCache("miss")

		v, err := compute(fctx)
		if err != nil {
			return nil, err
		}
		c.putToCache(fctx, key, v)
		return v, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return zero, res.Err
	}
	v, ok := res.Val.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected facet cache result type %T", res.Val)
	}
	return v, nil
}

func (c *CachedFacets) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

// cacheKey hashes the domain, arguments and options. JSON encoding of
// structs follows field order, so equal inputs give equal keys.
func cacheKey(domainName string, a any, opts any) (string, error) {
	data, err := json.Marshal(struct {
		Domain  string `json:"d"`
		Args    any    `json:"a"`
		Options any    `json:"o,omitempty"`
	}{domainName, a, opts})
	if err != nil {
		return "", fmt.Errorf("facet cache key: %w", err)
	}
	h := sha256.Sum256(data)
	return cacheKeyPrefix + domainName + ":" + hex.EncodeToString(h[:]), nil
}

func (c *CachedFacets) getFromCache(ctx context.Context, key string, dst any) bool {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached facets", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		c.logger.Warn("Failed to parse cached facets", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *CachedFacets) putToCache(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("Failed to encode facets for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache facets", zap.String("key", key), zap.Error(err))
	}
}
