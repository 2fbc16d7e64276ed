package facetcache

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/jobsearch/internal/db"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/args"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/facet"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/query"
)

type mockFacets struct {
	mu             sync.Mutex
	job            facet.JobFacets
	err            error
	jobCalls       int
	candidateCalls int
	release        chan struct{}
	entered        chan struct{}
	ctxErr         error
}

func (m *mockFacets) JobFacets(ctx context.Context, _ args.Job, _ query.Options) (facet.JobFacets, error) {
	if m.entered != nil {
		m.entered <- struct{}{}
	}
	if m.release != nil {
		<-m.release
	}
	m.mu.Lock()
	m.jobCalls++
	m.ctxErr = ctx.Err()
	m.mu.Unlock()
	return m.job, m.err
}

func (m *mockFacets) CandidateFacets(_ context.Context, _ args.Candidate) (facet.CandidateFacets, error) {
	m.mu.Lock()
	m.candidateCalls++
	m.mu.Unlock()
	return facet.CandidateFacets{Skills: []facet.Bucket{{Key: "go", DocCount: 2}}}, m.err
}

// memStore is an in-memory KV used in place of Redis.
type memStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *memStore) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func newTestCache(t *testing.T, inner *mockFacets) (*CachedFacets, *memStore) {
	t.Helper()
	ms := newMemStore()
	return New(inner, ms, time.Minute, nil, zap.NewNop()), ms
}
