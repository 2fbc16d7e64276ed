package search

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/kailas-cloud/jobsearch/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	searchFn func(ctx context.Context, req *db.SearchRequest) ([]byte, error)
	requests []*db.SearchRequest
}

func (m *mockStore) Search(ctx context.Context, req *db.SearchRequest) ([]byte, error) {
	m.requests = append(m.requests, req)
	if m.searchFn != nil {
		return m.searchFn(ctx, req)
	}
	return []byte(emptyResponse), nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	repo := New(ms, Indexes{Jobs: "jobs", Candidates: "candidates"})
	return repo, ms
}

func respondWith(body string) func(context.Context, *db.SearchRequest) ([]byte, error) {
	return func(context.Context, *db.SearchRequest) ([]byte, error) {
		return []byte(body), nil
	}
}

// requestBody renders the request as the engine would receive it.
func requestBody(t *testing.T, req *db.SearchRequest) map[string]any {
	t.Helper()
	data, err := req.Body()
	if err != nil {
		t.Fatalf("render body: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	return out
}

const emptyResponse = `{"hits":{"total":{"value":0,"relation":"eq"},"hits":[]}}`

const twoJobsResponse = `{
	"took": 3,
	"hits": {
		"total": {"value": 2, "relation": "eq"},
		"max_score": 1.2,
		"hits": [
			{"_id": "a1", "_score": 1.2, "_source": {
				"reference": "REF-1", "title": "Go Engineer", "role": "Engineer",
				"location": {"city": "Chicago", "region": "Illinois", "country": "US"},
				"skills": ["go"], "salary": {"from": 50000, "to": 70000, "currency": "USD"},
				"remote": true, "advertExpiry": "2099-01-01"
			}},
			{"_id": "a2", "_score": 1.1, "_source": {"reference": "REF-2", "title": "SRE"}}
		]
	}
}`
