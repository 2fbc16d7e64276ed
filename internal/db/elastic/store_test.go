package elastic

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/kailas-cloud/jobsearch/internal/db"
	"github.com/kailas-cloud/jobsearch/internal/metrics"
)

func TestMain(m *testing.M) {
	metrics.RegisterSearchMetrics()
	os.Exit(m.Run())
}

// newTestStore starts a fake cluster that answers every request with handler.
func newTestStore(t *testing.T, handler http.HandlerFunc) *Store {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	s, err := NewStore(Config{Addrs: []string{srv.URL}})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestNewStore_AddrsRequired(t *testing.T) {
	if _, err := NewStore(Config{}); err == nil {
		t.Fatal("expected error for empty addrs")
	}
}

func TestSearch_SendsBodyToIndex(t *testing.T) {
	var gotPath, gotBody string
	s := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		_, _ = w.Write([]byte(`{"hits":{"total":{"value":0,"relation":"eq"},"hits":[]}}`))
	})

	req := &db.SearchRequest{
		Index: "jobs",
		Query: map[string]any{"match_all": map[string]any{}},
		Size:  db.IntPtr(10),
	}
	data, err := s.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/jobs/_search" {
		t.Errorf("path = %q, want /jobs/_search", gotPath)
	}
	if gotBody != `{"query":{"match_all":{}},"size":10}` {
		t.Errorf("body = %s", gotBody)
	}
	if string(data) != `{"hits":{"total":{"value":0,"relation":"eq"},"hits":[]}}` {
		t.Errorf("unexpected response: %s", data)
	}
}

func TestSearch_ErrorStatus(t *testing.T) {
	s := newTestStore(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"parsing_exception"},"status":400}`))
	})

	_, err := s.Search(context.Background(), &db.SearchRequest{Index: "jobs"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, db.ErrEngineStatus) {
		t.Errorf("expected ErrEngineStatus, got %v", err)
	}
	var dbErr *db.Error
	if !errors.As(err, &dbErr) || dbErr.Op != db.OpSearch {
		t.Errorf("expected *db.Error with op SEARCH, got %v", err)
	}
}

func TestSearch_InvalidRequest(t *testing.T) {
	s := newTestStore(t, func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("engine must not be called for an invalid request")
	})
	if _, err := s.Search(context.Background(), &db.SearchRequest{}); err == nil {
		t.Fatal("expected error for missing index")
	}
}

func TestPing(t *testing.T) {
	s := newTestStore(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPing_Unavailable(t *testing.T) {
	s := newTestStore(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	if err := s.Ping(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
