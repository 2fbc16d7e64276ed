package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/jobsearch/internal/domain"
	"github.com/kailas-cloud/jobsearch/internal/repository/dummy"
	healthuc "github.com/kailas-cloud/jobsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/jobsearch/internal/usecase/search"
	sitemapuc "github.com/kailas-cloud/jobsearch/internal/usecase/sitemap"
)

// newTestRouter wires the real services over the fixture driver.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	d, err := dummy.New()
	if err != nil {
		t.Fatalf("load fixtures: %v", err)
	}
	srv := NewServer(
		searchuc.New(d, d, d),
		sitemapuc.New(d, sitemapuc.Config{PageSize: 2, FullPageSize: 2}),
		healthuc.New(nil, nil),
		domain.BrandStandard,
		zap.NewNop(),
	)
	r := chi.NewRouter()
	srv.Routes(r)
	return r
}

func doGet(t *testing.T, h http.Handler, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	for k, v := range header {
		req.Header[k] = v
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}
