// Package chi exposes the search operations over HTTP.
package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/jobsearch/internal/domain"
	"github.com/kailas-cloud/jobsearch/internal/domain/job"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/page"
	healthuc "github.com/kailas-cloud/jobsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/jobsearch/internal/usecase/search"
	sitemapuc "github.com/kailas-cloud/jobsearch/internal/usecase/sitemap"
)

// Server holds the HTTP handlers.
type Server struct {
	search       *searchuc.Service
	sitemap      *sitemapuc.Walker
	health       *healthuc.Service
	defaultBrand domain.Brand
	logger       *zap.Logger
}

// NewServer creates an HTTP API server. defaultBrand applies when a request
// names no brand.
func NewServer(
	search *searchuc.Service,
	sitemap *sitemapuc.Walker,
	health *healthuc.Service,
	defaultBrand domain.Brand,
	logger *zap.Logger,
) *Server {
	return &Server{
		search:       search,
		sitemap:      sitemap,
		health:       health,
		defaultBrand: defaultBrand,
		logger:       logger,
	}
}

// Routes registers every endpoint on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/jobs", s.SearchJobs)
		r.Get("/jobs/facets", s.JobFacets)
		r.Get("/jobs/{reference}", s.GetJob)
		r.Get("/candidates", s.SearchCandidates)
		r.Get("/candidates/facets", s.CandidateFacets)
		r.Get("/candidates/{id}", s.GetCandidate)
		r.Get("/sitemap/jobs", s.sitemapHandler(sitemapuc.Minimal))
		r.Get("/sitemap/jobs/full", s.sitemapHandler(sitemapuc.Full))
	})
}

// SearchJobs handles GET /v1/jobs.
func (s *Server) SearchJobs(w http.ResponseWriter, r *http.Request) {
	opts, err := s.queryOptions(r)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	a, err := jobArgs(r.URL.Query())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	p, err := s.search.SearchJobs(r.Context(), a, opts)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// GetJob handles GET /v1/jobs/{reference}.
func (s *Server) GetJob(w http.ResponseWriter, r *http.Request) {
	opts, err := s.queryOptions(r)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	j, ok, err := s.search.GetJob(r.Context(), chi.URLParam(r, "reference"), opts)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, ErrorCodeNotFound, "job not found")
		return
	}
	writeJSON(w, http.StatusOK, j)
}

// JobFacets handles GET /v1/jobs/facets.
func (s *Server) JobFacets(w http.ResponseWriter, r *http.Request) {
	opts, err := s.queryOptions(r)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	a, err := jobArgs(r.URL.Query())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	f, err := s.search.JobFacets(r.Context(), a, opts)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

// SearchCandidates handles GET /v1/candidates.
func (s *Server) SearchCandidates(w http.ResponseWriter, r *http.Request) {
	a, err := candidateArgs(r.URL.Query())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	p, err := s.search.SearchCandidates(r.Context(), a)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// GetCandidate handles GET /v1/candidates/{id}.
func (s *Server) GetCandidate(w http.ResponseWriter, r *http.Request) {
	c, ok, err := s.search.GetCandidate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, ErrorCodeNotFound, "candidate not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CandidateFacets handles GET /v1/candidates/facets.
func (s *Server) CandidateFacets(w http.ResponseWriter, r *http.Request) {
	a, err := candidateArgs(r.URL.Query())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	f, err := s.search.CandidateFacets(r.Context(), a)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

// SitemapResponse is the body of the sitemap export endpoints. Cursor
// resumes the export when passed back as the after parameter.
type SitemapResponse struct {
	Items  []job.SitemapEntry `json:"items"`
	Cursor string             `json:"cursor,omitempty"`
}

func (s *Server) sitemapHandler(v sitemapuc.Variant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		after, err := page.DecodeCursor(r.URL.Query().Get("after"))
		if err != nil {
			s.handleDomainError(w, err)
			return
		}

		items, last, err := s.sitemap.Collect(r.Context(), v, after)
		if err != nil {
			s.handleDomainError(w, err)
			return
		}
		token, err := last.Encode()
		if err != nil {
			s.handleDomainError(w, err)
			return
		}
		if items == nil {
			items = []job.SitemapEntry{}
		}
		writeJSON(w, http.StatusOK, SitemapResponse{Items: items, Cursor: token})
	}
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}
	writeJSON(w, httpStatus, report)
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}
