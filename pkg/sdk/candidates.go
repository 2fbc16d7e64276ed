package jobsearch

import (
	"context"
	"fmt"
	"time"
)

// CandidateService searches candidate profiles.
type CandidateService struct {
	svc searchUseCase
	obs *observer
}

// Search returns one page of candidates matching q.
func (s *CandidateService) Search(ctx context.Context, q CandidateQuery) (_ CandidatePage, err error) {
	start := time.Now()
	defer func() { s.obs.observe(opCandidatesSearch, "", start, err) }()

	p, err := s.svc.SearchCandidates(ctx, q.toArgs())
	if err != nil {
		return CandidatePage{}, fmt.Errorf("search candidates: %w", err)
	}
	return p, nil
}

// Get returns the candidate with the given ID, or ErrNotFound.
func (s *CandidateService) Get(ctx context.Context, id string) (_ Candidate, err error) {
	start := time.Now()
	defer func() { s.obs.observe(opCandidatesGet, "", start, err) }()

	c, ok, err := s.svc.GetCandidate(ctx, id)
	if err != nil {
		return Candidate{}, fmt.Errorf("get candidate: %w", err)
	}
	if !ok {
		return Candidate{}, fmt.Errorf("candidate %q: %w", id, ErrNotFound)
	}
	return c, nil
}

// Facets returns the facet buckets for candidates. Only the keyword,
// location and job type of q narrow the facets.
func (s *CandidateService) Facets(ctx context.Context, q CandidateQuery) (_ CandidateFacets, err error) {
	start := time.Now()
	defer func() { s.obs.observe(opCandidatesFacets, "", start, err) }()

	f, err := s.svc.CandidateFacets(ctx, q.toArgs())
	if err != nil {
		return CandidateFacets{}, fmt.Errorf("candidate facets: %w", err)
	}
	return f, nil
}
