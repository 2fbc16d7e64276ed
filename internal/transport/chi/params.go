package chi

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/kailas-cloud/jobsearch/internal/domain"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/args"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/query"
)

// BrandHeader selects the brand; the brand query parameter is the fallback.
const BrandHeader = "X-Brand"

// requestedBrand is the raw brand of a request, header first.
func requestedBrand(r *http.Request) string {
	if raw := r.Header.Get(BrandHeader); raw != "" {
		return raw
	}
	return r.URL.Query().Get("brand")
}

func (s *Server) queryOptions(r *http.Request) (query.Options, error) {
	brand, err := domain.ParseBrand(strings.ToLower(requestedBrand(r)), s.defaultBrand)
	if err != nil {
		return query.Options{}, err
	}
	ignore, err := boolParam(r.URL.Query(), "ignoreExpiryDate")
	if err != nil {
		return query.Options{}, err
	}
	return query.Options{IgnoreExpiryDate: ignore, Brand: brand}, nil
}

func jobArgs(q url.Values) (args.Job, error) {
	a := args.Job{
		Reference:      q.Get("reference"),
		Keyword:        q.Get("keyword"),
		Location:       q.Get("location"),
		Role:           q["role"],
		Levels:         q["levels"],
		Skills:         q["skills"],
		JobType:        q.Get("jobType"),
		AddedSince:     q.Get("addedSince"),
		SalaryCurrency: q.Get("salaryCurrency"),
		Product:        q.Get("product"),
		Segment:        q.Get("segment"),
	}
	var err error
	if a.Remote, err = boolParam(q, "remote"); err != nil {
		return args.Job{}, err
	}
	if a.Security, err = boolParam(q, "security"); err != nil {
		return args.Job{}, err
	}
	if a.SalaryFrom, err = floatParam(q, "salaryFrom"); err != nil {
		return args.Job{}, err
	}
	if a.SalaryTo, err = floatParam(q, "salaryTo"); err != nil {
		return args.Job{}, err
	}
	if a.Page, err = pageParam(q); err != nil {
		return args.Job{}, err
	}
	return a, nil
}

func candidateArgs(q url.Values) (args.Candidate, error) {
	a := args.Candidate{
		Keyword:    q.Get("keyword"),
		Location:   q.Get("location"),
		JobType:    q.Get("jobType"),
		Skills:     q["skills"],
		JobTitles:  q["jobTitles"],
		Levels:     q["levels"],
		AddedSince: q.Get("addedSince"),
	}
	var err error
	if a.Page, err = pageParam(q); err != nil {
		return args.Candidate{}, err
	}
	return a, nil
}

func boolParam(q url.Values, name string) (bool, error) {
	v := q.Get(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, domain.Invalid("%s must be a boolean", name)
	}
	return b, nil
}

// floatParam parses an optional numeric parameter. Absent is nil; anything
// non-numeric is rejected rather than ignored.
func floatParam(q url.Values, name string) (*float64, error) {
	v := q.Get(name)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, domain.Invalid("%s must be a number", name)
	}
	return &f, nil
}

func pageParam(q url.Values) (int, error) {
	v := q.Get("page")
	if v == "" {
		return 1, nil
	}
	p, err := strconv.Atoi(v)
	if err != nil || p < 1 {
		return 0, domain.Invalid("page must be a positive integer")
	}
	return p, nil
}
