// Package facet describes the aggregations requested for facet counts and
// reshapes the engine's raw buckets into stable facet records.
package facet

import (
	"encoding/json"
	"errors"

	"github.com/kailas-cloud/jobsearch/internal/domain"
	"github.com/kailas-cloud/jobsearch/internal/domain/schema"
)

// TermsSize caps the number of buckets per terms aggregation.
const TermsSize = 100

// NewJobsSince is the lower bound of the "new jobs" range dimension.
const NewJobsSince = "now-7d/d"

// Bucket is one facet option. Value is set only for relabelled dimensions.
type Bucket struct {
	Key      string `json:"key"`
	DocCount int    `json:"docCount"`
	Value    string `json:"value,omitempty"`
}

// JobFacets are the facet counts of the job domain.
type JobFacets struct {
	Roles      []Bucket `json:"roles"`
	Levels     []Bucket `json:"levels"`
	Skills     []Bucket `json:"skills"`
	Currencies []Bucket `json:"currencies"`
	Remote     []Bucket `json:"remote"`
	Security   []Bucket `json:"security"`
	New        []Bucket `json:"new"`
}

// CandidateFacets are the facet counts of the candidate domain.
type CandidateFacets struct {
	Skills    []Bucket `json:"skills"`
	JobTitles []Bucket `json:"jobTitles"`
	Levels    []Bucket `json:"levels"`
}

type kind int

const (
	kindTerms kind = iota
	kindFlag
	kindRecent
)

type dimension struct {
	name  string
	field string
	kind  kind
	label string
	value string
}

var jobDimensions = []dimension{
	{name: "roles", field: "role"},
	{name: "levels", field: "seniority"},
	{name: "skills", field: "skills"},
	{name: "currencies", field: "salary.currency"},
	{name: "remote", field: "remote", kind: kindFlag, label: "Remote", value: "remote"},
	{name: "security", field: "security", kind: kindFlag, label: "Security clearance", value: "security"},
	{name: "new", field: "datePosted", kind: kindRecent, label: "New jobs", value: "newJobs"},
}

var candidateDimensions = []dimension{
	{name: "skills", field: "skills"},
	{name: "jobTitles", field: "jobTitle.keyword"},
	{name: "levels", field: "level"},
}

// JobAggregations returns the aggs section of a job facet request.
func JobAggregations() map[string]any { return aggregations(jobDimensions) }

// CandidateAggregations returns the aggs section of a candidate facet request.
func CandidateAggregations() map[string]any { return aggregations(candidateDimensions) }

func aggregations(dims []dimension) map[string]any {
	out := make(map[string]any, len(dims))
	for _, d := range dims {
		out[d.name] = d.aggregation()
	}
	return out
}

func (d dimension) aggregation() map[string]any {
	switch d.kind {
	case kindRecent:
		return map[string]any{"range": map[string]any{
			"field":  d.field,
			"ranges": []map[string]any{{"from": NewJobsSince}},
		}}
	case kindFlag:
		return map[string]any{"terms": map[string]any{"field": d.field}}
	default:
		return map[string]any{"terms": map[string]any{"field": d.field, "size": TermsSize}}
	}
}

// DecodeJobFacets validates and reshapes the aggregations of a job facet response.
func DecodeJobFacets(aggs map[string]json.RawMessage) (JobFacets, error) {
	shaped, err := reshapeAll(jobDimensions, aggs)
	if err != nil {
		return JobFacets{}, err
	}
	return JobFacets{
		Roles:      shaped["roles"],
		Levels:     shaped["levels"],
		Skills:     shaped["skills"],
		Currencies: shaped["currencies"],
		Remote:     shaped["remote"],
		Security:   shaped["security"],
		New:        shaped["new"],
	}, nil
}

// DecodeCandidateFacets validates and reshapes the aggregations of a candidate facet response.
func DecodeCandidateFacets(aggs map[string]json.RawMessage) (CandidateFacets, error) {
	shaped, err := reshapeAll(candidateDimensions, aggs)
	if err != nil {
		return CandidateFacets{}, err
	}
	return CandidateFacets{
		Skills:    shaped["skills"],
		JobTitles: shaped["jobTitles"],
		Levels:    shaped["levels"],
	}, nil
}

func reshapeAll(dims []dimension, aggs map[string]json.RawMessage) (map[string][]Bucket, error) {
	out := make(map[string][]Bucket, len(dims))
	for _, d := range dims {
		raw, ok := aggs[d.name]
		if !ok {
			return nil, domain.NewDecodeError("aggregations."+d.name, errors.New("missing"))
		}
		buckets, err := d.reshape(raw)
		if err != nil {
			return nil, domain.NewDecodeError("aggregations."+d.name, err)
		}
		out[d.name] = buckets
	}
	return out, nil
}

func (d dimension) reshape(raw json.RawMessage) ([]Bucket, error) {
	switch d.kind {
	case kindFlag:
		return reshapeFlag(raw, d.label, d.value)
	case kindRecent:
		return reshapeRecent(raw, d.label, d.value)
	default:
		return reshapeTerms(raw)
	}
}

// Raw bucket schemas. Pointer fields distinguish "missing" from zero.

type termBucket struct {
	Key      *string `json:"key" validate:"required"`
	DocCount *int    `json:"doc_count" validate:"required,min=0"`
}

type flagBucket struct {
	Key         *float64 `json:"key" validate:"required"`
	DocCount    *int     `json:"doc_count" validate:"required,min=0"`
	KeyAsString *string  `json:"key_as_string" validate:"required"`
}

type rangeBucket struct {
	Key      *string  `json:"key" validate:"required"`
	DocCount *int     `json:"doc_count" validate:"required,min=0"`
	From     *float64 `json:"from" validate:"required"`
}

type bucketList[T any] struct {
	Buckets *[]T `json:"buckets" validate:"required,dive"`
}

func decodeBuckets[T any](raw json.RawMessage) ([]T, error) {
	var agg bucketList[T]
	if err := json.Unmarshal(raw, &agg); err != nil {
		return nil, err
	}
	if err := schema.Validate(&agg); err != nil {
		return nil, err
	}
	return *agg.Buckets, nil
}

func reshapeTerms(raw json.RawMessage) ([]Bucket, error) {
	buckets, err := decodeBuckets[termBucket](raw)
	if err != nil {
		return nil, err
	}
	out := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, Bucket{Key: *b.Key, DocCount: *b.DocCount})
	}
	return out, nil
}

// reshapeFlag keeps only the true bucket of a boolean terms aggregation and
// relabels it.
func reshapeFlag(raw json.RawMessage, label, value string) ([]Bucket, error) {
	buckets, err := decodeBuckets[flagBucket](raw)
	if err != nil {
		return nil, err
	}
	out := make([]Bucket, 0, 1)
	for _, b := range buckets {
		if *b.Key == 0 {
			continue
		}
		out = append(out, Bucket{Key: label, DocCount: *b.DocCount, Value: value})
	}
	return out, nil
}

// reshapeRecent keeps the non-empty buckets of a range aggregation and
// relabels them.
func reshapeRecent(raw json.RawMessage, label, value string) ([]Bucket, error) {
	buckets, err := decodeBuckets[rangeBucket](raw)
	if err != nil {
		return nil, err
	}
	out := make([]Bucket, 0, 1)
	for _, b := range buckets {
		if *b.DocCount == 0 {
			continue
		}
		out = append(out, Bucket{Key: label, DocCount: *b.DocCount, Value: value})
	}
	return out, nil
}
