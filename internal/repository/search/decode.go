package search

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kailas-cloud/jobsearch/internal/domain"
	"github.com/kailas-cloud/jobsearch/internal/domain/schema"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/page"
)

// Engine response schema. Pointer fields distinguish "missing" from zero.

type envelope struct {
	Hits         *hitsSection               `json:"hits" validate:"required"`
	Aggregations map[string]json.RawMessage `json:"aggregations"`
}

type hitsSection struct {
	Total *totalSection `json:"total"`
	Hits  *[]rawHit     `json:"hits" validate:"required,dive"`
}

type totalSection struct {
	Value    *int    `json:"value" validate:"required,min=0"`
	Relation *string `json:"relation" validate:"required,oneof=eq gte"`
}

type rawHit struct {
	ID     *string         `json:"_id" validate:"required,min=1"`
	Source json.RawMessage `json:"_source" validate:"required"`
	Sort   []any           `json:"sort"`
}

// countedHits is the hits section of a paged search, where the total is mandatory.
type countedHits struct {
	Total *totalSection `json:"total" validate:"required"`
}

// sortedHit is a hit of a cursor scan, which must carry its sort tuple.
type sortedHit struct {
	Sort []any `json:"sort" validate:"required,min=1,dive,required,scalar"`
}

// decodeEnvelope parses a response body and checks the hits section.
// Numbers are kept as json.Number so sort keys survive unchanged.
func decodeEnvelope(body []byte) (*envelope, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var env envelope
	if err := dec.Decode(&env); err != nil {
		return nil, domain.NewDecodeError("envelope", err)
	}
	if err := schema.Check("envelope", &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (e *envelope) total() (page.Total, error) {
	if err := schema.Check("hits", countedHits{Total: e.Hits.Total}); err != nil {
		return page.Total{}, err
	}
	t := e.Hits.Total
	return page.Total{Value: *t.Value, Relation: *t.Relation}, nil
}

func (e *envelope) hits() []rawHit { return *e.Hits.Hits }

func (e *envelope) aggregations() (map[string]json.RawMessage, error) {
	if e.Aggregations == nil {
		return nil, domain.NewDecodeError("aggregations", errors.New("missing"))
	}
	return e.Aggregations, nil
}

// decodeSource decodes one hit's _source and checks it against the document
// schema of T.
func decodeSource[T any](h rawHit, i int, shape string) (T, error) {
	var doc T
	field := fmt.Sprintf("%s[%d]._source", shape, i)
	if err := json.Unmarshal(h.Source, &doc); err != nil {
		return doc, domain.NewDecodeError(field, err)
	}
	if err := schema.Check(field, &doc); err != nil {
		return doc, err
	}
	return doc, nil
}

func hitCursor(h rawHit, i int, shape string) (page.Cursor, error) {
	if err := schema.Check(fmt.Sprintf("%s[%d]", shape, i), sortedHit{Sort: h.Sort}); err != nil {
		return nil, err
	}
	return page.Cursor(h.Sort), nil
}
