package db

import (
	"encoding/json"
	"fmt"
)

// SortOrder is the direction of a sort key.
type SortOrder string

// Sort directions.
const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// SortField is one element of a sort tuple.
type SortField struct {
	Field string
	Order SortOrder
}

// MarshalJSON renders the engine form {"field": "asc"}.
func (s SortField) MarshalJSON() ([]byte, error) {
	order := s.Order
	if order == "" {
		order = Asc
	}
	return json.Marshal(map[string]SortOrder{s.Field: order})
}

// SearchRequest is the input for one engine round trip.
// Query and Aggs must be JSON-marshalable; nil fields are left out of the body.
type SearchRequest struct {
	Index       string
	Query       any
	Aggs        any
	From        *int
	Size        *int
	Sort        []SortField
	SearchAfter []any
	Source      []string
}

type searchBody struct {
	Query       any         `json:"query,omitempty"`
	Aggs        any         `json:"aggs,omitempty"`
	From        *int        `json:"from,omitempty"`
	Size        *int        `json:"size,omitempty"`
	Sort        []SortField `json:"sort,omitempty"`
	SearchAfter []any       `json:"search_after,omitempty"`
	Source      []string    `json:"_source,omitempty"`
}

// Body renders the request body. Output is deterministic for equal requests.
func (r *SearchRequest) Body() ([]byte, error) {
	if r.Index == "" {
		return nil, fmt.Errorf("index is required")
	}
	data, err := json.Marshal(searchBody{
		Query:       r.Query,
		Aggs:        r.Aggs,
		From:        r.From,
		Size:        r.Size,
		Sort:        r.Sort,
		SearchAfter: r.SearchAfter,
		Source:      r.Source,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal search body: %w", err)
	}
	return data, nil
}

// IntPtr returns a pointer to v, for the optional numeric request fields.
func IntPtr(v int) *int { return &v }
