// Package page holds the two pagination models: total-count pagination for
// page-based search and sort cursors for bulk export. They are not
// interchangeable.
package page

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/jobsearch/internal/domain"
)

// Size is the fixed number of hits per page for page-based search.
const Size = 10

// Relations reported by the engine for hit totals.
const (
	RelationEq  = "eq"
	RelationGte = "gte"
)

// Total is the engine's hit count. Relation "gte" means Value is a lower bound.
type Total struct {
	Value    int    `json:"value"`
	Relation string `json:"relation"`
}

// Offset returns the first hit index for a 1-based page number.
// Pages below 1 are treated as the first page.
func Offset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * Size
}

// Cursor is the sort-key tuple of the last hit seen, used as search_after.
// Elements are primitives (json.Number, string, bool).
type Cursor []any

// IsZero reports whether the cursor is absent.
func (c Cursor) IsZero() bool { return len(c) == 0 }

// Encode renders the cursor as an opaque URL-safe token.
func (c Cursor) Encode() (string, error) {
	if c.IsZero() {
		return "", nil
	}
	data, err := json.Marshal([]any(c))
	if err != nil {
		return "", fmt.Errorf("encode cursor: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// DecodeCursor parses a token produced by Encode. The empty token is the
// zero cursor.
func DecodeCursor(token string) (Cursor, error) {
	if token == "" {
		return nil, nil
	}
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, domain.Invalid("cursor: %v", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var keys []any
	if err := dec.Decode(&keys); err != nil {
		return nil, domain.Invalid("cursor: %v", err)
	}
	if len(keys) == 0 {
		return nil, domain.Invalid("cursor: empty sort tuple")
	}
	for i, k := range keys {
		switch k.(type) {
		case json.Number, string, bool:
		default:
			return nil, domain.Invalid("cursor: key %d is not a primitive", i)
		}
	}
	return Cursor(keys), nil
}
