// Package clause models the boolean query predicates understood by the search
// engine. Clauses are immutable values: built once by a constructor, never
// mutated, and rendered to the engine DSL by MarshalJSON.
package clause

import (
	"encoding/json"
	"fmt"
)

// Kind identifies the predicate shape.
type Kind string

// Clause kinds.
const (
	KindTerm       Kind = "term"
	KindTerms      Kind = "terms"
	KindMultiMatch Kind = "multi_match"
	KindRange      Kind = "range"
	KindAnyOf      Kind = "any_of"
	KindIDs        Kind = "ids"
)

// Clause is a single predicate contributed to a bool/must query.
type Clause struct {
	kind Kind

	field  string
	value  any
	values []string

	query    string
	fields   []string
	fuzzy    bool
	allTerms bool

	gte any
	lte any

	should             []Clause
	minimumShouldMatch int
}

// Term matches documents whose field equals value exactly.
func Term(field string, value any) Clause {
	return Clause{kind: KindTerm, field: field, value: value}
}

// Terms matches documents whose field equals any of values.
func Terms(field string, values []string) Clause {
	return Clause{kind: KindTerms, field: field, values: cloneStrings(values)}
}

// FuzzyMatch is a full-text match over several fields tolerating typos.
func FuzzyMatch(query string, fields []string) Clause {
	return Clause{kind: KindMultiMatch, query: query, fields: cloneStrings(fields), fuzzy: true}
}

// AllTermsMatch is a full-text match over several fields that requires every
// query token to appear in at least one of them.
func AllTermsMatch(query string, fields []string) Clause {
	return Clause{kind: KindMultiMatch, query: query, fields: cloneStrings(fields), allTerms: true}
}

// Gte matches documents whose field is greater than or equal to v (number or date string).
func Gte(field string, v any) Clause {
	return Clause{kind: KindRange, field: field, gte: v}
}

// Lte matches documents whose field is less than or equal to v.
func Lte(field string, v any) Clause {
	return Clause{kind: KindRange, field: field, lte: v}
}

// AnyOf matches documents satisfying at least minimumShouldMatch of the clauses.
func AnyOf(minimumShouldMatch int, clauses ...Clause) Clause {
	should := make([]Clause, len(clauses))
	copy(should, clauses)
	return Clause{kind: KindAnyOf, should: should, minimumShouldMatch: minimumShouldMatch}
}

// IDs matches documents by engine-assigned identifier.
func IDs(ids ...string) Clause {
	return Clause{kind: KindIDs, values: cloneStrings(ids)}
}

// Kind returns the predicate shape.
func (c Clause) Kind() Kind { return c.kind }

// Field returns the target field (term, terms, range).
func (c Clause) Field() string { return c.field }

// Value returns the term value.
func (c Clause) Value() any { return c.value }

// Values returns the term set or id list.
func (c Clause) Values() []string { return c.values }

// Query returns the text of a multi-field match.
func (c Clause) Query() string { return c.query }

// Fields returns the fields of a multi-field match.
func (c Clause) Fields() []string { return c.fields }

// GTE returns the lower bound of a range, nil when unbounded.
func (c Clause) GTE() any { return c.gte }

// LTE returns the upper bound of a range, nil when unbounded.
func (c Clause) LTE() any { return c.lte }

// Should returns the alternatives of an AnyOf clause.
func (c Clause) Should() []Clause { return c.should }

// MinimumShouldMatch returns how many AnyOf alternatives must match.
func (c Clause) MinimumShouldMatch() int { return c.minimumShouldMatch }

// MarshalJSON renders the clause in the engine query DSL.
// Maps are used for field-keyed objects; encoding/json sorts their keys,
// which keeps the output byte-identical across calls.
func (c Clause) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case KindTerm:
		return json.Marshal(map[string]any{"term": map[string]any{c.field: c.value}})
	case KindTerms:
		return json.Marshal(map[string]any{"terms": map[string]any{c.field: c.values}})
	case KindMultiMatch:
		mm := map[string]any{"query": c.query, "fields": c.fields}
		if c.fuzzy {
			mm["fuzziness"] = "AUTO"
		}
		if c.allTerms {
			mm["type"] = "cross_fields"
			mm["operator"] = "and"
		}
		return json.Marshal(map[string]any{"multi_match": mm})
	case KindRange:
		bounds := make(map[string]any, 2)
		if c.gte != nil {
			bounds["gte"] = c.gte
		}
		if c.lte != nil {
			bounds["lte"] = c.lte
		}
		return json.Marshal(map[string]any{"range": map[string]any{c.field: bounds}})
	case KindAnyOf:
		return json.Marshal(map[string]any{"bool": map[string]any{
			"should":               nonNil(c.should),
			"minimum_should_match": c.minimumShouldMatch,
		}})
	case KindIDs:
		return json.Marshal(map[string]any{"ids": map[string]any{"values": c.values}})
	default:
		return nil, fmt.Errorf("unknown clause kind %q", c.kind)
	}
}

// Bool is a bool query whose clauses must all match.
type Bool struct {
	must []Clause
}

// Must builds a bool/must query. An empty list matches every document.
func Must(clauses ...Clause) Bool {
	must := make([]Clause, len(clauses))
	copy(must, clauses)
	return Bool{must: must}
}

// Clauses returns the must clauses in order.
func (b Bool) Clauses() []Clause { return b.must }

// MarshalJSON renders {"bool":{"must":[...]}}.
func (b Bool) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"bool": map[string]any{"must": nonNil(b.must)}})
}

func nonNil(cs []Clause) []Clause {
	if cs == nil {
		return []Clause{}
	}
	return cs
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
