package query

import (
	"encoding/json"
	"testing"

	"github.com/kailas-cloud/jobsearch/internal/domain/search/clause"
)

func floatPtr(f float64) *float64 { return &f }

func render(t *testing.T, cs []clause.Clause) string {
	t.Helper()
	if cs == nil {
		cs = []clause.Clause{}
	}
	data, err := json.Marshal(cs)
	if err != nil {
		t.Fatalf("marshal clauses: %v", err)
	}
	return string(data)
}

func fieldsOf(cs []clause.Clause) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		switch c.Kind() {
		case clause.KindMultiMatch:
			out = append(out, "multi_match:"+c.Query())
		case clause.KindAnyOf:
			out = append(out, "any_of:"+c.Should()[0].Field())
		default:
			out = append(out, c.Field())
		}
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
