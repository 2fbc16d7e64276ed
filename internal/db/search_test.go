package db

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSearchRequestBody_OmitsUnset(t *testing.T) {
	req := &SearchRequest{
		Index: "jobs",
		Query: map[string]any{"match_all": map[string]any{}},
	}
	body, err := req.Body()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := string(body)
	if got != `{"query":{"match_all":{}}}` {
		t.Errorf("body = %s", got)
	}
}

func TestSearchRequestBody_ZeroFromIsKept(t *testing.T) {
	req := &SearchRequest{Index: "jobs", From: IntPtr(0), Size: IntPtr(10)}
	body, err := req.Body()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(body), `"from":0`) {
		t.Errorf("expected from:0 in %s", body)
	}
}

func TestSearchRequestBody_SortAndCursor(t *testing.T) {
	req := &SearchRequest{
		Index:       "jobs",
		Size:        IntPtr(2),
		Sort:        []SortField{{Field: "lastModified", Order: Asc}, {Field: "reference"}},
		SearchAfter: []any{json.Number("1700000000000"), "REF-1"},
		Source:      []string{"reference", "title"},
	}
	body, err := req.Body()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"size":2,"sort":[{"lastModified":"asc"},{"reference":"asc"}],` +
		`"search_after":[1700000000000,"REF-1"],"_source":["reference","title"]}`
	if string(body) != want {
		t.Errorf("body =\n%s\nwant\n%s", body, want)
	}
}

func TestSearchRequestBody_IndexRequired(t *testing.T) {
	req := &SearchRequest{}
	if _, err := req.Body(); err == nil {
		t.Fatal("expected error for missing index")
	}
}
