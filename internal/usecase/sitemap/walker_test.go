package sitemap

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"

	"github.com/kailas-cloud/jobsearch/internal/db"
	"github.com/kailas-cloud/jobsearch/internal/domain"
	"github.com/kailas-cloud/jobsearch/internal/domain/job"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/page"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/query"
)

type mockScanner struct {
	pages    [][]job.SitemapEntry
	err      error
	requests []job.ScanRequest
}

func (m *mockScanner) ScanJobs(_ context.Context, req job.ScanRequest, _ query.Options) ([]job.SitemapEntry, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	i := len(m.requests) - 1
	if i >= len(m.pages) {
		return nil, nil
	}
	return m.pages[i], nil
}

func entry(ref string, ts int) job.SitemapEntry {
	return job.SitemapEntry{
		Reference:    ref,
		Title:        "Title " + ref,
		LastModified: "2024-01-01",
		Cursor:       page.Cursor{json.Number(strconv.Itoa(ts)), ref},
	}
}

func TestWalk_StopsAtEmptyPage(t *testing.T) {
	ms := &mockScanner{pages: [][]job.SitemapEntry{
		{entry("R1", 1), entry("R2", 2)},
		{entry("R3", 3)},
		{},
	}}
	w := New(ms, Config{})

	got, last, err := w.Collect(context.Background(), Minimal, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ms.requests) != 3 {
		t.Fatalf("engine calls = %d, want 3", len(ms.requests))
	}
	if len(got) != 3 || got[0].Reference != "R1" || got[2].Reference != "R3" {
		t.Errorf("entries = %+v", got)
	}
	if len(last) != 2 || last[1] != "R3" {
		t.Errorf("last cursor = %#v", last)
	}
}

func TestWalk_CursorFromLastHit(t *testing.T) {
	ms := &mockScanner{pages: [][]job.SitemapEntry{
		{entry("R1", 1), entry("R2", 2)},
		{entry("R3", 3)},
	}}
	w := New(ms, Config{PageSize: 2})

	if _, _, err := w.Collect(context.Background(), Minimal, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ms.requests[0].After.IsZero() {
		t.Errorf("first page carried a cursor: %v", ms.requests[0].After)
	}
	if c := ms.requests[1].After; len(c) != 2 || c[1] != "R2" {
		t.Errorf("second cursor = %#v", c)
	}
	if c := ms.requests[2].After; len(c) != 2 || c[1] != "R3" {
		t.Errorf("third cursor = %#v", c)
	}
	if ms.requests[0].Size != 2 {
		t.Errorf("size = %d, want 2", ms.requests[0].Size)
	}
}

func TestWalk_ResumesFromCursor(t *testing.T) {
	ms := &mockScanner{}
	w := New(ms, Config{})
	start := page.Cursor{json.Number("5"), "R5"}

	last, err := w.Walk(context.Background(), Minimal, start, func(job.SitemapEntry) error { return nil })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c := ms.requests[0].After; len(c) != 2 || c[1] != "R5" {
		t.Errorf("resume cursor = %#v", c)
	}
	if len(last) != 2 || last[1] != "R5" {
		t.Errorf("empty walk should return the starting cursor, got %#v", last)
	}
}

func TestWalk_Variants(t *testing.T) {
	tests := []struct {
		variant  Variant
		size     int
		withDesc bool
	}{
		{Minimal, DefaultPageSize, false},
		{Full, DefaultFullPageSize, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			ms := &mockScanner{}
			w := New(ms, Config{})
			if _, _, err := w.Collect(context.Background(), tt.variant, nil); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			req := ms.requests[0]
			if req.Size != tt.size {
				t.Errorf("size = %d, want %d", req.Size, tt.size)
			}
			hasDesc := false
			for _, f := range req.Source {
				if f == "description" {
					hasDesc = true
				}
			}
			if hasDesc != tt.withDesc {
				t.Errorf("description in source = %v, want %v", hasDesc, tt.withDesc)
			}
		})
	}
}

func TestWalk_UnknownVariant(t *testing.T) {
	ms := &mockScanner{}
	_, err := New(ms, Config{}).Walk(context.Background(), "huge", nil, func(job.SitemapEntry) error { return nil })
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
	if len(ms.requests) != 0 {
		t.Error("engine called for unknown variant")
	}
}

func TestWalk_ScanError(t *testing.T) {
	ms := &mockScanner{err: &db.Error{Op: db.OpSearch, Err: db.ErrEngineStatus}}
	_, _, err := New(ms, Config{}).Collect(context.Background(), Minimal, nil)
	if !errors.Is(err, db.ErrEngineStatus) {
		t.Fatalf("err = %v", err)
	}
	if len(ms.requests) != 1 {
		t.Errorf("engine calls = %d, want 1", len(ms.requests))
	}
}

func TestWalk_CallbackErrorStops(t *testing.T) {
	ms := &mockScanner{pages: [][]job.SitemapEntry{{entry("R1", 1), entry("R2", 2)}}}
	stop := errors.New("stop")
	n := 0
	_, err := New(ms, Config{}).Walk(context.Background(), Minimal, nil, func(job.SitemapEntry) error {
		n++
		return stop
	})
	if !errors.Is(err, stop) || n != 1 {
		t.Errorf("err = %v, callbacks = %d", err, n)
	}
}
