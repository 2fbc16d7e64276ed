package jobsearch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/kailas-cloud/jobsearch/internal/domain"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"success", nil, outcomeOK},
		{"missing job", fmt.Errorf("job %q: %w", "X", ErrNotFound), outcomeNotFound},
		{"bad cursor", domain.Invalid("cursor: bad token"), outcomeInvalid},
		{"bad response", fmt.Errorf("search jobs: %w", domain.NewDecodeError("hits", errors.New("missing"))), outcomeDecode},
		{"caller left", fmt.Errorf("job facets: %w", context.Canceled), outcomeCanceled},
		{"engine down", errors.New("dial tcp: connection refused"), outcomeError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outcome(tt.err); got != tt.want {
				t.Errorf("outcome() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestObserve_LogsDecodeShape(t *testing.T) {
	var buf bytes.Buffer
	obs, err := newObserver(slog.New(slog.NewTextHandler(&buf, nil)), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decodeErr := fmt.Errorf("search jobs: %w", domain.NewDecodeError("jobs[2]._source", errors.New("title is required")))
	obs.observe(opJobsSearch, domain.BrandSpecialist, time.Now(), decodeErr)

	line := buf.String()
	for _, want := range []string{"level=WARN", "op=jobs.search", "brand=specialist", "outcome=decode_error", "shape=jobs[2]._source"} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q missing %q", line, want)
		}
	}
}

func TestObserve_NotFoundIsNotAWarning(t *testing.T) {
	var buf bytes.Buffer
	obs, _ := newObserver(slog.New(slog.NewTextHandler(&buf, nil)), nil)
	obs.observe(opCandidatesGet, "", time.Now(), fmt.Errorf("candidate %q: %w", "c-9", ErrNotFound))

	// The default handler level is Info, so a Debug line is dropped.
	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %s", buf.String())
	}
}

func TestObserve_NilObserver(t *testing.T) {
	var obs *observer
	obs.observe(opSitemapWalk, "", time.Now(), errors.New("boom"))
}
