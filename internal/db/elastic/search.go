package elastic

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/kailas-cloud/jobsearch/internal/db"
	"github.com/kailas-cloud/jobsearch/internal/metrics"
)

// Search issues exactly one _search request and returns the raw response body.
// Transport failures and error statuses are returned as *db.Error; nothing is retried here.
func (s *Store) Search(ctx context.Context, req *db.SearchRequest) ([]byte, error) {
	body, err := req.Body()
	if err != nil {
		return nil, err
	}

	start := time.Now()

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(req.Index),
		s.client.Search.WithBody(bytes.NewReader(body)),
	)

	duration := time.Since(start)

	if err != nil {
		metrics.EngineRequestsTotal.WithLabelValues(req.Index, "error").Inc()
		return nil, &db.Error{Op: db.OpSearch, Err: err}
	}
	defer res.Body.Close()

	metrics.EngineRequestDuration.WithLabelValues(req.Index).Observe(duration.Seconds())

	if res.IsError() {
		metrics.EngineRequestsTotal.WithLabelValues(req.Index, "error").Inc()
		return nil, &db.Error{Op: db.OpSearch, Err: fmt.Errorf("%w: %s", db.ErrEngineStatus, res.String())}
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		metrics.EngineRequestsTotal.WithLabelValues(req.Index, "error").Inc()
		return nil, &db.Error{Op: db.OpSearch, Err: fmt.Errorf("read response: %w", err)}
	}

	metrics.EngineRequestsTotal.WithLabelValues(req.Index, "success").Inc()
	return data, nil
}
