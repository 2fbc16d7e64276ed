package sitemap

import (
	"context"

	"github.com/kailas-cloud/jobsearch/internal/domain/job"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/query"
)

// Scanner fetches one cursor page of jobs in sitemap order.
type Scanner interface {
	ScanJobs(ctx context.Context, req job.ScanRequest, opts query.Options) ([]job.SitemapEntry, error)
}
