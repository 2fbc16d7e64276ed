package job

import (
	"github.com/kailas-cloud/jobsearch/internal/domain"
	"github.com/kailas-cloud/jobsearch/internal/domain/schema"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/page"
)

// Source field sets of the sitemap export variants.
var (
	SitemapFields     = []string{"reference", "title", "lastModified", "location"}
	SitemapFullFields = []string{"reference", "title", "lastModified", "location", "description"}
)

// ScanSort is the total order of a sitemap scan. Reference breaks ties on
// lastModified.
var ScanSort = []string{"lastModified", "reference"}

// SitemapEntry is one job in a sitemap export. Cursor is the hit's sort tuple.
type SitemapEntry struct {
	Reference    string           `json:"reference" yaml:"reference" validate:"required"`
	Title        string           `json:"title" yaml:"title"`
	LastModified string           `json:"lastModified" yaml:"lastModified" validate:"required"`
	Location     *domain.Location `json:"location,omitempty" yaml:"location"`
	Description  string           `json:"description,omitempty" yaml:"description"`
	Cursor       page.Cursor      `json:"-" yaml:"-"`
}

// Validate checks the fields a sitemap needs.
func (e *SitemapEntry) Validate() error { return schema.Validate(e) }

// ScanRequest asks for one page of a sitemap scan.
type ScanRequest struct {
	Source []string
	Size   int
	After  page.Cursor
}
