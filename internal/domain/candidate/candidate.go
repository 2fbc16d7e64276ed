// Package candidate holds candidate profile documents as stored in the search
// index.
package candidate

import (
	"github.com/kailas-cloud/jobsearch/internal/domain"
	"github.com/kailas-cloud/jobsearch/internal/domain/schema"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/page"
)

// Candidate is one candidate profile. ID is the engine-assigned identifier.
type Candidate struct {
	ID          string          `json:"id" yaml:"id"`
	Profile     string          `json:"profile,omitempty" yaml:"profile"`
	JobTitle    string          `json:"jobTitle" yaml:"jobTitle" validate:"required"`
	AdvertTitle string          `json:"advertTitle,omitempty" yaml:"advertTitle"`
	Skills      []string        `json:"skills,omitempty" yaml:"skills"`
	Level       string          `json:"level,omitempty" yaml:"level"`
	JobType     string          `json:"jobType,omitempty" yaml:"jobType"`
	Location    domain.Location `json:"location" yaml:"location"`
	LastUpdated string          `json:"lastUpdated,omitempty" yaml:"lastUpdated"`
}

// Validate checks the fields every indexed profile must carry.
func (c *Candidate) Validate() error { return schema.Validate(c) }

// Page is one page of candidate search results.
type Page struct {
	Items      []Candidate `json:"items"`
	Pagination page.Total  `json:"pagination"`
}

// Empty reports whether the page has no hits.
func (p Page) Empty() bool { return len(p.Items) == 0 }
