// Package job holds job advert documents as stored in the search index.
package job

import (
	"github.com/kailas-cloud/jobsearch/internal/domain"
	"github.com/kailas-cloud/jobsearch/internal/domain/schema"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/page"
)

// Salary is the advertised pay band. Either bound may be absent.
type Salary struct {
	From     *float64 `json:"from,omitempty" yaml:"from"`
	To       *float64 `json:"to,omitempty" yaml:"to"`
	Currency string   `json:"currency,omitempty" yaml:"currency"`
}

// Job is one job advert. ID is the engine-assigned identifier, attached
// after decoding.
type Job struct {
	ID           string          `json:"id" yaml:"id"`
	Reference    string          `json:"reference" yaml:"reference" validate:"required"`
	Title        string          `json:"title" yaml:"title" validate:"required"`
	Description  string          `json:"description,omitempty" yaml:"description"`
	Role         string          `json:"role,omitempty" yaml:"role"`
	Seniority    string          `json:"seniority,omitempty" yaml:"seniority"`
	Location     domain.Location `json:"location" yaml:"location"`
	Skills       []string        `json:"skills,omitempty" yaml:"skills"`
	Salary       *Salary         `json:"salary,omitempty" yaml:"salary"`
	JobType      string          `json:"jobType,omitempty" yaml:"jobType"`
	Remote       bool            `json:"remote" yaml:"remote"`
	Security     bool            `json:"security" yaml:"security"`
	Company      string          `json:"company,omitempty" yaml:"company"`
	Product      string          `json:"product,omitempty" yaml:"product"`
	Segment      string          `json:"segment,omitempty" yaml:"segment"`
	DatePosted   string          `json:"datePosted,omitempty" yaml:"datePosted"`
	LastModified string          `json:"lastModified,omitempty" yaml:"lastModified"`
	AdvertExpiry string          `json:"advertExpiry,omitempty" yaml:"advertExpiry"`
}

// Validate checks the fields every indexed job must carry.
func (j *Job) Validate() error { return schema.Validate(j) }

// Page is one page of job search results.
type Page struct {
	Items      []Job      `json:"items"`
	Pagination page.Total `json:"pagination"`
}

// Empty reports whether the page has no hits.
func (p Page) Empty() bool { return len(p.Items) == 0 }
