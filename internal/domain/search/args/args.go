// Package args holds the filter argument records accepted by the search
// operations. Every field is optional; the zero value means "no constraint".
package args

import "strings"

// Job filters job listings.
type Job struct {
	Reference      string
	Keyword        string
	Location       string
	Role           []string
	Levels         []string
	Skills         []string
	JobType        string
	Remote         bool
	Security       bool
	AddedSince     string
	SalaryFrom     *float64
	SalaryTo       *float64
	SalaryCurrency string
	Product        string
	Segment        string
	Page           int
}

// Candidate filters candidate profiles.
type Candidate struct {
	Keyword    string
	Location   string
	JobType    string
	Skills     []string
	JobTitles  []string
	Levels     []string
	AddedSince string
	Page       int
}

// RetokenizeLocation replaces the first space in loc with a comma, so
// "Chicago Illinois" becomes "Chicago,Illinois". The boolean reports whether
// the value changed.
func RetokenizeLocation(loc string) (string, bool) {
	i := strings.IndexByte(loc, ' ')
	if i < 0 {
		return loc, false
	}
	return loc[:i] + "," + loc[i+1:], true
}

// WithRetokenizedLocation returns a copy of a with its location retokenized.
func (a Job) WithRetokenizedLocation() (Job, bool) {
	loc, ok := RetokenizeLocation(a.Location)
	a.Location = loc
	return a, ok
}

// WithRetokenizedLocation returns a copy of a with its location retokenized.
func (a Candidate) WithRetokenizedLocation() (Candidate, bool) {
	loc, ok := RetokenizeLocation(a.Location)
	a.Location = loc
	return a, ok
}

// FacetArgs keeps only the fields that scope candidate facet counts.
func (a Candidate) FacetArgs() Candidate {
	return Candidate{Keyword: a.Keyword, Location: a.Location, JobType: a.JobType}
}
