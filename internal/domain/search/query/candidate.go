package query

import (
	"github.com/kailas-cloud/jobsearch/internal/domain/search/args"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/clause"
)

type candidateField int

const (
	candidateKeyword candidateField = iota
	candidateLocation
	candidateJobType
	candidateSkills
	candidateJobTitles
	candidateLevels
	candidateAddedSince
)

var candidateFields = []candidateField{
	candidateKeyword,
	candidateLocation,
	candidateJobType,
	candidateSkills,
	candidateJobTitles,
	candidateLevels,
	candidateAddedSince,
}

// candidateFacetFields scope facet counts: selecting a skill, title or level
// must not hide its sibling options.
var candidateFacetFields = []candidateField{
	candidateKeyword,
	candidateLocation,
	candidateJobType,
}

// BuildCandidateClauses compiles candidate filters into an ordered must list.
// The candidate domain has no guard.
func BuildCandidateClauses(a args.Candidate) []clause.Clause {
	return compileCandidate(a, candidateFields)
}

// BuildCandidateFacetClauses compiles only keyword, location and jobType.
func BuildCandidateFacetClauses(a args.Candidate) []clause.Clause {
	return compileCandidate(a, candidateFacetFields)
}

// BuildCandidateQuery wraps BuildCandidateClauses in a bool/must query.
func BuildCandidateQuery(a args.Candidate) clause.Bool {
	return clause.Must(BuildCandidateClauses(a)...)
}

func compileCandidate(a args.Candidate, fields []candidateField) []clause.Clause {
	var out []clause.Clause
	for _, f := range fields {
		if c, ok := f.compile(a); ok {
			out = append(out, c)
		}
	}
	return out
}

func (f candidateField) compile(a args.Candidate) (clause.Clause, bool) {
	switch f {
	case candidateKeyword:
		return nonEmpty(a.Keyword, func() clause.Clause { return clause.FuzzyMatch(a.Keyword, candidateKeywordFields) })
	case candidateLocation:
		return nonEmpty(a.Location, func() clause.Clause { return clause.AllTermsMatch(a.Location, locationFields) })
	case candidateJobType:
		return nonEmpty(a.JobType, func() clause.Clause { return clause.Term("jobType", a.JobType) })
	case candidateSkills:
		return termSet("skills", a.Skills)
	case candidateJobTitles:
		return termSet("jobTitle.keyword", a.JobTitles)
	case candidateLevels:
		return termSet("level", a.Levels)
	case candidateAddedSince:
		return nonEmpty(a.AddedSince, func() clause.Clause { return clause.Gte("lastUpdated", a.AddedSince) })
	}
	return clause.Clause{}, false
}
