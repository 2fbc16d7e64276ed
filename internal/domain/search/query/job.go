package query

import (
	"github.com/kailas-cloud/jobsearch/internal/domain"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/args"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/clause"
)

type jobField int

const (
	jobReference jobField = iota
	jobKeyword
	jobLocation
	jobRole
	jobLevels
	jobSkills
	jobType
	jobRemote
	jobSecurity
	jobAddedSince
	jobSalaryFrom
	jobSalaryTo
	jobSalaryCurrency
	jobProduct
	jobSegment
)

// jobFields is the compile order shared by every brand.
var jobFields = []jobField{
	jobReference,
	jobKeyword,
	jobLocation,
	jobRole,
	jobLevels,
	jobSkills,
	jobType,
	jobRemote,
	jobSecurity,
	jobAddedSince,
	jobSalaryFrom,
	jobSalaryTo,
	jobSalaryCurrency,
}

// specialistJobFields exist only for the specialist brand.
var specialistJobFields = []jobField{jobProduct, jobSegment}

// BuildJobClauses compiles job filters into an ordered must list. The expiry
// guard is appended last unless opts.IgnoreExpiryDate is set.
func BuildJobClauses(a args.Job, opts Options) []clause.Clause {
	var out []clause.Clause
	add := func(fields []jobField) {
		for _, f := range fields {
			if c, ok := f.compile(a, opts.Brand); ok {
				out = append(out, c)
			}
		}
	}

	add(jobFields)
	if opts.Brand == domain.BrandSpecialist {
		add(specialistJobFields)
	}
	if !opts.IgnoreExpiryDate {
		out = append(out, ExpiryGuard())
	}
	return out
}

// BuildJobQuery wraps BuildJobClauses in a bool/must query.
func BuildJobQuery(a args.Job, opts Options) clause.Bool {
	return clause.Must(BuildJobClauses(a, opts)...)
}

func (f jobField) compile(a args.Job, brand domain.Brand) (clause.Clause, bool) {
	switch f {
	case jobReference:
		return nonEmpty(a.Reference, func() clause.Clause { return clause.Term("reference", a.Reference) })
	case jobKeyword:
		return nonEmpty(a.Keyword, func() clause.Clause { return clause.FuzzyMatch(a.Keyword, jobKeywordFields) })
	case jobLocation:
		return nonEmpty(a.Location, func() clause.Clause { return clause.AllTermsMatch(a.Location, locationFields) })
	case jobRole:
		return termSet("role", a.Role)
	case jobLevels:
		return termSet("seniority", a.Levels)
	case jobSkills:
		return termSet("skills", a.Skills)
	case jobType:
		return nonEmpty(a.JobType, func() clause.Clause { return jobTypeClause(a.JobType, brand) })
	case jobRemote:
		return clause.Term("remote", true), a.Remote
	case jobSecurity:
		return clause.Term("security", true), a.Security
	case jobAddedSince:
		return nonEmpty(a.AddedSince, func() clause.Clause { return clause.Gte("datePosted", a.AddedSince) })
	case jobSalaryFrom:
		// A posting qualifies when its upper bound reaches the requested minimum.
		if a.SalaryFrom == nil {
			return clause.Clause{}, false
		}
		return clause.Gte("salary.to", *a.SalaryFrom), true
	case jobSalaryTo:
		if a.SalaryTo == nil {
			return clause.Clause{}, false
		}
		return clause.Lte("salary.from", *a.SalaryTo), true
	case jobSalaryCurrency:
		return nonEmpty(a.SalaryCurrency, func() clause.Clause { return clause.Term("salary.currency", a.SalaryCurrency) })
	case jobProduct:
		return nonEmpty(a.Product, func() clause.Clause { return clause.Term("product", a.Product) })
	case jobSegment:
		return nonEmpty(a.Segment, func() clause.Clause { return clause.Term("segment", a.Segment) })
	}
	return clause.Clause{}, false
}

func nonEmpty(v string, build func() clause.Clause) (clause.Clause, bool) {
	if v == "" {
		return clause.Clause{}, false
	}
	return build(), true
}

func termSet(field string, values []string) (clause.Clause, bool) {
	if len(values) == 0 {
		return clause.Clause{}, false
	}
	return clause.Terms(field, values), true
}
