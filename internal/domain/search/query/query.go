// Package query compiles filter argument records into ordered bool/must
// clause lists. Builders iterate a fixed field order so identical arguments
// always produce identical clause lists.
package query

import (
	"github.com/kailas-cloud/jobsearch/internal/domain"
	"github.com/kailas-cloud/jobsearch/internal/domain/search/clause"
)

// Options are the out-of-band flags of a query request.
type Options struct {
	// IgnoreExpiryDate suppresses the "not expired" guard of the job domain.
	IgnoreExpiryDate bool
	Brand            domain.Brand
}

// Job type values accepted in filters and their indexed spellings.
const (
	JobTypeContract  = "contract"
	JobTypePermanent = "permanent"
)

var (
	jobKeywordFields = []string{
		"description", "title", "role", "seniority",
		"location.city", "location.region", "location.country", "skills",
	}
	candidateKeywordFields = []string{
		"profile", "skills", "jobTitle", "advertTitle",
		"location.city", "location.region", "location.country",
	}
	locationFields = []string{"location.city", "location.region", "location.country"}
)

// ExpiryGuard is the clause every job query carries unless expiry is ignored.
func ExpiryGuard() clause.Clause {
	return clause.Gte("advertExpiry", "now")
}

// JobTypeValues returns the indexed job type values a filter value matches
// for the given brand.
func JobTypeValues(jobType string, brand domain.Brand) []string {
	switch jobType {
	case JobTypeContract:
		if brand == domain.BrandSpecialist {
			return []string{"Contract", "Perm_Contract"}
		}
		return []string{"Contract"}
	case JobTypePermanent:
		if brand == domain.BrandSpecialist {
			return []string{"Permanent", "Perm"}
		}
		return []string{"Permanent"}
	default:
		return []string{jobType}
	}
}

func jobTypeClause(jobType string, brand domain.Brand) clause.Clause {
	values := JobTypeValues(jobType, brand)
	should := make([]clause.Clause, 0, len(values))
	for _, v := range values {
		should = append(should, clause.Term("jobType", v))
	}
	return clause.AnyOf(1, should...)
}
