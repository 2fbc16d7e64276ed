// Package jobsearch provides an in-process Go client for the job board
// search engine: job and candidate search with facets, single lookups and
// sitemap export, compiled against an Elasticsearch cluster.
//
//	client, _ := jobsearch.New(ctx,
//	    jobsearch.WithElasticsearch("http://localhost:9200"),
//	    jobsearch.WithFacetCache("localhost:6379", "", 5*time.Minute),
//	)
//	defer client.Close()
//
//	page, _ := client.Jobs().Search(ctx, jobsearch.JobQuery{
//	    Keyword:  "golang",
//	    Location: "Chicago Illinois",
//	})
//
// Specialist brand filters are enabled per service:
//
//	jobs := client.Jobs().WithBrand(jobsearch.BrandSpecialist)
//	page, _ = jobs.Search(ctx, jobsearch.JobQuery{Product: "Cloud", JobType: "contract"})
//
// A location with no matches is retried once with its first space replaced
// by a comma, so "Chicago Illinois" also finds documents indexed as
// "Chicago, Illinois".
//
// WithFixtures serves a small embedded data set instead of a cluster, for
// examples and tests.
package jobsearch
