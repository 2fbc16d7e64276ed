package db

import (
	"context"
	"time"
)

// Pinger checks backend connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Searcher executes a single query against the document search engine and
// returns the raw response body. Decoding is the caller's concern.
type Searcher interface {
	Search(ctx context.Context, req *SearchRequest) ([]byte, error)
}

// Engine is the search engine facade used by the composition root.
type Engine interface {
	Pinger
	Searcher
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// KVStore provides the expiring key-value operations of the facet cache.
type KVStore interface {
	Pinger
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close()
}
