package mock

import (
	"context"

	"github.com/fwojciec/shardsearch"
)

var _ shardsearch.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of shardsearch.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, rawQuery string) (*shardsearch.QueryResult, error)
}

func (s *Searcher) Search(ctx context.Context, rawQuery string) (*shardsearch.QueryResult, error) {
	return s.SearchFn(ctx, rawQuery)
}
