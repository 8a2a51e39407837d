package mock

import (
	"context"

	"github.com/fwojciec/shardsearch"
)

// Compile-time interface verification.
var (
	_ shardsearch.ShardFetcher = (*ShardFetcher)(nil)
	_ shardsearch.ShardProber  = (*ShardProber)(nil)
)

// ShardFetcher is a mock implementation of shardsearch.ShardFetcher.
type ShardFetcher struct {
	FetchFn func(ctx context.Context, shard shardsearch.Shard) shardsearch.ShardOutcome
}

func (f *ShardFetcher) Fetch(ctx context.Context, shard shardsearch.Shard) shardsearch.ShardOutcome {
	return f.FetchFn(ctx, shard)
}

// ShardProber is a mock implementation of shardsearch.ShardProber.
type ShardProber struct {
	ProbeFn func(ctx context.Context, shard shardsearch.Shard) error
}

func (p *ShardProber) Probe(ctx context.Context, shard shardsearch.Shard) error {
	return p.ProbeFn(ctx, shard)
}
