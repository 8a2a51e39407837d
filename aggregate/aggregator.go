// Package aggregate provides the search aggregator. It fans a query out to
// every configured shard, filters each shard's records, and merges the
// matches in shard order while recording per-shard failures.
package aggregate

import (
	"context"

	"github.com/fwojciec/shardsearch"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var _ shardsearch.Searcher = (*Aggregator)(nil)

// Aggregator runs queries across all shards of a configuration.
type Aggregator struct {
	Config  shardsearch.Config
	Fetcher shardsearch.ShardFetcher

	// Progress, if set, receives events as shards complete.
	// It is always called from the goroutine running Search.
	Progress shardsearch.SearchProgressFunc

	// NewID generates query IDs. Defaults to random UUIDs.
	NewID func() string
}

// NewAggregator returns an Aggregator for the configuration and fetcher.
func NewAggregator(cfg shardsearch.Config, fetcher shardsearch.ShardFetcher) *Aggregator {
	return &Aggregator{Config: cfg, Fetcher: fetcher}
}

// Search fetches every shard, keeps the records matching the normalized
// query, and returns them ordered by shard index then position in the shard.
//
// Shard failures never abort the query; they are recorded in the result's
// Failures. If ctx is canceled, in-flight fetches fail and shards not yet
// started are recorded as transport failures without a request.
func (a *Aggregator) Search(ctx context.Context, rawQuery string) (*shardsearch.QueryResult, error) {
	if err := a.Config.Validate(); err != nil {
		return nil, err
	}
	if a.Fetcher == nil {
		return nil, shardsearch.Errorf(shardsearch.ECONFIG, "shard fetcher required")
	}

	query := shardsearch.NormalizeQuery(rawQuery)
	shards := a.Config.Shards()
	total := len(shards)

	a.notify(shardsearch.SearchProgress{
		Type:  shardsearch.ProgressStarted,
		Total: total,
	})

	outcomeCh := make(chan shardsearch.ShardOutcome, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.Config.Workers())

	go func() {
		for _, shard := range shards {
			g.Go(func() error {
				outcomeCh <- a.fetch(gctx, shard)
				return nil
			})
		}
		_ = g.Wait()
		close(outcomeCh)
	}()

	// Collect by position so completion order never leaks into the result.
	outcomes := make([]shardsearch.ShardOutcome, total)
	completed := 0
	for outcome := range outcomeCh {
		completed++
		outcomes[outcome.Shard.Index-1] = outcome

		event := shardsearch.SearchProgress{
			Type:      shardsearch.ProgressShardDone,
			Shard:     outcome.Shard,
			Completed: completed,
			Total:     total,
		}
		if !outcome.OK() {
			event.Type = shardsearch.ProgressShardFailed
			event.Failure = outcome.Failure
		}
		a.notify(event)
	}

	result := Merge(query, outcomes)
	result.ID = a.newID()

	a.notify(shardsearch.SearchProgress{
		Type:      shardsearch.ProgressFinished,
		Completed: total,
		Total:     total,
	})

	return result, nil
}

// fetch runs a single shard fetch unless the search is already canceled.
func (a *Aggregator) fetch(ctx context.Context, shard shardsearch.Shard) shardsearch.ShardOutcome {
	if err := ctx.Err(); err != nil {
		return shardsearch.Failed(shard, shardsearch.TransportError, err)
	}

	outcome := a.Fetcher.Fetch(ctx, shard)
	outcome.Shard = shard
	if !outcome.OK() {
		outcome.Records = nil
	}
	return outcome
}

func (a *Aggregator) notify(event shardsearch.SearchProgress) {
	if a.Progress != nil {
		a.Progress(event)
	}
}

func (a *Aggregator) newID() string {
	if a.NewID != nil {
		return a.NewID()
	}
	return uuid.NewString()
}

// Merge reduces shard outcomes into a QueryResult. Outcomes must be in
// ascending shard order; matches are concatenated in that order and
// failures are keyed by shard index.
func Merge(normalizedQuery string, outcomes []shardsearch.ShardOutcome) *shardsearch.QueryResult {
	result := &shardsearch.QueryResult{
		Query:     normalizedQuery,
		Records:   []shardsearch.Record{},
		Failures:  make(map[int]*shardsearch.ShardFailure),
		Attempted: len(outcomes),
	}

	for _, outcome := range outcomes {
		if !outcome.OK() {
			result.Failures[outcome.Shard.Index] = outcome.Failure
			continue
		}
		result.Records = append(result.Records, shardsearch.FilterRecords(outcome.Records, normalizedQuery)...)
	}

	return result
}
