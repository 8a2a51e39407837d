package shardsearch

import "context"

// QueryResult is the merged outcome of one search across all shards.
type QueryResult struct {
	// ID identifies the query in logs.
	ID string `json:"id"`

	// Query is the normalized search term.
	Query string `json:"query"`

	// Records holds the matches in ascending shard order, then in the
	// order each shard listed them.
	Records []Record `json:"records"`

	// Failures maps shard index to the reason that shard contributed nothing.
	Failures map[int]*ShardFailure `json:"-"`

	// Attempted is the number of shards queried.
	Attempted int `json:"attempted"`
}

// Succeeded returns the number of shards that were fetched and decoded.
func (r *QueryResult) Succeeded() int {
	return r.Attempted - len(r.Failures)
}

// AllFailed reports whether no shard could be read. This is the only way
// to tell "every shard failed" apart from "nothing matched".
func (r *QueryResult) AllFailed() bool {
	return r.Attempted > 0 && len(r.Failures) == r.Attempted
}

// Searcher runs a query across every configured shard.
type Searcher interface {
	// Search normalizes the raw query and returns the merged matches.
	// Per-shard failures are reported in QueryResult.Failures; the only
	// returned error is ECONFIG for a configuration that cannot run.
	Search(ctx context.Context, rawQuery string) (*QueryResult, error)
}

// SearchProgress reports progress during a search.
type SearchProgress struct {
	Type      ProgressType
	Shard     Shard
	Completed int
	Total     int
	Failure   *ShardFailure
}

// ProgressType indicates the type of progress event.
type ProgressType int

// ProgressType constants.
const (
	ProgressStarted ProgressType = iota
	ProgressShardDone
	ProgressShardFailed
	ProgressFinished
)

// SearchProgressFunc is called as shards complete.
type SearchProgressFunc func(SearchProgress)
