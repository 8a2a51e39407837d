// Package slog provides logging decorators for shardsearch services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/shardsearch"
)

// Ensure LoggingShardFetcher implements shardsearch.ShardFetcher.
var _ shardsearch.ShardFetcher = (*LoggingShardFetcher)(nil)

// LoggingShardFetcher wraps a ShardFetcher with per-shard logging.
type LoggingShardFetcher struct {
	next   shardsearch.ShardFetcher
	logger *slog.Logger
}

// NewLoggingShardFetcher creates a new LoggingShardFetcher.
func NewLoggingShardFetcher(next shardsearch.ShardFetcher, logger *slog.Logger) *LoggingShardFetcher {
	return &LoggingShardFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
// Successful fetches log at debug level, failures at warn level.
func (f *LoggingShardFetcher) Fetch(ctx context.Context, shard shardsearch.Shard) (outcome shardsearch.ShardOutcome) {
	defer func(begin time.Time) {
		if outcome.OK() {
			f.logger.DebugContext(ctx, "shard fetch",
				"shard", shard.Index,
				"url", shard.URL,
				"records", len(outcome.Records),
				"bytes", outcome.Bytes,
				"digest", outcome.Digest,
				"duration", time.Since(begin),
			)
			return
		}
		f.logger.WarnContext(ctx, "shard fetch",
			"shard", shard.Index,
			"url", shard.URL,
			"kind", string(outcome.Failure.Kind),
			"duration", time.Since(begin),
			"err", outcome.Failure.Err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, shard)
}
