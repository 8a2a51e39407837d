package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/shardsearch"
)

// Ensure LoggingSearcher implements shardsearch.Searcher.
var _ shardsearch.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with one log line per query.
type LoggingSearcher struct {
	next   shardsearch.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next shardsearch.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the query summary.
func (s *LoggingSearcher) Search(ctx context.Context, rawQuery string) (result *shardsearch.QueryResult, err error) {
	defer func(begin time.Time) {
		if err != nil {
			s.logger.ErrorContext(ctx, "search",
				"query", rawQuery,
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		s.logger.InfoContext(ctx, "search",
			"query_id", result.ID,
			"query", result.Query,
			"matches", len(result.Records),
			"shards", result.Attempted,
			"failed", len(result.Failures),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Search(ctx, rawQuery)
}
