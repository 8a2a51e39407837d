package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/shardsearch"
	"github.com/fwojciec/shardsearch/mock"
	shardslog "github.com/fwojciec/shardsearch/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingShardFetcher_Fetch(t *testing.T) {
	t.Parallel()

	shard := shardsearch.Shard{Index: 3, URL: "https://example.com/data-3.json"}

	t.Run("logs success with records, bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.ShardFetcher{
			FetchFn: func(_ context.Context, s shardsearch.Shard) shardsearch.ShardOutcome {
				outcome := shardsearch.Succeeded(s, []shardsearch.Record{{"Name": "Bob"}, {"Name": "Al"}})
				outcome.Bytes = 42
				outcome.Digest = "abc123"
				return outcome
			},
		}

		fetcher := shardslog.NewLoggingShardFetcher(inner, logger)
		outcome := fetcher.Fetch(context.Background(), shard)

		assert.True(t, outcome.OK())
		assert.Len(t, outcome.Records, 2)
		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "shard fetch")
		assert.Contains(t, output, "shard=3")
		assert.Contains(t, output, "url=https://example.com/data-3.json")
		assert.Contains(t, output, "records=2")
		assert.Contains(t, output, "bytes=42")
		assert.Contains(t, output, "digest=abc123")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs failure kind and error at warn level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ShardFetcher{
			FetchFn: func(_ context.Context, s shardsearch.Shard) shardsearch.ShardOutcome {
				return shardsearch.Failed(s, shardsearch.TransportError, errors.New("network error"))
			},
		}

		fetcher := shardslog.NewLoggingShardFetcher(inner, logger)
		outcome := fetcher.Fetch(context.Background(), shard)

		assert.False(t, outcome.OK())
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "kind=transport")
		assert.Contains(t, output, "err=\"network error\"")
	})

	t.Run("omits successful fetches above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ShardFetcher{
			FetchFn: func(_ context.Context, s shardsearch.Shard) shardsearch.ShardOutcome {
				return shardsearch.Succeeded(s, nil)
			},
		}

		shardslog.NewLoggingShardFetcher(inner, logger).Fetch(context.Background(), shard)

		assert.Empty(t, buf.String())
	})
}
