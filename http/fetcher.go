// Package http provides an HTTP-based implementation of shardsearch.ShardFetcher
// for reading shards served as static JSON files.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/shardsearch"
)

// DefaultFetchTimeout is the default timeout for a single shard request.
const DefaultFetchTimeout = shardsearch.DefaultTimeout

// Ensure ShardFetcher implements the shardsearch interfaces at compile time.
var (
	_ shardsearch.ShardFetcher = (*ShardFetcher)(nil)
	_ shardsearch.ShardProber  = (*ShardFetcher)(nil)
)

// ShardFetcher retrieves and decodes shards with one GET request each.
// It never retries; a failed attempt is final for the query.
type ShardFetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a ShardFetcher.
type Option func(*ShardFetcher)

// WithTimeout sets the timeout for each shard request.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *ShardFetcher) {
		f.timeout = d
	}
}

// WithClient sets the HTTP client used for requests. The client's own
// Timeout is replaced by the fetcher's timeout.
func WithClient(c *http.Client) Option {
	return func(f *ShardFetcher) {
		f.client = c
	}
}

// NewShardFetcher creates a new HTTP-based ShardFetcher.
func NewShardFetcher(opts ...Option) *ShardFetcher {
	f := &ShardFetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	client := &http.Client{}
	if f.client != nil {
		copied := *f.client
		client = &copied
	}
	client.Timeout = f.timeout
	f.client = client

	return f
}

// Fetch retrieves the shard and decodes its body as an array of records.
func (f *ShardFetcher) Fetch(ctx context.Context, shard shardsearch.Shard) shardsearch.ShardOutcome {
	body, err := f.get(ctx, shard.URL)
	if err != nil {
		return shardsearch.Failed(shard, shardsearch.TransportError, err)
	}

	records, kind, err := DecodeRecords(body)
	if err != nil {
		return shardsearch.Failed(shard, kind, err)
	}

	outcome := shardsearch.Succeeded(shard, records)
	outcome.Bytes = len(body)
	outcome.Digest = strconv.FormatUint(xxhash.Sum64(body), 16)
	return outcome
}

// Probe checks that the shard answers with HTTP 200 without decoding it.
func (f *ShardFetcher) Probe(ctx context.Context, shard shardsearch.Shard) error {
	req, err := f.newRequest(ctx, shard.URL)
	if err != nil {
		return err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d for %s", resp.StatusCode, shard.URL)
	}
	return nil
}

func (f *ShardFetcher) newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (f *ShardFetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := f.newRequest(ctx, url)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

// DecodeRecords parses a shard body. On failure it returns MalformedPayload
// for invalid JSON and UnexpectedShape for JSON that is not an array of objects.
// Numbers are kept as json.Number so they render as written.
func DecodeRecords(body []byte) ([]shardsearch.Record, shardsearch.FailureKind, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, shardsearch.MalformedPayload, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, shardsearch.MalformedPayload, errors.New("unexpected data after top-level value")
	}

	items, ok := v.([]any)
	if !ok {
		return nil, shardsearch.UnexpectedShape, fmt.Errorf("top-level value is %s, want array", jsonKind(v))
	}

	records := make([]shardsearch.Record, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, shardsearch.UnexpectedShape, fmt.Errorf("element %d is %s, want object", i, jsonKind(item))
		}
		records = append(records, shardsearch.Record(m))
	}
	return records, "", nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
