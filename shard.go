package shardsearch

import (
	"context"
	"fmt"
)

// Shard is one addressable remote JSON resource.
type Shard struct {
	Index int    `json:"index"`
	URL   string `json:"url"`
}

// FailureKind classifies why a shard produced no records.
type FailureKind string

// FailureKind constants.
const (
	// TransportError covers connection failures, timeouts, cancellation
	// and non-2xx responses.
	TransportError FailureKind = "transport"

	// MalformedPayload means the body is not valid JSON.
	MalformedPayload FailureKind = "malformed"

	// UnexpectedShape means the body is valid JSON but not an array of objects.
	UnexpectedShape FailureKind = "shape"
)

// ShardFailure is the typed reason a shard fetch failed.
type ShardFailure struct {
	Kind FailureKind
	Err  error
}

// NewShardFailure returns a ShardFailure of the given kind.
func NewShardFailure(kind FailureKind, err error) *ShardFailure {
	return &ShardFailure{Kind: kind, Err: err}
}

// Error implements the error interface.
func (f *ShardFailure) Error() string {
	if f.Err == nil {
		return string(f.Kind)
	}
	return fmt.Sprintf("%s: %v", f.Kind, f.Err)
}

// Unwrap returns the underlying cause.
func (f *ShardFailure) Unwrap() error {
	return f.Err
}

// ShardOutcome is the all-or-nothing result of fetching one shard.
// Exactly one of Records and Failure is meaningful.
type ShardOutcome struct {
	Shard   Shard
	Records []Record
	Failure *ShardFailure

	// Bytes and Digest describe the payload of a successful fetch.
	Bytes  int
	Digest string
}

// OK reports whether the shard was fetched and decoded.
func (o ShardOutcome) OK() bool {
	return o.Failure == nil
}

// Succeeded returns a successful outcome for the shard.
func Succeeded(shard Shard, records []Record) ShardOutcome {
	return ShardOutcome{Shard: shard, Records: records}
}

// Failed returns a failed outcome for the shard. It carries no records.
func Failed(shard Shard, kind FailureKind, err error) ShardOutcome {
	return ShardOutcome{Shard: shard, Failure: NewShardFailure(kind, err)}
}

// ShardFetcher retrieves and decodes a single shard.
type ShardFetcher interface {
	// Fetch performs one attempt at retrieving the shard.
	// Failures are reported in the outcome, never as a panic or error return.
	// The context controls cancellation.
	Fetch(ctx context.Context, shard Shard) ShardOutcome
}

// ShardProber checks that a shard is reachable without decoding it.
type ShardProber interface {
	Probe(ctx context.Context, shard Shard) error
}
