// Package shardsearch provides a federated lookup over a fixed, numbered
// set of remote JSON shards. A query fans out to every shard, filters each
// shard's records with a uniform multi-field substring match, and merges
// the matches in shard order. Nothing is ever persisted locally.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, slog/).
package shardsearch
