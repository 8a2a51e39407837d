package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fwojciec/shardsearch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Searcher shardsearch.Searcher
	Prober   shardsearch.ShardProber
}

// SearchCmd runs a single query and prints the matches.
type SearchCmd struct {
	Query      string
	JSON       bool
	Probe      bool
	ProbeShard shardsearch.Shard
}

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if c.Probe {
		if err := deps.Prober.Probe(deps.Ctx, c.ProbeShard); err != nil {
			fmt.Fprintln(deps.Stderr, "Cannot connect to the shards. Please check:")
			fmt.Fprintln(deps.Stderr, "  - your internet connection")
			fmt.Fprintln(deps.Stderr, "  - that the base URL is reachable")
			return fmt.Errorf("probe %s: %w", c.ProbeShard.URL, err)
		}
	}

	result, err := deps.Searcher.Search(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shardsearch.ErrorMessage(err))
		return err
	}

	printFailures(deps.Stderr, result)

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Records)
	}

	if len(result.Records) == 0 {
		fmt.Fprintf(deps.Stdout, "No results found for '%s'.\n", result.Query)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Found %d result(s) for '%s':\n\n", len(result.Records), result.Query)
	fmt.Fprintln(deps.Stdout, shardsearch.FormatRecords(result.Records))
	return nil
}

// printFailures reports skipped shards in index order.
func printFailures(w io.Writer, result *shardsearch.QueryResult) {
	indexes := make([]int, 0, len(result.Failures))
	for i := range result.Failures {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	for _, i := range indexes {
		fmt.Fprintf(w, "skip shard %d: %v\n", i, result.Failures[i])
	}
	if result.AllFailed() {
		fmt.Fprintln(w, "warning: no shard could be read; results are empty because of failures")
	}
}
