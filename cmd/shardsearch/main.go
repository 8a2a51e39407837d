package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/shardsearch"
	"github.com/fwojciec/shardsearch/aggregate"
	shardhttp "github.com/fwojciec/shardsearch/http"
	shardslog "github.com/fwojciec/shardsearch/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("shardsearch"),
		kong.Description("Search records across remote JSON shards"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags. A bare "help" is a search term.
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	cfg := cli.Config()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "Hint: set --base-url or SHARDSEARCH_BASE_URL to the address serving data-<n>.json")
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	// Wire dependencies
	httpFetcher := shardhttp.NewShardFetcher(shardhttp.WithTimeout(cfg.Timeout))
	aggregator := aggregate.NewAggregator(cfg, shardslog.NewLoggingShardFetcher(httpFetcher, logger))

	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Searcher: shardslog.NewLoggingSearcher(aggregator, logger),
		Prober:   httpFetcher,
	}

	cmd := &SearchCmd{
		Query:      cli.Query,
		JSON:       cli.JSON,
		Probe:      cli.Probe,
		ProbeShard: cfg.Shards()[0],
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL     string        `name:"base-url" short:"b" env:"SHARDSEARCH_BASE_URL" help:"Address serving data-<n>.json shards"`
	Shards      int           `short:"n" default:"12" env:"SHARDSEARCH_SHARDS" help:"Number of shards to query"`
	Timeout     time.Duration `short:"t" default:"10s" env:"SHARDSEARCH_TIMEOUT" help:"Timeout per shard request"`
	Concurrency int           `short:"c" default:"0" env:"SHARDSEARCH_CONCURRENCY" help:"Concurrent shard fetches (0 = one per shard, 1 = sequential)"`
	JSON        bool          `help:"Print matches as a JSON array"`
	Probe       bool          `help:"Check that the first shard is reachable before searching"`
	Verbose     bool          `short:"v" help:"Log shard fetches to stderr"`
	Query       string        `arg:"" help:"Search term matched against Name, Number, Carrier, Address and Email"`
}

// Config returns the shard configuration described by the flags.
func (c *CLI) Config() shardsearch.Config {
	return shardsearch.Config{
		BaseURL:     c.BaseURL,
		ShardCount:  c.Shards,
		Timeout:     c.Timeout,
		Concurrency: c.Concurrency,
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
