package shardsearch

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Configuration defaults.
const (
	DefaultShardCount = 12
	DefaultTimeout    = 10 * time.Second
)

// Config describes where the shards live and how they are queried.
type Config struct {
	// BaseURL is the address shard paths are appended to.
	BaseURL string `json:"baseUrl"`

	// ShardCount is N; shards are numbered 1..N.
	ShardCount int `json:"shardCount"`

	// Timeout bounds each shard request.
	Timeout time.Duration `json:"timeout"`

	// Concurrency caps in-flight shard fetches. Zero means one per shard;
	// 1 fetches shards strictly one after another.
	Concurrency int `json:"concurrency"`
}

// DefaultConfig returns a Config for the given base URL with default settings.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:    baseURL,
		ShardCount: DefaultShardCount,
		Timeout:    DefaultTimeout,
	}
}

// Validate returns an ECONFIG error if the configuration cannot run a query.
func (c *Config) Validate() error {
	if c.ShardCount <= 0 {
		return Errorf(ECONFIG, "shard count must be positive, got %d", c.ShardCount)
	}
	if c.Timeout <= 0 {
		return Errorf(ECONFIG, "timeout must be positive, got %s", c.Timeout)
	}
	if c.Concurrency < 0 {
		return Errorf(ECONFIG, "concurrency must not be negative, got %d", c.Concurrency)
	}
	if c.BaseURL == "" {
		return Errorf(ECONFIG, "base URL required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return Errorf(ECONFIG, "invalid base URL %q: %v", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(ECONFIG, "base URL %q must use http or https", c.BaseURL)
	}
	if u.Host == "" {
		return Errorf(ECONFIG, "base URL %q has no host", c.BaseURL)
	}
	return nil
}

// Workers returns the effective number of concurrent fetches.
func (c *Config) Workers() int {
	if c.Concurrency <= 0 || c.Concurrency > c.ShardCount {
		return c.ShardCount
	}
	return c.Concurrency
}

// Shards returns every shard of the configuration in ascending index order.
func (c *Config) Shards() []Shard {
	shards := make([]Shard, 0, c.ShardCount)
	for i := 1; i <= c.ShardCount; i++ {
		shards = append(shards, Shard{Index: i, URL: ShardURL(c.BaseURL, i)})
	}
	return shards
}

// ShardURL resolves the locator of the shard with the given index.
func ShardURL(baseURL string, index int) string {
	return strings.TrimRight(baseURL, "/") + "/data-" + strconv.Itoa(index) + ".json"
}
