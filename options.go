package tezos

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Defaults for parsing and caching.
const (
	// DefaultMaxDepth is the deepest type nesting ParseParameter accepts.
	DefaultMaxDepth = 64

	// DefaultCacheSize is the number of contracts an EntryPointCache holds.
	DefaultCacheSize = 256
)

// ParseOption configures ParseParameter and ParseType.
type ParseOption func(*parseConfig)

// parseConfig holds configuration for a single parse.
type parseConfig struct {
	logger   *zap.Logger
	maxDepth int
}

// defaultParseConfig returns the default parse configuration.
func defaultParseConfig() *parseConfig {
	return &parseConfig{
		logger:   zap.NewNop(),
		maxDepth: DefaultMaxDepth,
	}
}

// WithLogger sets the logger used to report compiled entry points.
// A nil logger disables logging (the default).
func WithLogger(logger *zap.Logger) ParseOption {
	return func(c *parseConfig) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	}
}

// WithMaxDepth limits type nesting. Values below 1 restore DefaultMaxDepth.
func WithMaxDepth(depth int) ParseOption {
	return func(c *parseConfig) {
		if depth < 1 {
			depth = DefaultMaxDepth
		}
		c.maxDepth = depth
	}
}

// CacheOption configures an EntryPointCache.
type CacheOption func(*cacheConfig)

// cacheConfig holds configuration for NewEntryPointCache.
type cacheConfig struct {
	size       int
	logger     *zap.Logger
	registerer prometheus.Registerer
	parseOpts  []ParseOption
}

// defaultCacheConfig returns the default cache configuration.
func defaultCacheConfig() *cacheConfig {
	return &cacheConfig{
		size:   DefaultCacheSize,
		logger: zap.NewNop(),
	}
}

// WithCacheSize sets how many contracts the cache holds before evicting.
// Default is 256 (DefaultCacheSize).
func WithCacheSize(size int) CacheOption {
	return func(c *cacheConfig) {
		c.size = size
	}
}

// WithCacheLogger sets the cache logger. A nil logger disables logging.
func WithCacheLogger(logger *zap.Logger) CacheOption {
	return func(c *cacheConfig) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	}
}

// WithRegisterer registers the cache's hit, miss, eviction and compile error
// counters with reg. Without it the counters are kept but not exported.
func WithRegisterer(reg prometheus.Registerer) CacheOption {
	return func(c *cacheConfig) {
		c.registerer = reg
	}
}

// WithParseOptions sets the options used when the cache compiles a signature.
func WithParseOptions(opts ...ParseOption) CacheOption {
	return func(c *cacheConfig) {
		c.parseOpts = append(c.parseOpts, opts...)
	}
}
