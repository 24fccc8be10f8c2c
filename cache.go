package tezos

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// EntryPointCache holds compiled entry points keyed by contract address.
// It is safe for concurrent use. Compiled entry points are immutable and
// shared between callers.
type EntryPointCache struct {
	entries   *lru.Cache[string, []*EntryPoint]
	logger    *zap.Logger
	parseOpts []ParseOption
	metrics   *cacheMetrics
}

type cacheMetrics struct {
	hits          prometheus.Counter
	misses        prometheus.Counter
	evictions     prometheus.Counter
	compileErrors prometheus.Counter
}

func newCacheMetrics() *cacheMetrics {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tezos",
			Subsystem: "entrypoint_cache",
			Name:      name,
			Help:      help,
		})
	}
	return &cacheMetrics{
		hits:          counter("hits_total", "Entry point lookups served from the cache"),
		misses:        counter("misses_total", "Entry point lookups that required compiling a signature"),
		evictions:     counter("evictions_total", "Contracts evicted to make room for new entries"),
		compileErrors: counter("compile_errors_total", "Parameter signatures that failed to compile"),
	}
}

func (m *cacheMetrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.hits, m.misses, m.evictions, m.compileErrors}
}

// NewEntryPointCache creates a cache with the given options.
func NewEntryPointCache(opts ...CacheOption) (*EntryPointCache, error) {
	cfg := defaultCacheConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	entries, err := lru.New[string, []*EntryPoint](cfg.size)
	if err != nil {
		return nil, fmt.Errorf("%w: cache size %d: %v", ErrInvalidArgument, cfg.size, err)
	}

	c := &EntryPointCache{
		entries:   entries,
		logger:    cfg.logger,
		parseOpts: cfg.parseOpts,
		metrics:   newCacheMetrics(),
	}

	if cfg.registerer != nil {
		for _, col := range c.metrics.collectors() {
			if err := cfg.registerer.Register(col); err != nil {
				return nil, fmt.Errorf("tezos: registering cache metrics: %w", err)
			}
		}
	}
	return c, nil
}

// Load returns the entry points of the contract at address, compiling
// signature on a miss. The address must be a valid tz or KT1 address.
func (c *EntryPointCache) Load(address, signature string) ([]*EntryPoint, error) {
	if _, err := EncodeAddress(address); err != nil {
		return nil, err
	}

	if eps, ok := c.entries.Get(address); ok {
		c.metrics.hits.Inc()
		return eps, nil
	}
	c.metrics.misses.Inc()

	eps, err := ParseParameter(signature, c.parseOpts...)
	if err != nil {
		c.metrics.compileErrors.Inc()
		c.logger.Warn("failed to compile parameter signature",
			zap.String("address", address),
			zap.Int("signature_len", len(signature)),
			zap.Error(err))
		return nil, err
	}

	if evicted := c.entries.Add(address, eps); evicted {
		c.metrics.evictions.Inc()
	}
	c.logger.Debug("cached entry points",
		zap.String("address", address),
		zap.Int("entrypoints", len(eps)))
	return eps, nil
}

// Get returns the cached entry points for address without compiling.
func (c *EntryPointCache) Get(address string) ([]*EntryPoint, bool) {
	eps, ok := c.entries.Get(address)
	if ok {
		c.metrics.hits.Inc()
	} else {
		c.metrics.misses.Inc()
	}
	return eps, ok
}

// Remove drops address from the cache and reports whether it was present.
func (c *EntryPointCache) Remove(address string) bool {
	return c.entries.Remove(address)
}

// Len returns the number of cached contracts.
func (c *EntryPointCache) Len() int {
	return c.entries.Len()
}

// Purge empties the cache.
func (c *EntryPointCache) Purge() {
	c.entries.Purge()
}
