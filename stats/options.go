package stats

import (
	"fmt"
	"runtime"

	"github.com/arloliu/linreg/internal/options"
)

// defaultParallelThreshold is the minimum input length at which a
// parallel reduction request is honored. Below this size the fixed cost
// of spawning workers dominates the reduction itself.
const defaultParallelThreshold = 4096

// Config holds the execution-strategy settings for the reduction
// primitives.
type Config struct {
	parallel  bool
	threshold int
	workers   int
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// newConfig returns a Config with defaults applied, then modified by the
// given options.
func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		parallel:  false,
		threshold: defaultParallelThreshold,
		workers:   runtime.GOMAXPROCS(0),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// useParallel reports whether the parallel strategy applies to an input
// of length n under this configuration.
func (cfg *Config) useParallel(n int) bool {
	return cfg.parallel && cfg.workers > 1 && n >= cfg.threshold
}

// WithParallel enables the data-parallel fork-join reduction strategy.
//
// The strategy only takes effect for inputs at least as long as the
// parallel threshold; shorter inputs run sequentially regardless.
func WithParallel() Option {
	return options.NoError(func(cfg *Config) {
		cfg.parallel = true
	})
}

// WithParallelThreshold sets the minimum input length at which the
// parallel strategy takes effect. The default is 4096 elements.
//
// Returns an error option if n is not positive.
func WithParallelThreshold(n int) Option {
	return func(cfg *Config) error {
		if n <= 0 {
			return fmt.Errorf("parallel threshold must be positive, got %d", n)
		}
		cfg.threshold = n

		return nil
	}
}

// WithWorkers sets the number of workers used by the parallel strategy.
// The default is runtime.GOMAXPROCS(0).
//
// Returns an error option if n is not positive.
func WithWorkers(n int) Option {
	return func(cfg *Config) error {
		if n <= 0 {
			return fmt.Errorf("worker count must be positive, got %d", n)
		}
		cfg.workers = n

		return nil
	}
}
