package allocation

import "github.com/rs/zerolog"

// Defaults for the allocation strategies.
const (
	// DefaultDelta is the default maximum claw size explored by LocalSearch.
	DefaultDelta = 3

	// MinDelta is the smallest meaningful claw size.
	MinDelta = 2
)

// Option configures a strategy.
type Option func(*Options)

// Options holds the strategy knobs. Only LocalSearch reads Delta and MaxSwaps.
type Options struct {
	// Delta is the maximum claw size φ tried around each selected vertex.
	Delta int

	// MaxSwaps bounds the number of accepted swaps; 0 means run to a local optimum.
	MaxSwaps int

	// Logger receives debug events (greedy result, accepted swaps).
	Logger zerolog.Logger
}

// DefaultOptions returns:
//   - Delta = DefaultDelta
//   - MaxSwaps = 0 (unbounded)
//   - a disabled logger
func DefaultOptions() Options {
	return Options{
		Delta:    DefaultDelta,
		MaxSwaps: 0,
		Logger:   zerolog.Nop(),
	}
}

// WithDelta sets the maximum claw size. Values below MinDelta are rejected
// by NewLocalSearch with ErrInvalidDelta.
func WithDelta(delta int) Option {
	return func(o *Options) { o.Delta = delta }
}

// WithMaxSwaps stops LocalSearch after n accepted swaps (n ≤ 0: no limit).
func WithMaxSwaps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxSwaps = n
	}
}

// WithLogger installs a zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
