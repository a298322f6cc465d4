package cleave

import "github.com/rs/zerolog"

// defaultThreshold is the sequential cutoff used when [WithThreshold]
// is not given. Below this length the per-fork bookkeeping costs more
// than the work it distributes for typical transforms.
const defaultThreshold = 64

// SplitInfo describes one split decision made by the bridge. It is
// passed to the hook registered via [WithOnSplit].
type SplitInfo struct {
	// Len is the producer length at the moment of the split.
	Len int
	// Mid is the chosen split index; the halves cover [0, Mid) and
	// [Mid, Len).
	Mid int
}

type config struct {
	threshold  int
	limit      int
	panicAsErr bool
	onSplit    func(SplitInfo)
	logger     zerolog.Logger
}

// Option configures a terminal operation.
type Option func(*config)

func defaultConfig() config {
	return config{
		threshold: defaultThreshold,
		logger:    zerolog.Nop(),
	}
}

// WithThreshold sets the length at or below which the bridge stops
// splitting and drains sequentially. For an associative combine the
// result does not depend on the threshold; only scheduling granularity
// does. WithThreshold panics if n < 1.
func WithThreshold(n int) Option {
	if n < 1 {
		panic("cleave: threshold must be at least 1")
	}
	return func(c *config) {
		c.threshold = n
	}
}

// WithLimit sets the maximum number of goroutines, including the
// calling one, that a terminal operation may use. A limit of 1 forces
// fully inline, sequential execution.
//
// A limit of zero (the default) means runtime.NumCPU().
// WithLimit panics if n is negative.
func WithLimit(n int) Option {
	if n < 0 {
		panic("cleave: limit must be non-negative")
	}
	return func(c *config) {
		c.limit = n
	}
}

// WithPanicAsError converts panics in user-supplied functions to
// [*PanicError] values returned as regular errors, instead of being
// re-raised at the terminal call.
func WithPanicAsError() Option {
	return func(c *config) {
		c.panicAsErr = true
	}
}

// WithOnSplit registers a hook invoked for every split decision the
// bridge makes. The hook runs on the goroutine performing the split and
// must be safe for concurrent invocation.
//
// Panics if fn is nil.
func WithOnSplit(fn func(SplitInfo)) Option {
	if fn == nil {
		panic("cleave: WithOnSplit requires non-nil hook")
	}
	return func(c *config) {
		c.onSplit = fn
	}
}

// WithLogger enables trace-level logging of split and drain decisions
// through the given zerolog logger. The default is a no-op logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
