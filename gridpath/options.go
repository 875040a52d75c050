package gridpath

import "context"

// Option configures optional behavior of Search and SearchFrom.
type Option func(*Options)

// Options holds configurable parameters for a search.
// With the defaults the search is permissive, unbounded and never aborts.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnPath, if non-nil, is invoked once for every newly discovered path,
	// after it was added to the result. Returning an error aborts the search.
	// The Path passed in is owned by the result set and must not be mutated.
	OnPath func(p Path) error

	// Limit, if positive, stops the search cleanly once that many distinct
	// paths have been collected. Default 0 (no limit).
	Limit int

	// Strict rejects MaxRun <= 0 and negative coordinates up front instead of
	// letting the algorithm define the outcome.
	Strict bool
}

// DefaultOptions returns Options with a background context, no hook,
// no limit and permissive validation.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnPath: nil,
		Limit:  0,
		Strict: false,
	}
}

// WithContext sets the context used for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPath installs fn as the discovery hook.
func WithOnPath(fn func(p Path) error) Option {
	return func(o *Options) {
		o.OnPath = fn
	}
}

// WithLimit stops the search after n distinct paths. n <= 0 means unlimited.
func WithLimit(n int) Option {
	return func(o *Options) {
		o.Limit = n
	}
}

// WithStrict enables input validation.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
