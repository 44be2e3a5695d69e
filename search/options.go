package search

import "fmt"

// Options configures an Engine. Use DefaultOptions plus the With* functions
// below rather than constructing Options directly.
type Options struct {
	// EdgeBufferCapacity is how many core.Edge slots the engine
	// pre-allocates for a single expansion. Too small just costs a
	// reallocation the first time a wider expansion occurs; it is a
	// tuning knob, not a correctness one.
	EdgeBufferCapacity int

	// MaxExpansions caps how many nodes a single Search call will pop
	// before giving up and reporting not found, guarding against an
	// unbounded domain explored with a non-terminating or misconfigured
	// heuristic. Zero means unlimited.
	MaxExpansions int
}

// DefaultOptions returns the Options Engine uses when no Option overrides
// them: an 8-slot edge buffer (enough for any grid expander, which never
// emits more than 8 edges per node) and no expansion cap.
func DefaultOptions() Options {
	return Options{EdgeBufferCapacity: 8}
}

// Option mutates an Options in place. Option constructors validate their
// argument and panic immediately on an invalid one, rather than deferring
// the failure to the next Search call.
type Option func(*Options)

// WithEdgeBufferCapacity overrides the pre-allocated edge buffer capacity.
// Panics if capacity is negative.
func WithEdgeBufferCapacity(capacity int) Option {
	if capacity < 0 {
		panic(fmt.Errorf("search: edge buffer capacity must be non-negative, got %d", capacity))
	}
	return func(o *Options) { o.EdgeBufferCapacity = capacity }
}

// WithMaxExpansions caps the number of node expansions a single Search call
// will perform. Panics if max is negative.
func WithMaxExpansions(max int) Option {
	if max < 0 {
		panic(fmt.Errorf("search: max expansions must be non-negative, got %d", max))
	}
	return func(o *Options) { o.MaxExpansions = max }
}
