package route

// FinderConfig captures the construction-time options recognised by
// NewRouteFinder (spec.md §6).
type FinderConfig struct {
	// SearchMapSize is the edge, in tiles, of the BFS search window
	// centred on the source. Must be positive and even for the window to
	// centre cleanly on the source tile.
	SearchMapSize int
	// RingBufferSize is the frontier queue capacity. Must be a power of
	// two so index wrapping can use a bitmask.
	RingBufferSize int
	// UseRouteBlockerFlags selects the *_ROUTE_BLOCKER flag family in
	// every expansion function instead of the ordinary wall flags.
	UseRouteBlockerFlags bool
}

// DefaultFinderConfig mirrors the defaults spec.md §6 lists.
func DefaultFinderConfig() FinderConfig {
	return FinderConfig{
		SearchMapSize:        128,
		RingBufferSize:       4096,
		UseRouteBlockerFlags: false,
	}
}

// Option mutates a FinderConfig at construction time.
type Option func(*FinderConfig)

// WithSearchMapSize overrides the BFS window edge length.
func WithSearchMapSize(size int) Option {
	return func(cfg *FinderConfig) { cfg.SearchMapSize = size }
}

// WithRingBufferSize overrides the frontier ring buffer capacity. size must
// be a power of two; NewRouteFinder panics otherwise (spec.md §9: "MUST
// validate this at construction").
func WithRingBufferSize(size int) Option {
	return func(cfg *FinderConfig) { cfg.RingBufferSize = size }
}

// WithRouteBlockerFlags selects the stricter *_ROUTE_BLOCKER flag family
// for every expansion in this finder instance (spec.md §4.3.5, §9: the
// default is false and the core does not infer a caller's intent).
func WithRouteBlockerFlags(use bool) Option {
	return func(cfg *FinderConfig) { cfg.UseRouteBlockerFlags = use }
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
