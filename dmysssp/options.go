package dmysssp

// Option configures tunables of an SSSP call. Following the functional
// options shape used throughout the pack (see lvlath/builder), option
// constructors validate and panic on literal nonsense — algorithms
// themselves never panic.
type Option func(*config)

type config struct {
	maxFallbackPasses int
}

func defaultConfig() config {
	return config{maxFallbackPasses: 10}
}

// WithMaxFallbackPasses overrides the default cap (10) on the correctness
// fallback's Bellman-Ford-style mop-up passes. The effective pass count is
// always additionally capped at the vertex count.
func WithMaxFallbackPasses(n int) Option {
	if n < 1 {
		panic("dmysssp: WithMaxFallbackPasses(n<1)")
	}
	return func(c *config) {
		c.maxFallbackPasses = n
	}
}
