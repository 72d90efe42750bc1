package pareto

// Option configures the Pareto search. Analogous in shape to dmysssp's
// functional options (dmysssp/options.go).
type Option func(*config)

type config struct {
	epsilon float64
}

func defaultConfig() config {
	return config{epsilon: 1e-6}
}

// WithEpsilon sets the relative tolerance used by epsilon-dominance
// crowding when the number of labels reaching the target exceeds
// max_solutions. Panics if eps <= 0, mirroring dmysssp's panicking option
// constructors for literal nonsense.
func WithEpsilon(eps float64) Option {
	if eps <= 0 {
		panic("pareto: WithEpsilon(eps<=0)")
	}
	return func(c *config) { c.epsilon = eps }
}
