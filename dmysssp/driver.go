package dmysssp

import (
	"math"

	"github.com/pathcore/dmysssp/dmyerr"
	"github.com/pathcore/dmysssp/graph"
)

// SSSP computes single-source shortest distances from source over g.
func SSSP(g *graph.Graph, source int, opts ...Option) ([]float64, error) {
	dist, _, err := run(g, source, math.Inf(1), opts...)
	return dist, err
}

// SSSPWithParents computes single-source shortest distances and a
// shortest-path-tree parent vector (NONE encoded as -1).
func SSSPWithParents(g *graph.Graph, source int, opts ...Option) ([]float64, []int, error) {
	return run(g, source, math.Inf(1), opts...)
}

// SSSPBounded computes shortest distances no greater than maxDistance;
// vertices whose true shortest distance exceeds maxDistance are reported
// as unreachable (+Inf), matching SSSP's result for every vertex whose
// true distance is within the bound.
func SSSPBounded(g *graph.Graph, source int, maxDistance float64, opts ...Option) ([]float64, error) {
	if maxDistance < 0 {
		return nil, dmyerr.NewValidation("dmysssp.SSSPBounded", "max_distance", "must be >= 0")
	}
	dist, _, err := run(g, source, maxDistance, opts...)
	return dist, err
}

func run(g *graph.Graph, source int, bound float64, opts ...Option) ([]float64, []int, error) {
	const op = "dmysssp.SSSP"
	n := g.N()
	if source < 0 || source >= n {
		return nil, nil, dmyerr.NewBounds(op, source, n)
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	dist := make([]float64, n)
	parent := make([]int, n)
	for v := range dist {
		dist[v] = math.Inf(1)
		parent[v] = -1
	}
	dist[source] = 0

	all := make([]int, n)
	for v := range all {
		all[v] = v
	}

	RecursiveLayer(g, dist, parent, all, []int{source}, bound)

	correctnessFallback(g, dist, parent, bound, cfg.maxFallbackPasses)

	return dist, parent, nil
}

// correctnessFallback is the mandatory Bellman-Ford-style mop-up pass: it
// repeatedly relaxes every outgoing edge of every vertex with finite
// distance within bound, until a pass makes no change or maxPasses
// (capped at n) is reached. This guarantees the output equals the true
// SSSP result even if the recursive layer left some long relaxation chain
// pending; it is a correctness mechanism, not a performance one.
func correctnessFallback(g *graph.Graph, dist []float64, parent []int, bound float64, maxPasses int) {
	n := g.N()
	passes := maxPasses
	if passes > n {
		passes = n
	}
	if passes < 1 {
		passes = 1
	}

	for pass := 0; pass < passes; pass++ {
		changed := false
		for u := 0; u < n; u++ {
			if math.IsInf(dist[u], 1) || dist[u] > bound {
				continue
			}
			for _, e := range g.OutEdges(u) {
				nd := dist[u] + e.Weight
				if nd < dist[e.To] && nd <= bound {
					dist[e.To] = nd
					parent[e.To] = u
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
}
