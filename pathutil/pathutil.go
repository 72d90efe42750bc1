package pathutil

import (
	"math"

	"github.com/pathcore/dmysssp/dmyerr"
	"github.com/pathcore/dmysssp/graph"
)

var posInf = math.Inf(1)

// ReconstructPath walks parent from target back to source, returning the
// vertex sequence source..target. If the walk never reaches source, an
// empty sequence is returned (target is unreachable under this parent
// vector). If the walk exceeds n steps — which should never happen on a
// correctly maintained parent vector — a CycleError is returned as a
// guard against a corrupted tree.
func ReconstructPath(parent []int, source, target int) ([]int, error) {
	const op = "pathutil.ReconstructPath"
	n := len(parent)

	rev := make([]int, 0, n)
	v := target
	for steps := 0; ; steps++ {
		if steps > n {
			return nil, dmyerr.NewCycle(op, v)
		}
		rev = append(rev, v)
		if v == source {
			path := make([]int, len(rev))
			for i, x := range rev {
				path[len(rev)-1-i] = x
			}
			return path, nil
		}
		if v < 0 || v >= n || parent[v] == -1 {
			return nil, nil
		}
		v = parent[v]
	}
}

// ShortestPathTree reconstructs the path from source to every vertex
// reachable under parent, keyed by vertex.
func ShortestPathTree(parent []int, source int) (map[int][]int, error) {
	tree := make(map[int][]int, len(parent))
	for v := range parent {
		path, err := ReconstructPath(parent, source, v)
		if err != nil {
			return nil, err
		}
		if len(path) > 0 {
			tree[v] = path
		}
	}
	return tree, nil
}

// PathLength sums edge weights along consecutive pairs of path, using the
// minimum-weight edge when parallel edges connect a pair. It returns +Inf
// if any consecutive pair has no connecting edge.
func PathLength(path []int, g *graph.Graph) float64 {
	if len(path) < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		best := posInf
		for _, e := range g.OutEdges(u) {
			if e.To == v && e.Weight < best {
				best = e.Weight
			}
		}
		if math.IsInf(best, 1) {
			return posInf
		}
		total += best
	}
	return total
}

// VerifyShortestPath reports whether dist[target] equals the cost of some
// source-target path and is minimal against the triangle inequality over
// every edge incoming to target (dist[target] <= dist[u] + w(u,target)
// for every edge u->target, with equality for at least one when target is
// reachable and not the source).
func VerifyShortestPath(g *graph.Graph, dist []float64, source, target int) bool {
	n := g.N()
	if target < 0 || target >= n || source < 0 || source >= n {
		return false
	}
	if target == source {
		return dist[target] == 0
	}
	if math.IsInf(dist[target], 1) {
		return false // no path claimed to exist, so it can't equal one's cost
	}

	matched := false
	for u := 0; u < n; u++ {
		for _, e := range g.OutEdges(u) {
			if e.To != target {
				continue
			}
			if dist[u]+e.Weight < dist[target]-1e-9 {
				return false // triangle inequality violated
			}
			if math.Abs(dist[u]+e.Weight-dist[target]) <= 1e-9 {
				matched = true
			}
		}
	}
	return matched
}

// ReachableVertices returns every vertex v with dist[v] <= budget.
func ReachableVertices(dist []float64, budget float64) []int {
	out := make([]int, 0)
	for v, d := range dist {
		if d <= budget {
			out = append(out, v)
		}
	}
	return out
}

// ShortestPath returns the shortest distance and path from s to t.
func ShortestPath(g *graph.Graph, dist []float64, parent []int, s, t int) (float64, []int, error) {
	path, err := ReconstructPath(parent, s, t)
	if err != nil {
		return 0, nil, err
	}
	if len(path) == 0 {
		return posInf, nil, nil
	}
	return dist[t], path, nil
}

// DistanceRatio compares a computed distance against a reference distance,
// returning computed/reference, +Inf when exactly one of the two is
// unreachable (or the reference is 0 and computed is not), and 1.0 when
// both are unreachable or both are 0.
func DistanceRatio(computed, reference float64) float64 {
	refInf := math.IsInf(reference, 1)
	compInf := math.IsInf(computed, 1)
	switch {
	case refInf && compInf:
		return 1.0
	case refInf || compInf:
		return posInf
	case reference == 0:
		if computed == 0 {
			return 1.0
		}
		return posInf
	default:
		return computed / reference
	}
}

// CompareWithReference reports whether dist matches ReferenceDijkstra's
// output element-wise (treating +Inf as equal to +Inf), and the first
// mismatching vertex if not.
func CompareWithReference(g *graph.Graph, dist []float64, source int) (ok bool, mismatch int) {
	ref := ReferenceDijkstra(g, source)
	for v := range dist {
		a, b := dist[v], ref[v]
		if math.IsInf(a, 1) && math.IsInf(b, 1) {
			continue
		}
		if math.Abs(a-b) > 1e-9 {
			return false, v
		}
	}
	return true, -1
}
