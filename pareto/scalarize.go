package pareto

import (
	"math"

	"github.com/pathcore/dmysssp/dmyerr"
	"github.com/pathcore/dmysssp/dmysssp"
	"github.com/pathcore/dmysssp/graph"
	"github.com/pathcore/dmysssp/mograph"
	"github.com/pathcore/dmysssp/pathutil"
)

// PathObjectives sums the objective vectors of the edges realizing path
// (consecutive vertex pairs), choosing the first matching parallel edge at
// each step for a deterministic total regardless of how many parallel
// edges connect a pair.
func PathObjectives(g *mograph.Graph, path []int) []float64 {
	sum := make([]float64, g.D())
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		for _, e := range g.OutEdges(u) {
			if e.To == v {
				for k := range sum {
					sum[k] += e.Objectives[k]
				}
				break
			}
		}
	}
	return sum
}

func requireAllMin(op string, sense []mograph.Sense) error {
	for i, s := range sense {
		if s == mograph.Max {
			return dmyerr.NewSense(op, i)
		}
	}
	return nil
}

// WeightedSum requires every objective to use Min sense so the derived
// single-objective weights stay non-negative and can be handed straight to
// the real shortest-path driver (graph.New + dmysssp.SSSP) — a literal
// reduction, not a reimplementation.
func WeightedSum(g *mograph.Graph, source, target int, weights []float64) (Solution, error) {
	const op = "pareto.WeightedSum"
	n := g.N()
	if source < 0 || source >= n {
		return Solution{}, dmyerr.NewBounds(op, source, n)
	}
	if target < 0 || target >= n {
		return Solution{}, dmyerr.NewBounds(op, target, n)
	}
	if len(weights) != g.D() {
		return Solution{}, dmyerr.NewValidation(op, "weights", "length must equal d")
	}
	if err := requireAllMin(op, g.Sense()); err != nil {
		return Solution{}, err
	}

	edges := make([]graph.EdgeInput, g.NumEdges())
	w := make([]float64, g.NumEdges())
	i := 0
	for v := 0; v < n; v++ {
		for _, e := range g.OutEdges(v) {
			edges[i] = graph.EdgeInput{From: e.From, To: e.To}
			cost := 0.0
			for k, wt := range weights {
				cost += wt * e.Objectives[k]
			}
			w[i] = cost
			i++
		}
	}
	dg, err := graph.New(n, edges, w)
	if err != nil {
		return Solution{}, err
	}
	_, parent, err := dmysssp.SSSPWithParents(dg, source)
	if err != nil {
		return Solution{}, err
	}
	path, err := pathutil.ReconstructPath(parent, source, target)
	if err != nil {
		return Solution{}, err
	}
	if len(path) == 0 {
		return Solution{Path: nil, Objectives: infVector(g.D())}, nil
	}
	return Solution{Path: path, Objectives: PathObjectives(g, path)}, nil
}

// Lexicographic realizes strict priority order among objectives via
// perturbation weights: the highest-priority objective gets a multiplier
// large enough to dominate the scalar sum of every lower-priority one,
// then reduces to WeightedSum.
func Lexicographic(g *mograph.Graph, source, target int, priority []int) (Solution, error) {
	const op = "pareto.Lexicographic"
	n := g.N()
	if source < 0 || source >= n {
		return Solution{}, dmyerr.NewBounds(op, source, n)
	}
	if target < 0 || target >= n {
		return Solution{}, dmyerr.NewBounds(op, target, n)
	}
	d := g.D()
	if err := requireAllMin(op, g.Sense()); err != nil {
		return Solution{}, err
	}
	if !isPermutation(priority, d) {
		return Solution{}, dmyerr.NewValidation(op, "priority", "must be a permutation of objective indices [0,d)")
	}

	bound := pathBoundEstimate(n, func(v int) [][]float64 {
		edges := g.OutEdges(v)
		out := make([][]float64, len(edges))
		for i, e := range edges {
			out[i] = e.Objectives
		}
		return out
	})
	m := bound + 1
	weights := make([]float64, d)
	scale := 1.0
	for rank := 0; rank < d; rank++ {
		idx := priority[d-1-rank]
		weights[idx] = scale
		scale *= m
	}
	return WeightedSum(g, source, target, weights)
}

// EpsilonConstraint minimizes (or maximizes, per sense) a single
// designated objective subject to per-objective bounds on the cumulative
// path objectives, with +Inf meaning "no bound". Unlike WeightedSum and
// Lexicographic, this cannot reduce to a bare derived-weight call into
// dmysssp.SSSP: feasibility depends on cumulative values across every
// bounded dimension along the path so far, state a single scalar dist[]
// cannot represent, and the derived weight itself may be negative when
// the target objective uses Max sense (disallowed by graph.New, whose
// non-negativity requirement is intentionally scoped to the core engine).
// So this is a dedicated constrained relaxation, in the same
// label-correcting shape as dmysssp's correctness-fallback Bellman-Ford
// mop-up, with a feasibility filter folded into each relax attempt.
//
// Each vertex keeps a single label: the feasible one with the best scalar
// value found so far. A feasible path whose prefix loses that comparison at
// some vertex to a prefix that later becomes infeasible is therefore not
// found; when no kept label reaches target, the result is reported as
// infeasible even if a feasible path exists.
func EpsilonConstraint(g *mograph.Graph, source, target, objectiveIndex int, bounds []float64) (Solution, error) {
	const op = "pareto.EpsilonConstraint"
	n := g.N()
	if source < 0 || source >= n {
		return Solution{}, dmyerr.NewBounds(op, source, n)
	}
	if target < 0 || target >= n {
		return Solution{}, dmyerr.NewBounds(op, target, n)
	}
	d := g.D()
	if objectiveIndex < 0 || objectiveIndex >= d {
		return Solution{}, dmyerr.NewValidation(op, "objective_index", "out of range [0,d)")
	}
	if len(bounds) != d {
		return Solution{}, dmyerr.NewValidation(op, "bounds", "length must equal d")
	}
	sense := g.Sense()

	sign := 1.0
	if sense[objectiveIndex] == mograph.Max {
		sign = -1.0
	}

	feasible := func(cum []float64) bool {
		for i, b := range bounds {
			if math.IsInf(b, 1) {
				continue
			}
			switch sense[i] {
			case mograph.Min:
				if cum[i] > b {
					return false
				}
			case mograph.Max:
				if cum[i] < b {
					return false
				}
			}
		}
		return true
	}

	scalarDist := make([]float64, n)
	cumulative := make([][]float64, n)
	parent := make([]int, n)
	for v := 0; v < n; v++ {
		scalarDist[v] = math.Inf(1)
		parent[v] = -1
	}
	scalarDist[source] = 0
	cumulative[source] = make([]float64, d)

	for pass := 0; pass < n; pass++ {
		changed := false
		for u := 0; u < n; u++ {
			if math.IsInf(scalarDist[u], 1) {
				continue
			}
			for _, e := range g.OutEdges(u) {
				childCum := addVec(cumulative[u], e.Objectives)
				if !feasible(childCum) {
					continue
				}
				nd := scalarDist[u] + sign*e.Objectives[objectiveIndex]
				if nd < scalarDist[e.To] {
					scalarDist[e.To] = nd
					cumulative[e.To] = childCum
					parent[e.To] = u
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	if math.IsInf(scalarDist[target], 1) {
		return Solution{Path: nil, Objectives: infVector(d)}, nil
	}
	path, err := pathutil.ReconstructPath(parent, source, target)
	if err != nil {
		return Solution{}, err
	}
	return Solution{Path: path, Objectives: cumulative[target]}, nil
}

// KneePoint selects the front member closest (Euclidean, per-objective
// range-normalized, Max dimensions flipped to a shared "smaller is
// better" scale) to the utopia point, a standard knee-point heuristic for
// picking one balanced compromise out of a Pareto front. Ties broken by
// the same deterministic total order Front uses to sort its output.
func KneePoint(front []Solution, sense []mograph.Sense) (Solution, bool) {
	if len(front) == 0 {
		return Solution{}, false
	}
	d := len(sense)
	mins := make([]float64, d)
	maxs := make([]float64, d)
	for i := range mins {
		mins[i] = math.Inf(1)
		maxs[i] = math.Inf(-1)
	}
	for _, s := range front {
		for i, v := range s.Objectives {
			if v < mins[i] {
				mins[i] = v
			}
			if v > maxs[i] {
				maxs[i] = v
			}
		}
	}

	bestIdx := -1
	bestDist := math.Inf(1)
	for idx, s := range front {
		dist := 0.0
		for i, v := range s.Objectives {
			rng := maxs[i] - mins[i]
			norm := 0.0
			if rng != 0 {
				norm = (v - mins[i]) / rng
			}
			if sense[i] == mograph.Max {
				norm = 1 - norm
			}
			dist += norm * norm
		}
		dist = math.Sqrt(dist)
		switch {
		case dist < bestDist-1e-12:
			bestDist, bestIdx = dist, idx
		case math.Abs(dist-bestDist) <= 1e-12 && bestIdx != -1 && lessSolution(s, front[bestIdx]):
			bestDist, bestIdx = dist, idx
		}
	}
	return front[bestIdx], true
}
