// Package dmysssp implements the Duan-Mao-Yin style recursive single-source
// shortest path engine: bounded multi-source relaxation (BMSSP), pivot
// selection, distance-ordered block partitioning, the recursive layer that
// ties them together, and the top-level SSSP driver with its mandatory
// correctness fallback.
//
// The recursion is grounded on other_examples/phr3nzy-duan-sssp's Solver,
// the pack's closest reference implementation of the Duan-Mao-Yin paper;
// round semantics are simplified to the spec's deterministic, bounded-round
// contract rather than that reference's level-indexed batch-prepend queue.
package dmysssp

import (
	"github.com/pathcore/dmysssp/dmyerr"
	"github.com/pathcore/dmysssp/graph"
)

// BMSSP relaxes edges from a non-empty multi-source frontier S under an
// upper bound B, for at most k rounds (or until a round makes no change),
// updating dist and parent in place. It returns the vertices whose
// distance was updated in the final round that produced any update, or a
// copy of S if no round produced an update.
//
// Rounds visit the current frontier in insertion order; within a round,
// ties leave parent set to the first improver encountered, since a
// relaxation only fires on a strict decrease.
func BMSSP(g *graph.Graph, dist []float64, parent []int, s []int, b float64, k int) ([]int, error) {
	const op = "dmysssp.BMSSP"
	n := g.N()
	if k <= 0 {
		return nil, dmyerr.NewValidation(op, "k", "must be >= 1")
	}
	if b < 0 {
		return nil, dmyerr.NewValidation(op, "b", "must be >= 0")
	}
	if len(dist) != n {
		return nil, dmyerr.NewValidation(op, "dist", "length must equal graph.N()")
	}
	if len(parent) != n {
		return nil, dmyerr.NewValidation(op, "parent", "length must equal graph.N()")
	}
	if len(s) == 0 {
		return nil, dmyerr.NewValidation(op, "s", "frontier must be non-empty")
	}
	for _, v := range s {
		if v < 0 || v >= n {
			return nil, dmyerr.NewValidation(op, "s", "frontier vertex out of range")
		}
	}

	current := dedupeOrdered(s)
	updatedAny := false
	var lastRound []int

	for round := 0; round < k; round++ {
		next := make([]int, 0)
		nextSeen := make(map[int]bool)
		changed := false

		for _, u := range current {
			if dist[u] > b {
				continue
			}
			for _, e := range g.OutEdges(u) {
				nd := dist[u] + e.Weight
				if nd < dist[e.To] && nd <= b {
					dist[e.To] = nd
					parent[e.To] = u
					changed = true
					if !nextSeen[e.To] {
						nextSeen[e.To] = true
						next = append(next, e.To)
					}
				}
			}
		}

		if !changed {
			break
		}
		updatedAny = true
		lastRound = next
		current = next
	}

	if !updatedAny {
		out := make([]int, len(s))
		copy(out, s)
		return out, nil
	}
	return lastRound, nil
}

// relaxOnce relaxes u's outgoing edges a single time, respecting bound b.
// Used by the recursive layer's |U| == 1 base case.
func relaxOnce(g *graph.Graph, dist []float64, parent []int, u int, b float64) {
	for _, e := range g.OutEdges(u) {
		nd := dist[u] + e.Weight
		if nd < dist[e.To] && nd <= b {
			dist[e.To] = nd
			parent[e.To] = u
		}
	}
}
