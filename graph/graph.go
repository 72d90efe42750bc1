// Package graph implements an immutable directed graph store with
// construction-time validation: a directed graph G = (V, E, w) with
// V = {0..n-1}, non-negative edge weights, and O(1) outgoing-adjacency
// lookup via a CSR-like layout.
//
// A Graph is never mutated after New returns. Multiple independent searches
// may run concurrently over the same Graph from separate goroutines.
package graph

import (
	"sort"

	"github.com/pathcore/dmysssp/dmyerr"
)

// Edge is one directed edge (From -> To) with a non-negative Weight. ID is
// the edge's 1-based position in the input edge/weight arrays, preserved so
// callers can correlate a relaxed edge back to their own edge records.
type Edge struct {
	From, To int
	Weight   float64
	ID       int
}

// EdgeInput is the caller-supplied edge shape accepted by New: an
// (source, target) pair. Weights are supplied in a parallel slice so that
// weight-only updates (e.g. in tests) don't require rebuilding edge structs.
type EdgeInput struct {
	From, To int
}

// Graph is an immutable directed graph with CSR-like adjacency: edges are
// stored once in a flat slice, sorted by source vertex, with offsets into
// it recording where each vertex's outgoing edges begin.
type Graph struct {
	n        int
	edges    []Edge  // all edges, grouped by From (stable within each group)
	offsets  []int   // offsets[v]..offsets[v+1] is the slice of edges from v
}

// N returns the number of vertices, numbered 0..N()-1.
func (g *Graph) N() int { return g.n }

// NumEdges returns the number of edges.
func (g *Graph) NumEdges() int { return len(g.edges) }

// OutEdges returns the outgoing edges of vertex v in O(1), backed by the
// graph's internal storage — callers must not mutate the returned slice.
func (g *Graph) OutEdges(v int) []Edge {
	return g.edges[g.offsets[v]:g.offsets[v+1]]
}

// New validates (n, edges, weights) and builds an immutable Graph.
//
// Validation order matches the spec exactly: empty vertex set, then
// |weights| != |edges|, then any weight < 0, then any endpoint outside
// [0,n), and finally structural edge_id consistency (enforced implicitly:
// edge IDs are assigned 1..len(edges) by position, so no caller-supplied ID
// can be inconsistent — see EdgeInput, which carries no ID field).
func New(n int, edges []EdgeInput, weights []float64) (*Graph, error) {
	const op = "graph.New"
	if n < 1 {
		return nil, dmyerr.NewValidation(op, "n", "vertex set must be non-empty (n >= 1)")
	}
	if len(weights) != len(edges) {
		return nil, dmyerr.NewValidation(op, "weights", "length must equal len(edges)")
	}
	for _, w := range weights {
		if w < 0 {
			return nil, dmyerr.NewValidation(op, "weights", "edge weight must be non-negative")
		}
	}
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, dmyerr.NewValidation(op, "edges", "endpoint out of range [0,n)")
		}
	}

	// Stable counting sort by From, preserving input order within a vertex
	// (this is what makes adjacency iteration order deterministic).
	counts := make([]int, n+1)
	for _, e := range edges {
		counts[e.From+1]++
	}
	for v := 0; v < n; v++ {
		counts[v+1] += counts[v]
	}
	offsets := make([]int, n+1)
	copy(offsets, counts)

	cursor := make([]int, n)
	copy(cursor, counts[:n])

	sorted := make([]Edge, len(edges))
	for i, e := range edges {
		pos := cursor[e.From]
		cursor[e.From]++
		sorted[pos] = Edge{From: e.From, To: e.To, Weight: weights[i], ID: i + 1}
	}

	return &Graph{n: n, edges: sorted, offsets: offsets}, nil
}

// SortByKeyThenID is a small helper used by callers (pivot selection, block
// partitioning) that need a stably-sorted copy of a vertex subset by a key
// function, tie-broken by vertex id. Exported so dmysssp's pivot selection,
// block partitioning and recursive layer share one stable sort.
func SortByKeyThenID(vertices []int, key func(int) float64) []int {
	out := make([]int, len(vertices))
	copy(out, vertices)
	sort.SliceStable(out, func(i, j int) bool {
		ki, kj := key(out[i]), key(out[j])
		if ki != kj {
			return ki < kj
		}
		return out[i] < out[j]
	})
	return out
}
