// Package mograph implements a multi-objective graph: the same directed
// topology as graph.Graph, but every edge carries a fixed-length objective
// vector and the graph carries a per-objective sense (MIN or MAX) used by
// pareto's dominance search and scalarizations.
package mograph

import (
	"github.com/pathcore/dmysssp/dmyerr"
)

// Sense is the optimization direction of one objective dimension.
type Sense int

const (
	Min Sense = iota
	Max
)

// EdgeInput is the caller-supplied edge shape: a (source, target) pair
// whose objective vector is supplied in the parallel Objectives slice
// passed to New.
type EdgeInput struct {
	From, To int
}

// Edge is one directed edge with its objective vector.
type Edge struct {
	From, To   int
	Objectives []float64
	ID         int
}

// Graph is an immutable multi-objective directed graph: same CSR-like
// adjacency shape as graph.Graph, with vector-valued edge weights.
type Graph struct {
	n       int
	d       int
	sense   []Sense
	names   []string
	edges   []Edge
	offsets []int
}

func (g *Graph) N() int           { return g.n }
func (g *Graph) D() int           { return g.d }
func (g *Graph) Sense() []Sense   { return g.sense }
func (g *Graph) Names() []string  { return g.names }
func (g *Graph) NumEdges() int    { return len(g.edges) }
func (g *Graph) OutEdges(v int) []Edge { return g.edges[g.offsets[v]:g.offsets[v+1]] }

// New validates (n, edges, objective vectors, d, sense, names) and builds
// an immutable multi-objective Graph. sense defaults to all-MIN when nil;
// names defaults to nil (purely observational metadata).
func New(n int, edges []EdgeInput, objectives [][]float64, d int, sense []Sense, names []string) (*Graph, error) {
	const op = "mograph.New"
	if n < 1 {
		return nil, dmyerr.NewValidation(op, "n", "vertex set must be non-empty (n >= 1)")
	}
	if d < 1 {
		return nil, dmyerr.NewValidation(op, "d", "objective dimension must be >= 1")
	}
	if len(objectives) != len(edges) {
		return nil, dmyerr.NewValidation(op, "objectives", "length must equal len(edges)")
	}
	for _, o := range objectives {
		if len(o) != d {
			return nil, dmyerr.NewValidation(op, "objectives", "every edge vector must have exactly d entries")
		}
	}
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, dmyerr.NewValidation(op, "edges", "endpoint out of range [0,n)")
		}
	}

	if sense == nil {
		sense = make([]Sense, d)
		for i := range sense {
			sense[i] = Min
		}
	}
	if len(sense) != d {
		return nil, dmyerr.NewValidation(op, "sense", "length must equal d")
	}
	if names != nil && len(names) != d {
		return nil, dmyerr.NewValidation(op, "names", "length must equal d")
	}

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
		obj := make([]float64, d)
		copy(obj, objectives[i])
		sorted[pos] = Edge{From: e.From, To: e.To, Objectives: obj, ID: i + 1}
	}

	return &Graph{n: n, d: d, sense: sense, names: names, edges: sorted, offsets: offsets}, nil
}
