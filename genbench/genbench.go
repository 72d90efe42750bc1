// Package genbench provides deterministic synthetic-graph generators used
// by benchmark tables and comparative tests: uniform random graphs, 2D
// grid graphs, and layered DAGs.
package genbench

import (
	"golang.org/x/exp/rand"

	"github.com/pathcore/dmysssp/graph"
)

// RandomGraph builds a directed graph with n vertices and exactly m edges
// (self-loops excluded, parallel edges allowed), edge weights uniform in
// [1, maxWeight+1). Deterministic for a given (n, m, maxWeight, seed).
func RandomGraph(n, m int, maxWeight float64, seed uint64) (*graph.Graph, error) {
	r := rand.New(rand.NewSource(seed))
	edges := make([]graph.EdgeInput, 0, m)
	weights := make([]float64, 0, m)

	for len(edges) < m {
		u := r.Intn(n)
		v := r.Intn(n)
		if u == v {
			continue
		}
		edges = append(edges, graph.EdgeInput{From: u, To: v})
		weights = append(weights, r.Float64()*maxWeight+1)
	}
	return graph.New(n, edges, weights)
}

// GridGraph builds a width x height 2D grid with unit-weight edges in all
// four directions between orthogonally adjacent cells, vertex id =
// row*width+col. Useful as a structured (non-random) stress graph.
func GridGraph(width, height int) (*graph.Graph, error) {
	n := width * height
	var edges []graph.EdgeInput
	var weights []float64

	add := func(u, v int) {
		edges = append(edges, graph.EdgeInput{From: u, To: v})
		weights = append(weights, 1)
	}

	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			node := i*width + j
			if j < width-1 {
				add(node, i*width+j+1)
			}
			if i < height-1 {
				add(node, (i+1)*width+j)
			}
			if j > 0 {
				add(node, i*width+j-1)
			}
			if i > 0 {
				add(node, (i-1)*width+j)
			}
		}
	}
	return graph.New(n, edges, weights)
}

// LayeredDAG builds layersCount layers of layerWidth vertices each, with
// every vertex in layer i connected to fanOut random (with replacement,
// deduplicated) vertices in layer i+1. Acyclic by construction: useful for
// exercising the recursive layer's block partitioning on graphs with no
// back edges.
func LayeredDAG(layersCount, layerWidth, fanOut int, maxWeight float64, seed uint64) (*graph.Graph, error) {
	r := rand.New(rand.NewSource(seed))
	n := layersCount * layerWidth
	var edges []graph.EdgeInput
	var weights []float64

	for layer := 0; layer < layersCount-1; layer++ {
		base := layer * layerWidth
		nextBase := (layer + 1) * layerWidth
		for j := 0; j < layerWidth; j++ {
			u := base + j
			seen := make(map[int]bool, fanOut)
			for len(seen) < fanOut && len(seen) < layerWidth {
				v := nextBase + r.Intn(layerWidth)
				if seen[v] {
					continue
				}
				seen[v] = true
				edges = append(edges, graph.EdgeInput{From: u, To: v})
				weights = append(weights, r.Float64()*maxWeight+1)
			}
		}
	}
	return graph.New(n, edges, weights)
}
