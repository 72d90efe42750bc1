package dmysssp

import (
	"math"

	"github.com/pathcore/dmysssp/graph"
)

// pivotThreshold computes k = ceil(|U|^(1/3)), at least 1.
func pivotThreshold(sizeU int) int {
	if sizeU < 1 {
		sizeU = 1
	}
	k := int(math.Ceil(math.Pow(float64(sizeU), 1.0/3.0)))
	if k < 1 {
		k = 1
	}
	return k
}

// partitionParam computes t = max(1, ceil(log(|U|)^(1/3))) for |U| > 1,
// else 1.
func partitionParam(sizeU int) int {
	if sizeU <= 1 {
		return 1
	}
	t := int(math.Ceil(math.Pow(math.Log(float64(sizeU)), 1.0/3.0)))
	if t < 1 {
		t = 1
	}
	return t
}

// filterUTilde computes U_tilde = {v in U | v not in S, dist[v] finite,
// dist[v] <= b}.
func filterUTilde(u []int, inS map[int]bool, dist []float64, b float64) []int {
	out := make([]int, 0, len(u))
	for _, v := range u {
		if inS[v] {
			continue
		}
		if math.IsInf(dist[v], 1) {
			continue
		}
		if dist[v] > b {
			continue
		}
		out = append(out, v)
	}
	return out
}

// RecursiveLayer refines dist and parent so that every v in u reachable
// from s within b has dist[v] equal to its true shortest distance,
// recursing on distance-ordered blocks of u. It never returns an error:
// by the time it runs, the driver has already validated its inputs, and
// per the recursion's failure semantics no exceptions are raised inside
// it — see dmyerr for the error kinds surfaced at driver entry instead.
func RecursiveLayer(g *graph.Graph, dist []float64, parent []int, u []int, s []int, b float64) {
	if len(u) == 0 {
		return
	}
	if len(u) == 1 {
		v := u[0]
		if containsInt(s, v) && dist[v] <= b {
			relaxOnce(g, dist, parent, v, b)
		}
		return
	}

	k := pivotThreshold(len(u))
	t := partitionParam(len(u))

	inS := toSet(s)
	uTilde := filterUTilde(u, inS, dist, b)

	var newS []int
	if len(uTilde) <= k*len(s) {
		newS, _ = BMSSP(g, dist, parent, s, b, k)
	} else {
		pivots := SelectPivots(uTilde, dist, k)
		sortedPivots := graph.SortByKeyThenID(pivots, func(v int) float64 { return dist[v] })
		newS, _ = BMSSP(g, dist, parent, sortedPivots, b, k)
	}

	blocks := PartitionBlocks(u, dist, t, b)
	for _, blk := range blocks {
		blockSet := toSet(blk.Vertices)

		blockFrontier := make([]int, 0)
		for _, v := range newS {
			if blockSet[v] {
				blockFrontier = append(blockFrontier, v)
			}
		}

		if len(blockFrontier) == 0 {
			seed := -1
			for _, v := range blk.Vertices {
				if math.IsInf(dist[v], 1) {
					continue
				}
				if seed == -1 || v < seed {
					seed = v
				}
			}
			if seed == -1 {
				continue // no finite-distance vertex in this block: skip it
			}
			blockFrontier = []int{seed}
		}

		RecursiveLayer(g, dist, parent, blk.Vertices, blockFrontier, blk.UpperBound)
	}
}
