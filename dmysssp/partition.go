package dmysssp

import (
	"math"

	"github.com/pathcore/dmysssp/graph"
)

// Block is a contiguous distance-ordered segment of a vertex set produced
// by PartitionBlocks. Frontier is left empty by the partitioner — it is
// filled in by the caller (the recursive layer) from the active search
// frontier, since the partitioner itself has no notion of "current S".
type Block struct {
	Vertices   []int
	Frontier   []int
	UpperBound float64
}

// PartitionBlocks splits u into at most 2^t contiguous, distance-ordered
// segments, emitted in ascending distance order. Each segment's
// UpperBound is min(b, the largest finite distance in the segment), or b
// itself if every vertex in the segment has infinite distance.
func PartitionBlocks(u []int, dist []float64, t int, b float64) []Block {
	if len(u) == 0 {
		return nil
	}

	sorted := graph.SortByKeyThenID(u, func(v int) float64 { return dist[v] })

	nb := 1 << uint(t)
	if nb > len(sorted) {
		nb = len(sorted)
	}
	if nb < 1 {
		nb = 1
	}

	base := len(sorted) / nb
	rem := len(sorted) % nb

	blocks := make([]Block, 0, nb)
	idx := 0
	for i := 0; i < nb; i++ {
		size := base
		if i < rem {
			size++
		}
		if size == 0 {
			continue
		}
		seg := sorted[idx : idx+size]
		idx += size

		maxFinite := 0.0
		allInf := true
		for _, v := range seg {
			if !math.IsInf(dist[v], 1) {
				allInf = false
				if dist[v] > maxFinite {
					maxFinite = dist[v]
				}
			}
		}
		ub := b
		if !allInf {
			ub = math.Min(b, maxFinite)
		}

		vertices := make([]int, len(seg))
		copy(vertices, seg)
		blocks = append(blocks, Block{Vertices: vertices, UpperBound: ub})
	}
	return blocks
}
