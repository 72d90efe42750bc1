package dmysssp

import (
	"math"

	"github.com/pathcore/dmysssp/graph"
)

// SelectPivots chooses a pivot set P subset of uTilde with
// |P| <= ceil(|uTilde|/k), spread evenly across uTilde's distance order.
//
// uTilde is expected to already exclude S, finite-distance and within-bound
// filtering is the caller's responsibility (see RecursiveLayer), so this
// function performs no further membership checks against s.
//
// If |uTilde| <= k, uTilde is returned unchanged (every candidate is a
// pivot). Otherwise uTilde is stably sorted by (dist, vertex id) and every
// stride-th element is taken, where stride = ceil(|uTilde|/target) and
// target = ceil(|uTilde|/k).
func SelectPivots(uTilde []int, dist []float64, k int) []int {
	n := len(uTilde)
	if n == 0 {
		return nil
	}
	if n <= k {
		out := make([]int, n)
		copy(out, uTilde)
		return out
	}

	target := int(math.Ceil(float64(n) / float64(k)))
	if target < 1 {
		target = 1
	}
	stride := int(math.Ceil(float64(n) / float64(target)))
	if stride < 1 {
		stride = 1
	}

	sorted := graph.SortByKeyThenID(uTilde, func(v int) float64 { return dist[v] })

	pivots := make([]int, 0, target)
	for i := 0; i < n; i += stride {
		pivots = append(pivots, sorted[i])
	}
	return pivots
}
