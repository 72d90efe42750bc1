package pareto

import "math"

func addVec(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

func infVector(d int) []float64 {
	out := make([]float64, d)
	for i := range out {
		out[i] = math.Inf(1)
	}
	return out
}

func isPermutation(p []int, d int) bool {
	if len(p) != d {
		return false
	}
	seen := make([]bool, d)
	for _, idx := range p {
		if idx < 0 || idx >= d || seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}

// pathBoundEstimate is a safe (generous) upper bound on the magnitude any
// single simple path's objective sum can reach: the sum of |objective|
// over every edge in the graph. Used by Lexicographic to size perturbation
// weights large enough that a higher-priority objective always dominates
// the scalar sum of all lower-priority ones.
func pathBoundEstimate(numVertices int, edgeObjectives func(v int) [][]float64) float64 {
	total := 0.0
	for v := 0; v < numVertices; v++ {
		for _, obj := range edgeObjectives(v) {
			for _, o := range obj {
				if o < 0 {
					total += -o
				} else {
					total += o
				}
			}
		}
	}
	return total
}
