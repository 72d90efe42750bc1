// Package pareto implements a multi-objective Pareto engine: a
// dominance-based label-setting search producing Pareto fronts over mixed
// minimize/maximize objective senses, plus scalarization strategies:
// weighted sum and lexicographic, which reduce to the single-objective
// driver in dmysssp, and epsilon-constraint, which runs its own constrained
// relaxation (see EpsilonConstraint).
package pareto

import "github.com/pathcore/dmysssp/mograph"

// Solution is one Pareto-optimal (or scalarization-optimal) path and its
// objective vector.
type Solution struct {
	Path       []int
	Objectives []float64
}

// Dominates reports whether a dominates b under sense: a is at least as
// good as b in every objective, and strictly better in at least one.
// Comparisons use ordinary float64 ordering, so +Inf correctly reads as
// worse-than-any-finite-value under Min and better-than-any-finite-value
// under Max without any special-casing.
func Dominates(a, b []float64, sense []mograph.Sense) bool {
	strictlyBetter := false
	for i := range a {
		switch sense[i] {
		case mograph.Min:
			if a[i] > b[i] {
				return false
			}
			if a[i] < b[i] {
				strictlyBetter = true
			}
		case mograph.Max:
			if a[i] < b[i] {
				return false
			}
			if a[i] > b[i] {
				strictlyBetter = true
			}
		}
	}
	return strictlyBetter
}

// lessSolution is the deterministic total order used to break ties among
// otherwise-equivalent solutions (lexicographic on objectives, then path).
func lessSolution(a, b Solution) bool {
	for i := range a.Objectives {
		if a.Objectives[i] != b.Objectives[i] {
			return a.Objectives[i] < b.Objectives[i]
		}
	}
	for i := 0; i < len(a.Path) && i < len(b.Path); i++ {
		if a.Path[i] != b.Path[i] {
			return a.Path[i] < b.Path[i]
		}
	}
	return len(a.Path) < len(b.Path)
}
