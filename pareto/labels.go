package pareto

import (
	"container/heap"
	"sort"

	"github.com/pathcore/dmysssp/dmyerr"
	"github.com/pathcore/dmysssp/mograph"
)

// labelEntry is one arena-addressed Pareto label: a vertex reached with a
// specific cumulative objective vector, plus the arena index of the label
// it was extended from (-1 for the source label). Per-vertex labels are
// addressed by arena index so predecessor links don't need to copy paths.
type labelEntry struct {
	vertex      int
	objectives  []float64
	predecessor int
}

type pqItem struct {
	idx int
	key float64
}

type labelPQ []*pqItem

func (h labelPQ) Len() int { return len(h) }
func (h labelPQ) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].idx < h[j].idx
}
func (h labelPQ) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *labelPQ) Push(x interface{}) { *h = append(*h, x.(*pqItem)) }
func (h *labelPQ) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// surrogate is the scalar used only to order label expansion; it has no
// bearing on correctness (dominance alone decides what survives), only on
// how quickly good labels are found.
func surrogate(obj []float64, sense []mograph.Sense) float64 {
	s := 0.0
	for i, v := range obj {
		if sense[i] == mograph.Max {
			s -= v
		} else {
			s += v
		}
	}
	return s
}

// Front computes the Pareto front of non-dominated source-to-target paths:
// a per-vertex label-setting search with dominance pruning, capped at
// maxSolutions labels reaching target via epsilon-dominance and
// crowding-distance pruning once the cap is reached.
func Front(g *mograph.Graph, source, target, maxSolutions int, opts ...Option) ([]Solution, error) {
	const op = "pareto.Front"
	n := g.N()
	if source < 0 || source >= n {
		return nil, dmyerr.NewBounds(op, source, n)
	}
	if target < 0 || target >= n {
		return nil, dmyerr.NewBounds(op, target, n)
	}
	if maxSolutions < 1 {
		return nil, dmyerr.NewValidation(op, "max_solutions", "must be >= 1")
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	sense := g.Sense()

	var labels []labelEntry
	var removed []bool
	perVertex := make([][]int, n)

	dominated := func(vertex int, obj []float64) bool {
		for _, idx := range perVertex[vertex] {
			if !removed[idx] && Dominates(labels[idx].objectives, obj, sense) {
				return true
			}
		}
		return false
	}

	addLabel := func(vertex int, obj []float64, predecessor int) (int, bool) {
		if dominated(vertex, obj) {
			return -1, false
		}
		kept := perVertex[vertex][:0]
		for _, idx := range perVertex[vertex] {
			if !removed[idx] && Dominates(obj, labels[idx].objectives, sense) {
				removed[idx] = true
				continue
			}
			if !removed[idx] {
				kept = append(kept, idx)
			}
		}
		perVertex[vertex] = kept

		idx := len(labels)
		labels = append(labels, labelEntry{vertex: vertex, objectives: obj, predecessor: predecessor})
		removed = append(removed, false)
		perVertex[vertex] = append(perVertex[vertex], idx)
		return idx, true
	}

	pq := &labelPQ{}
	heap.Init(pq)

	srcIdx, _ := addLabel(source, make([]float64, g.D()), -1)
	heap.Push(pq, &pqItem{idx: srcIdx, key: surrogate(labels[srcIdx].objectives, sense)})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		if removed[item.idx] {
			continue
		}
		cur := labels[item.idx]

		for _, e := range g.OutEdges(cur.vertex) {
			childObj := addVec(cur.objectives, e.Objectives)
			newIdx, ok := addLabel(e.To, childObj, item.idx)
			if !ok {
				continue
			}
			if e.To == target {
				pruneTarget(labels, removed, perVertex[target], maxSolutions, cfg.epsilon, sense)
			}
			if !removed[newIdx] {
				heap.Push(pq, &pqItem{idx: newIdx, key: surrogate(labels[newIdx].objectives, sense)})
			}
		}
	}

	var solutions []Solution
	for _, idx := range perVertex[target] {
		if removed[idx] {
			continue
		}
		solutions = append(solutions, Solution{
			Path:       reconstructLabelPath(labels, idx),
			Objectives: labels[idx].objectives,
		})
	}
	sort.Slice(solutions, func(i, j int) bool { return lessSolution(solutions[i], solutions[j]) })
	return solutions, nil
}

func reconstructLabelPath(labels []labelEntry, idx int) []int {
	var rev []int
	for idx != -1 {
		rev = append(rev, labels[idx].vertex)
		idx = labels[idx].predecessor
	}
	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}
	return path
}

// pruneTarget enforces maxSolutions active (non-removed) labels at target.
// First pass: epsilon-dominance (relative tolerance eps) retires any label
// that is within eps of being dominated by another. If the cap is still
// exceeded, falls back to NSGA-II-style crowding-distance pruning,
// dropping the least diverse label until the cap holds.
func pruneTarget(labels []labelEntry, removed []bool, atTarget []int, maxSolutions int, eps float64, sense []mograph.Sense) {
	active := func() []int {
		var out []int
		for _, idx := range atTarget {
			if !removed[idx] {
				out = append(out, idx)
			}
		}
		return out
	}

	for {
		act := active()
		if len(act) <= maxSolutions {
			return
		}
		if retireOneEpsilonDominated(labels, removed, act, eps, sense) {
			continue
		}
		retireLeastDiverse(labels, removed, active(), sense)
	}
}

func epsilonDominates(a, b []float64, sense []mograph.Sense, eps float64) bool {
	strictlyBetter := false
	for i := range a {
		switch sense[i] {
		case mograph.Min:
			relaxed := b[i] * (1 + eps)
			if a[i] > relaxed {
				return false
			}
			if a[i] < b[i] {
				strictlyBetter = true
			}
		case mograph.Max:
			relaxed := b[i] * (1 - eps)
			if a[i] < relaxed {
				return false
			}
			if a[i] > b[i] {
				strictlyBetter = true
			}
		}
	}
	return strictlyBetter
}

func retireOneEpsilonDominated(labels []labelEntry, removed []bool, active []int, eps float64, sense []mograph.Sense) bool {
	for _, a := range active {
		for _, b := range active {
			if a == b {
				continue
			}
			if epsilonDominates(labels[a].objectives, labels[b].objectives, sense, eps) {
				removed[b] = true
				return true
			}
		}
	}
	return false
}

// retireLeastDiverse removes the single label with the smallest crowding
// distance (sum of per-objective normalized spread to its neighbors),
// favoring retention of boundary (extreme) solutions exactly as NSGA-II
// crowding distance does.
func retireLeastDiverse(labels []labelEntry, removed []bool, active []int, sense []mograph.Sense) {
	if len(active) == 0 {
		return
	}
	d := len(sense)
	dist := make(map[int]float64, len(active))
	for _, idx := range active {
		dist[idx] = 0
	}

	for obj := 0; obj < d; obj++ {
		sort.Slice(active, func(i, j int) bool {
			return labels[active[i]].objectives[obj] < labels[active[j]].objectives[obj]
		})
		lo := labels[active[0]].objectives[obj]
		hi := labels[active[len(active)-1]].objectives[obj]
		dist[active[0]] = infOrLarge()
		dist[active[len(active)-1]] = infOrLarge()
		span := hi - lo
		for i := 1; i < len(active)-1; i++ {
			if span == 0 {
				continue
			}
			prev := labels[active[i-1]].objectives[obj]
			next := labels[active[i+1]].objectives[obj]
			dist[active[i]] += (next - prev) / span
		}
	}

	worst := active[0]
	for _, idx := range active {
		if dist[idx] < dist[worst] {
			worst = idx
		}
	}
	removed[worst] = true
}

func infOrLarge() float64 {
	return 1e18
}
