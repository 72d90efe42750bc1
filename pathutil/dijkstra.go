// Package pathutil provides path reconstruction, reachability, and
// verification helpers plus a reference binary-heap Dijkstra used as the
// correctness oracle in tests and by CompareWithReference.
package pathutil

import (
	"container/heap"

	"github.com/pathcore/dmysssp/graph"
)

type heapItem struct {
	vertex int
	dist   float64
	index  int
}

type distHeap []*heapItem

func (h distHeap) Len() int            { return len(h) }
func (h distHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *distHeap) Push(x interface{}) {
	item := x.(*heapItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

func (h *distHeap) update(item *heapItem, dist float64) {
	item.dist = dist
	heap.Fix(h, item.index)
}

// ReferenceDijkstra computes shortest distances from source using a
// classical binary-min-heap Dijkstra. It is the oracle used to validate
// the DMY driver: their outputs must agree element-wise on every graph
// with non-negative weights.
func ReferenceDijkstra(g *graph.Graph, source int) []float64 {
	n := g.N()
	dist := make([]float64, n)
	items := make([]*heapItem, n)
	for v := 0; v < n; v++ {
		dist[v] = posInf
		items[v] = &heapItem{vertex: v, dist: posInf}
	}
	dist[source] = 0
	items[source].dist = 0

	pq := make(distHeap, 0, n)
	for _, it := range items {
		heap.Push(&pq, it)
	}

	visited := make([]bool, n)
	for pq.Len() > 0 {
		u := heap.Pop(&pq).(*heapItem)
		if visited[u.vertex] {
			continue
		}
		visited[u.vertex] = true

		for _, e := range g.OutEdges(u.vertex) {
			if visited[e.To] {
				continue
			}
			nd := dist[u.vertex] + e.Weight
			if nd < dist[e.To] {
				dist[e.To] = nd
				if items[e.To].index >= 0 {
					pq.update(items[e.To], nd)
				}
			}
		}
	}
	return dist
}

// ReferenceDijkstraWithParents is ReferenceDijkstra plus a parent vector,
// giving a second, independently derived shortest-path tree that can be
// compared against the DMY driver's.
func ReferenceDijkstraWithParents(g *graph.Graph, source int) ([]float64, []int) {
	n := g.N()
	dist := make([]float64, n)
	parent := make([]int, n)
	items := make([]*heapItem, n)
	for v := 0; v < n; v++ {
		dist[v] = posInf
		parent[v] = -1
		items[v] = &heapItem{vertex: v, dist: posInf}
	}
	dist[source] = 0
	items[source].dist = 0

	pq := make(distHeap, 0, n)
	for _, it := range items {
		heap.Push(&pq, it)
	}

	visited := make([]bool, n)
	for pq.Len() > 0 {
		u := heap.Pop(&pq).(*heapItem)
		if visited[u.vertex] {
			continue
		}
		visited[u.vertex] = true

		for _, e := range g.OutEdges(u.vertex) {
			if visited[e.To] {
				continue
			}
			nd := dist[u.vertex] + e.Weight
			if nd < dist[e.To] {
				dist[e.To] = nd
				parent[e.To] = u.vertex
				if items[e.To].index >= 0 {
					pq.update(items[e.To], nd)
				}
			}
		}
	}
	return dist, parent
}
