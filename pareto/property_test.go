package pareto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/pathcore/dmysssp/mograph"
	"github.com/pathcore/dmysssp/pareto"
)

// randomTwoObjectiveLayeredGraph builds a small layered graph with two
// independent random MIN objectives per edge, deterministic for a given
// seed (hand-rolled here rather than via genbench, since genbench builds
// graph.Graph, not mograph.Graph).
func randomTwoObjectiveLayeredGraph(t *testing.T, layers, width int, seed uint64) *mograph.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	n := layers * width
	var edges []mograph.EdgeInput
	var objectives [][]float64

	for l := 0; l < layers-1; l++ {
		for j := 0; j < width; j++ {
			u := l*width + j
			for k := 0; k < width; k++ {
				v := (l+1)*width + k
				edges = append(edges, mograph.EdgeInput{From: u, To: v})
				objectives = append(objectives, []float64{
					r.Float64()*10 + 1,
					r.Float64()*10 + 1,
				})
			}
		}
	}
	g, err := mograph.New(n, edges, objectives, 2, []mograph.Sense{mograph.Min, mograph.Min}, nil)
	require.NoError(t, err)
	return g
}

func TestFront_MembersArePairwiseNonDominated(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 42} {
		g := randomTwoObjectiveLayeredGraph(t, 4, 3, seed)
		target := g.N() - 1
		front, err := pareto.Front(g, 0, target, 50)
		require.NoError(t, err)

		for i := range front {
			for j := range front {
				if i == j {
					continue
				}
				assert.Falsef(t, pareto.Dominates(front[i].Objectives, front[j].Objectives, g.Sense()),
					"seed=%d: label %d dominates label %d within the returned front", seed, i, j)
			}
		}
	}
}

func TestFront_WeightedSumOptimumIsNotDominatedByAnyFrontMember(t *testing.T) {
	g := randomTwoObjectiveLayeredGraph(t, 4, 3, 7)
	target := g.N() - 1

	front, err := pareto.Front(g, 0, target, 50)
	require.NoError(t, err)
	require.NotEmpty(t, front)

	sol, err := pareto.WeightedSum(g, 0, target, []float64{1, 1})
	require.NoError(t, err)

	for _, f := range front {
		assert.False(t, pareto.Dominates(f.Objectives, sol.Objectives, g.Sense()))
	}
}
