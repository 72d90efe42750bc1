package pareto_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathcore/dmysssp/dmyerr"
	"github.com/pathcore/dmysssp/mograph"
	"github.com/pathcore/dmysssp/pareto"
)

// diamond has two source-to-sink routes with a cost/time tradeoff: the top
// route (0->1->3) is cheap but slow, the bottom route (0->2->3) is
// expensive but fast. Both must survive as non-dominated.
func diamondTradeoff(t *testing.T) *mograph.Graph {
	t.Helper()
	g, err := mograph.New(4, []mograph.EdgeInput{
		{From: 0, To: 1}, {From: 1, To: 3},
		{From: 0, To: 2}, {From: 2, To: 3},
	}, [][]float64{
		{1, 10}, {1, 10},
		{10, 1}, {10, 1},
	}, 2, []mograph.Sense{mograph.Min, mograph.Min}, []string{"cost", "time"})
	require.NoError(t, err)
	return g
}

func TestDominates_StrictlyBetterInOneNotWorseInOthers(t *testing.T) {
	sense := []mograph.Sense{mograph.Min, mograph.Min}
	assert.True(t, pareto.Dominates([]float64{1, 2}, []float64{1, 3}, sense))
	assert.False(t, pareto.Dominates([]float64{1, 2}, []float64{2, 1}, sense))
	assert.False(t, pareto.Dominates([]float64{1, 2}, []float64{1, 2}, sense))
}

func TestDominates_MaxSenseTreatsLargerAsBetter(t *testing.T) {
	sense := []mograph.Sense{mograph.Max}
	assert.True(t, pareto.Dominates([]float64{5}, []float64{3}, sense))
	assert.False(t, pareto.Dominates([]float64{3}, []float64{5}, sense))
}

func TestFront_BothTradeoffPathsSurvive(t *testing.T) {
	g := diamondTradeoff(t)
	front, err := pareto.Front(g, 0, 3, 10)
	require.NoError(t, err)
	require.Len(t, front, 2)
	assert.ElementsMatch(t, [][]int{{0, 1, 3}, {0, 2, 3}}, [][]int{front[0].Path, front[1].Path})
}

func TestFront_RejectsOutOfRangeSource(t *testing.T) {
	g := diamondTradeoff(t)
	_, err := pareto.Front(g, -1, 3, 10)
	require.Error(t, err)
}

func TestFront_RejectsNonPositiveMaxSolutions(t *testing.T) {
	g := diamondTradeoff(t)
	_, err := pareto.Front(g, 0, 3, 0)
	require.Error(t, err)
}

func TestFront_CapsAtMaxSolutions(t *testing.T) {
	g := diamondTradeoff(t)
	front, err := pareto.Front(g, 0, 3, 1)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(front), 1)
}

func TestWeightedSum_PicksCheaperRouteWithHeavierCostWeight(t *testing.T) {
	g := diamondTradeoff(t)
	sol, err := pareto.WeightedSum(g, 0, 3, []float64{10, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, sol.Path)
}

func TestWeightedSum_PicksFasterRouteWithHeavierTimeWeight(t *testing.T) {
	g := diamondTradeoff(t)
	sol, err := pareto.WeightedSum(g, 0, 3, []float64{1, 10})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, sol.Path)
}

func TestWeightedSum_RejectsMaxSenseObjective(t *testing.T) {
	g, err := mograph.New(2, []mograph.EdgeInput{{From: 0, To: 1}}, [][]float64{{1}}, 1, []mograph.Sense{mograph.Max}, nil)
	require.NoError(t, err)
	_, err = pareto.WeightedSum(g, 0, 1, []float64{1})
	require.Error(t, err)
}

func TestLexicographic_PrioritizesFirstObjectiveAbsolutely(t *testing.T) {
	g := diamondTradeoff(t)
	sol, err := pareto.Lexicographic(g, 0, 3, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, sol.Path)

	sol2, err := pareto.Lexicographic(g, 0, 3, []int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, sol2.Path)
}

func TestLexicographic_RejectsNonPermutationPriority(t *testing.T) {
	g := diamondTradeoff(t)
	_, err := pareto.Lexicographic(g, 0, 3, []int{0, 0})
	require.Error(t, err)
}

func TestEpsilonConstraint_FindsFeasibleOptimum(t *testing.T) {
	g := diamondTradeoff(t)
	// minimize cost, but time must stay <= 5: only the bottom route qualifies.
	sol, err := pareto.EpsilonConstraint(g, 0, 3, 0, []float64{1e18, 5})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, sol.Path)
}

func TestEpsilonConstraint_InfeasibleReturnsInfiniteObjectives(t *testing.T) {
	g := diamondTradeoff(t)
	sol, err := pareto.EpsilonConstraint(g, 0, 3, 0, []float64{0, 0})
	require.NoError(t, err)
	assert.Empty(t, sol.Path)
	require.Len(t, sol.Objectives, 2)
	assert.True(t, math.IsInf(sol.Objectives[0], 1))
	assert.True(t, math.IsInf(sol.Objectives[1], 1))
}

func TestKneePoint_PicksBalancedCompromise(t *testing.T) {
	front := []pareto.Solution{
		{Path: []int{0, 1, 3}, Objectives: []float64{1, 10}},
		{Path: []int{0, 2, 3}, Objectives: []float64{10, 1}},
	}
	sense := []mograph.Sense{mograph.Min, mograph.Min}
	knee, ok := pareto.KneePoint(front, sense)
	require.True(t, ok)
	assert.Contains(t, [][]int{{0, 1, 3}, {0, 2, 3}}, knee.Path)
}

func TestKneePoint_EmptyFrontReturnsFalse(t *testing.T) {
	_, ok := pareto.KneePoint(nil, []mograph.Sense{mograph.Min})
	assert.False(t, ok)
}

func TestPathObjectives_SumsAlongPath(t *testing.T) {
	g := diamondTradeoff(t)
	obj := pareto.PathObjectives(g, []int{0, 1, 3})
	assert.Equal(t, []float64{2, 20}, obj)
}

// TestFront_FourVertexDiamondProducesExactObjectiveVectors is a literal
// fixture: n=4, edges 0->1:[1,3], 0->2:[3,1], 1->3:[1,1], 2->3:[1,1], both
// objectives MIN. The front from 0 to 3 has exactly two solutions with
// objective vectors [2,4] and [4,2].
func TestFront_FourVertexDiamondProducesExactObjectiveVectors(t *testing.T) {
	g, err := mograph.New(4, []mograph.EdgeInput{
		{From: 0, To: 1}, {From: 0, To: 2},
		{From: 1, To: 3}, {From: 2, To: 3},
	}, [][]float64{
		{1, 3}, {3, 1},
		{1, 1}, {1, 1},
	}, 2, []mograph.Sense{mograph.Min, mograph.Min}, nil)
	require.NoError(t, err)

	front, err := pareto.Front(g, 0, 3, 10)
	require.NoError(t, err)
	require.Len(t, front, 2)
	assert.ElementsMatch(t, [][]float64{{2, 4}, {4, 2}}, [][]float64{front[0].Objectives, front[1].Objectives})
}

// TestFront_MixedSenseSingleEdgeAndWeightedSumRejectsIt is a literal
// fixture: n=2, one edge 0->1 with objectives [5.0, 8.0], sense [MIN, MAX].
// The front has exactly one solution with those objectives, and WeightedSum
// rejects the graph with a SenseError since objective 1 is MAX.
func TestFront_MixedSenseSingleEdgeAndWeightedSumRejectsIt(t *testing.T) {
	g, err := mograph.New(2, []mograph.EdgeInput{
		{From: 0, To: 1},
	}, [][]float64{
		{5.0, 8.0},
	}, 2, []mograph.Sense{mograph.Min, mograph.Max}, nil)
	require.NoError(t, err)

	front, err := pareto.Front(g, 0, 1, 10)
	require.NoError(t, err)
	require.Len(t, front, 1)
	assert.Equal(t, []float64{5.0, 8.0}, front[0].Objectives)

	_, err = pareto.WeightedSum(g, 0, 1, []float64{0.5, 0.5})
	require.Error(t, err)
	var senseErr *dmyerr.SenseError
	require.ErrorAs(t, err, &senseErr)
}
