package mograph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathcore/dmysssp/mograph"
)

func TestNew_DefaultsToAllMin(t *testing.T) {
	g, err := mograph.New(2, []mograph.EdgeInput{{From: 0, To: 1}}, [][]float64{{1, 2}}, 2, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []mograph.Sense{mograph.Min, mograph.Min}, g.Sense())
}

func TestNew_RejectsMismatchedObjectiveDimension(t *testing.T) {
	_, err := mograph.New(2, []mograph.EdgeInput{{From: 0, To: 1}}, [][]float64{{1}}, 2, nil, nil)
	require.Error(t, err)
}

func TestNew_RejectsSenseLengthMismatch(t *testing.T) {
	_, err := mograph.New(2, []mograph.EdgeInput{{From: 0, To: 1}}, [][]float64{{1, 2}}, 2, []mograph.Sense{mograph.Min}, nil)
	require.Error(t, err)
}

func TestNew_AllowsParallelEdges(t *testing.T) {
	g, err := mograph.New(2, []mograph.EdgeInput{{From: 0, To: 1}, {From: 0, To: 1}}, [][]float64{{1, 2}, {3, 4}}, 2, nil, nil)
	require.NoError(t, err)
	assert.Len(t, g.OutEdges(0), 2)
}

// TestNew_MixedSenseSingleEdgeKeepsExactObjectiveVector is a literal
// fixture: n=2, one edge 0->1 with objectives [5.0, 8.0], sense [MIN, MAX].
func TestNew_MixedSenseSingleEdgeKeepsExactObjectiveVector(t *testing.T) {
	g, err := mograph.New(2, []mograph.EdgeInput{{From: 0, To: 1}}, [][]float64{{5.0, 8.0}}, 2, []mograph.Sense{mograph.Min, mograph.Max}, nil)
	require.NoError(t, err)
	assert.Equal(t, []mograph.Sense{mograph.Min, mograph.Max}, g.Sense())
	require.Len(t, g.OutEdges(0), 1)
	assert.Equal(t, []float64{5.0, 8.0}, g.OutEdges(0)[0].Objectives)
}
