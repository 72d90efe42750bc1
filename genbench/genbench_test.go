package genbench_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathcore/dmysssp/genbench"
)

func TestRandomGraph_IsDeterministicForSameSeed(t *testing.T) {
	g1, err := genbench.RandomGraph(50, 200, 10, 42)
	require.NoError(t, err)
	g2, err := genbench.RandomGraph(50, 200, 10, 42)
	require.NoError(t, err)

	assert.Equal(t, g1.NumEdges(), g2.NumEdges())
	for v := 0; v < g1.N(); v++ {
		assert.Equal(t, g1.OutEdges(v), g2.OutEdges(v))
	}
}

func TestRandomGraph_HasExactlyMEdgesAndNoSelfLoops(t *testing.T) {
	g, err := genbench.RandomGraph(20, 50, 5, 7)
	require.NoError(t, err)
	assert.Equal(t, 50, g.NumEdges())
	for v := 0; v < g.N(); v++ {
		for _, e := range g.OutEdges(v) {
			assert.NotEqual(t, e.From, e.To)
		}
	}
}

func TestGridGraph_CornerHasTwoOutEdges(t *testing.T) {
	g, err := genbench.GridGraph(5, 5)
	require.NoError(t, err)
	assert.Len(t, g.OutEdges(0), 2)
}

func TestGridGraph_InteriorHasFourOutEdges(t *testing.T) {
	g, err := genbench.GridGraph(5, 5)
	require.NoError(t, err)
	interior := 2*5 + 2 // row 2, col 2
	assert.Len(t, g.OutEdges(interior), 4)
}

func TestLayeredDAG_OnlyConnectsForwardLayers(t *testing.T) {
	g, err := genbench.LayeredDAG(4, 10, 3, 5, 99)
	require.NoError(t, err)
	layerWidth := 10
	for v := 0; v < g.N(); v++ {
		layer := v / layerWidth
		for _, e := range g.OutEdges(v) {
			assert.Equal(t, layer+1, e.To/layerWidth)
		}
	}
}
