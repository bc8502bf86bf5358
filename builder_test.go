package blossom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blossom"
)

func TestFromEdges_Symmetric(t *testing.T) {
	g, err := blossom.FromEdges([]blossom.Edge{{0, 1}, {2, 1}}, []blossom.Vertex{5})
	require.NoError(t, err)

	require.Equal(t, []blossom.Vertex{0, 1, 2, 5}, g.Vertices())
	require.Equal(t, []blossom.Vertex{0, 2}, g.VerticesFrom(1))
	require.Equal(t, []blossom.Vertex{1}, g.VerticesFrom(2))
	require.Equal(t, 0, g.Degree(5))
}

func TestFromEdges_Rejects(t *testing.T) {
	_, err := blossom.FromEdges([]blossom.Edge{{3, 3}}, nil)
	require.ErrorIs(t, err, blossom.ErrSelfLoop)

	_, err = blossom.FromEdges([]blossom.Edge{{0, 1}, {1, 0}}, nil)
	require.ErrorIs(t, err, blossom.ErrDuplicateEdge)
}

func TestFromWeightedEdges(t *testing.T) {
	g, err := blossom.FromWeightedEdges([]blossom.WeightedEdge[int]{
		{V: 0, W: 1, Weight: 4},
		{V: 1, W: 2, Weight: 6},
	}, nil)
	require.NoError(t, err)

	require.Equal(t, 4, blossom.Weight(g, blossom.Edge{V: 1, W: 0}))
	ws, as := g.EdgesFrom(1)
	require.Equal(t, []blossom.Vertex{0, 2}, ws)
	require.Equal(t, []int{4, 6}, as)
}

func TestFromDistanceMatrix(t *testing.T) {
	dist := [][]float64{
		{0, 1, 2, 3},
		{1, 0, 4, 5},
		{2, 4, 0, 6},
		{3, 5, 6, 0},
	}

	g, err := blossom.FromDistanceMatrix([]int{1, 3, 2}, dist)
	require.NoError(t, err)
	require.Equal(t, []blossom.Vertex{0, 1, 2}, g.Vertices())

	ws, as := g.EdgesFrom(0) // stands for matrix index 1
	require.Equal(t, []blossom.Vertex{1, 2}, ws)
	require.Equal(t, []float64{5, 4}, as)
	require.Equal(t, 6.0, blossom.Weight(g, blossom.Edge{V: 1, W: 2}))
}

func TestFromDistanceMatrix_Errors(t *testing.T) {
	square := [][]float64{{0, 1}, {1, 0}}

	_, err := blossom.FromDistanceMatrix([]int{0, 2}, square)
	require.ErrorIs(t, err, blossom.ErrVertexNotFound)

	_, err = blossom.FromDistanceMatrix([]int{0, 1}, [][]float64{{0, 1}, {1}})
	require.ErrorIs(t, err, blossom.ErrDimensionMismatch)

	_, err = blossom.FromDistanceMatrix([]int{0, 1}, [][]float64{{0, 1}, {2, 0}})
	require.ErrorIs(t, err, blossom.ErrDimensionMismatch)

	_, err = blossom.FromDistanceMatrix([]int{0, 1}, [][]float64{{0, math.NaN()}, {math.NaN(), 0}})
	require.ErrorIs(t, err, blossom.ErrDimensionMismatch)

	g, err := blossom.FromDistanceMatrix(nil, square)
	require.NoError(t, err)
	require.True(t, g.IsEmpty())
}
