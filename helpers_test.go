package blossom_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blossom"
)

// requirePanicsWith asserts that fn panics with an error wrapping target.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

// mustEdges builds an unweighted symmetric graph or fails the test.
func mustEdges(t *testing.T, edges []blossom.Edge, isolated ...blossom.Vertex) *blossom.Graph {
	t.Helper()
	g, err := blossom.FromEdges(edges, isolated)
	require.NoError(t, err)

	return g
}

// blossomGraph is a 5-cycle 1-2-3-4-5 with vertex 0 hanging off 2.
// With matching {1-2, 3-4}, the only exposed vertices are 0 and 5, and
// the search from 5 closes the cycle before it reaches 0.
func blossomGraph(t *testing.T, opts ...blossom.Option) *blossom.Graph {
	t.Helper()
	g, err := blossom.FromEdges([]blossom.Edge{
		{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 1}, {2, 0},
	}, nil, opts...)
	require.NoError(t, err)

	return g
}

// eightVertexGraph has a 5-cycle 0-1-3-5-4 with pendant paths; its greedy
// seed leaves 4 and 7 exposed.
func eightVertexGraph() *blossom.Graph {
	return blossom.FromAdjacency(map[blossom.Vertex][]blossom.Vertex{
		0: {1, 4},
		1: {0, 3},
		2: {3, 7},
		3: {1, 2, 5},
		4: {0, 5},
		5: {3, 4, 6, 7},
		6: {5},
		7: {2, 5},
	})
}

// randomEdges draws each pair of 0..n-1 with probability p.
func randomEdges(rng *rand.Rand, n int, p float64) []blossom.Edge {
	var edges []blossom.Edge
	for v := 0; v < n; v++ {
		for w := v + 1; w < n; w++ {
			if rng.Float64() < p {
				edges = append(edges, blossom.Edge{V: v, W: w})
			}
		}
	}

	return edges
}

// randomWeighted attaches integral weights in [1, 5] to random edges,
// so ties are frequent.
func randomWeighted(rng *rand.Rand, n int, p float64) []blossom.WeightedEdge[float64] {
	edges := randomEdges(rng, n, p)
	out := make([]blossom.WeightedEdge[float64], len(edges))
	for i, e := range edges {
		out[i] = blossom.WeightedEdge[float64]{V: e.V, W: e.W, Weight: float64(1 + rng.Intn(5))}
	}

	return out
}

// bruteMaximum returns the size of a maximum matching by exhaustive search.
func bruteMaximum[A any](g *blossom.AnnotatedGraph[A]) int {
	vs := g.Vertices()
	used := make(map[blossom.Vertex]bool, len(vs))
	var rec func() int
	rec = func() int {
		u, found := 0, false
		for _, v := range vs {
			if !used[v] {
				u, found = v, true

				break
			}
		}
		if !found {
			return 0
		}
		used[u] = true
		best := rec()
		for _, w := range g.VerticesFrom(u) {
			if used[w] {
				continue
			}
			used[w] = true
			best = max(best, 1+rec())
			used[w] = false
		}
		used[u] = false

		return best
	}

	return rec()
}

// bruteBottleneck returns the best achievable smallest edge weight over all
// perfect matchings, and whether any perfect matching exists.
func bruteBottleneck(g *blossom.AnnotatedGraph[float64]) (float64, bool) {
	vs := g.Vertices()
	used := make(map[blossom.Vertex]bool, len(vs))
	best, found := math.Inf(-1), false
	var rec func(low float64)
	rec = func(low float64) {
		u, open := 0, false
		for _, v := range vs {
			if !used[v] {
				u, open = v, true

				break
			}
		}
		if !open {
			found = true
			best = math.Max(best, low)

			return
		}
		used[u] = true
		ws, as := g.EdgesFrom(u)
		for i, w := range ws {
			if used[w] {
				continue
			}
			used[w] = true
			rec(math.Min(low, as[i]))
			used[w] = false
		}
		used[u] = false
	}
	rec(math.Inf(1))

	return best, found
}
