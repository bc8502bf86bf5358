package blossom_test

import (
	"fmt"

	"github.com/katalvlaran/blossom"
)

// ExampleAnnotatedGraph_MaximumMatching matches a graph whose greedy seed
// leaves two vertices exposed.
func ExampleAnnotatedGraph_MaximumMatching() {
	g := blossom.FromAdjacency(map[blossom.Vertex][]blossom.Vertex{
		0: {1, 4},
		1: {0, 3},
		2: {3, 7},
		3: {1, 2, 5},
		4: {0, 5},
		5: {3, 4, 6, 7},
		6: {5},
		7: {2, 5},
	})

	m := g.MaximumMatching()
	fmt.Println(m.Len(), m)
	// Output:
	// 4 {(0,4) (1,3) (2,7) (5,6)}
}

// ExampleAnnotatedGraph_FullMatching shows the explicit "no matching" result.
func ExampleAnnotatedGraph_FullMatching() {
	triangle, _ := blossom.FromEdges([]blossom.Edge{{V: 0, W: 1}, {V: 1, W: 2}, {V: 2, W: 0}}, nil)
	_, ok := triangle.FullMatching()
	fmt.Println(ok)

	pairs, _ := blossom.FromEdges([]blossom.Edge{{V: 0, W: 1}, {V: 2, W: 3}}, nil)
	m, ok := pairs.FullMatching()
	fmt.Println(ok, m)
	// Output:
	// false
	// true {(0,1) (2,3)}
}

// ExampleMaximinMatching picks the pairing whose lightest edge is heaviest.
func ExampleMaximinMatching() {
	g, _ := blossom.FromWeightedEdges([]blossom.WeightedEdge[float64]{
		{V: 0, W: 2, Weight: 0.1},
		{V: 0, W: 3, Weight: 0.9},
		{V: 1, W: 2, Weight: 0.3},
		{V: 1, W: 3, Weight: 0.2},
	}, nil)

	m, ok := blossom.MaximinMatching(g)
	low, _ := blossom.MinWeight(g, m)
	fmt.Println(ok, m, low)
	// Output:
	// true {(0,3) (1,2)} 0.3
}

// ExampleMatchOddVertices splices a minimum-bottleneck pairing of the odd
// vertices of a star spanning tree into its adjacency.
func ExampleMatchOddVertices() {
	dist := [][]float64{
		{0, 2, 2, 2, 2},
		{2, 0, 1, 3, 3},
		{2, 1, 0, 3, 3},
		{2, 3, 3, 0, 1},
		{2, 3, 3, 1, 0},
	}
	adj := [][]int{{1, 2, 3, 4}, {0}, {0}, {0}, {0}}

	if err := blossom.MatchOddVertices([]int{1, 2, 3, 4}, dist, adj); err != nil {
		fmt.Println(err)

		return
	}
	fmt.Println(adj)
	// Output:
	// [[1 2 3 4] [0 2] [0 1] [0 4] [0 3]]
}
