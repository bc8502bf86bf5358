package blossom

import "fmt"

// MatchOddVertices pairs the odd-degree vertices of a spanning tree, the
// matching step of a Christofides-style tour builder. It builds the complete
// graph over odd weighted by dist, takes its minimum-bottleneck perfect
// matching (no pairing distance longer than necessary) and appends each pair
// u–v to adj in both directions, so adj becomes the multigraph from which an
// Euler tour is extracted.
//
// adj is only modified on success.
//
// Errors: ErrNoPerfectMatching for an odd number of vertices, plus any
// error of FromDistanceMatrix; ErrVertexNotFound if a vertex has no row in adj.
//
// Complexity: dominated by MinimaxMatching on k = len(odd) vertices.
func MatchOddVertices(odd []int, dist [][]float64, adj [][]int, opts ...Option) error {
	if len(odd)%2 == 1 {
		return fmt.Errorf("%w: %d odd-degree vertices", ErrNoPerfectMatching, len(odd))
	}
	for _, u := range odd {
		if u < 0 || u >= len(adj) {
			return vertexNotFound(u)
		}
	}

	g, err := FromDistanceMatrix(odd, dist, opts...)
	if err != nil {
		return err
	}
	m, ok := MinimaxMatching(g)
	if !ok {
		return fmt.Errorf("%w: over %d odd-degree vertices", ErrNoPerfectMatching, len(odd))
	}

	// matching vertices are positions in odd.
	for _, e := range m.Edges() {
		u, v := odd[e.V], odd[e.W]
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}

	return nil
}
