package blossom

// Test bridge exposing the unexported search steps to blossom_test.

// Contract exposes blossom contraction.
func Contract[A any](g *AnnotatedGraph[A], root Vertex, leafs []Vertex) *Graph {
	return g.contract(root, leafs)
}

// Lift exposes blossom expansion of an augmenting path.
func Lift[A any](g *AnnotatedGraph[A], path []Vertex, root Vertex, vleafs, wleafs []Vertex) []Vertex {
	return g.lift(path, root, vleafs, wleafs)
}

// FindAugmentingPath exposes one augmenting-path search.
func FindAugmentingPath[A any](g *AnnotatedGraph[A], m Matching) ([]Vertex, bool) {
	return g.findAugmentingPath(m)
}

// InitialMatching exposes the greedy seed.
func InitialMatching[A any](g *AnnotatedGraph[A]) Matching {
	return g.initialMatching()
}

// GrowForest seeds a forest with roots and applies each (v, w, x) growth in
// order, returning the resulting root paths.
func GrowForest(roots []Vertex, grows [][3]Vertex) map[Vertex][]Vertex {
	f := newForest(roots)
	for _, g := range grows {
		f.grow(g[0], g[1], g[2])
	}

	return f.paths
}
