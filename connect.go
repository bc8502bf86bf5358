package blossom

import "slices"

// ConnectedGroups returns the connected components of g, each sorted
// ascending, ordered by their smallest vertex. Edges are followed in their
// stored direction only; neighbors that are not vertices of g are skipped.
//
// Complexity: O(V + E).
func ConnectedGroups[A any](g *AnnotatedGraph[A]) [][]Vertex {
	seen := make(map[Vertex]bool, len(g.vertices))
	var groups [][]Vertex
	for _, start := range g.vertices {
		if seen[start] {
			continue
		}
		seen[start] = true
		group := []Vertex{start}
		queue := []Vertex{start}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, w := range g.edges[v].Vertices {
				if seen[w] || !g.HasVertex(w) {
					continue
				}
				seen[w] = true
				group = append(group, w)
				queue = append(queue, w)
			}
		}
		slices.Sort(group)
		groups = append(groups, group)
	}

	return groups
}

// components returns one induced subgraph per connected component, or nil
// when g has fewer than two components.
func (g *AnnotatedGraph[A]) components() []*AnnotatedGraph[A] {
	groups := ConnectedGroups(g)
	if len(groups) < 2 {
		return nil
	}
	g.logger().Debug("graph split into components", "vertices", g.Len(), "components", len(groups))

	out := make([]*AnnotatedGraph[A], len(groups))
	for i, group := range groups {
		member := make(map[Vertex]struct{}, len(group))
		for _, v := range group {
			member[v] = struct{}{}
		}
		out[i] = g.FilterVertices(func(v Vertex) bool {
			_, ok := member[v]

			return ok
		})
	}

	return out
}
