package blossom

import (
	"cmp"
	"slices"
)

// MaximumMatching returns a maximum-cardinality matching of g.
//
// The search starts from a greedy matching (vertices by ascending degree,
// each paired with its first unmatched neighbor) and applies augmenting
// paths until none is left or at most one vertex remains exposed.
//
// Edges of the result may be oriented differently from the input
// adjacency; use Edges for the normalized form.
//
// Complexity: O(V) augmentations, each O(V·E) including contractions.
func (g *AnnotatedGraph[A]) MaximumMatching() Matching {
	m := g.initialMatching()
	for g.Len()-2*m.Len() > 1 {
		path, ok := g.findAugmentingPath(m)
		if !ok {
			break
		}
		m = m.Augment(path)
		g.logger().Debug("augmenting path applied", "length", len(path), "matched", m.Len())
	}

	return m
}

// FullMatching returns a perfect matching of g, or false when none exists:
// the vertex count is odd, a connected component has an odd number of
// vertices, or the maximum matching leaves a vertex exposed.
//
// Components are solved independently and their matchings united, since no
// matching edge can cross components.
func (g *AnnotatedGraph[A]) FullMatching() (Matching, bool) {
	if g.Len()%2 == 1 {
		return Matching{}, false
	}

	if parts := g.components(); parts != nil {
		for _, part := range parts {
			if part.Len()%2 == 1 {
				return Matching{}, false
			}
		}

		var full Matching
		for _, part := range parts {
			pm, ok := part.FullMatching()
			if !ok {
				return Matching{}, false
			}
			full = full.Add(pm)
		}

		return full, true
	}

	m := g.MaximumMatching()
	if 2*m.Len() != g.Len() {
		return Matching{}, false
	}

	return m, true
}

// IsMatching reports whether every pair of m is symmetric and an edge of g.
func (g *AnnotatedGraph[A]) IsMatching(m Matching) bool {
	for v, w := range m.pairs {
		if back, ok := m.pairs[w]; !ok || back != v {
			return false
		}
		if !g.HasEdge(v, w) && !g.HasEdge(w, v) {
			return false
		}
	}

	return true
}

// IsMaximal reports whether m is a matching of g to which no edge of g can
// be added, i.e. no two exposed vertices are adjacent.
func (g *AnnotatedGraph[A]) IsMaximal(m Matching) bool {
	if !g.IsMatching(m) {
		return false
	}
	for _, v := range g.vertices {
		if m.IsMatched(v) {
			continue
		}
		for _, w := range g.edges[v].Vertices {
			if g.HasVertex(w) && !m.IsMatched(w) {
				return false
			}
		}
	}

	return true
}

// IsPerfect reports whether m is a matching of g covering every vertex.
func (g *AnnotatedGraph[A]) IsPerfect(m Matching) bool {
	return 2*m.Len() == g.Len() && g.IsMatching(m) && len(g.exposed(m)) == 0
}

// initialMatching pairs vertices greedily, lowest degree first.
func (g *AnnotatedGraph[A]) initialMatching() Matching {
	order := slices.Clone(g.vertices)
	slices.SortStableFunc(order, func(a, b Vertex) int {
		return cmp.Compare(len(g.edges[a].Vertices), len(g.edges[b].Vertices))
	})

	done := make(map[Vertex]bool, len(order))
	var pairs []Edge
	for _, v := range order {
		if done[v] {
			continue
		}
		for _, w := range g.edges[v].Vertices {
			if !done[w] && w != v && g.HasVertex(w) {
				pairs = append(pairs, Edge{V: v, W: w})
				done[v], done[w] = true, true

				break
			}
		}
	}

	return NewMatching(pairs)
}

// exposed lists the unmatched vertices of g in ascending order.
func (g *AnnotatedGraph[A]) exposed(m Matching) []Vertex {
	out := make([]Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		if !m.IsMatched(v) {
			out = append(out, v)
		}
	}

	return out
}

// findAugmentingPath searches for an augmenting path relative to m.
func (g *AnnotatedGraph[A]) findAugmentingPath(m Matching) ([]Vertex, bool) {
	return g.searchPath(m, 0)
}

// searchPath grows an alternating forest from every exposed vertex.
//
// Popping an even vertex v, each unprocessed neighbor w is:
//   - unseen: necessarily matched; w and its partner join v's tree;
//   - even in another tree: the two root paths form an augmenting path;
//   - even in the same tree: the odd cycle closed by v-w is contracted
//     and the search restarts on the smaller graph, lifting its answer;
//   - odd: ignored.
//
// level is the contraction depth, used for tracing only.
func (g *AnnotatedGraph[A]) searchPath(m Matching, level int) ([]Vertex, bool) {
	todo := g.exposed(m)
	f := newForest(todo)
	done := make(map[Vertex]bool, len(g.vertices))
	for len(todo) > 0 {
		v := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		for _, w := range g.adjacent(v).Vertices {
			if done[w] {
				continue
			}

			wlen, seen := f.depth(w)
			if !seen {
				x := m.Partner(w)
				f.grow(v, w, x)
				todo = append(todo, x)

				continue
			}
			if wlen%2 == 0 {
				continue
			}

			vpath, wpath := f.path(v), f.path(w)
			if vpath[0] != wpath[0] {
				path := make([]Vertex, 0, len(vpath)+len(wpath))
				path = append(path, vpath...)
				for i := len(wpath) - 1; i >= 0; i-- {
					path = append(path, wpath[i])
				}

				return path, true
			}

			common := 0
			for common < len(vpath) && common < len(wpath) && vpath[common] == wpath[common] {
				common++
			}
			root := vpath[common-1]
			vleafs := slices.Clone(vpath[common:])
			wleafs := slices.Clone(wpath[common:])
			leafs := slices.Concat(vleafs, wleafs)

			g.logger().Debug("blossom contracted", "root", root, "size", len(leafs)+1, "level", level)
			path, ok := g.contract(root, leafs).searchPath(m.Contract(leafs), level+1)
			if !ok {
				return nil, false
			}

			return g.lift(path, root, vleafs, wleafs), true
		}
		done[v] = true
	}

	return nil, false
}
