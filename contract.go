package blossom

import (
	"fmt"
	"slices"
)

// contract shrinks the blossom (root plus leafs) into root.
//
// Every leaf disappears. A surviving vertex keeps at most one entry for
// root, placed where its first blossom neighbor was. Root's own list is the
// sorted, deduplicated set of vertices outside the blossom adjacent to any
// blossom vertex. Annotations are dropped: contraction only serves the
// structural search.
func (g *AnnotatedGraph[A]) contract(root Vertex, leafs []Vertex) *Graph {
	inBlossom := make(map[Vertex]struct{}, len(leafs)+1)
	inBlossom[root] = struct{}{}
	for _, l := range leafs {
		inBlossom[l] = struct{}{}
	}
	inside := func(v Vertex) bool {
		_, ok := inBlossom[v]

		return ok
	}

	edges := make(map[Vertex]Neighbors[Unit], len(g.vertices))
	for _, v := range g.vertices {
		if inside(v) {
			continue
		}
		ws := g.edges[v].Vertices
		partners := make([]Vertex, 0, len(ws))
		hasRoot := false
		for _, w := range ws {
			switch {
			case !inside(w):
				partners = append(partners, w)
			case !hasRoot:
				hasRoot = true
				partners = append(partners, root)
			}
		}
		edges[v] = unitNeighbors(partners)
	}

	var rootPartners []Vertex
	for _, b := range append([]Vertex{root}, leafs...) {
		for _, w := range g.edges[b].Vertices {
			if !inside(w) {
				rootPartners = append(rootPartners, w)
			}
		}
	}
	slices.Sort(rootPartners)
	edges[root] = unitNeighbors(slices.Compact(rootPartners))

	return newGraph(edges, g.opts)
}

// lift re-expands the blossom (root, vleafs, wleafs) inside path, an
// augmenting path of the contracted graph, so that the result only uses
// edges of g and still alternates unmatched/matched.
//
// The blossom cycle is root, vleafs..., reverse(wleafs)..., root. Path
// positions 2k→2k+1 are unmatched edges, so root's unmatched neighbor on
// the path sits after it when root is at an even position and before it
// otherwise. That neighbor is joined to the leaf it really touches through
// the arc of the cycle whose last edge is matched.
//
// lift panics with an error wrapping ErrLiftFailed when the neighbor
// touches neither root nor any leaf.
func (g *AnnotatedGraph[A]) lift(path []Vertex, root Vertex, vleafs, wleafs []Vertex) []Vertex {
	rootPos := slices.Index(path, root)
	if rootPos < 0 {
		return path
	}

	after := rootPos%2 == 0
	matchPos := rootPos - 1
	if after {
		matchPos = rootPos + 1
	}
	matchPartners := g.adjacent(path[matchPos]).Vertices
	if slices.Contains(matchPartners, root) {
		return path
	}

	branches := [2][]Vertex{vleafs, wleafs}
	for l, leafs := range branches {
		n := slices.IndexFunc(leafs, func(x Vertex) bool { return slices.Contains(matchPartners, x) })
		if n < 0 {
			continue
		}

		// arc runs from root (exclusive) to the touched leaf (inclusive).
		var arc []Vertex
		if n%2 == 1 {
			arc = slices.Clone(leafs[:n+1])
		} else {
			other := branches[1-l]
			arc = make([]Vertex, 0, len(other)+len(leafs)-n)
			arc = append(arc, other...)
			for i := len(leafs) - 1; i >= n; i-- {
				arc = append(arc, leafs[i])
			}
		}
		if !after {
			slices.Reverse(arc)
		}

		at := rootPos
		if after {
			at++
		}

		return slices.Insert(slices.Clone(path), at, arc...)
	}

	panic(fmt.Errorf("%w: path length = %d, branch lengths = %d/%d",
		ErrLiftFailed, len(path), len(vleafs), len(wleafs)))
}
