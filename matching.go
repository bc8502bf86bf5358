package blossom

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// Matching is a symmetric partial pairing of vertices. A vertex absent from
// the pairing is exposed.
//
// Matching has value semantics: Contract, Augment and Add return a new
// Matching and never modify the receiver, so a matching held by an
// enclosing search frame stays valid. The zero value is the empty matching.
type Matching struct {
	pairs map[Vertex]Vertex
}

// NewMatching returns the matching made of edges. Each vertex must occur in
// at most one edge; if a vertex is repeated, the last edge naming it wins
// for that vertex and the result may be asymmetric.
func NewMatching(edges []Edge) Matching {
	pairs := make(map[Vertex]Vertex, 2*len(edges))
	for _, e := range edges {
		pairs[e.V] = e.W
		pairs[e.W] = e.V
	}

	return Matching{pairs: pairs}
}

// IsEmpty reports whether no vertex is matched.
func (m Matching) IsEmpty() bool { return len(m.pairs) == 0 }

// Len returns the number of matched edges.
func (m Matching) Len() int { return len(m.pairs) / 2 }

// Edges returns each matched pair once, normalized (V < W) and sorted.
func (m Matching) Edges() []Edge {
	out := make([]Edge, 0, len(m.pairs)/2)
	for v, w := range m.pairs {
		if v < w {
			out = append(out, Edge{V: v, W: w})
		}
	}
	slices.SortFunc(out, compareEdges)

	return out
}

// Vertices returns every matched vertex once, in ascending order.
func (m Matching) Vertices() []Vertex {
	vs := maps.Keys(m.pairs)
	slices.Sort(vs)

	return vs
}

// IsMatched reports whether v has a partner.
func (m Matching) IsMatched(v Vertex) bool {
	_, ok := m.pairs[v]

	return ok
}

// PartnerOf returns the partner of v and whether v is matched.
func (m Matching) PartnerOf(v Vertex) (Vertex, bool) {
	w, ok := m.pairs[v]

	return w, ok
}

// Partner returns the vertex matched with v.
// It panics with an error wrapping ErrVertexExposed if v is unmatched.
func (m Matching) Partner(v Vertex) Vertex {
	w, ok := m.pairs[v]
	if !ok {
		panic(fmt.Errorf("%w: %d", ErrVertexExposed, v))
	}

	return w
}

// Contract returns a matching in which every vertex of leafs is unmatched.
// Only the leaf entries are dropped; leaves of a blossom are matched among
// themselves, so the result stays symmetric.
func (m Matching) Contract(leafs []Vertex) Matching {
	pairs := maps.Clone(m.pairs)
	if pairs == nil {
		pairs = make(map[Vertex]Vertex)
	}
	for _, leaf := range leafs {
		delete(pairs, leaf)
	}

	return Matching{pairs: pairs}
}

// Augment flips the alternating path: matching entries of path vertices are
// dropped, then the path is re-matched in consecutive pairs
// (path[0],path[1]), (path[2],path[3]), ...
func (m Matching) Augment(path []Vertex) Matching {
	pairs := maps.Clone(m.pairs)
	if pairs == nil {
		pairs = make(map[Vertex]Vertex, len(path))
	}
	for _, v := range path {
		delete(pairs, v)
	}
	for i := 0; i+1 < len(path); i += 2 {
		pairs[path[i]] = path[i+1]
		pairs[path[i+1]] = path[i]
	}

	return Matching{pairs: pairs}
}

// Add returns the right-biased union of m and other: a vertex matched in
// both takes its partner from other.
func (m Matching) Add(other Matching) Matching {
	pairs := make(map[Vertex]Vertex, len(m.pairs)+len(other.pairs))
	maps.Copy(pairs, m.pairs)
	maps.Copy(pairs, other.pairs)

	return Matching{pairs: pairs}
}

// String implements fmt.Stringer, e.g. "{(0,3) (1,2)}".
func (m Matching) String() string {
	edges := m.Edges()
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = e.String()
	}

	return "{" + strings.Join(parts, " ") + "}"
}
