package blossom

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// compare orders weights, treating unordered pairs (NaN) as equal.
func compare[T constraints.Ordered](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// MaximinMatching returns a perfect matching of g whose smallest edge weight
// is as large as possible, or false when g has no perfect matching.
//
// The bottleneck value is found by thresholding: starting from the smallest
// per-vertex maximum weight (no perfect matching can do better, since that
// vertex has nothing heavier), the distinct weights are tried in descending
// order until Limit(g, t) admits a full matching. One matching edge of
// weight exactly t is then fixed, its endpoints removed, and the rest is
// solved recursively on the limited graph.
//
// Ties are broken deterministically: among candidate edges, the one whose
// smaller endpoint neighbor list is lexicographically first wins.
func MaximinMatching[T constraints.Ordered](g *AnnotatedGraph[T]) (Matching, bool) {
	return bottleneck(g, compare[T])
}

// bottleneck is MaximinMatching under the weight order given by cmp.
func bottleneck[T any](g *AnnotatedGraph[T], cmp func(x, y T) int) (Matching, bool) {
	if g.IsEmpty() {
		return NewMatching(nil), true
	}
	if _, ok := g.FullMatching(); !ok {
		return Matching{}, false
	}

	for _, value := range thresholds(g, cmp) {
		limited := limit(g, value, cmp)
		matching, ok := limited.FullMatching()
		if !ok {
			continue
		}

		var edges []Edge
		for _, e := range matching.Edges() {
			if cmp(Weight(limited, e), value) == 0 {
				edges = append(edges, e)
			}
		}
		if len(edges) == 0 {
			continue
		}
		slices.SortStableFunc(edges, func(a, b Edge) int {
			return slices.Compare(edgeKey(limited, a), edgeKey(limited, b))
		})
		fixed := edges[0]
		g.logger().Debug("bottleneck threshold accepted", "value", value, "fixed", fixed, "vertices", g.Len())

		rest := limited.FilterVertices(func(v Vertex) bool { return !fixed.Has(v) })
		sub, ok := bottleneck(rest, cmp)
		if !ok {
			// rest contains the remainder of matching, so it has a perfect one.
			panic(fmt.Errorf("%w: remainder after fixing %v", ErrNoPerfectMatching, fixed))
		}

		return sub.Add(NewMatching([]Edge{fixed})), true
	}

	return Matching{}, false
}

// thresholds returns the distinct weights not above the smallest per-vertex
// maximum, in descending order under cmp.
func thresholds[T any](g *AnnotatedGraph[T], cmp func(x, y T) int) []T {
	var bound T
	first := true
	for _, v := range g.vertices {
		ws := g.edges[v].Annotations
		if len(ws) == 0 {
			continue
		}
		best := slices.MaxFunc(ws, cmp)
		if first || cmp(best, bound) < 0 {
			bound, first = best, false
		}
	}

	var values []T
	for _, v := range g.vertices {
		for _, w := range g.edges[v].Annotations {
			if cmp(w, bound) <= 0 {
				values = append(values, w)
			}
		}
	}
	slices.SortFunc(values, func(x, y T) int { return cmp(y, x) })

	return slices.CompactFunc(values, func(x, y T) bool { return cmp(x, y) == 0 })
}

// edgeKey is the lexicographically smaller of the two endpoint neighbor lists.
func edgeKey[A any](g *AnnotatedGraph[A], e Edge) []Vertex {
	a, b := g.edges[e.V].Vertices, g.edges[e.W].Vertices
	if slices.Compare(b, a) < 0 {
		return b
	}

	return a
}

// Limit returns g without the edges lighter than weight.
func Limit[T constraints.Ordered](g *AnnotatedGraph[T], weight T) *AnnotatedGraph[T] {
	return limit(g, weight, compare[T])
}

func limit[T any](g *AnnotatedGraph[T], weight T, cmp func(x, y T) int) *AnnotatedGraph[T] {
	return g.FilterEdges(func(_, _ Vertex, w T) bool { return cmp(w, weight) >= 0 })
}

// Weight returns the annotation of edge e, looked up from either endpoint.
// It panics with an error wrapping ErrEdgeNotFound if g has no such edge.
func Weight[A any](g *AnnotatedGraph[A], e Edge) A {
	if a, ok := g.Annotation(e.V, e.W); ok {
		return a
	}
	if a, ok := g.Annotation(e.W, e.V); ok {
		return a
	}
	panic(fmt.Errorf("%w: %v", ErrEdgeNotFound, e))
}

// MinWeight returns the smallest weight among the edges of m, or false for
// an empty matching.
func MinWeight[T constraints.Ordered](g *AnnotatedGraph[T], m Matching) (T, bool) {
	var low T
	edges := m.Edges()
	for i, e := range edges {
		if w := Weight(g, e); i == 0 || compare(w, low) < 0 {
			low = w
		}
	}

	return low, len(edges) > 0
}

// MinimaxMatching returns a perfect matching of g whose heaviest edge is as
// light as possible (minimum-bottleneck), or false when none exists. It is
// MaximinMatching with the weight order reversed.
func MinimaxMatching[T constraints.Ordered](g *AnnotatedGraph[T]) (Matching, bool) {
	return bottleneck(g, func(x, y T) int { return compare(y, x) })
}

// MaxWeight returns the largest weight among the edges of m, or false for
// an empty matching.
func MaxWeight[T constraints.Ordered](g *AnnotatedGraph[T], m Matching) (T, bool) {
	var high T
	edges := m.Edges()
	for i, e := range edges {
		if w := Weight(g, e); i == 0 || compare(w, high) > 0 {
			high = w
		}
	}

	return high, len(edges) > 0
}
