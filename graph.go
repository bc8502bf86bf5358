package blossom

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/maps"
)

// AnnotatedGraph is an immutable adjacency-list graph whose edges carry an
// annotation of type A (Unit for unweighted graphs, a weight otherwise).
//
// The adjacency is caller-supplied and inherently redundant: an undirected
// edge appears in both endpoint lists. Symmetry is not enforced; keeping
// the lists consistent is the caller's responsibility.
//
// Every transformation returns a new graph; no method mutates the receiver,
// so a graph may be shared freely between goroutines.
type AnnotatedGraph[A any] struct {
	vertices []Vertex // sorted ascending
	edges    map[Vertex]Neighbors[A]
	opts     options
}

// New returns a graph over the vertices that are keys of adj.
// The input is copied; later changes to adj do not affect the graph.
//
// New panics with an error wrapping ErrAnnotationMismatch if any vertex has
// a different number of neighbors and annotations.
func New[A any](adj map[Vertex]Neighbors[A], opts ...Option) *AnnotatedGraph[A] {
	edges := make(map[Vertex]Neighbors[A], len(adj))
	for v, nb := range adj {
		if len(nb.Vertices) != len(nb.Annotations) {
			panic(fmt.Errorf("%w: vertex %d has %d neighbors and %d annotations",
				ErrAnnotationMismatch, v, len(nb.Vertices), len(nb.Annotations)))
		}
		edges[v] = Neighbors[A]{
			Vertices:    slices.Clone(nb.Vertices),
			Annotations: slices.Clone(nb.Annotations),
		}
	}

	return newGraph(edges, buildOptions(opts))
}

// FromAdjacency returns an unweighted graph from plain neighbor lists.
func FromAdjacency(adj map[Vertex][]Vertex, opts ...Option) *Graph {
	edges := make(map[Vertex]Neighbors[Unit], len(adj))
	for v, ws := range adj {
		edges[v] = unitNeighbors(slices.Clone(ws))
	}

	return newGraph(edges, buildOptions(opts))
}

// newGraph takes ownership of edges.
func newGraph[A any](edges map[Vertex]Neighbors[A], o options) *AnnotatedGraph[A] {
	vertices := maps.Keys(edges)
	slices.Sort(vertices)

	return &AnnotatedGraph[A]{vertices: vertices, edges: edges, opts: o}
}

func unitNeighbors(ws []Vertex) Neighbors[Unit] {
	return Neighbors[Unit]{Vertices: ws, Annotations: make([]Unit, len(ws))}
}

// IsEmpty reports whether the graph has no vertices.
func (g *AnnotatedGraph[A]) IsEmpty() bool { return len(g.vertices) == 0 }

// Len returns the number of vertices.
func (g *AnnotatedGraph[A]) Len() int { return len(g.vertices) }

// Vertices returns the vertices in ascending order.
func (g *AnnotatedGraph[A]) Vertices() []Vertex { return slices.Clone(g.vertices) }

// HasVertex reports whether v belongs to the graph.
func (g *AnnotatedGraph[A]) HasVertex(v Vertex) bool {
	_, ok := g.edges[v]

	return ok
}

// VerticesFrom returns the neighbors of v in adjacency order.
// It panics with an error wrapping ErrVertexNotFound for an unknown vertex.
func (g *AnnotatedGraph[A]) VerticesFrom(v Vertex) []Vertex {
	return slices.Clone(g.adjacent(v).Vertices)
}

// EdgesFrom returns the neighbors of v and the matching annotations.
// It panics with an error wrapping ErrVertexNotFound for an unknown vertex.
func (g *AnnotatedGraph[A]) EdgesFrom(v Vertex) ([]Vertex, []A) {
	nb := g.adjacent(v)

	return slices.Clone(nb.Vertices), slices.Clone(nb.Annotations)
}

// Degree returns the length of v's neighbor list.
func (g *AnnotatedGraph[A]) Degree(v Vertex) int { return len(g.adjacent(v).Vertices) }

// HasEdge reports whether w appears in v's neighbor list.
func (g *AnnotatedGraph[A]) HasEdge(v, w Vertex) bool {
	nb, ok := g.edges[v]

	return ok && slices.Contains(nb.Vertices, w)
}

// Annotation returns the annotation of the first v→w entry.
func (g *AnnotatedGraph[A]) Annotation(v, w Vertex) (A, bool) {
	nb, ok := g.edges[v]
	if ok {
		if i := slices.Index(nb.Vertices, w); i >= 0 {
			return nb.Annotations[i], true
		}
	}
	var zero A

	return zero, false
}

// adjacent is the non-copying accessor used by the engine.
func (g *AnnotatedGraph[A]) adjacent(v Vertex) Neighbors[A] {
	nb, ok := g.edges[v]
	if !ok {
		panic(vertexNotFound(v))
	}

	return nb
}

// FilterVertices returns the subgraph induced by the vertices accepted by
// predicate. Edges towards rejected vertices are dropped; annotations of
// the remaining edges are preserved.
func (g *AnnotatedGraph[A]) FilterVertices(predicate func(Vertex) bool) *AnnotatedGraph[A] {
	edges := make(map[Vertex]Neighbors[A], len(g.vertices))
	for _, v := range g.vertices {
		if !predicate(v) {
			continue
		}
		nb := g.edges[v]
		kept := Neighbors[A]{
			Vertices:    make([]Vertex, 0, len(nb.Vertices)),
			Annotations: make([]A, 0, len(nb.Annotations)),
		}
		for i, w := range nb.Vertices {
			if predicate(w) {
				kept.Vertices = append(kept.Vertices, w)
				kept.Annotations = append(kept.Annotations, nb.Annotations[i])
			}
		}
		edges[v] = kept
	}

	return newGraph(edges, g.opts)
}

// FilterEdges returns a graph with the same vertices and only the directed
// adjacency entries v→w accepted by predicate.
func (g *AnnotatedGraph[A]) FilterEdges(predicate func(v, w Vertex, a A) bool) *AnnotatedGraph[A] {
	edges := make(map[Vertex]Neighbors[A], len(g.vertices))
	for _, v := range g.vertices {
		nb := g.edges[v]
		kept := Neighbors[A]{
			Vertices:    make([]Vertex, 0, len(nb.Vertices)),
			Annotations: make([]A, 0, len(nb.Annotations)),
		}
		for i, w := range nb.Vertices {
			if predicate(v, w, nb.Annotations[i]) {
				kept.Vertices = append(kept.Vertices, w)
				kept.Annotations = append(kept.Annotations, nb.Annotations[i])
			}
		}
		edges[v] = kept
	}

	return newGraph(edges, g.opts)
}

// Unweighted returns the structural graph with all annotations dropped.
// Matching never needs it, since the cardinality engine ignores
// annotations; it serves callers that want the bare adjacency of a weighted
// graph.
func (g *AnnotatedGraph[A]) Unweighted() *Graph {
	edges := make(map[Vertex]Neighbors[Unit], len(g.vertices))
	for _, v := range g.vertices {
		edges[v] = unitNeighbors(slices.Clone(g.edges[v].Vertices))
	}

	return newGraph(edges, g.opts)
}

// Edges returns every undirected edge once, normalized and sorted.
func (g *AnnotatedGraph[A]) Edges() []Edge {
	seen := make(map[Edge]struct{})
	out := make([]Edge, 0, len(g.vertices))
	for _, v := range g.vertices {
		for _, w := range g.edges[v].Vertices {
			e := Edge{V: v, W: w}.Normalize()
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	slices.SortFunc(out, compareEdges)

	return out
}

func (g *AnnotatedGraph[A]) logger() *log.Logger { return g.opts.logger }

func compareEdges(a, b Edge) int {
	if c := cmp.Compare(a.V, b.V); c != 0 {
		return c
	}

	return cmp.Compare(a.W, b.W)
}
