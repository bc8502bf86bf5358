package blossom

import (
	"fmt"
	"math"
)

// WeightedEdge is an undirected edge carrying a weight.
type WeightedEdge[T any] struct {
	V, W   Vertex
	Weight T
}

// FromEdges builds a symmetric unweighted graph from an edge list.
// Vertices are the edge endpoints plus any extra isolated vertices.
// Neighbor order follows the order of edges.
//
// Errors: ErrSelfLoop, ErrDuplicateEdge.
func FromEdges(edges []Edge, isolated []Vertex, opts ...Option) (*Graph, error) {
	weighted := make([]WeightedEdge[Unit], len(edges))
	for i, e := range edges {
		weighted[i] = WeightedEdge[Unit]{V: e.V, W: e.W}
	}

	return FromWeightedEdges(weighted, isolated, opts...)
}

// FromWeightedEdges builds a symmetric annotated graph from an edge list;
// both adjacency entries of an edge carry its weight.
//
// Errors: ErrSelfLoop, ErrDuplicateEdge.
func FromWeightedEdges[T any](edges []WeightedEdge[T], isolated []Vertex, opts ...Option) (*AnnotatedGraph[T], error) {
	adj := make(map[Vertex]Neighbors[T], 2*len(edges)+len(isolated))
	seen := make(map[Edge]struct{}, len(edges))
	link := func(v, w Vertex, weight T) {
		nb := adj[v]
		nb.Vertices = append(nb.Vertices, w)
		nb.Annotations = append(nb.Annotations, weight)
		adj[v] = nb
	}
	for _, e := range edges {
		if e.V == e.W {
			return nil, fmt.Errorf("%w: vertex %d", ErrSelfLoop, e.V)
		}
		key := Edge{V: e.V, W: e.W}.Normalize()
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateEdge, key)
		}
		seen[key] = struct{}{}
		link(e.V, e.W, e.Weight)
		link(e.W, e.V, e.Weight)
	}
	for _, v := range isolated {
		if _, ok := adj[v]; !ok {
			adj[v] = Neighbors[T]{}
		}
	}

	return newGraph(adj, buildOptions(opts)), nil
}

// FromDistanceMatrix builds the complete weighted graph over the given
// matrix indices, relabelled 0..len(vertices)-1 in order: vertex i of the
// result stands for vertices[i], and the edge i–j weighs
// dist[vertices[i]][vertices[j]].
//
// Errors: ErrVertexNotFound for an index outside dist, ErrDimensionMismatch
// for a short row, a NaN entry or an asymmetric pair.
func FromDistanceMatrix(vertices []int, dist [][]float64, opts ...Option) (*AnnotatedGraph[float64], error) {
	n := len(dist)
	for _, u := range vertices {
		if u < 0 || u >= n {
			return nil, vertexNotFound(u)
		}
		if len(dist[u]) != n {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrDimensionMismatch, u, len(dist[u]), n)
		}
	}

	k := len(vertices)
	adj := make(map[Vertex]Neighbors[float64], k)
	for i := 0; i < k; i++ {
		nb := Neighbors[float64]{
			Vertices:    make([]Vertex, 0, k-1),
			Annotations: make([]float64, 0, k-1),
		}
		for j := 0; j < k; j++ {
			if i == j {
				continue
			}
			d := dist[vertices[i]][vertices[j]]
			if math.IsNaN(d) || d != dist[vertices[j]][vertices[i]] {
				return nil, fmt.Errorf("%w: dist[%d][%d]=%v, dist[%d][%d]=%v", ErrDimensionMismatch,
					vertices[i], vertices[j], d, vertices[j], vertices[i], dist[vertices[j]][vertices[i]])
			}
			nb.Vertices = append(nb.Vertices, j)
			nb.Annotations = append(nb.Annotations, d)
		}
		adj[i] = nb
	}

	return newGraph(adj, buildOptions(opts)), nil
}
