// Package blossom declares the vertex, edge and annotation types shared by
// the matching engine, together with its sentinel errors.
//
// Errors:
//
//	ErrVertexNotFound     - an accessor referenced a vertex the graph does not hold.
//	ErrVertexExposed      - Partner was asked for a vertex without a partner.
//	ErrAnnotationMismatch - a neighbor list and its annotation list differ in length.
//	ErrEdgeNotFound       - a weight lookup referenced a missing edge.
//	ErrSelfLoop           - a builder received an edge (v, v).
//	ErrDuplicateEdge      - a builder received the same undirected edge twice.
//	ErrDimensionMismatch  - a distance matrix is not square over the requested vertices.
//	ErrNoPerfectMatching  - the odd-vertex adapter could not pair every vertex.
//	ErrLiftFailed         - a blossom could not be re-expanded (internal defect).
package blossom

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and matching.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("blossom: vertex not found")

	// ErrVertexExposed indicates Partner was called on an unmatched vertex.
	ErrVertexExposed = errors.New("blossom: vertex is exposed")

	// ErrAnnotationMismatch indicates a neighbor list without one annotation per neighbor.
	ErrAnnotationMismatch = errors.New("blossom: annotation count does not match neighbor count")

	// ErrEdgeNotFound indicates a lookup of an edge absent from the graph.
	ErrEdgeNotFound = errors.New("blossom: edge not found")

	// ErrSelfLoop indicates a self-loop was passed to a builder.
	ErrSelfLoop = errors.New("blossom: self-loop not allowed")

	// ErrDuplicateEdge indicates a parallel edge was passed to a builder.
	ErrDuplicateEdge = errors.New("blossom: duplicate edge not allowed")

	// ErrDimensionMismatch indicates a malformed distance matrix.
	ErrDimensionMismatch = errors.New("blossom: distance matrix dimension mismatch")

	// ErrNoPerfectMatching indicates that no perfect matching exists.
	ErrNoPerfectMatching = errors.New("blossom: no perfect matching")

	// ErrLiftFailed indicates a contracted blossom could not be expanded.
	// Reaching it means blossom detection or contraction is broken.
	ErrLiftFailed = errors.New("blossom: lift failed")
)

// Vertex is an opaque non-negative vertex identifier.
type Vertex = int

// Edge is an undirected vertex pair. Edge{v, w} and Edge{w, v} denote
// the same edge; Normalize yields the canonical form.
type Edge struct {
	V, W Vertex
}

// Normalize returns the edge with its smaller endpoint first.
func (e Edge) Normalize() Edge {
	if e.W < e.V {
		return Edge{V: e.W, W: e.V}
	}

	return e
}

// Has reports whether x is an endpoint of e.
func (e Edge) Has(x Vertex) bool { return e.V == x || e.W == x }

// String implements fmt.Stringer.
func (e Edge) String() string { return fmt.Sprintf("(%d,%d)", e.V, e.W) }

// Unit is the annotation of unweighted graphs.
type Unit struct{}

// Graph is an unweighted graph. Contraction always produces a Graph.
type Graph = AnnotatedGraph[Unit]

// Neighbors is the ordered adjacency of one vertex: Vertices[i] is reached
// through an edge annotated with Annotations[i].
type Neighbors[A any] struct {
	Vertices    []Vertex
	Annotations []A
}

// vertexNotFound builds the panic value for an unknown vertex.
func vertexNotFound(v Vertex) error {
	return fmt.Errorf("%w: %d", ErrVertexNotFound, v)
}
