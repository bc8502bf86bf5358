// Package blossom computes maximum and maximin (bottleneck) perfect
// matchings on general, non-bipartite graphs with Edmonds' blossom
// algorithm.
//
// Graphs are immutable adjacency lists whose edges carry an annotation:
// Graph (annotation Unit) for cardinality matching, AnnotatedGraph[T] with
// an ordered T for weighted matching.
//
//	g := blossom.FromAdjacency(map[blossom.Vertex][]blossom.Vertex{
//		0: {1, 4}, 1: {0, 3}, 2: {3, 7}, 3: {1, 2, 5},
//		4: {0, 5}, 5: {3, 4, 6, 7}, 6: {5}, 7: {2, 5},
//	})
//	m := g.MaximumMatching()
//	fmt.Println(m.Edges())
//
// Algorithms:
//
//   - MaximumMatching: greedy seed, then repeated augmenting-path search.
//     Each search grows an alternating forest from the exposed vertices;
//     an odd cycle (blossom) is contracted into its base vertex, the search
//     recurses on the smaller graph and the found path is lifted back.
//   - FullMatching: perfect matching or false; connected components are
//     solved independently.
//   - MaximinMatching: perfect matching maximizing its lightest edge, by
//     descending weight thresholds and recursive fixing of one edge.
//   - MinimaxMatching: perfect matching minimizing its heaviest edge.
//   - MatchOddVertices: the odd-vertex pairing step of Christofides.
//
// Error model:
//
//   - "no matching" is a normal outcome reported as (Matching{}, false);
//   - caller bugs (unknown vertex, Partner of an exposed vertex) and
//     internal defects (ErrLiftFailed) panic with an error wrapping a
//     sentinel, so a recover can inspect it with errors.Is;
//   - builders validate their input and return errors.
//
// Everything is single-threaded and synchronous. Graph and Matching values
// never change after construction, so independent computations may run in
// parallel. Recursion depth is bounded by the vertex count.
//
// Pass WithLogger to trace contractions, augmentations and thresholds at
// debug level through a charmbracelet/log logger.
package blossom
