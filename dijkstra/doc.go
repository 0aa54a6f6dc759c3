// Package dijkstra provides a deterministic implementation of Dijkstra's
// shortest-path algorithm on dense adjacency matrices with non-negative weights.
//
// Overview:
//
//   - A graph is an n×n matrix: m[u][v] is the weight of the directed edge u→v,
//     0 means "no edge". Undirected graphs are symmetric matrices.
//   - Dijkstra computes the minimum-cost path from one source vertex to every
//     reachable vertex in O(V²) time using a linear minimum scan.
//   - The scan breaks ties by lowest vertex index, so graphs with several
//     equal-cost shortest paths always yield the same one.
//
// When to use:
//
//   - Small interactive graphs (tens of vertices) where reproducible paths
//     matter more than asymptotic speed, such as step-by-step visualizers.
//   - Any dense weighted graph already held as an adjacency matrix.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//   - Result.PathTo rebuilds a forward path from the predecessor slice.
//   - ShortestPath: one call from (start, end) to (path, distance).
//
// Error handling (sentinel errors):
//
//   - ErrNilMatrix:
//     Returned if you pass a nil matrix.
//   - ErrNonSquare:
//     Returned if any row length differs from the row count.
//   - ErrVertexNotFound:
//     Returned if the source (or, for ShortestPath, the target) index is out of range.
//   - ErrNegativeWeight:
//     Returned if any entry is negative (detected by an upfront scan).
//   - ErrBadMaxDistance:
//     Raised (via panic) if you set MaxDistance to a negative value.
//   - ErrBadInfThreshold:
//     Raised (via panic) if you set InfEdgeThreshold to zero or a negative value.
//
// Unreachable vertices are not errors: their distance is Infinity and
// ShortestPath returns a nil path.
//
// API reference:
//
//	func Dijkstra(m [][]int64, opts ...Option) (*Result, error)
//	func ShortestPath(m [][]int64, start, end int, opts ...Option) ([]int, int64, error)
//	func Validate(m [][]int64) error
//
// Thread safety:
//
//   - Dijkstra only reads the matrix. Concurrent calls are safe as long as no
//     goroutine writes to the same matrix at the same time.
package dijkstra
