// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on dense adjacency matrices.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a matrix with non-negative edge weights.
// Vertices are plain indices into the matrix; entry m[u][v] is the weight of
// the directed edge u→v and 0 means "no edge".
//
// Options:
//
//	– Source:           index of the starting vertex (must be in [0, n)).
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilMatrix       if the provided matrix is nil.
//	– ErrNonSquare       if a row length differs from the number of rows.
//	– ErrVertexNotFound  if the source index is outside the matrix.
//	– ErrNegativeWeight  if a negative edge weight is detected in the matrix.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
//
// Example usage:
//
//	res, err := Dijkstra(m, Source(0))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, ok := res.PathTo(3)
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilMatrix indicates that a nil adjacency matrix was passed to Dijkstra.
	ErrNilMatrix = errors.New("dijkstra: matrix is nil")

	// ErrNonSquare indicates that the adjacency matrix is not n×n.
	ErrNonSquare = errors.New("dijkstra: matrix is not square")

	// ErrVertexNotFound indicates that the specified source vertex index does
	// not exist in the provided matrix.
	ErrVertexNotFound = errors.New("dijkstra: vertex index out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the matrix.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

const (
	// Infinity is the distance reported for vertices the source cannot reach.
	Infinity int64 = math.MaxInt64

	// NoVertex marks a missing predecessor (the source itself, or unreachable).
	NoVertex = -1
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex index (must be in [0, n)).
// MaxDistance      – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	Source           int   // The index of the source vertex
	MaxDistance      int64 // Maximum distance to explore
	InfEdgeThreshold int64 // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given index.
// Must be called to specify the starting vertex.
func Source(idx int) Option {
	return func(o *Options) {
		o.Source = idx
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored
// and stay at Infinity.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Invalid configuration is a programmer error; fail early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (a closed road).
// Edges with weight ≥ threshold are skipped entirely.
// Must pass a positive value; zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source vertex. Use this as a starting point for further
// functional-options overrides.
//
// Defaults:
//   - Source:           <as passed> (no validation here; validated in Dijkstra).
//   - MaxDistance:      math.MaxInt64 (no distance limit; explore all reachable).
//   - InfEdgeThreshold: math.MaxInt64 (no edges treated as impassable).
func DefaultOptions(source int) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// Result holds the outcome of one Dijkstra run.
//
// Dist[v] is the minimal distance from Source to v, or Infinity when v is
// unreachable. Prev[v] is the predecessor of v on the selected shortest path,
// or NoVertex for the source and for unreachable vertices.
type Result struct {
	Source int
	Dist   []int64
	Prev   []int
}

// Reachable reports whether v was reached from the source.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Infinity
}

// PathTo reconstructs the vertex sequence from the source to end by walking
// the predecessor links backwards and reversing them.
// For end == Source the path is [Source] regardless of Prev.
// Returns nil, false if end is out of range or unreachable.
func (r *Result) PathTo(end int) ([]int, bool) {
	if !r.Reachable(end) {
		return nil, false
	}
	if end == r.Source {
		return []int{r.Source}, true
	}

	// Walk backwards; the chain has at most len(Prev) links.
	path := make([]int, 0, 8)
	for cur := end; cur != NoVertex; cur = r.Prev[cur] {
		path = append(path, cur)
		if len(path) > len(r.Prev) {
			return nil, false // corrupt predecessor chain
		}
	}
	if path[len(path)-1] != r.Source {
		return nil, false
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
