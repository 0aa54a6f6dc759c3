// Package dijkstra implements Dijkstra's shortest-path algorithm on dense
// adjacency matrices.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a matrix with non-negative edge weights.
// It repeatedly finalizes the unvisited vertex with the smallest tentative
// distance and relaxes that vertex's outgoing row.
//
// Complexity:
//
//   - Time:  O(V²)
//   - At most V selections, each a linear scan over the unvisited vertices.
//   - Each selection relaxes one matrix row: V entries.
//   - Space: O(V) for distance, predecessor and visited slices.
//
// Notes on implementation choices:
//
//   - The graphs this package serves have tens of vertices, so a linear
//     selection scan beats a heap and gives a total order for free: among
//     equal tentative distances the lowest index is always selected first.
//   - Relaxation uses a strict "<", so the first predecessor that reaches a
//     vertex at its final distance is the one that is kept.
//   - We perform an upfront scan of all entries (O(V²)) to detect negative
//     weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable "wall".
//   - We stop exploring once the next selected distance exceeds MaxDistance.
package dijkstra

import (
	"fmt"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of the adjacency matrix m.
//
// Returns:
//
//   - res.Dist: distance per vertex index (Infinity if unreachable).
//   - res.Prev: predecessor per vertex index (NoVertex for source/unreachable).
//   - err:      error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMatrix).
//  2. m must be square and free of negative entries (ErrNonSquare,
//     ErrNegativeWeight), checked row by row.
//  3. Source must be a valid index (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O(V²)
//   - Space: O(V)
func Dijkstra(m [][]int64, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions(0)
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the matrix shape and weights
	if err := Validate(m); err != nil {
		return nil, err
	}

	// 3) Validate Source exists
	n := len(m)
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("%w: source %d, n=%d", ErrVertexNotFound, cfg.Source, n)
	}

	// 4) Initialize runner and run main loop.
	r := &runner{
		m:       m,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
	}
	r.init()
	r.process()

	return &Result{
		Source: cfg.Source,
		Dist:   r.dist,
		Prev:   r.prev,
	}, nil
}

// ShortestPath runs Dijkstra from start and reconstructs the path to end.
//
// On success it returns the vertex sequence start..end inclusive and its
// total weight. When end cannot be reached the result is (nil, Infinity, nil):
// an unreachable target is an expected outcome, not an error.
// start == end always yields ([start], 0, nil).
func ShortestPath(m [][]int64, start, end int, opts ...Option) ([]int, int64, error) {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, Source(start))
	res, err := Dijkstra(m, all...)
	if err != nil {
		return nil, Infinity, err
	}
	if end < 0 || end >= len(m) {
		return nil, Infinity, fmt.Errorf("%w: target %d, n=%d", ErrVertexNotFound, end, len(m))
	}

	path, ok := res.PathTo(end)
	if !ok {
		return nil, Infinity, nil
	}

	return path, res.Dist[end], nil
}

// Validate checks that m is a non-nil square matrix with non-negative entries.
// A 0×0 matrix is valid.
func Validate(m [][]int64) error {
	if m == nil {
		return ErrNilMatrix
	}
	n := len(m)
	var i, j int
	for i = 0; i < n; i++ {
		if len(m[i]) != n {
			return fmt.Errorf("%w: row %d has %d entries, want %d", ErrNonSquare, i, len(m[i]), n)
		}
		for j = 0; j < n; j++ {
			if m[i][j] < 0 {
				return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, i, j, m[i][j])
			}
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	m       [][]int64 // The input matrix; read-only within Dijkstra.
	options Options   // Configuration options (Source, thresholds).
	dist    []int64   // Index → current best distance from Source.
	prev    []int     // Index → predecessor on the shortest path.
	visited []bool    // Tracks if a vertex's distance is finalized.
}

// init sets dist to Infinity, prev to NoVertex and the source distance to zero.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Infinity
		r.prev[v] = NoVertex
	}
	r.dist[r.options.Source] = 0
}

// process is the core loop. Each iteration finalizes one vertex; the loop
// ends after n iterations or as soon as no unvisited vertex has a finite
// distance within MaxDistance. Early exit does not change the result.
func (r *runner) process() {
	var u int
	for range r.dist {
		u = r.selectMin()
		if u == NoVertex {
			break
		}
		if r.dist[u] > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// selectMin returns the unvisited vertex with the smallest finite distance,
// preferring the lowest index on ties, or NoVertex if none is left.
func (r *runner) selectMin() int {
	best := NoVertex
	bestDist := Infinity
	for v, d := range r.dist {
		if r.visited[v] || d >= bestDist {
			continue
		}
		best, bestDist = v, d
	}

	return best
}

// relax walks row u of the matrix and improves every unvisited neighbor v
// for which dist[u] + m[u][v] is strictly smaller than dist[v].
//
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u int) {
	row := r.m[u]
	var v int
	var w, newDist int64
	for v, w = range row {
		// 0 means "no edge"; visited vertices are final.
		if w == 0 || r.visited[v] {
			continue
		}

		// Impassable edges are skipped as if absent.
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		// Saturate instead of overflowing on near-Infinity weights.
		if w > Infinity-r.dist[u] {
			continue
		}
		newDist = r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
	}
}
