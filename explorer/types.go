package explorer

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r2"
)

// Distance is the total weight of a shortest path, or Unreachable.
type Distance int64

// Unreachable is returned when no path exists. It is negative, so it can
// never be mistaken for a real distance (real distances are ≥ 0).
const Unreachable Distance = math.MinInt64

// Reachable reports whether d is a real distance.
func (d Distance) Reachable() bool { return d >= 0 }

// String implements fmt.Stringer.
func (d Distance) String() string {
	if !d.Reachable() {
		return "unreachable"
	}

	return strconv.FormatInt(int64(d), 10)
}

// Node is one vertex. ID is its row/column in the adjacency matrix and never
// changes. Position belongs to the presentation layer; the graph stores it
// but never reads it.
type Node struct {
	ID       int
	Label    string
	Position r2.Vec
}

// Edge is one directed, weighted connection. ID is its index in the
// row-major scan of the matrix. Undirected graphs contribute two edges per
// connection, one in each direction.
type Edge struct {
	ID     int
	Source int
	Target int
	Weight int64
}

type options struct {
	labels    []string
	hasLabels bool
	increment float64
}

// Option configures NewGraph.
type Option func(*options)

// WithLabels names the nodes; labels[i] belongs to node i. The slice must
// have exactly one entry per node.
func WithLabels(labels []string) Option {
	return func(o *options) {
		o.labels = labels
		o.hasLabels = true
	}
}

// WithAnimationStep sets the progress added per animation tick
// (default animation.DefaultIncrement).
func WithAnimationStep(increment float64) Option {
	return func(o *options) {
		o.increment = increment
	}
}
