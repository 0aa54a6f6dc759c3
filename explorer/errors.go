// SPDX-License-Identifier: MIT
// Package explorer: sentinel error set.
// All exported operations return these sentinels (possibly wrapped with
// context via fmt.Errorf("%w: ...")); callers match them with errors.Is.

package explorer

import "errors"

var (
	// ErrInvalidGraph is returned by NewGraph for a non-square matrix, a
	// negative weight, or a label count that differs from the node count,
	// and by ApplyLayout for a position slice of the wrong length.
	// No partial graph is ever returned with it.
	ErrInvalidGraph = errors.New("explorer: invalid graph")

	// ErrOutOfRange indicates a node id outside [0, n). The rejected call
	// leaves the graph, its stored path and its animation untouched.
	ErrOutOfRange = errors.New("explorer: node id out of range")

	// ErrPathReconstruction signals that a shortest path crossed a pair of
	// nodes with no directed edge between them. It means the edge set and the
	// matrix disagree, which is a bug, not a user error.
	ErrPathReconstruction = errors.New("explorer: path edge missing")
)
