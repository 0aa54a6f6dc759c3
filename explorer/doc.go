// Package explorer is the model behind an interactive shortest-path
// visualizer: a small weighted graph built from an adjacency matrix, the
// result of the latest shortest-path query, and the animation that reveals it.
//
// 🚀 What does it hold?
//
//   - Nodes: one per matrix row, id == row index, plus a label and a
//     presentation-owned position.
//   - Edges: one per non-zero matrix entry, in row-major order. Undirected
//     graphs are symmetric matrices, so each connection yields two edges.
//   - Path: the node and edge sequences of the latest FindShortestPath call.
//   - Animation: an animation.Sequencer keyed by node and edge ids.
//
// Typical flow:
//
//	g, err := explorer.NewGraph(m, explorer.WithLabels(labels))
//	if err != nil {
//	    return err
//	}
//	_ = g.ApplyLayout(layout.Circular(g.Len(), 1000, 700))
//	d, err := g.FindShortestPath(0, 9)
//	if err != nil {
//	    return err
//	}
//	if !d.Reachable() {
//	    // show "no route"
//	}
//	g.StartAnimation()
//	for g.Tick() != animation.Completed {
//	    draw(g) // reads g.NodeAnimation(id), g.EdgeAnimation(id)
//	}
//
// Invariants:
//
//   - len(Edges()) equals the number of non-zero matrix entries and every
//     edge weight equals its matrix entry.
//   - PathEdges()[i] joins PathNodes()[i] to PathNodes()[i+1].
//   - A new query discards the previous path and clears all animation flags
//     before it runs; nothing highlighted leaks between searches.
//   - Unreachable targets yield the Unreachable distance and an empty path.
//     Only start == end yields distance 0.
//
// Errors:
//
//   - ErrInvalidGraph:       bad matrix or labels at construction; bad layout length.
//   - ErrOutOfRange:         node id outside [0, n); the call changes nothing.
//   - ErrPathReconstruction: internal inconsistency between path and edges.
//
// Thread safety:
//
//   - None. A Graph has a single owner; wrap it (see package session) if
//     several goroutines need it.
package explorer
