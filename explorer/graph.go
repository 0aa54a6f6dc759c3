package explorer

import (
	"errors"
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pathscope/animation"
	"github.com/katalvlaran/pathscope/dijkstra"
)

// Graph is the explorer's model: nodes and edges derived once from an
// adjacency matrix, the most recent shortest-path result, and the animation
// revealing that path.
//
// Graph is not safe for concurrent use; one owner must serialize all calls.
type Graph struct {
	matrix    [][]int64
	nodes     []Node
	edges     []Edge
	edgeIndex map[[2]int]int // (source, target) → edge id
	directed  bool

	pathNodes []int // node ids, start..end
	pathEdges []int // edge ids, len(pathNodes)-1 when a path exists
	distance  Distance

	seq *animation.Sequencer
}

// NewGraph builds a graph from a square adjacency matrix.
// m[i][j] is the weight of the edge i→j; 0 means no edge. Non-zero diagonal
// entries become self-edges. The matrix is copied.
//
// Steps:
//  1. Validate shape and weights (ErrInvalidGraph wrapping the dijkstra cause).
//  2. Validate labels against n (ErrInvalidGraph).
//  3. Create nodes 0..n-1, then edges in row-major order.
func NewGraph(m [][]int64, opts ...Option) (*Graph, error) {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Shape and weights
	if m == nil {
		m = [][]int64{}
	}
	if err := dijkstra.Validate(m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}
	n := len(m)

	// 2) Labels
	if cfg.hasLabels && len(cfg.labels) != n {
		return nil, fmt.Errorf("%w: %d labels for %d nodes", ErrInvalidGraph, len(cfg.labels), n)
	}

	// 3) Nodes and edges
	g := &Graph{
		matrix:    make([][]int64, n),
		nodes:     make([]Node, n),
		edgeIndex: make(map[[2]int]int),
		distance:  Unreachable,
		seq:       animation.NewSequencer(cfg.increment),
	}
	var i, j int
	for i = 0; i < n; i++ {
		g.matrix[i] = append([]int64(nil), m[i]...)
		g.nodes[i] = Node{ID: i, Label: strconv.Itoa(i)}
		if cfg.hasLabels {
			g.nodes[i].Label = cfg.labels[i]
		}
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w := g.matrix[i][j]
			if w == 0 {
				continue
			}
			id := len(g.edges)
			g.edges = append(g.edges, Edge{ID: id, Source: i, Target: j, Weight: w})
			g.edgeIndex[[2]int{i, j}] = id
			if g.matrix[j][i] != w {
				g.directed = true
			}
		}
	}

	return g, nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Nodes returns a copy of the nodes in id order.
func (g *Graph) Nodes() []Node { return append([]Node(nil), g.nodes...) }

// Edges returns a copy of the edges in row-major matrix order.
func (g *Graph) Edges() []Edge { return append([]Edge(nil), g.edges...) }

// Node returns node id.
func (g *Graph) Node(id int) (Node, error) {
	if err := g.checkID(id); err != nil {
		return Node{}, err
	}

	return g.nodes[id], nil
}

// Label returns the label of node id, or "" when id is out of range.
func (g *Graph) Label(id int) string {
	if id < 0 || id >= len(g.nodes) {
		return ""
	}

	return g.nodes[id].Label
}

// EdgeBetween returns the directed edge source→target, if any.
func (g *Graph) EdgeBetween(source, target int) (Edge, bool) {
	id, ok := g.edgeIndex[[2]int{source, target}]
	if !ok {
		return Edge{}, false
	}

	return g.edges[id], true
}

// Matrix returns a copy of the adjacency matrix.
func (g *Graph) Matrix() [][]int64 {
	out := make([][]int64, len(g.matrix))
	for i, row := range g.matrix {
		out[i] = append([]int64(nil), row...)
	}

	return out
}

// Directed reports whether some edge has no reverse edge of equal weight.
// Symmetric matrices describe undirected graphs.
func (g *Graph) Directed() bool { return g.directed }

// MoveNode sets the drawn position of node id (drag).
func (g *Graph) MoveNode(id int, pos r2.Vec) error {
	if err := g.checkID(id); err != nil {
		return err
	}
	g.nodes[id].Position = pos

	return nil
}

// ApplyLayout sets every node position at once; positions[i] goes to node i.
func (g *Graph) ApplyLayout(positions []r2.Vec) error {
	if len(positions) != len(g.nodes) {
		return fmt.Errorf("%w: %d positions for %d nodes", ErrInvalidGraph, len(positions), len(g.nodes))
	}
	for i, p := range positions {
		g.nodes[i].Position = p
	}

	return nil
}

// Positions returns the node positions in id order.
func (g *Graph) Positions() []r2.Vec {
	out := make([]r2.Vec, len(g.nodes))
	for i, nd := range g.nodes {
		out[i] = nd.Position
	}

	return out
}

// FindShortestPath computes the shortest path start→end and stores it,
// replacing any previous result.
//
// Behavior:
//   - start or end out of range: ErrOutOfRange; nothing changes.
//   - otherwise the running animation halts, every animation flag clears and
//     the previous path is discarded before the search runs.
//   - no path: returns Unreachable and both path sequences stay empty.
//   - start == end: returns 0 and the single-node path [start].
//
// opts are passed to the dijkstra search (for example a closed-road
// threshold); a Source option among them is ignored.
func (g *Graph) FindShortestPath(start, end int, opts ...dijkstra.Option) (Distance, error) {
	if err := g.checkID(start); err != nil {
		return Unreachable, fmt.Errorf("start: %w", err)
	}
	if err := g.checkID(end); err != nil {
		return Unreachable, fmt.Errorf("end: %w", err)
	}

	g.ClearPath()

	path, dist, err := dijkstra.ShortestPath(g.matrix, start, end, opts...)
	if err != nil {
		if errors.Is(err, dijkstra.ErrVertexNotFound) {
			return Unreachable, fmt.Errorf("%w: %w", ErrOutOfRange, err)
		}
		return Unreachable, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}
	if path == nil {
		return Unreachable, nil
	}

	edges, err := g.edgesAlong(path)
	if err != nil {
		return Unreachable, err
	}

	g.pathNodes = path
	g.pathEdges = edges
	g.distance = Distance(dist)

	return g.distance, nil
}

// edgesAlong maps each consecutive node pair of path to its directed edge.
func (g *Graph) edgesAlong(path []int) ([]int, error) {
	if len(path) < 2 {
		return nil, nil
	}
	out := make([]int, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		id, ok := g.edgeIndex[[2]int{path[i], path[i+1]}]
		if !ok {
			return nil, fmt.Errorf("%w: %d→%d", ErrPathReconstruction, path[i], path[i+1])
		}
		out = append(out, id)
	}

	return out, nil
}

// Distance returns the distance of the stored path, or Unreachable when no
// path is stored.
func (g *Graph) Distance() Distance { return g.distance }

// PathNodes returns the stored path's nodes, start..end inclusive.
func (g *Graph) PathNodes() []Node {
	out := make([]Node, len(g.pathNodes))
	for i, id := range g.pathNodes {
		out[i] = g.nodes[id]
	}

	return out
}

// PathEdges returns the stored path's edges; PathEdges()[i] joins
// PathNodes()[i] to PathNodes()[i+1].
func (g *Graph) PathEdges() []Edge {
	out := make([]Edge, len(g.pathEdges))
	for i, id := range g.pathEdges {
		out[i] = g.edges[id]
	}

	return out
}

// PathNodeIDs returns the ids of the stored path's nodes.
func (g *Graph) PathNodeIDs() []int { return append([]int(nil), g.pathNodes...) }

// PathEdgeIDs returns the ids of the stored path's edges.
func (g *Graph) PathEdgeIDs() []int { return append([]int(nil), g.pathEdges...) }

// OnPath reports whether node id belongs to the stored path.
func (g *Graph) OnPath(id int) bool {
	for _, p := range g.pathNodes {
		if p == id {
			return true
		}
	}

	return false
}

// EdgeOnPath reports whether edge id belongs to the stored path.
func (g *Graph) EdgeOnPath(id int) bool {
	for _, p := range g.pathEdges {
		if p == id {
			return true
		}
	}

	return false
}

// ResetAnimation halts the animation and clears every node and edge flag.
// The stored path is kept.
func (g *Graph) ResetAnimation() { g.seq.Reset() }

// ClearPath discards the stored path and resets the animation.
func (g *Graph) ClearPath() {
	g.pathNodes = nil
	g.pathEdges = nil
	g.distance = Unreachable
	g.ResetAnimation()
}

// StartAnimation restarts the reveal of the stored path from its first node.
// It returns false, leaving the animation Idle, when no path is stored.
func (g *Graph) StartAnimation() bool {
	if len(g.pathNodes) == 0 {
		g.seq.Reset()
		return false
	}
	g.seq.Start(animation.Plan{Nodes: g.pathNodes, Edges: g.pathEdges})

	return true
}

// Tick advances the animation by one step and returns its phase.
func (g *Graph) Tick() animation.Phase { return g.seq.Tick() }

// AnimationPhase returns the current animation phase.
func (g *Graph) AnimationPhase() animation.Phase { return g.seq.Phase() }

// AnimationState returns an immutable snapshot of the animation.
func (g *Graph) AnimationState() animation.State { return g.seq.State() }

// NodeAnimation returns the animation state of node id.
func (g *Graph) NodeAnimation(id int) animation.Progress { return g.seq.Node(id) }

// EdgeAnimation returns the animation state of edge id.
func (g *Graph) EdgeAnimation(id int) animation.Progress { return g.seq.Edge(id) }

func (g *Graph) checkID(id int) error {
	if id < 0 || id >= len(g.nodes) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, id, len(g.nodes))
	}

	return nil
}
