package animation

import (
	"maps"
	"time"
)

const (
	// DefaultIncrement is the progress added to the in-flight element per tick.
	DefaultIncrement = 0.08

	// DefaultInterval is the tick period the increment was tuned for:
	// 0.08 per 50ms reveals one node in roughly 625ms.
	DefaultInterval = 50 * time.Millisecond
)

// Phase is the coarse state of the step machine.
type Phase int

const (
	// Idle: nothing scheduled, all progress cleared.
	Idle Phase = iota
	// Running: revealing Plan element by element.
	Running
	// Completed: every element settled; sticks until Reset or Start.
	Completed
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Progress is the animation state of one node or edge.
type Progress struct {
	Active bool    // element has been reached by the reveal
	Value  float64 // 0..1, exactly 1 once settled
}

// InFlight reports whether the element is part-way through its reveal.
func (p Progress) InFlight() bool { return p.Value > 0 && p.Value < 1 }

// Settled reports whether the element finished its reveal.
func (p Progress) Settled() bool { return p.Active && p.Value >= 1 }

// Plan lists the node ids and edge ids to reveal, in order.
// Edges[i] is revealed together with Nodes[i]; Plan normally carries
// len(Nodes)-1 edges, the last node having no outgoing path edge.
type Plan struct {
	Nodes []int
	Edges []int
}

// State is an immutable snapshot of the step machine.
// The zero value is Idle.
type State struct {
	Phase        Phase
	Plan         Plan
	Step         int
	StepProgress float64

	nodes map[int]Progress
	edges map[int]Progress
}

// Node returns the progress of node id; unknown ids read as {false, 0}.
func (s State) Node(id int) Progress { return s.nodes[id] }

// Edge returns the progress of edge id; unknown ids read as {false, 0}.
func (s State) Edge(id int) Progress { return s.edges[id] }

// Nodes returns a copy of the id-keyed node progress map.
func (s State) Nodes() map[int]Progress { return maps.Clone(s.nodes) }

// Edges returns a copy of the id-keyed edge progress map.
func (s State) Edges() map[int]Progress { return maps.Clone(s.edges) }
