package session

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pathscope/animation"
	"github.com/katalvlaran/pathscope/explorer"
)

// Frame is an immutable snapshot of everything a renderer draws. Frames
// share no memory with the session that produced them.
type Frame struct {
	Seq      int // number of ticks applied since the last search
	Width    float64
	Height   float64
	Directed bool
	Phase    animation.Phase
	Distance explorer.Distance
	Nodes    []NodeView
	Edges    []EdgeView
}

// NodeView is one node as drawn.
type NodeView struct {
	ID       int
	Label    string
	Position r2.Vec
	OnPath   bool
	Progress animation.Progress
}

// EdgeView is one edge as drawn; From and To are the endpoint positions.
type EdgeView struct {
	ID       int
	Source   int
	Target   int
	Weight   int64
	From     r2.Vec
	To       r2.Vec
	OnPath   bool
	Progress animation.Progress
}

// Completed reports whether the path reveal has finished.
func (f Frame) Completed() bool { return f.Phase == animation.Completed }
