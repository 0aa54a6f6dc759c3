package animation

import "maps"

// Start returns a Running state positioned on the first element of plan.
// Any previous progress is discarded; the plan slices are copied.
func Start(plan Plan) State {
	return State{
		Phase: Running,
		Plan: Plan{
			Nodes: append([]int(nil), plan.Nodes...),
			Edges: append([]int(nil), plan.Edges...),
		},
		nodes: map[int]Progress{},
		edges: map[int]Progress{},
	}
}

// Reset returns the Idle state with every flag cleared.
func Reset() State { return State{} }

// Advance applies one tick to s and returns the new state. s itself is not
// modified. Idle and Completed are fixed points.
//
// Per tick while Running:
//  1. Step past the last node → Completed, nothing else changes.
//  2. Node Plan.Nodes[Step] (and Plan.Edges[Step] if present) becomes
//     {true, StepProgress}.
//  3. StepProgress grows by increment.
//  4. Reaching 1 settles the current node/edge at exactly 1 and moves Step on.
//
// A non-positive increment is replaced with DefaultIncrement so a
// misconfigured driver cannot stall the reveal.
func Advance(s State, increment float64) State {
	if s.Phase != Running {
		return s
	}
	if s.Step >= len(s.Plan.Nodes) {
		s.Phase = Completed
		return s
	}
	if increment <= 0 {
		increment = DefaultIncrement
	}

	// Copy-on-write; earlier snapshots keep their own maps.
	s.nodes = maps.Clone(s.nodes)
	s.edges = maps.Clone(s.edges)
	if s.nodes == nil {
		s.nodes = map[int]Progress{}
	}
	if s.edges == nil {
		s.edges = map[int]Progress{}
	}

	node := s.Plan.Nodes[s.Step]
	edge, hasEdge := -1, s.Step < len(s.Plan.Edges)
	if hasEdge {
		edge = s.Plan.Edges[s.Step]
	}

	s.nodes[node] = Progress{Active: true, Value: s.StepProgress}
	if hasEdge {
		s.edges[edge] = Progress{Active: true, Value: s.StepProgress}
	}

	s.StepProgress += increment
	if s.StepProgress >= 1 {
		s.nodes[node] = Progress{Active: true, Value: 1}
		if hasEdge {
			s.edges[edge] = Progress{Active: true, Value: 1}
		}
		s.Step++
		s.StepProgress = 0
	}

	return s
}

// TicksPerStep is the number of ticks one element needs to settle at the
// given increment.
func TicksPerStep(increment float64) int {
	if increment <= 0 {
		increment = DefaultIncrement
	}
	var n int
	for p := 0.0; p < 1; p += increment {
		n++
	}

	return n
}
