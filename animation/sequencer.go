package animation

// Sequencer holds the current State for a single owner and applies the pure
// transitions to it. It has no locking: the owner serializes calls.
type Sequencer struct {
	state     State
	increment float64
}

// NewSequencer returns an Idle sequencer advancing by increment per tick.
// A non-positive increment selects DefaultIncrement.
func NewSequencer(increment float64) *Sequencer {
	if increment <= 0 {
		increment = DefaultIncrement
	}

	return &Sequencer{increment: increment}
}

// Start halts any reveal in progress and begins plan from its first element.
func (s *Sequencer) Start(plan Plan) { s.state = Start(plan) }

// Tick advances one step and returns the resulting phase.
func (s *Sequencer) Tick() Phase {
	s.state = Advance(s.state, s.increment)
	return s.state.Phase
}

// Reset halts the sequencer and clears every node and edge flag.
func (s *Sequencer) Reset() { s.state = Reset() }

// Phase returns the current phase.
func (s *Sequencer) Phase() Phase { return s.state.Phase }

// Increment returns the per-tick progress increment.
func (s *Sequencer) Increment() float64 { return s.increment }

// Node returns the progress of node id.
func (s *Sequencer) Node(id int) Progress { return s.state.Node(id) }

// Edge returns the progress of edge id.
func (s *Sequencer) Edge(id int) Progress { return s.state.Edge(id) }

// State returns the current snapshot. Later ticks do not alter it.
func (s *Sequencer) State() State { return s.state }
