package animation_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathscope/animation"
)

// AdvanceSuite exercises the pure step machine.
type AdvanceSuite struct {
	suite.Suite
	plan animation.Plan
}

func (s *AdvanceSuite) SetupTest() {
	// Path 4 → 7 → 2 over edges 10 and 11.
	s.plan = animation.Plan{Nodes: []int{4, 7, 2}, Edges: []int{10, 11}}
}

// TestIdleIsFixedPoint verifies Advance leaves the zero state untouched.
func (s *AdvanceSuite) TestIdleIsFixedPoint() {
	st := animation.Advance(animation.Reset(), animation.DefaultIncrement)
	require.Equal(s.T(), animation.Idle, st.Phase)
	require.Equal(s.T(), animation.Progress{}, st.Node(4))
}

// TestFirstTicks checks that the first node and edge start at 0 and grow by the increment.
func (s *AdvanceSuite) TestFirstTicks() {
	st := animation.Start(s.plan)
	st = animation.Advance(st, 0.25)
	require.Equal(s.T(), animation.Progress{Active: true, Value: 0}, st.Node(4))
	require.Equal(s.T(), animation.Progress{Active: true, Value: 0}, st.Edge(10))
	require.Equal(s.T(), 0.25, st.StepProgress)

	st = animation.Advance(st, 0.25)
	require.Equal(s.T(), 0.25, st.Node(4).Value)
	require.Equal(s.T(), 0.25, st.Edge(10).Value)
	require.False(s.T(), st.Node(7).Active)
	require.False(s.T(), st.Edge(11).Active)
}

// TestStepSettlesAtExactlyOne checks the clamp and the step advance.
func (s *AdvanceSuite) TestStepSettlesAtExactlyOne() {
	st := animation.Start(s.plan)
	for i := 0; i < 4; i++ { // 0, .25, .5, .75 → 1.0
		st = animation.Advance(st, 0.25)
	}
	require.Equal(s.T(), 1, st.Step)
	require.Equal(s.T(), 0.0, st.StepProgress)
	require.Equal(s.T(), animation.Progress{Active: true, Value: 1}, st.Node(4))
	require.Equal(s.T(), animation.Progress{Active: true, Value: 1}, st.Edge(10))
	require.Equal(s.T(), animation.Progress{}, st.Node(7))
}

// TestLastNodeHasNoEdge checks the final node is revealed without an edge.
func (s *AdvanceSuite) TestLastNodeHasNoEdge() {
	st := animation.Start(s.plan)
	for st.Step < 2 {
		st = animation.Advance(st, 0.5)
	}
	st = animation.Advance(st, 0.5)
	require.True(s.T(), st.Node(2).Active)
	require.Len(s.T(), st.Edges(), 2)
}

// TestInvariantsAcrossWholeRun walks a full reveal and checks the ordering
// guarantees on every tick.
func (s *AdvanceSuite) TestInvariantsAcrossWholeRun() {
	st := animation.Start(s.plan)
	lastStep := 0
	for ticks := 0; st.Phase == animation.Running; ticks++ {
		require.Less(s.T(), ticks, 1000, "reveal never completed")
		st = animation.Advance(st, animation.DefaultIncrement)

		require.GreaterOrEqual(s.T(), st.Step, lastStep, "step went backwards")
		lastStep = st.Step

		inFlightNodes, inFlightEdges := 0, 0
		for i, id := range s.plan.Nodes {
			p := st.Node(id)
			if p.InFlight() {
				inFlightNodes++
			}
			switch {
			case i < st.Step:
				require.True(s.T(), p.Settled(), "node %d should be settled", id)
			case i > st.Step:
				require.Equal(s.T(), animation.Progress{}, p, "node %d touched early", id)
			}
		}
		for i, id := range s.plan.Edges {
			p := st.Edge(id)
			if p.InFlight() {
				inFlightEdges++
			}
			switch {
			case i < st.Step:
				require.True(s.T(), p.Settled(), "edge %d should be settled", id)
			case i > st.Step:
				require.Equal(s.T(), animation.Progress{}, p, "edge %d touched early", id)
			}
		}
		require.LessOrEqual(s.T(), inFlightNodes, 1)
		require.LessOrEqual(s.T(), inFlightEdges, 1)
	}

	require.Equal(s.T(), animation.Completed, st.Phase)
	require.Equal(s.T(), len(s.plan.Nodes), st.Step)
}

// TestCompletedIsSticky checks extra ticks change nothing once Completed.
func (s *AdvanceSuite) TestCompletedIsSticky() {
	st := animation.Start(s.plan)
	for st.Phase != animation.Completed {
		st = animation.Advance(st, 0.5)
	}
	done := st
	for i := 0; i < 5; i++ {
		st = animation.Advance(st, 0.5)
		require.Equal(s.T(), animation.Completed, st.Phase)
		require.Equal(s.T(), done.Step, st.Step)
	}
	for _, id := range s.plan.Nodes {
		require.True(s.T(), st.Node(id).Settled())
	}
}

// TestAdvanceIsPure checks earlier snapshots are never modified.
func (s *AdvanceSuite) TestAdvanceIsPure() {
	s0 := animation.Start(s.plan)
	s1 := animation.Advance(s0, 0.25)
	s2 := animation.Advance(s1, 0.25)
	s3 := animation.Advance(s2, 0.5)

	require.Equal(s.T(), animation.Progress{}, s0.Node(4))
	require.Equal(s.T(), 0.0, s1.Node(4).Value)
	require.Equal(s.T(), 0, s1.Step)
	require.Equal(s.T(), 0.25, s2.Node(4).Value)
	require.Equal(s.T(), 0, s2.Step)
	require.Equal(s.T(), 0.5, s2.StepProgress)

	// s3 crosses 1 and settles node 4; s2 still reports it mid-flight.
	require.Equal(s.T(), 1.0, s3.Node(4).Value)
	require.Equal(s.T(), 1, s3.Step)
	require.Equal(s.T(), 0.0, s3.StepProgress)
	require.Equal(s.T(), 0.25, s2.Node(4).Value)
}

// TestSettlingClampsToOne checks an increment that overshoots lands on 1.
func (s *AdvanceSuite) TestSettlingClampsToOne() {
	st := animation.Advance(animation.Start(s.plan), 0.5)
	st = animation.Advance(st, 0.5)
	require.Equal(s.T(), 1.0, st.Node(4).Value)
	require.Equal(s.T(), 1, st.Step)
}

// TestStartCopiesPlan checks callers cannot alter a running plan.
func (s *AdvanceSuite) TestStartCopiesPlan() {
	nodes := []int{1, 2}
	st := animation.Start(animation.Plan{Nodes: nodes, Edges: []int{0}})
	nodes[0] = 99
	st = animation.Advance(st, 0.5)
	require.True(s.T(), st.Node(1).Active)
	require.False(s.T(), st.Node(99).Active)
}

// TestEmptyPlanCompletesImmediately covers the no-path case.
func (s *AdvanceSuite) TestEmptyPlanCompletesImmediately() {
	st := animation.Advance(animation.Start(animation.Plan{}), 0.5)
	require.Equal(s.T(), animation.Completed, st.Phase)
	require.Empty(s.T(), st.Nodes())
}

// TestNonPositiveIncrementFallsBack checks the default increment is used.
func (s *AdvanceSuite) TestNonPositiveIncrementFallsBack() {
	st := animation.Start(s.plan)
	st = animation.Advance(st, 0)
	require.InDelta(s.T(), animation.DefaultIncrement, st.StepProgress, 1e-12)
}

func TestAdvanceSuite(t *testing.T) {
	suite.Run(t, new(AdvanceSuite))
}

func TestTicksPerStep(t *testing.T) {
	require.Equal(t, 13, animation.TicksPerStep(animation.DefaultIncrement))
	require.Equal(t, 4, animation.TicksPerStep(0.25))
	require.Equal(t, 1, animation.TicksPerStep(1))
	require.Equal(t, 13, animation.TicksPerStep(-1))
}

func TestSequencer_Lifecycle(t *testing.T) {
	seq := animation.NewSequencer(0.5)
	require.Equal(t, animation.Idle, seq.Phase())
	require.Equal(t, animation.Idle, seq.Tick(), "ticking idle does nothing")

	seq.Start(animation.Plan{Nodes: []int{0, 1}, Edges: []int{3}})
	require.Equal(t, animation.Running, seq.Tick())
	require.True(t, seq.Node(0).Active)
	require.True(t, seq.Edge(3).Active)

	snap := seq.State()
	seq.Tick()
	require.Equal(t, 0.0, snap.Node(0).Value, "snapshot must not follow later ticks")
	require.Equal(t, 1.0, seq.Node(0).Value)

	// Restart mid-run clears everything.
	seq.Start(animation.Plan{Nodes: []int{1}})
	require.Equal(t, animation.Progress{}, seq.Node(0))
	require.Equal(t, animation.Progress{}, seq.Edge(3))

	for seq.Tick() != animation.Completed {
	}
	require.True(t, seq.Node(1).Settled())

	seq.Reset()
	require.Equal(t, animation.Idle, seq.Phase())
	require.Equal(t, animation.Progress{}, seq.Node(1))
}

func TestSequencer_DefaultIncrement(t *testing.T) {
	require.Equal(t, animation.DefaultIncrement, animation.NewSequencer(0).Increment())
}

func TestPhase_String(t *testing.T) {
	require.Equal(t, "idle", animation.Idle.String())
	require.Equal(t, "running", animation.Running.String())
	require.Equal(t, "completed", animation.Completed.String())
	require.Equal(t, "unknown", animation.Phase(42).String())
}
