package session

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pathscope/animation"
	"github.com/katalvlaran/pathscope/config"
	"github.com/katalvlaran/pathscope/dijkstra"
	"github.com/katalvlaran/pathscope/explorer"
	"github.com/katalvlaran/pathscope/layout"
	"github.com/katalvlaran/pathscope/metrics"
)

// ErrNilDocument is returned when a session is built or reloaded from nil.
var ErrNilDocument = errors.New("session: nil document")

// Query is a pair of node ids to connect.
type Query struct {
	Start int
	End   int
}

// Session owns one explorer.Graph and serializes every access to it, so a
// ticker goroutine, a renderer and a config watcher can share it.
type Session struct {
	mu    sync.Mutex
	log   *slog.Logger
	doc   *config.Document
	graph *explorer.Graph

	last   *Query // most recent accepted query
	result *Result
	ticks  int
}

// New builds a session from a validated document. The nodes are placed on
// the document's circular layout. No search runs until Search is called.
func New(doc *config.Document, log *slog.Logger) (*Session, error) {
	if log == nil {
		log = slog.Default()
	}
	g, err := build(doc)
	if err != nil {
		return nil, err
	}
	metrics.GraphNodes.Set(float64(g.Len()))

	return &Session{log: log, doc: doc, graph: g}, nil
}

func build(doc *config.Document) (*explorer.Graph, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	opts := []explorer.Option{explorer.WithAnimationStep(doc.Animation.Step)}
	if len(doc.Graph.Labels) > 0 {
		opts = append(opts, explorer.WithLabels(doc.Graph.Labels))
	}
	g, err := explorer.NewGraph(doc.Graph.Matrix, opts...)
	if err != nil {
		return nil, err
	}

	var lopts []layout.Option
	if doc.Layout.Jitter > 0 {
		lopts = append(lopts, layout.WithJitter(doc.Layout.JitterSeed, doc.Layout.Jitter))
	}
	if err = g.ApplyLayout(layout.Circular(g.Len(), doc.Layout.Width, doc.Layout.Height, lopts...)); err != nil {
		return nil, err
	}

	return g, nil
}

// Interval is the configured time between animation ticks.
func (s *Session) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Duration(s.doc.Animation.IntervalMs) * time.Millisecond
}

// Document returns the document the current graph was built from.
func (s *Session) Document() *config.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// Search finds the shortest path start→end, stores it and starts its
// reveal. An unreachable target is not an error: the result carries
// explorer.Unreachable and the animation stays Idle. Out-of-range ids
// return explorer.ErrOutOfRange and leave the previous result in place.
func (s *Session) Search(start, end int) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search(Query{Start: start, End: end})
}

// SearchRefs is Search with endpoints given as labels or decimal ids.
func (s *Session) SearchRefs(start, end string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	labels := s.labels()
	from, err := config.ResolveNode(labels, len(labels), start)
	if err != nil {
		return Result{}, fmt.Errorf("start: %w", err)
	}
	to, err := config.ResolveNode(labels, len(labels), end)
	if err != nil {
		return Result{}, fmt.Errorf("end: %w", err)
	}

	return s.search(Query{Start: from, End: to})
}

func (s *Session) search(q Query) (Result, error) {
	runID := uuid.New()
	log := s.log.With("run", runID.String(), "start", s.graph.Label(q.Start), "end", s.graph.Label(q.End))

	began := time.Now()
	dist, err := s.graph.FindShortestPath(q.Start, q.End, s.searchOptions()...)
	metrics.SearchDuration.Observe(time.Since(began).Seconds())
	if err != nil {
		metrics.Searches.WithLabelValues(metrics.OutcomeError).Inc()
		log.Warn("search rejected", "err", err)
		return Result{}, err
	}

	s.last = &q
	s.ticks = 0
	res := s.newResult(runID, q, dist)
	s.result = &res

	if !dist.Reachable() {
		metrics.Searches.WithLabelValues(metrics.OutcomeUnreachable).Inc()
		log.Info("no path")
		return res, nil
	}

	metrics.Searches.WithLabelValues(metrics.OutcomeFound).Inc()
	metrics.PathHops.Observe(float64(len(res.Path) - 1))
	s.graph.StartAnimation()
	log.Info("path found", "distance", int64(dist), "route", res.Route())

	return res, nil
}

// searchOptions maps the document's query limits onto Dijkstra options.
func (s *Session) searchOptions() []dijkstra.Option {
	var opts []dijkstra.Option
	if c := s.doc.Query.ClosedAt; c > 0 {
		opts = append(opts, dijkstra.WithInfEdgeThreshold(c))
	}
	if m := s.doc.Query.MaxDistance; m > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(m))
	}

	return opts
}

// Result returns the result of the most recent successful search.
func (s *Session) Result() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return Result{}, false
	}

	return s.result.clone(), true
}

// Tick advances the animation by one step. Outside Running it is a no-op
// returning the current phase.
func (s *Session) Tick() animation.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()

	if phase := s.graph.AnimationPhase(); phase != animation.Running {
		return phase
	}
	phase := s.graph.Tick()
	s.ticks++
	metrics.AnimationTicks.Inc()
	if phase == animation.Completed {
		metrics.AnimationsCompleted.Inc()
		runID := ""
		if s.result != nil {
			runID = s.result.RunID.String()
		}
		s.log.Debug("path revealed", "run", runID, "ticks", s.ticks)
	}

	return phase
}

// Replay restarts the reveal of the stored path.
func (s *Session) Replay() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ticks = 0
	return s.graph.StartAnimation()
}

// Frame snapshots the graph for drawing.
func (s *Session) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.graph
	st := g.AnimationState()
	nodes := g.Nodes()
	edges := g.Edges()

	f := Frame{
		Seq:      s.ticks,
		Width:    s.doc.Layout.Width,
		Height:   s.doc.Layout.Height,
		Directed: g.Directed(),
		Phase:    st.Phase,
		Distance: g.Distance(),
		Nodes:    make([]NodeView, len(nodes)),
		Edges:    make([]EdgeView, len(edges)),
	}
	if len(nodes) > 0 {
		// Grow the canvas so nodes dragged past its right or bottom edge stay drawn.
		b := layout.Bounds(g.Positions())
		f.Width = math.Max(f.Width, math.Ceil(b.Max.X+layout.DefaultNodeRadius))
		f.Height = math.Max(f.Height, math.Ceil(b.Max.Y+layout.DefaultNodeRadius))
	}
	for i, nd := range nodes {
		f.Nodes[i] = NodeView{
			ID:       nd.ID,
			Label:    nd.Label,
			Position: nd.Position,
			OnPath:   g.OnPath(nd.ID),
			Progress: st.Node(nd.ID),
		}
	}
	for i, e := range edges {
		f.Edges[i] = EdgeView{
			ID:       e.ID,
			Source:   e.Source,
			Target:   e.Target,
			Weight:   e.Weight,
			From:     nodes[e.Source].Position,
			To:       nodes[e.Target].Position,
			OnPath:   g.EdgeOnPath(e.ID),
			Progress: st.Edge(e.ID),
		}
	}

	return f
}

// NodeAt returns the topmost node drawn under p.
func (s *Session) NodeAt(p r2.Vec) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return layout.HitTest(s.graph.Positions(), p, layout.DefaultNodeRadius)
}

// MoveNode drags node id to p.
func (s *Session) MoveNode(id int, p r2.Vec) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph.MoveNode(id, p)
}

// Reload swaps in a graph rebuilt from doc and re-runs the last query when
// both of its endpoints still exist. On error the current graph stays.
// The returned result is nil when no query was re-run.
func (s *Session) Reload(doc *config.Document) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := build(doc)
	if err != nil {
		metrics.GraphReloads.WithLabelValues("error").Inc()
		s.log.Warn("graph reload rejected", "err", err)
		return nil, err
	}
	s.graph = g
	s.doc = doc
	s.ticks = 0
	s.result = nil
	metrics.GraphReloads.WithLabelValues("ok").Inc()
	metrics.GraphNodes.Set(float64(g.Len()))
	s.log.Info("graph reloaded", "nodes", g.Len(), "edges", len(g.Edges()))

	if s.last == nil {
		return nil, nil
	}
	q := *s.last
	if q.Start >= g.Len() || q.End >= g.Len() {
		s.log.Warn("last query dropped", "start", q.Start, "end", q.End, "nodes", g.Len())
		s.last = nil
		return nil, nil
	}
	res, err := s.search(q)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (s *Session) labels() []string {
	nodes := s.graph.Nodes()
	out := make([]string, len(nodes))
	for i, nd := range nodes {
		out[i] = nd.Label
	}

	return out
}
