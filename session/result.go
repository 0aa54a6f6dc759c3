package session

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathscope/explorer"
)

// Result describes one search. Path and Labels are empty when the target
// is unreachable.
type Result struct {
	RunID    uuid.UUID
	Query    Query
	Distance explorer.Distance
	Path     []int    // node ids, start..end
	Labels   []string // labels along Path

	startName string
	endName   string
	startTag  string
	endTag    string
}

func (s *Session) newResult(runID uuid.UUID, q Query, dist explorer.Distance) Result {
	res := Result{
		RunID:     runID,
		Query:     q,
		Distance:  dist,
		Path:      s.graph.PathNodeIDs(),
		startTag:  s.graph.Label(q.Start),
		endTag:    s.graph.Label(q.End),
		startName: s.name(q.Start),
		endName:   s.name(q.End),
	}
	for _, nd := range s.graph.PathNodes() {
		res.Labels = append(res.Labels, nd.Label)
	}

	return res
}

// name is the full name of node id, falling back to its label.
func (s *Session) name(id int) string {
	if names := s.doc.Graph.Names; id >= 0 && id < len(names) && names[id] != "" {
		return names[id]
	}

	return s.graph.Label(id)
}

// Route is the one-line summary, e.g. "MKS → DPS → DHS → BTM, total 8".
func (r Result) Route() string {
	if !r.Distance.Reachable() {
		return fmt.Sprintf("%s → %s: unreachable", r.startTag, r.endTag)
	}

	return fmt.Sprintf("%s, total %d", strings.Join(r.Labels, " → "), int64(r.Distance))
}

// Endpoints names both ends, e.g. "Makassar (MKS) → Batam (BTM)".
func (r Result) Endpoints() string {
	return fmt.Sprintf("%s → %s", tagged(r.startName, r.startTag), tagged(r.endName, r.endTag))
}

func tagged(name, tag string) string {
	if name == tag {
		return name
	}

	return fmt.Sprintf("%s (%s)", name, tag)
}

func (r Result) clone() Result {
	r.Path = append([]int(nil), r.Path...)
	r.Labels = append([]string(nil), r.Labels...)
	return r
}
