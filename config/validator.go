package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathscope/dijkstra"
)

var (
	// ErrInvalidConfig wraps every problem found in a graph document.
	ErrInvalidConfig = errors.New("config: invalid document")

	// ErrUnknownNode is returned by ResolveNode.
	ErrUnknownNode = errors.New("unknown node")
)

// Validate checks a document for:
//   - a non-empty, square, non-negative matrix
//   - labels and names that are either absent or one per node
//   - query endpoints that resolve to nodes
//   - usable animation, layout, render and logging settings
//
// All problems are reported together.
func Validate(doc *Document) error {
	var errs []string

	n := len(doc.Graph.Matrix)
	if n == 0 {
		errs = append(errs, "graph.matrix: at least one node is required")
	} else if err := dijkstra.Validate(doc.Graph.Matrix); err != nil {
		errs = append(errs, "graph.matrix: "+err.Error())
	}
	if l := len(doc.Graph.Labels); l != 0 && l != n {
		errs = append(errs, fmt.Sprintf("graph.labels: %d labels for %d nodes", l, n))
	}
	if l := len(doc.Graph.Names); l != 0 && l != n {
		errs = append(errs, fmt.Sprintf("graph.names: %d names for %d nodes", l, n))
	}
	seen := make(map[string]int, len(doc.Graph.Labels))
	for i, lbl := range doc.Graph.Labels {
		if lbl == "" {
			errs = append(errs, fmt.Sprintf("graph.labels[%d]: empty label", i))
			continue
		}
		if prev, ok := seen[lbl]; ok {
			errs = append(errs, fmt.Sprintf("graph.labels: duplicate label %q (nodes %d and %d)", lbl, prev, i))
		}
		seen[lbl] = i
	}

	for _, q := range []struct{ field, ref string }{
		{"query.start", doc.Query.Start},
		{"query.end", doc.Query.End},
	} {
		if q.ref == "" {
			continue
		}
		if _, err := ResolveNode(doc.Graph.Labels, n, q.ref); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", q.field, err))
		}
	}

	if doc.Query.ClosedAt < 0 {
		errs = append(errs, "query.closed_at: must be positive")
	}
	if doc.Query.MaxDistance < 0 {
		errs = append(errs, "query.max_distance: must be positive")
	}

	if s := doc.Animation.Step; s <= 0 || s > 1 {
		errs = append(errs, fmt.Sprintf("animation.step: %v not in (0, 1]", s))
	}
	if doc.Animation.IntervalMs < 0 {
		errs = append(errs, "animation.interval_ms: must be positive")
	}
	if doc.Layout.Width < 0 || doc.Layout.Height < 0 {
		errs = append(errs, "layout: width and height must be positive")
	}
	if doc.Render.Every < 0 {
		errs = append(errs, "render.every: must be positive")
	}
	switch strings.ToLower(doc.Logging.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("logging.format: unknown format %q", doc.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(errs, "\n  - "))
	}
	return nil
}

// ResolveNode turns a node reference into an index. ref is matched against
// labels first (exactly, then case-insensitively) and otherwise parsed as a
// decimal index in [0, n).
func ResolveNode(labels []string, n int, ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	for i, lbl := range labels {
		if lbl == ref {
			return i, nil
		}
	}
	for i, lbl := range labels {
		if strings.EqualFold(lbl, ref) {
			return i, nil
		}
	}
	idx, err := strconv.Atoi(ref)
	if err != nil {
		return -1, fmt.Errorf("%w %q", ErrUnknownNode, ref)
	}
	if idx < 0 || idx >= n {
		return -1, fmt.Errorf("node index %d not in [0, %d): %w", idx, n, ErrUnknownNode)
	}

	return idx, nil
}
