package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathscope/config"
)

const triangleYAML = `
graph:
  labels: [A, B, C]
  matrix:
    - [0, 2, 0]
    - [2, 0, 5]
    - [0, 5, 0]
query:
  start: A
  end: c
animation:
  step: 0.25
`

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestParse_AppliesDefaults(t *testing.T) {
	doc, err := config.Parse([]byte(triangleYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, doc.Graph.Labels)
	assert.Equal(t, int64(5), doc.Graph.Matrix[1][2])
	assert.Equal(t, 0.25, doc.Animation.Step)
	assert.Equal(t, 50, doc.Animation.IntervalMs)
	assert.Equal(t, 1000.0, doc.Layout.Width)
	assert.Equal(t, 700.0, doc.Layout.Height)
	assert.Equal(t, 1, doc.Render.Every)
	assert.Equal(t, "info", doc.Logging.Level)
	assert.Equal(t, "text", doc.Logging.Format)
	require.NoError(t, config.Validate(doc))
}

func TestParse_BadYAML(t *testing.T) {
	_, err := config.Parse([]byte("graph: [unterminated"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	doc, err := config.Parse([]byte(`
graph:
  labels: [A, A]
  names: [Only]
  matrix:
    - [0, -1]
    - [1, 0]
query:
  start: Z
  end: "7"
  closed_at: -1
  max_distance: -5
animation:
  step: 2
logging:
  format: xml
`))
	require.NoError(t, err)

	err = config.Validate(doc)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	msg := err.Error()
	for _, want := range []string{
		"graph.matrix", "negative",
		"graph.names: 1 names for 2 nodes",
		`duplicate label "A"`,
		`query.start: unknown node "Z"`,
		"query.end: node index 7 not in [0, 2)",
		"query.closed_at: must be positive",
		"query.max_distance: must be positive",
		"animation.step",
		`unknown format "xml"`,
	} {
		assert.Contains(t, msg, want)
	}
}

func TestValidate_EmptyMatrix(t *testing.T) {
	doc, err := config.Parse([]byte("query: {}\n"))
	require.NoError(t, err)
	err = config.Validate(doc)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "at least one node")
}

func TestResolveNode(t *testing.T) {
	labels := []string{"MKS", "SUB", "mks2"}

	cases := []struct {
		ref  string
		want int
		ok   bool
	}{
		{"MKS", 0, true},
		{"sub", 1, true},
		{" SUB ", 1, true},
		{"2", 2, true},
		{"3", -1, false},
		{"-1", -1, false},
		{"XYZ", -1, false},
	}
	for _, tc := range cases {
		got, err := config.ResolveNode(labels, 3, tc.ref)
		if tc.ok {
			require.NoError(t, err, tc.ref)
		} else {
			require.Error(t, err, tc.ref)
		}
		assert.Equal(t, tc.want, got, tc.ref)
	}
}

func TestCityGraph_IsValid(t *testing.T) {
	doc := config.CityGraph()
	require.NoError(t, config.Validate(doc))
	assert.Len(t, doc.Graph.Matrix, 10)
	assert.Len(t, doc.Graph.Names, 10)

	start, err := config.ResolveNode(doc.Graph.Labels, 10, doc.Query.Start)
	require.NoError(t, err)
	end, err := config.ResolveNode(doc.Graph.Labels, 10, doc.Query.End)
	require.NoError(t, err)
	assert.Equal(t, 0, start)
	assert.Equal(t, 9, end)
}

func TestLoader_LoadAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	writeFile(t, path, triangleYAML)

	l, err := config.NewLoader(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, l.Path())
	assert.Equal(t, "A", l.Document().Query.Start)
	assert.Zero(t, l.Document().Query.ClosedAt)

	var calls atomic.Int32
	l.OnChange(func(doc *config.Document) { calls.Add(1) })

	// An invalid edit is rejected and the old document stays.
	writeFile(t, path, "graph:\n  matrix: [[0, 1]]\n")
	_, err = l.Reload()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Equal(t, int32(0), calls.Load())
	assert.Len(t, l.Document().Graph.Matrix, 3)

	writeFile(t, path, "graph:\n  matrix: [[0, 1], [1, 0]]\n")
	doc, err := l.Reload()
	require.NoError(t, err)
	assert.Len(t, doc.Graph.Matrix, 2)
	assert.Same(t, doc, l.Document())
	assert.Equal(t, int32(1), calls.Load())
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := config.NewLoader(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_WatchPicksUpWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	writeFile(t, path, triangleYAML)

	l, err := config.NewLoader(path, nil)
	require.NoError(t, err)

	got := make(chan *config.Document, 16)
	l.OnChange(func(doc *config.Document) { got <- doc })

	stop, err := l.Watch()
	require.NoError(t, err)
	defer stop()

	writeFile(t, path, "graph:\n  labels: [X]\n  matrix: [[0]]\n")

	select {
	case doc := <-got:
		assert.Equal(t, []string{"X"}, doc.Graph.Labels)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not deliver the new document")
	}

	stop() // idempotent
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestLoader_SetLoggerRoutesWatchWarnings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	writeFile(t, path, triangleYAML)

	var early, late lockedBuffer
	l, err := config.NewLoader(path, slog.New(slog.NewTextHandler(&early, nil)))
	require.NoError(t, err)
	l.SetLogger(slog.New(slog.NewJSONHandler(&late, nil)))
	l.SetLogger(nil)

	stop, err := l.Watch()
	require.NoError(t, err)
	defer stop()

	writeFile(t, path, "graph:\n  matrix: [[0, 1]]\n")

	require.Eventually(t, func() bool {
		return strings.Contains(late.String(), `"msg":"graph reload skipped"`)
	}, 5*time.Second, 10*time.Millisecond)
	assert.Empty(t, early.String())
	assert.Len(t, l.Document().Graph.Matrix, 3)
}

func TestParse_QueryLimits(t *testing.T) {
	doc, err := config.Parse([]byte(`
graph:
  matrix: [[0, 1], [1, 0]]
query:
  start: "0"
  end: "1"
  closed_at: 5
  max_distance: 9
`))
	require.NoError(t, err)
	assert.Equal(t, int64(5), doc.Query.ClosedAt)
	assert.Equal(t, int64(9), doc.Query.MaxDistance)
	require.NoError(t, config.Validate(doc))
}
