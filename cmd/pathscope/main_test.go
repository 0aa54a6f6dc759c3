package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_BuiltInCityGraph(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(testContext(t), []string{"-fast"}, &out, io.Discard))

	assert.Equal(t, "Makassar (MKS) → Batam (BTM)\nMKS → DPS → DHS → BTM, total 8\n", out.String())
}

func TestRun_ConfigWithFrames(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "square.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
graph:
  labels: [A, B, C, D]
  matrix:
    - [0, 1, 4, 0]
    - [1, 0, 2, 4]
    - [4, 2, 0, 3]
    - [0, 4, 3, 0]
query:
  start: A
  end: C
animation:
  step: 0.5
layout:
  width: 300
  height: 300
`), 0o644))
	frames := filepath.Join(dir, "frames")

	var out bytes.Buffer
	require.NoError(t, run(testContext(t), []string{"-config", cfg, "-end", "D", "-frames", frames, "-fast"}, &out, io.Discard))
	assert.Contains(t, out.String(), "A → B → D, total 5")

	entries, err := os.ReadDir(frames)
	require.NoError(t, err)
	assert.Len(t, entries, 8)
}

func TestRun_WatchNeedsConfig(t *testing.T) {
	frames := filepath.Join(t.TempDir(), "frames")
	var out, logs bytes.Buffer
	err := run(testContext(t), []string{"-fast", "-watch", "-frames", frames}, &out, &logs)
	require.EqualError(t, err, "-watch needs -config")

	// Rejected before the city graph is searched or played.
	assert.Empty(t, out.String())
	assert.Empty(t, logs.String())
	assert.NoDirExists(t, frames)
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

func TestRun_WatchLogsWithConfiguredFormat(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
graph:
  matrix: [[0, 1], [1, 0]]
logging:
  format: json
`), 0o644))

	ctx, cancel := context.WithCancel(testContext(t))
	defer cancel()
	var logs lockedBuffer
	done := make(chan error, 1)
	go func() { done <- run(ctx, []string{"-config", cfg, "-watch", "-fast"}, io.Discard, &logs) }()

	require.Eventually(t, func() bool {
		return strings.Contains(logs.String(), `"msg":"watching"`)
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(cfg, []byte("graph:\n  matrix: [[0, -1], [1, 0]]\n"), 0o644))
	require.Eventually(t, func() bool {
		return strings.Contains(logs.String(), `"msg":"graph reload skipped"`)
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after cancel")
	}
	assert.NotContains(t, logs.String(), "level=WARN")
}

func TestRun_BadFlag(t *testing.T) {
	require.Error(t, run(testContext(t), []string{"-nope"}, io.Discard, io.Discard))
}
