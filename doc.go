// Package pathscope finds and replays shortest routes through small
// weighted graphs, from an adjacency matrix to an animated path reveal.
//
// 🚀 What is pathscope?
//
//	A compact, deterministic toolkit that brings together:
//		• Graph model: nodes and directed edges derived from a dense matrix
//		• Shortest paths: O(V²) Dijkstra with lowest-index tie-breaking
//		• Path reveal: a pure step machine advancing node by node
//		• Layout: circular placement, optional noise jitter, hit testing
//		• Frames: PNG rasterisation of every animation step
//
// Packages:
//
//	dijkstra/       shortest distances and paths on [][]int64 matrices
//	animation/      Idle → Running → Completed reveal state, Advance, Sequencer
//	explorer/       the Graph model: nodes, edges, stored path, animation
//	layout/         circular layout, jitter, HitTest
//	config/         YAML graph documents, validation, hot reload, CityGraph
//	session/        concurrency-safe owner of one Graph; Frame snapshots
//	player/         real-time ticking of a session
//	render/         PNG frames
//	logging/        slog handler setup
//	metrics/        Prometheus instruments
//	cmd/pathscope/  the command-line explorer
//
// Quick ASCII example:
//
//	    A──1──B
//	    │   ╱ │
//	    4  2  4
//	    │ ╱   │
//	    C──3──D      A → D: A B D, total 5
//
// Run the built-in airport graph:
//
//	go run ./cmd/pathscope
package pathscope
