// Package animation sequences the step-by-step reveal of a path.
//
// The machine is a pure function over an immutable State:
//
//	Idle ──Start──▶ Running(step, progress) ──Advance…──▶ Completed
//	  ▲                                                      │
//	  └──────────────────────── Reset ◀──────────────────────┘
//
// Each Advance call is one tick of an external clock (a time.Ticker, an
// animation frame, or a test loop). The package never sleeps or schedules
// itself. Per-element progress lives in id-keyed maps inside State, so
// renderers look nodes and edges up by id instead of reading flags off
// shared graph records.
//
// Guarantees while Running:
//
//   - at most one node and one edge are in flight (0 < progress < 1);
//   - every element before Step is settled at exactly 1;
//   - every element after Step is untouched ({false, 0});
//   - Step never decreases, and Completed sticks until Reset or Start.
//
// Sequencer wraps the pure functions for callers that prefer a mutable
// holder. Neither type is safe for concurrent use.
package animation
