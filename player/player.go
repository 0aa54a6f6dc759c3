// Package player drives a path reveal in real time.
package player

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/pathscope/animation"
	"github.com/katalvlaran/pathscope/session"
)

// ErrBadInterval is returned for a non-positive tick interval.
var ErrBadInterval = errors.New("player: interval must be > 0")

// Stage is what Play drives; *session.Session implements it.
type Stage interface {
	Tick() animation.Phase
	Frame() session.Frame
}

// FrameFunc receives every frame, starting with the one before the first
// tick. Returning an error stops playback with that error.
type FrameFunc func(session.Frame) error

// Play ticks st every interval and hands each resulting frame to onFrame
// until the reveal leaves Running or ctx is done. A reveal that is not
// Running when Play starts produces exactly one frame.
//
// Returns ctx.Err() on cancellation, the error from onFrame, or nil once
// the reveal completes.
func Play(ctx context.Context, st Stage, interval time.Duration, onFrame FrameFunc) error {
	if interval <= 0 {
		return ErrBadInterval
	}
	if onFrame == nil {
		onFrame = func(session.Frame) error { return nil }
	}

	f := st.Frame()
	if err := onFrame(f); err != nil {
		return err
	}
	if f.Phase != animation.Running {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			phase := st.Tick()
			if err := onFrame(st.Frame()); err != nil {
				return err
			}
			if phase != animation.Running {
				return nil
			}
		}
	}
}
