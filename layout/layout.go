// SPDX-License-Identifier: MIT

// Package layout computes node positions for drawing small graphs.
//
// Layout is kept out of the graph model: positions are plain r2.Vec values
// produced by pure functions and handed to whoever draws the graph.
package layout

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultNodeRadius is the drawn radius of a node disc, in pixels.
const DefaultNodeRadius = 30.0

// noiseScale spreads node indices apart in noise space so neighbors get
// uncorrelated displacements.
const noiseScale = 0.731

type options struct {
	seed      int64
	amplitude float64
}

// Option configures Circular.
type Option func(*options)

// WithJitter displaces every position by up to amplitude pixels using
// opensimplex noise seeded with seed. The same seed always yields the same
// layout. amplitude <= 0 disables jitter.
func WithJitter(seed int64, amplitude float64) Option {
	return func(o *options) {
		o.seed = seed
		o.amplitude = amplitude
	}
}

// Circular places n nodes evenly on a circle centred in a width×height
// canvas, starting at twelve o'clock and going clockwise (screen
// coordinates, y grows downward). The radius is min(width, height)/2.5.
func Circular(n int, width, height float64, opts ...Option) []r2.Vec {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}
	if n <= 0 {
		return nil
	}

	centre := r2.Vec{X: width / 2, Y: height / 2}
	radius := math.Min(width, height) / 2.5

	pos := make([]r2.Vec, n)
	for i := range pos {
		angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		pos[i] = r2.Add(centre, r2.Vec{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}

	if cfg.amplitude > 0 {
		noise := opensimplex.New(cfg.seed)
		for i := range pos {
			t := float64(i) * noiseScale
			pos[i] = r2.Add(pos[i], r2.Vec{
				X: cfg.amplitude * noise.Eval2(t, 0),
				Y: cfg.amplitude * noise.Eval2(0, t+100),
			})
		}
	}

	return pos
}

// HitTest returns the index of the node whose disc of the given radius
// contains p. Later nodes are drawn on top, so the search runs from the end.
func HitTest(positions []r2.Vec, p r2.Vec, radius float64) (int, bool) {
	for i := len(positions) - 1; i >= 0; i-- {
		if r2.Norm(r2.Sub(p, positions[i])) <= radius {
			return i, true
		}
	}

	return -1, false
}

// Bounds returns the smallest axis-aligned box containing every position.
func Bounds(positions []r2.Vec) r2.Box {
	if len(positions) == 0 {
		return r2.Box{}
	}
	b := r2.Box{Min: positions[0], Max: positions[0]}
	for _, p := range positions[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}

	return b
}
