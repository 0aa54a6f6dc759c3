package render

import (
	"image/color"
	"math"

	"github.com/katalvlaran/pathscope/animation"
	"github.com/katalvlaran/pathscope/session"
)

// Palette
var (
	colorBackground = color.RGBA{255, 255, 255, 255}
	colorEdge       = color.RGBA{128, 128, 128, 255}
	colorPath       = color.RGBA{220, 20, 60, 255}  // crimson
	colorPathBorder = color.RGBA{139, 0, 0, 255}    // dark red
	colorNode       = color.RGBA{70, 130, 180, 255} // steel blue
	colorBorder     = color.RGBA{0, 0, 0, 255}
	colorLabel      = color.RGBA{255, 255, 255, 255}
	colorWeight     = color.RGBA{100, 100, 100, 255}
)

// EdgeStyle returns the stroke colour and width of e.
//
//   - in flight: grey→red ramp, width 2→4
//   - on the path and revealed (or not being revealed): crimson, width 4
//   - otherwise: grey, width 2
func EdgeStyle(e session.EdgeView, phase animation.Phase) (color.RGBA, float64) {
	p := e.Progress.Value
	switch {
	case e.Progress.Active && p > 0 && p < 1:
		return color.RGBA{
			R: uint8(120 + 100*p),
			G: uint8(120 - 100*p),
			B: uint8(120 - 60*p),
			A: 255,
		}, 2 + 2*p
	case e.OnPath && (e.Progress.Settled() || phase != animation.Running):
		return colorPath, 4
	default:
		return colorEdge, 2
	}
}

// NodeStyle returns the fill colour, border colour and border width of n.
func NodeStyle(n session.NodeView, phase animation.Phase) (fill, border color.RGBA, width float64) {
	p := n.Progress.Value
	switch {
	case n.Progress.Active && p < 1:
		return color.RGBA{
			R: uint8(70 + 150*p),
			G: uint8(130 - 110*p),
			B: uint8(180 - 120*p),
			A: 255,
		}, colorPathBorder, 3
	case n.OnPath && (n.Progress.Settled() || phase != animation.Running):
		return colorPath, colorPathBorder, 3
	default:
		return colorNode, colorBorder, 2
	}
}

// pulseRadius is the radius of the dot riding the head of an edge in flight.
func pulseRadius(p float64) float64 { return 8 + 4*math.Sin(p*math.Pi*4) }

// glowScale is the radius multiplier of the halo around a node in flight.
func glowScale(p float64) float64 { return 1 + 0.3*math.Sin(p*math.Pi*8) }
