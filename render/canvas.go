package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498

// canvas fills anti-aliased shapes on img with one shared rasterizer.
type canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

func (c *canvas) begin() {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
}

func (c *canvas) fill(col color.Color) {
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// circle appends a closed circle; reverse flips its winding.
func (c *canvas) circle(x, y, r float64, reverse bool) {
	k := r * kappa
	s := 1.0
	if reverse {
		s = -1
	}
	c.z.MoveTo(f32(x+r), f32(y))
	c.z.CubeTo(f32(x+r), f32(y+s*k), f32(x+k), f32(y+s*r), f32(x), f32(y+s*r))
	c.z.CubeTo(f32(x-k), f32(y+s*r), f32(x-r), f32(y+s*k), f32(x-r), f32(y))
	c.z.CubeTo(f32(x-r), f32(y-s*k), f32(x-k), f32(y-s*r), f32(x), f32(y-s*r))
	c.z.CubeTo(f32(x+k), f32(y-s*r), f32(x+r), f32(y-s*k), f32(x+r), f32(y))
	c.z.ClosePath()
}

func (c *canvas) disc(x, y, r float64, col color.Color) {
	if r <= 0 {
		return
	}
	c.begin()
	c.circle(x, y, r, false)
	c.fill(col)
}

// ring strokes a circle of radius r with the given width.
func (c *canvas) ring(x, y, r, width float64, col color.Color) {
	c.begin()
	c.circle(x, y, r+width/2, false)
	if inner := r - width/2; inner > 0 {
		c.circle(x, y, inner, true)
	}
	c.fill(col)
}

// line strokes a segment as a quad of the given width with butt ends.
func (c *canvas) line(x1, y1, x2, y2, width float64, col color.Color) {
	dx, dy := x2-x1, y2-y1
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	c.polygon(col,
		x1+nx, y1+ny,
		x2+nx, y2+ny,
		x2-nx, y2-ny,
		x1-nx, y1-ny,
	)
}

// polygon fills the closed polygon through xy pairs.
func (c *canvas) polygon(col color.Color, xy ...float64) {
	if len(xy) < 6 {
		return
	}
	c.begin()
	c.z.MoveTo(f32(xy[0]), f32(xy[1]))
	for i := 2; i+1 < len(xy); i += 2 {
		c.z.LineTo(f32(xy[i]), f32(xy[i+1]))
	}
	c.z.ClosePath()
	c.fill(col)
}

func (c *canvas) rect(x, y, w, h float64, col color.Color) {
	c.polygon(col, x, y, x+w, y, x+w, y+h, x, y+h)
}

func f32(v float64) float32 { return float32(v) }
