// Package render rasterises session frames to PNG.
//
// The picture follows the explorer panel: grey edges with weight badges,
// steel-blue nodes with white labels, and the shortest path turning crimson
// as it is revealed. Arrowheads are drawn only for directed graphs.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/katalvlaran/pathscope/layout"
	"github.com/katalvlaran/pathscope/session"
)

// ErrEmptyCanvas is returned when a frame has no drawable area.
var ErrEmptyCanvas = errors.New("render: canvas has zero size")

// Options configures a Renderer.
type Options struct {
	NodeRadius float64 // default layout.DefaultNodeRadius
	FontSize   float64 // points at 72 DPI; default 14
	ArrowGap   float64 // distance of the arrow tip from the target centre; default 30
}

// DefaultOptions returns the panel's proportions.
func DefaultOptions() Options {
	return Options{
		NodeRadius: layout.DefaultNodeRadius,
		FontSize:   14,
		ArrowGap:   30,
	}
}

// Renderer draws frames. It is not safe for concurrent use.
type Renderer struct {
	opts Options
	face font.Face
	z    *vector.Rasterizer
}

// New prepares a Renderer; zero option fields take their defaults.
func New(opts Options) (*Renderer, error) {
	def := DefaultOptions()
	if opts.NodeRadius <= 0 {
		opts.NodeRadius = def.NodeRadius
	}
	if opts.FontSize <= 0 {
		opts.FontSize = def.FontSize
	}
	if opts.ArrowGap <= 0 {
		opts.ArrowGap = def.ArrowGap
	}

	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: parse font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    opts.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("render: font face: %w", err)
	}

	return &Renderer{opts: opts, face: face}, nil
}

// PNG encodes f as a PNG image to w.
func (r *Renderer) PNG(w io.Writer, f session.Frame) error {
	img, err := r.Image(f)
	if err != nil {
		return err
	}

	return png.Encode(w, img)
}

// Image draws f on a new canvas of the frame's size.
//
// Order: background, non-path edges, path edges, weight badges, nodes.
func (r *Renderer) Image(f session.Frame) (*image.RGBA, error) {
	w, h := int(math.Round(f.Width)), int(math.Round(f.Height))
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyCanvas
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)

	if r.z == nil {
		r.z = vector.NewRasterizer(w, h)
	}
	c := &canvas{img: img, z: r.z}

	// 1) Edges, path on top
	for pass := 0; pass < 2; pass++ {
		for _, e := range f.Edges {
			if e.OnPath == (pass == 1) {
				r.drawEdge(c, e, f)
			}
		}
	}

	// 2) Weights
	for _, e := range f.Edges {
		r.drawWeight(c, e)
	}

	// 3) Nodes
	for _, n := range f.Nodes {
		r.drawNode(c, n, f)
	}

	return img, nil
}

func (r *Renderer) drawEdge(c *canvas, e session.EdgeView, f session.Frame) {
	col, width := EdgeStyle(e, f.Phase)
	if e.Source == e.Target {
		c.ring(e.From.X, e.From.Y-r.opts.NodeRadius-8, 10, width, col)
		return
	}

	p := e.Progress.Value
	if e.Progress.Active && p < 1 {
		// Partial stroke up to the head, then the pulse.
		hx := e.From.X + (e.To.X-e.From.X)*p
		hy := e.From.Y + (e.To.Y-e.From.Y)*p
		c.line(e.From.X, e.From.Y, hx, hy, width, col)
		if p > 0 {
			c.disc(hx, hy, pulseRadius(p), col)
		}
		return
	}

	c.line(e.From.X, e.From.Y, e.To.X, e.To.Y, width, col)
	if f.Directed {
		size := 12.0
		if e.OnPath {
			size = 14
		}
		r.drawArrow(c, e, size, col)
	}
}

func (r *Renderer) drawArrow(c *canvas, e session.EdgeView, size float64, col color.Color) {
	angle := math.Atan2(e.To.Y-e.From.Y, e.To.X-e.From.X)
	tipX := e.To.X - r.opts.ArrowGap*math.Cos(angle)
	tipY := e.To.Y - r.opts.ArrowGap*math.Sin(angle)
	c.polygon(col,
		tipX, tipY,
		tipX-size*math.Cos(angle-math.Pi/6), tipY-size*math.Sin(angle-math.Pi/6),
		tipX-size*math.Cos(angle+math.Pi/6), tipY-size*math.Sin(angle+math.Pi/6),
	)
}

func (r *Renderer) drawWeight(c *canvas, e session.EdgeView) {
	mx, my := (e.From.X+e.To.X)/2, (e.From.Y+e.To.Y)/2
	if e.Source == e.Target {
		mx, my = e.From.X, e.From.Y-r.opts.NodeRadius-8
	}
	text := strconv.FormatInt(e.Weight, 10)
	tw := float64(font.MeasureString(r.face, text).Ceil())

	c.rect(mx-tw/2-3, my-10, tw+6, 18, colorBackground)
	col := colorWeight
	if e.OnPath || e.Progress.Active {
		col = colorPath
	}
	r.text(c, mx-tw/2, my+4, text, col)
}

func (r *Renderer) drawNode(c *canvas, n session.NodeView, f session.Frame) {
	fill, border, width := NodeStyle(n, f.Phase)
	x, y, rad := n.Position.X, n.Position.Y, r.opts.NodeRadius

	if n.Progress.Active && n.Progress.Value < 1 {
		glow := rad * glowScale(n.Progress.Value)
		for i := 3; i >= 0; i-- {
			a := uint8(50 - i*10)
			c.disc(x, y, glow+float64(i*4), color.NRGBA{R: 220, G: 20, B: 60, A: a})
		}
	}

	c.disc(x, y, rad+width/2, border)
	c.disc(x, y, rad-width/2, fill)

	tw := float64(font.MeasureString(r.face, n.Label).Ceil())
	ascent := float64(r.face.Metrics().Ascent.Ceil())
	r.text(c, x-tw/2, y+ascent/2-2, n.Label, colorLabel)
}

func (r *Renderer) text(c *canvas, x, y float64, s string, col color.Color) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: r.face,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(y))),
	}
	d.DrawString(s)
}
