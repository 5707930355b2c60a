// Package raster renders layer outlines into images.
//
// It is the reference consumer of the core's replayable paths: every shape
// reaches the rasterizer through Layer.ToPath, so whatever this package can
// draw, any other backend can. Filling goes through x/image/vector's
// scan converter; open shapes (lines, arrows, freehand paths) are stroked
// as filled quads around each segment.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"github.com/slickdexic/layers"
)

type config struct {
	scale       float64
	strokeWidth float64
	background  color.Color
	fill        color.Color
}

func defaultConfig() config {
	return config{
		scale:       1,
		strokeWidth: 2,
		background:  color.Transparent,
		fill:        color.Black,
	}
}

// Option configures a Renderer.
type Option func(*config)

// WithScale scales canvas units to pixels. Useful for rendering a small
// canvas at export resolution.
func WithScale(s float64) Option {
	return func(c *config) {
		if s > 0 {
			c.scale = s
		}
	}
}

// WithStrokeWidth sets the stroke width for open shapes, in canvas units.
func WithStrokeWidth(w float64) Option {
	return func(c *config) {
		if w > 0 {
			c.strokeWidth = w
		}
	}
}

// WithBackground sets the background color. The default is transparent.
func WithBackground(col color.Color) Option {
	return func(c *config) { c.background = col }
}

// WithFill sets the shape color. The default is opaque black.
func WithFill(col color.Color) Option {
	return func(c *config) { c.fill = col }
}

// Renderer rasterizes layer collections into RGBA images of a fixed size.
// A Renderer is not safe for concurrent use; it reuses one scan converter
// across layers.
type Renderer struct {
	width, height int
	cfg           config
	ras           *vector.Rasterizer
}

// NewRenderer returns a renderer producing width x height pixel images.
func NewRenderer(width, height int, opts ...Option) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Renderer{
		width:  width,
		height: height,
		cfg:    cfg,
		ras:    vector.NewRasterizer(width, height),
	}, nil
}

// Render draws every visible layer, in slice order, onto a fresh image.
// Hidden layers and layers with empty outlines are skipped.
func (r *Renderer) Render(ls []*layers.Layer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.cfg.background), image.Point{}, draw.Src)

	src := image.NewUniform(r.cfg.fill)
	for _, l := range ls {
		if l == nil || !l.Visible {
			continue
		}
		p := l.ToPath()
		if p.IsEmpty() {
			continue
		}
		r.ras.Reset(r.width, r.height)
		if isClosed(p) {
			r.replay(p)
		} else {
			r.stroke(p)
		}
		r.ras.Draw(img, img.Bounds(), src, image.Point{})
	}
	return img
}

// WritePNG renders the layers and PNG-encodes the result.
func (r *Renderer) WritePNG(w io.Writer, ls []*layers.Layer) error {
	if err := png.Encode(w, r.Render(ls)); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// replay feeds a closed path's instructions to the scan converter.
func (r *Renderer) replay(p *layers.Path) {
	s := r.cfg.scale
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case layers.MoveTo:
			r.ras.MoveTo(float32(e.Point.X*s), float32(e.Point.Y*s))
		case layers.LineTo:
			r.ras.LineTo(float32(e.Point.X*s), float32(e.Point.Y*s))
		case layers.QuadTo:
			r.ras.QuadTo(
				float32(e.Control.X*s), float32(e.Control.Y*s),
				float32(e.Point.X*s), float32(e.Point.Y*s),
			)
		case layers.CubicTo:
			r.ras.CubeTo(
				float32(e.Control1.X*s), float32(e.Control1.Y*s),
				float32(e.Control2.X*s), float32(e.Control2.Y*s),
				float32(e.Point.X*s), float32(e.Point.Y*s),
			)
		case layers.Close:
			r.ras.ClosePath()
		}
	}
}

// stroke converts an open path into filled quads around each segment. Open
// outlines from the core contain straight segments only, so flattening to
// the element end points is exact.
func (r *Renderer) stroke(p *layers.Path) {
	half := r.cfg.strokeWidth * r.cfg.scale / 2
	s := r.cfg.scale

	var prev layers.Point
	havePrev := false
	for _, el := range p.Elements() {
		var pt layers.Point
		switch e := el.(type) {
		case layers.MoveTo:
			prev = e.Point.Mul(s)
			havePrev = true
			continue
		case layers.LineTo:
			pt = e.Point.Mul(s)
		case layers.QuadTo:
			pt = e.Point.Mul(s)
		case layers.CubicTo:
			pt = e.Point.Mul(s)
		case layers.Close:
			havePrev = false
			continue
		}
		if havePrev {
			r.strokeSegment(prev, pt, half)
		}
		prev = pt
		havePrev = true
	}
}

// strokeSegment emits one filled quad covering the segment a-b at the given
// half stroke width.
func (r *Renderer) strokeSegment(a, b layers.Point, half float64) {
	dir := b.Sub(a)
	if dir.Length() == 0 {
		return
	}
	n := layers.Pt(-dir.Y, dir.X).Normalize().Mul(half)
	p0 := a.Add(n)
	p1 := b.Add(n)
	p2 := b.Sub(n)
	p3 := a.Sub(n)
	r.ras.MoveTo(float32(p0.X), float32(p0.Y))
	r.ras.LineTo(float32(p1.X), float32(p1.Y))
	r.ras.LineTo(float32(p2.X), float32(p2.Y))
	r.ras.LineTo(float32(p3.X), float32(p3.Y))
	r.ras.ClosePath()
}

// isClosed reports whether the path contains a closed subpath.
func isClosed(p *layers.Path) bool {
	for _, el := range p.Elements() {
		if _, ok := el.(layers.Close); ok {
			return true
		}
	}
	return false
}
