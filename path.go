package layers

// PathElement is one replayable drawing instruction. Consumers replay a
// shape's outline by switching over the concrete element types; nothing in
// this package paints.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight line to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve to Point.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve to Point.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is an ordered sequence of replayable path instructions.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 16)}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	return p
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
	return p
}

// QuadraticTo draws a quadratic Bezier through control (cx, cy) to (x, y).
func (p *Path) QuadraticTo(cx, cy, x, y float64) *Path {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	p.current = Pt(x, y)
	return p
}

// CubicTo draws a cubic Bezier to (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
	return p
}

// Close closes the current subpath back to its starting point.
func (p *Path) Close() *Path {
	p.elements = append(p.elements, Close{})
	p.current = p.start
	return p
}

// IsEmpty reports whether the path has no instructions.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elements) == 0
}

// Elements returns the recorded instructions in order.
func (p *Path) Elements() []PathElement {
	if p == nil {
		return nil
	}
	return p.elements
}

// Transform returns a new path with m applied to every point, control
// points included.
func (p *Path) Transform(m Matrix) *Path {
	out := NewPath()
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			out.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			out.LineTo(pt.X, pt.Y)
		case QuadTo:
			c := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			out.QuadraticTo(c.X, c.Y, pt.X, pt.Y)
		case CubicTo:
			c1 := m.TransformPoint(e.Control1)
			c2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			out.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			out.Close()
		}
	}
	return out
}

// Bounds returns the control-point bounding box of the path. For Bezier
// segments this is conservative: control points can lie outside the curve.
func (p *Path) Bounds() Rect {
	var pts []Point
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		case QuadTo:
			pts = append(pts, e.Control, e.Point)
		case CubicTo:
			pts = append(pts, e.Control1, e.Control2, e.Point)
		}
	}
	return BoundsFromVertices(pts)
}

// bezierCircleK approximates a quarter circle with one cubic segment:
// 4*(sqrt(2)-1)/3.
const bezierCircleK = 0.5522847498

// appendEllipse adds a full ellipse outline as four cubic arcs.
func (p *Path) appendEllipse(cx, cy, rx, ry float64) *Path {
	kx := bezierCircleK * rx
	ky := bezierCircleK * ry
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	return p.Close()
}

// appendRect adds an axis-aligned rectangle, rounding the corners when
// radius is positive. The radius is clamped to half the shorter side.
func (p *Path) appendRect(x, y, w, h, radius float64) *Path {
	r := min(radius, min(w, h)/2)
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x+w, y)
		p.LineTo(x+w, y+h)
		p.LineTo(x, y+h)
		return p.Close()
	}
	kr := bezierCircleK * r
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.CubicTo(x+w-r+kr, y, x+w, y+r-kr, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.CubicTo(x+w, y+h-r+kr, x+w-r+kr, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.CubicTo(x+r-kr, y+h, x, y+h-r+kr, x, y+h-r)
	p.LineTo(x, y+r)
	p.CubicTo(x, y+r-kr, x+r-kr, y, x+r, y)
	return p.Close()
}

// appendPolyline adds the open polyline through pts.
func (p *Path) appendPolyline(pts []Point) *Path {
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
		} else {
			p.LineTo(pt.X, pt.Y)
		}
	}
	return p
}

// appendPolygon adds the closed polygon through pts.
func (p *Path) appendPolygon(pts []Point) *Path {
	if len(pts) == 0 {
		return p
	}
	p.appendPolyline(pts)
	return p.Close()
}
