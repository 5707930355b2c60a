package layers

import (
	"math"

	"github.com/oklog/ulid/v2"
)

// LayerType identifies the shape kind of a layer.
type LayerType uint8

// Layer type constants.
const (
	TypeRectangle LayerType = iota
	TypeCircle
	TypeEllipse
	TypePolygon
	TypeStar
	TypeLine
	TypeArrow
	TypePath
	TypeText
	TypeBlur
)

const unknownStr = "Unknown"

// String returns a human-readable name for the layer type.
func (t LayerType) String() string {
	switch t {
	case TypeRectangle:
		return "Rectangle"
	case TypeCircle:
		return "Circle"
	case TypeEllipse:
		return "Ellipse"
	case TypePolygon:
		return "Polygon"
	case TypeStar:
		return "Star"
	case TypeLine:
		return "Line"
	case TypeArrow:
		return "Arrow"
	case TypePath:
		return "Path"
	case TypeText:
		return "Text"
	case TypeBlur:
		return "Blur"
	default:
		return unknownStr
	}
}

// Layer is one vector shape layer. Which fields are meaningful depends on
// Type; see the field comments. X and Y are the top-left corner for
// rectangle-like shapes and the center for circles, ellipses, polygons, and
// stars. Lines and arrows run from (X, Y) to (X2, Y2).
//
// The controller and calculators never mutate layers except through
// [Patch.Apply] and the explicit [Layer.Nudge] helper; hosts own storage.
type Layer struct {
	ID       string    `json:"id"`
	Type     LayerType `json:"type"`
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	Rotation float64   `json:"rotation,omitempty"` // degrees, clockwise
	Locked   bool      `json:"locked,omitempty"`
	Visible  bool      `json:"visible"`

	// Rectangle, text, and blur layers.
	Width        float64 `json:"width,omitempty"`
	Height       float64 `json:"height,omitempty"`
	CornerRadius float64 `json:"cornerRadius,omitempty"`

	// Circle, polygon, and star layers.
	Radius float64 `json:"radius,omitempty"`

	// Ellipse layers.
	RadiusX float64 `json:"radiusX,omitempty"`
	RadiusY float64 `json:"radiusY,omitempty"`

	// Polygon layers.
	Sides int `json:"sides,omitempty"`

	// Star layers.
	Points      int     `json:"points,omitempty"`
	InnerRadius float64 `json:"innerRadius,omitempty"`

	// Line and arrow layers.
	X2 float64 `json:"x2,omitempty"`
	Y2 float64 `json:"y2,omitempty"`

	// Path layers.
	PathPoints []Point `json:"pathPoints,omitempty"`

	// Text layers.
	Text     string  `json:"text,omitempty"`
	FontSize float64 `json:"fontSize,omitempty"`
}

// NewLayer returns a visible, unlocked layer of the given type with a fresh
// ID.
func NewLayer(t LayerType) *Layer {
	return &Layer{ID: NewLayerID(), Type: t, Visible: true}
}

// NewLayerID returns a new stable layer identifier.
func NewLayerID() string {
	return ulid.Make().String()
}

// Clone returns a deep copy of the layer.
func (l *Layer) Clone() *Layer {
	if l == nil {
		return nil
	}
	c := *l
	if l.PathPoints != nil {
		c.PathPoints = make([]Point, len(l.PathPoints))
		copy(c.PathPoints, l.PathPoints)
	}
	return &c
}

// CloneLayers deep-copies a layer collection. This is the snapshot operation
// behind interaction sessions and history entries.
func CloneLayers(ls []*Layer) []*Layer {
	if ls == nil {
		return nil
	}
	out := make([]*Layer, len(ls))
	for i, l := range ls {
		out[i] = l.Clone()
	}
	return out
}

// Bounds returns the unrotated axis-aligned bounds of the layer. Handle
// placement and marquee tests work on these bounds; rotation is applied
// separately by the caller where it matters.
func (l *Layer) Bounds() Rect {
	switch l.Type {
	case TypeRectangle, TypeBlur:
		return Rect{X: l.X, Y: l.Y, Width: l.Width, Height: l.Height}
	case TypeText:
		w, h := l.textExtent()
		return Rect{X: l.X, Y: l.Y, Width: w, Height: h}
	case TypeCircle:
		return Rect{X: l.X - l.Radius, Y: l.Y - l.Radius, Width: 2 * l.Radius, Height: 2 * l.Radius}
	case TypeEllipse:
		return Rect{X: l.X - l.RadiusX, Y: l.Y - l.RadiusY, Width: 2 * l.RadiusX, Height: 2 * l.RadiusY}
	case TypePolygon:
		return BoundsFromVertices(PolygonVertices(l.X, l.Y, l.Radius, l.Sides))
	case TypeStar:
		return BoundsFromVertices(StarVertices(l.X, l.Y, l.Radius, l.InnerRadius, l.Points))
	case TypeLine, TypeArrow:
		return RectFromPoints(Pt(l.X, l.Y), Pt(l.X2, l.Y2))
	case TypePath:
		return BoundsFromVertices(l.PathPoints)
	default:
		return Rect{}
	}
}

// Center returns the center of the layer's bounds.
func (l *Layer) Center() Point {
	return l.Bounds().Center()
}

// textExtent returns the size of a text layer. Hosts that measure text (see
// the text subpackage) store the result in Width/Height; otherwise a
// FontSize-based heuristic keeps handles and hit-tests usable.
func (l *Layer) textExtent() (w, h float64) {
	if l.Width > 0 && l.Height > 0 {
		return l.Width, l.Height
	}
	n := 0
	for range l.Text {
		n++
	}
	return 0.6 * l.FontSize * float64(n), 1.2 * l.FontSize
}

// ToPath returns the layer outline as replayable path instructions,
// already rotated by the layer's Rotation about its center. Unknown types
// return an empty path.
func (l *Layer) ToPath() *Path {
	p := NewPath()
	switch l.Type {
	case TypeRectangle, TypeBlur:
		p.appendRect(l.X, l.Y, l.Width, l.Height, l.CornerRadius)
	case TypeText:
		b := l.Bounds()
		p.appendRect(b.X, b.Y, b.Width, b.Height, 0)
	case TypeCircle:
		p.appendEllipse(l.X, l.Y, l.Radius, l.Radius)
	case TypeEllipse:
		p.appendEllipse(l.X, l.Y, l.RadiusX, l.RadiusY)
	case TypePolygon:
		p.appendPolygon(PolygonVertices(l.X, l.Y, l.Radius, l.Sides))
	case TypeStar:
		p.appendPolygon(StarVertices(l.X, l.Y, l.Radius, l.InnerRadius, l.Points))
	case TypeLine:
		p.MoveTo(l.X, l.Y).LineTo(l.X2, l.Y2)
	case TypeArrow:
		p.MoveTo(l.X, l.Y).LineTo(l.X2, l.Y2)
		l.appendArrowHead(p)
	case TypePath:
		p.appendPolyline(l.PathPoints)
	}
	if l.Rotation != 0 && !p.IsEmpty() {
		return p.Transform(RotationAround(l.Center(), degToRad(l.Rotation)))
	}
	return p
}

// appendArrowHead adds the two head strokes at the arrow's end point.
func (l *Layer) appendArrowHead(p *Path) {
	dir := Pt(l.X2, l.Y2).Sub(Pt(l.X, l.Y))
	length := dir.Length()
	if length == 0 {
		return
	}
	size := min(12, length/3)
	u := dir.Normalize()
	const spread = 0.4636 // ~26.5 degrees per side
	left := u.Rotate(math.Pi - spread).Mul(size)
	right := u.Rotate(math.Pi + spread).Mul(size)
	p.MoveTo(l.X2+left.X, l.Y2+left.Y)
	p.LineTo(l.X2, l.Y2)
	p.LineTo(l.X2+right.X, l.Y2+right.Y)
}

// lineHitTolerance is the distance in canvas units at which a pointer is
// considered on a line or arrow.
const lineHitTolerance = 5.0

// HitTest reports whether the point (x, y) hits the layer, accounting for
// the layer's rotation. Invisible layers never hit.
func (l *Layer) HitTest(x, y float64) bool {
	if !l.Visible {
		return false
	}
	p := Pt(x, y)
	if l.Rotation != 0 {
		p = p.RotateAround(l.Center(), -degToRad(l.Rotation))
	}
	switch l.Type {
	case TypeRectangle, TypeBlur, TypeText:
		return l.Bounds().Contains(p)
	case TypeCircle:
		return p.Distance(Pt(l.X, l.Y)) <= l.Radius
	case TypeEllipse:
		if l.RadiusX <= 0 || l.RadiusY <= 0 {
			return false
		}
		dx := (p.X - l.X) / l.RadiusX
		dy := (p.Y - l.Y) / l.RadiusY
		return dx*dx+dy*dy <= 1
	case TypePolygon:
		return PointInPolygon(p.X, p.Y, PolygonVertices(l.X, l.Y, l.Radius, l.Sides))
	case TypeStar:
		return PointInPolygon(p.X, p.Y, StarVertices(l.X, l.Y, l.Radius, l.InnerRadius, l.Points))
	case TypeLine, TypeArrow:
		return distanceToSegment(p, Pt(l.X, l.Y), Pt(l.X2, l.Y2)) <= lineHitTolerance
	case TypePath:
		return l.Bounds().Contains(p)
	default:
		return false
	}
}

// Nudge moves the layer in place by (dx, dy). This is the one sanctioned
// direct mutation: arrow-key nudges fire too often to justify a patch
// allocation per step. Callers still snapshot history after a nudge burst.
func (l *Layer) Nudge(dx, dy float64) {
	l.X += dx
	l.Y += dy
	switch l.Type {
	case TypeLine, TypeArrow:
		l.X2 += dx
		l.Y2 += dy
	case TypePath:
		for i := range l.PathPoints {
			l.PathPoints[i].X += dx
			l.PathPoints[i].Y += dy
		}
	}
}

// Sanitize clamps non-finite and negative size fields so corrupted data
// cannot reach consumers. It returns the layer for chaining.
func (l *Layer) Sanitize() *Layer {
	l.X = finiteOr(l.X, 0)
	l.Y = finiteOr(l.Y, 0)
	l.X2 = finiteOr(l.X2, 0)
	l.Y2 = finiteOr(l.Y2, 0)
	l.Rotation = finiteOr(l.Rotation, 0)
	l.Width = clampSize(l.Width)
	l.Height = clampSize(l.Height)
	l.CornerRadius = clampSize(l.CornerRadius)
	l.Radius = clampSize(l.Radius)
	l.RadiusX = clampSize(l.RadiusX)
	l.RadiusY = clampSize(l.RadiusY)
	l.InnerRadius = clampSize(l.InnerRadius)
	l.FontSize = clampSize(l.FontSize)
	for i, p := range l.PathPoints {
		l.PathPoints[i].X = finiteOr(p.X, 0)
		l.PathPoints[i].Y = finiteOr(p.Y, 0)
	}
	return l
}

// LayersInRect returns the visible layers whose bounds intersect r, in
// collection order. This is the marquee selection result.
func LayersInRect(ls []*Layer, r Rect) []*Layer {
	var out []*Layer
	for _, l := range ls {
		if l == nil || !l.Visible {
			continue
		}
		if l.Bounds().Intersects(r) {
			out = append(out, l)
		}
	}
	return out
}

func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

func clampSize(v float64) float64 {
	v = finiteOr(v, 0)
	if v < 0 {
		return 0
	}
	return v
}
