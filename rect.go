package layers

// Rect is an axis-aligned rectangle described by its top-left corner and
// size. It is the derived bounds representation used for handle placement
// and marquee selection.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectFromPoints returns the canonical rectangle spanned by two corner
// points, regardless of drag direction.
func RectFromPoints(p, q Point) Rect {
	r := Rect{X: p.X, Y: p.Y, Width: q.X - p.X, Height: q.Y - p.Y}
	return r.Canon()
}

// Canon returns r with non-negative width and height, flipping edges as
// needed.
func (r Rect) Canon() Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// IsEmpty reports whether r has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Center returns the center point of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Intersects reports whether r and s overlap. Zero-area rects on a shared
// edge count as touching, which keeps degenerate line bounds selectable by
// marquee.
func (r Rect) Intersects(s Rect) bool {
	return r.X <= s.X+s.Width && s.X <= r.X+r.Width &&
		r.Y <= s.Y+s.Height && s.Y <= r.Y+r.Height
}

// Union returns the smallest rectangle containing both r and s.
// An empty rect is treated as absent.
func (r Rect) Union(s Rect) Rect {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	minX := min(r.X, s.X)
	minY := min(r.Y, s.Y)
	maxX := max(r.X+r.Width, s.X+s.Width)
	maxY := max(r.Y+r.Height, s.Y+s.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Inset returns r shrunk by d on every side. A negative d grows the rect.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
}
