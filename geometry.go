package layers

import "math"

// PolygonVertices returns the vertices of a regular polygon centered on
// (cx, cy). Sides below 3 are clamped to 3. Every vertex lies exactly radius
// from the center and the first vertex points straight up.
func PolygonVertices(cx, cy, radius float64, sides int) []Point {
	if sides < 3 {
		sides = 3
	}
	step := 2 * math.Pi / float64(sides)
	vs := make([]Point, sides)
	for i := range vs {
		a := -math.Pi/2 + step*float64(i)
		sin, cos := math.Sincos(a)
		vs[i] = Point{X: cx + radius*cos, Y: cy + radius*sin}
	}
	return vs
}

// StarVertices returns the vertices of a star centered on (cx, cy):
// 2*points vertices alternating between outer and inner radius, beginning
// with an outer vertex at the top. Points below 3 are clamped to 3.
func StarVertices(cx, cy, outer, inner float64, points int) []Point {
	if points < 3 {
		points = 3
	}
	step := math.Pi / float64(points)
	vs := make([]Point, 2*points)
	for i := range vs {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + step*float64(i)
		sin, cos := math.Sincos(a)
		vs[i] = Point{X: cx + r*cos, Y: cy + r*sin}
	}
	return vs
}

// BoundsFromVertices returns the tight bounding box of the vertices, or the
// zero Rect for empty input.
func BoundsFromVertices(vs []Point) Rect {
	if len(vs) == 0 {
		return Rect{}
	}
	minX, minY := vs[0].X, vs[0].Y
	maxX, maxY := minX, minY
	for _, v := range vs[1:] {
		minX = min(minX, v.X)
		minY = min(minY, v.Y)
		maxX = max(maxX, v.X)
		maxY = max(maxY, v.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// PointInPolygon reports whether (x, y) lies inside the polygon using the
// ray-casting rule. Returns false for fewer than 3 vertices.
func PointInPolygon(x, y float64, vs []Point) bool {
	if len(vs) < 3 {
		return false
	}
	inside := false
	j := len(vs) - 1
	for i := range vs {
		if (vs[i].Y > y) != (vs[j].Y > y) &&
			x < (vs[j].X-vs[i].X)*(y-vs[i].Y)/(vs[j].Y-vs[i].Y)+vs[i].X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// distanceToSegment returns the distance from p to the segment [a, b].
func distanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 == 0 {
		return p.Distance(a)
	}
	t := (p.Sub(a).X*ab.X + p.Sub(a).Y*ab.Y) / l2
	t = max(0, min(1, t))
	return p.Distance(a.Add(ab.Mul(t)))
}
