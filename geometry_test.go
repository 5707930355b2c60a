package layers

import (
	"math"
	"testing"
)

func TestPolygonVertices_Distance(t *testing.T) {
	tests := []struct {
		name   string
		cx, cy float64
		radius float64
		sides  int
		want   int
	}{
		{"triangle", 0, 0, 10, 3, 3},
		{"hexagon", 50, 50, 25, 6, 6},
		{"clamped below minimum", 0, 0, 10, 1, 3},
		{"clamped zero", 0, 0, 10, 0, 3},
		{"many sides", -5, 12, 100, 32, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vs := PolygonVertices(tt.cx, tt.cy, tt.radius, tt.sides)
			if len(vs) != tt.want {
				t.Fatalf("len = %d, want %d", len(vs), tt.want)
			}
			center := Pt(tt.cx, tt.cy)
			for i, v := range vs {
				if d := v.Distance(center); math.Abs(d-tt.radius) > 1e-5 {
					t.Errorf("vertex %d at distance %v, want %v", i, d, tt.radius)
				}
			}
		})
	}
}

func TestPolygonVertices_FirstVertexUp(t *testing.T) {
	vs := PolygonVertices(10, 20, 5, 4)
	want := Pt(10, 15)
	if !vs[0].Approx(want, 1e-9) {
		t.Errorf("first vertex = %v, want %v", vs[0], want)
	}
}

func TestStarVertices(t *testing.T) {
	tests := []struct {
		name   string
		points int
		want   int
	}{
		{"five points", 5, 10},
		{"three points", 3, 6},
		{"clamped", 2, 6},
		{"clamped negative", -1, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vs := StarVertices(0, 0, 20, 8, tt.points)
			if len(vs) != tt.want {
				t.Fatalf("len = %d, want %d", len(vs), tt.want)
			}
			center := Pt(0, 0)
			for i, v := range vs {
				wantR := 20.0
				if i%2 == 1 {
					wantR = 8.0
				}
				if d := v.Distance(center); math.Abs(d-wantR) > 1e-5 {
					t.Errorf("vertex %d at distance %v, want %v", i, d, wantR)
				}
			}
		})
	}
}

func TestStarVertices_FirstOuterAtTop(t *testing.T) {
	vs := StarVertices(100, 100, 30, 10, 5)
	want := Pt(100, 70)
	if !vs[0].Approx(want, 1e-9) {
		t.Errorf("first vertex = %v, want %v", vs[0], want)
	}
}

func TestBoundsFromVertices(t *testing.T) {
	tests := []struct {
		name string
		vs   []Point
		want Rect
	}{
		{"empty", nil, Rect{}},
		{"single point", []Point{{3, 4}}, Rect{X: 3, Y: 4}},
		{"square", []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, Rect{0, 0, 10, 10}},
		{"negative coords", []Point{{-5, -2}, {3, 7}}, Rect{-5, -2, 8, 9}},
		{"unordered", []Point{{4, 9}, {-1, 3}, {2, -6}}, Rect{-1, -6, 5, 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoundsFromVertices(tt.vs); got != tt.want {
				t.Errorf("BoundsFromVertices = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	tests := []struct {
		name string
		x, y float64
		vs   []Point
		want bool
	}{
		{"nil vertices", 1, 1, nil, false},
		{"two vertices", 1, 1, []Point{{0, 0}, {10, 10}}, false},
		{"inside square", 5, 5, square, true},
		{"outside square", 15, 5, square, false},
		{"outside left", -1, 5, square, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInPolygon(tt.x, tt.y, tt.vs); got != tt.want {
				t.Errorf("PointInPolygon(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPointInPolygon_ConvexCentroids(t *testing.T) {
	// The centroid of any convex polygon is inside it.
	for _, sides := range []int{3, 4, 5, 6, 9, 12} {
		vs := PolygonVertices(40, -7, 13, sides)
		var cx, cy float64
		for _, v := range vs {
			cx += v.X
			cy += v.Y
		}
		cx /= float64(len(vs))
		cy /= float64(len(vs))
		if !PointInPolygon(cx, cy, vs) {
			t.Errorf("centroid of %d-gon not inside", sides)
		}
	}
}

func TestDistanceToSegment(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		a, b Point
		want float64
	}{
		{"on segment", Pt(5, 0), Pt(0, 0), Pt(10, 0), 0},
		{"above middle", Pt(5, 3), Pt(0, 0), Pt(10, 0), 3},
		{"beyond end", Pt(13, 4), Pt(0, 0), Pt(10, 0), 5},
		{"degenerate segment", Pt(3, 4), Pt(0, 0), Pt(0, 0), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := distanceToSegment(tt.p, tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("distanceToSegment = %v, want %v", got, tt.want)
			}
		})
	}
}
