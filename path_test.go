package layers

import (
	"math"
	"testing"
)

func TestPath_Builder(t *testing.T) {
	p := NewPath().MoveTo(0, 0).LineTo(10, 0).QuadraticTo(15, 5, 10, 10).Close()
	els := p.Elements()
	if len(els) != 4 {
		t.Fatalf("len(elements) = %d, want 4", len(els))
	}
	if _, ok := els[0].(MoveTo); !ok {
		t.Errorf("element 0 = %T, want MoveTo", els[0])
	}
	if _, ok := els[1].(LineTo); !ok {
		t.Errorf("element 1 = %T, want LineTo", els[1])
	}
	if q, ok := els[2].(QuadTo); !ok || q.Control != Pt(15, 5) {
		t.Errorf("element 2 = %#v, want QuadTo with control (15, 5)", els[2])
	}
	if _, ok := els[3].(Close); !ok {
		t.Errorf("element 3 = %T, want Close", els[3])
	}
}

func TestPath_IsEmpty(t *testing.T) {
	if !NewPath().IsEmpty() {
		t.Error("new path not empty")
	}
	var nilPath *Path
	if !nilPath.IsEmpty() {
		t.Error("nil path not empty")
	}
	if NewPath().MoveTo(1, 1).IsEmpty() {
		t.Error("path with MoveTo reported empty")
	}
}

func TestPath_Transform(t *testing.T) {
	p := NewPath().MoveTo(1, 0).LineTo(2, 0).CubicTo(3, 0, 4, 0, 5, 0)
	got := p.Transform(Translate(0, 10))
	els := got.Elements()
	if m := els[0].(MoveTo); m.Point != Pt(1, 10) {
		t.Errorf("MoveTo = %v", m.Point)
	}
	if c := els[2].(CubicTo); c.Control1 != Pt(3, 10) || c.Point != Pt(5, 10) {
		t.Errorf("CubicTo = %+v", c)
	}
}

func TestPath_Bounds(t *testing.T) {
	p := NewPath().MoveTo(0, 0).LineTo(10, 5).LineTo(-2, 8).Close()
	want := Rect{-2, 0, 12, 8}
	if got := p.Bounds(); got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}
	if got := NewPath().Bounds(); got != (Rect{}) {
		t.Errorf("empty Bounds = %+v", got)
	}
}

func TestPath_AppendRect(t *testing.T) {
	sharp := NewPath().appendRect(0, 0, 10, 10, 0)
	if n := len(sharp.Elements()); n != 5 {
		t.Errorf("sharp rect has %d elements, want 5", n)
	}
	rounded := NewPath().appendRect(0, 0, 10, 10, 2)
	cubics := 0
	for _, el := range rounded.Elements() {
		if _, ok := el.(CubicTo); ok {
			cubics++
		}
	}
	if cubics != 4 {
		t.Errorf("rounded rect has %d cubic corners, want 4", cubics)
	}
}

func TestPath_AppendEllipse(t *testing.T) {
	p := NewPath().appendEllipse(50, 50, 20, 10)
	b := p.Bounds()
	// Control points of the four arcs stay inside the ellipse's box.
	want := Rect{30, 40, 40, 20}
	if math.Abs(b.X-want.X) > 1e-9 || math.Abs(b.Width-want.Width) > 1e-9 {
		t.Errorf("Bounds = %+v, want %+v", b, want)
	}
	cubics := 0
	for _, el := range p.Elements() {
		if _, ok := el.(CubicTo); ok {
			cubics++
		}
	}
	if cubics != 4 {
		t.Errorf("ellipse has %d cubic arcs, want 4", cubics)
	}
}

func TestPath_AppendPolygon(t *testing.T) {
	p := NewPath().appendPolygon([]Point{{0, 0}, {10, 0}, {5, 8}})
	els := p.Elements()
	if len(els) != 4 {
		t.Fatalf("len = %d, want 4", len(els))
	}
	if _, ok := els[len(els)-1].(Close); !ok {
		t.Error("polygon not closed")
	}
	if !NewPath().appendPolygon(nil).IsEmpty() {
		t.Error("empty polygon produced elements")
	}
}
