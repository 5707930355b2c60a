package layers

import "testing"

func TestSingleSelectionHandles(t *testing.T) {
	bounds := Rect{X: 100, Y: 100, Width: 200, Height: 100}
	set := SingleSelectionHandles(bounds)
	if len(set) != 9 {
		t.Fatalf("len = %d, want 9", len(set))
	}

	positions := map[HandleType]Point{
		HandleNW:     {100, 100},
		HandleNE:     {300, 100},
		HandleSE:     {300, 200},
		HandleSW:     {100, 200},
		HandleN:      {200, 100},
		HandleE:      {300, 150},
		HandleS:      {200, 200},
		HandleW:      {100, 150},
		HandleRotate: {200, 100 - DefaultRotationOffset},
	}
	for _, h := range set {
		want, ok := positions[h.Type]
		if !ok {
			t.Errorf("unexpected handle %v", h.Type)
			continue
		}
		if !Pt(h.X, h.Y).Approx(want, 1e-9) {
			t.Errorf("%v at (%v, %v), want %v", h.Type, h.X, h.Y, want)
		}
		if h.HitBox.Width != DefaultHandleSize || h.HitBox.Height != DefaultHandleSize {
			t.Errorf("%v hit-box %+v, want %v square", h.Type, h.HitBox, DefaultHandleSize)
		}
		if !h.HitBox.Contains(Pt(h.X, h.Y)) {
			t.Errorf("%v hit-box does not cover its own position", h.Type)
		}
	}

	t.Run("empty bounds", func(t *testing.T) {
		if set := SingleSelectionHandles(Rect{}); set != nil {
			t.Errorf("got %d handles for empty bounds", len(set))
		}
		if set := SingleSelectionHandles(Rect{Width: -5, Height: 10}); set != nil {
			t.Errorf("got %d handles for negative bounds", len(set))
		}
	})

	t.Run("without edges", func(t *testing.T) {
		set := SingleSelectionHandles(bounds, WithEdges(false))
		if len(set) != 5 {
			t.Fatalf("len = %d, want 5", len(set))
		}
		for _, h := range set {
			if h.Type == HandleN || h.Type == HandleE || h.Type == HandleS || h.Type == HandleW {
				t.Errorf("edge handle %v present", h.Type)
			}
		}
	})

	t.Run("without rotation", func(t *testing.T) {
		set := SingleSelectionHandles(bounds, WithRotation(false))
		if len(set) != 8 {
			t.Fatalf("len = %d, want 8", len(set))
		}
		for _, h := range set {
			if h.Type == HandleRotate {
				t.Error("rotation handle present")
			}
		}
	})

	t.Run("touch sizing", func(t *testing.T) {
		set := SingleSelectionHandles(bounds, WithTouch(true))
		if got := set[0].HitBox.Width; got != TouchHandleSize {
			t.Errorf("hit-box width = %v, want %v", got, TouchHandleSize)
		}
	})

	t.Run("custom rotation offset", func(t *testing.T) {
		set := SingleSelectionHandles(bounds, WithRotationOffset(50))
		h := set[len(set)-1]
		if h.Type != HandleRotate || h.Y != 50 {
			t.Errorf("rotate handle at y=%v, want 50", h.Y)
		}
	})
}

func TestMultiSelectionHandles(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, Width: 50, Height: 50}
	set := MultiSelectionHandles(bounds)
	if len(set) != 5 {
		t.Fatalf("len = %d, want 5", len(set))
	}
	for _, h := range set {
		switch h.Type {
		case HandleNW, HandleNE, HandleSE, HandleSW, HandleRotate:
		default:
			t.Errorf("unexpected handle %v in multi-selection set", h.Type)
		}
	}

	// Edge options have no effect on multi-selection.
	if set := MultiSelectionHandles(bounds, WithEdges(true)); len(set) != 5 {
		t.Errorf("len = %d with edges forced on, want 5", len(set))
	}
}

func TestHandleSet_HitTest(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	set := SingleSelectionHandles(bounds, WithHandleSize(10))

	tests := []struct {
		name string
		p    Point
		want HandleType
		ok   bool
	}{
		{"nw corner center", Pt(0, 0), HandleNW, true},
		{"se corner edge of box", Pt(104, 104), HandleSE, true},
		{"n edge", Pt(50, 2), HandleN, true},
		{"rotate above top", Pt(50, -DefaultRotationOffset), HandleRotate, true},
		{"shape interior", Pt(50, 50), 0, false},
		{"far away", Pt(500, 500), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := set.HitTest(tt.p)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && h.Type != tt.want {
				t.Errorf("hit %v, want %v", h.Type, tt.want)
			}
		})
	}

	t.Run("corner wins over edge", func(t *testing.T) {
		// A big hit-box makes the nw corner and n edge boxes overlap.
		set := SingleSelectionHandles(Rect{Width: 20, Height: 20}, WithHandleSize(30))
		h, ok := set.HitTest(Pt(10, 0))
		if !ok || h.Type != HandleNW {
			t.Errorf("hit %v, want nw", h.Type)
		}
	})

	t.Run("empty set", func(t *testing.T) {
		if _, ok := HandleSet(nil).HitTest(Pt(0, 0)); ok {
			t.Error("empty set reported a hit")
		}
	})
}

func TestHandleType_String(t *testing.T) {
	tests := []struct {
		t    HandleType
		want string
	}{
		{HandleNW, "nw"}, {HandleNE, "ne"}, {HandleSE, "se"}, {HandleSW, "sw"},
		{HandleN, "n"}, {HandleE, "e"}, {HandleS, "s"}, {HandleW, "w"},
		{HandleRotate, "rotate"}, {HandleType(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestHandleType_Cursor(t *testing.T) {
	tests := []struct {
		t    HandleType
		want string
	}{
		{HandleNW, "nwse-resize"}, {HandleSE, "nwse-resize"},
		{HandleNE, "nesw-resize"}, {HandleSW, "nesw-resize"},
		{HandleN, "ns-resize"}, {HandleS, "ns-resize"},
		{HandleE, "ew-resize"}, {HandleW, "ew-resize"},
		{HandleRotate, "crosshair"}, {HandleType(42), "pointer"},
	}
	for _, tt := range tests {
		if got := tt.t.Cursor(); got != tt.want {
			t.Errorf("Cursor(%v) = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestHandleType_Opposite(t *testing.T) {
	tests := []struct {
		t, want HandleType
	}{
		{HandleNW, HandleSE}, {HandleSE, HandleNW},
		{HandleNE, HandleSW}, {HandleSW, HandleNE},
		{HandleN, HandleS}, {HandleS, HandleN},
		{HandleE, HandleW}, {HandleW, HandleE},
		{HandleRotate, HandleRotate},
	}
	for _, tt := range tests {
		if got := tt.t.Opposite(); got != tt.want {
			t.Errorf("Opposite(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
	for _, c := range []HandleType{HandleNW, HandleNE, HandleSE, HandleSW, HandleN, HandleE, HandleS, HandleW} {
		if got := c.Opposite().Opposite(); got != c {
			t.Errorf("Opposite is not an involution for %v", c)
		}
	}
}
