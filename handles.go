package layers

// HandleType identifies one draggable control on a selection box.
type HandleType uint8

// Handle type constants. The four corners come first, then the four edges,
// then the rotation handle; hit-testing follows this order.
const (
	HandleNW HandleType = iota
	HandleNE
	HandleSE
	HandleSW
	HandleN
	HandleE
	HandleS
	HandleW
	HandleRotate
)

// String returns the compass name of the handle ("nw", "se", "rotate", ...).
func (t HandleType) String() string {
	switch t {
	case HandleNW:
		return "nw"
	case HandleNE:
		return "ne"
	case HandleSE:
		return "se"
	case HandleSW:
		return "sw"
	case HandleN:
		return "n"
	case HandleE:
		return "e"
	case HandleS:
		return "s"
	case HandleW:
		return "w"
	case HandleRotate:
		return "rotate"
	default:
		return unknownStr
	}
}

// Cursor returns the CSS cursor keyword a host should show over the handle.
// Unknown handle types map to the default pointer.
func (t HandleType) Cursor() string {
	switch t {
	case HandleNW, HandleSE:
		return "nwse-resize"
	case HandleNE, HandleSW:
		return "nesw-resize"
	case HandleN, HandleS:
		return "ns-resize"
	case HandleE, HandleW:
		return "ew-resize"
	case HandleRotate:
		return "crosshair"
	default:
		return "pointer"
	}
}

// Opposite returns the handle across the selection box. Proportional and
// from-center resizes anchor on it. Unknown types return themselves.
func (t HandleType) Opposite() HandleType {
	switch t {
	case HandleNW:
		return HandleSE
	case HandleNE:
		return HandleSW
	case HandleSE:
		return HandleNW
	case HandleSW:
		return HandleNE
	case HandleN:
		return HandleS
	case HandleS:
		return HandleN
	case HandleE:
		return HandleW
	case HandleW:
		return HandleE
	default:
		return t
	}
}

// signs returns the growth direction of the handle on each axis:
// -1 when dragging outward decreases the coordinate, +1 when it increases
// it, 0 when the axis is not affected.
func (t HandleType) signs() (sx, sy float64) {
	switch t {
	case HandleNW:
		return -1, -1
	case HandleN:
		return 0, -1
	case HandleNE:
		return 1, -1
	case HandleE:
		return 1, 0
	case HandleSE:
		return 1, 1
	case HandleS:
		return 0, 1
	case HandleSW:
		return -1, 1
	case HandleW:
		return -1, 0
	default:
		return 0, 0
	}
}

// isResizeHandle reports whether t is one of the eight resize handles.
func (t HandleType) isResizeHandle() bool {
	return t <= HandleW
}

// Handle is one positioned control with its pointer hit-box. Handles are
// ephemeral: recompute the set whenever selection or bounds change.
type Handle struct {
	Type   HandleType
	X, Y   float64
	HitBox Rect
}

// HandleSet is the ordered handle list for the current selection.
type HandleSet []Handle

// SingleSelectionHandles computes the handles for a single-layer selection:
// four corners, four edge handles unless disabled, and a rotation handle
// floating above the top edge unless disabled. Empty bounds yield no handles.
func SingleSelectionHandles(bounds Rect, opts ...HandleOption) HandleSet {
	return buildHandles(bounds, true, opts)
}

// MultiSelectionHandles computes the handles for a multi-layer selection:
// corners only, plus the rotation handle when enabled.
func MultiSelectionHandles(bounds Rect, opts ...HandleOption) HandleSet {
	return buildHandles(bounds, false, opts)
}

func buildHandles(bounds Rect, edges bool, opts []HandleOption) HandleSet {
	if bounds.IsEmpty() {
		return nil
	}
	cfg := defaultHandleConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	x0, y0 := bounds.X, bounds.Y
	x1, y1 := bounds.X+bounds.Width, bounds.Y+bounds.Height
	cx, cy := bounds.Center().X, bounds.Center().Y

	set := make(HandleSet, 0, 9)
	add := func(t HandleType, x, y float64) {
		half := cfg.handleSize / 2
		set = append(set, Handle{
			Type: t, X: x, Y: y,
			HitBox: Rect{X: x - half, Y: y - half, Width: cfg.handleSize, Height: cfg.handleSize},
		})
	}

	add(HandleNW, x0, y0)
	add(HandleNE, x1, y0)
	add(HandleSE, x1, y1)
	add(HandleSW, x0, y1)
	if edges && cfg.includeEdges {
		add(HandleN, cx, y0)
		add(HandleE, x1, cy)
		add(HandleS, cx, y1)
		add(HandleW, x0, cy)
	}
	if cfg.includeRotation {
		add(HandleRotate, cx, y0-cfg.rotationOffset)
	}
	return set
}

// HitTest returns the first handle whose hit-box contains p. Corners win
// over edges, edges over rotation, matching the build order.
func (s HandleSet) HitTest(p Point) (Handle, bool) {
	for _, h := range s {
		if h.HitBox.Contains(p) {
			return h, true
		}
	}
	return Handle{}, false
}
