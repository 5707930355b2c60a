package layers

import "math"

// Mode is the interaction controller's current gesture. Exactly one mode is
// active at a time; the zero value is ModeIdle.
type Mode uint8

// Interaction modes.
const (
	ModeIdle Mode = iota
	ModeDragging
	ModeResizing
	ModeRotating
	ModePanning
	ModeMarqueeSelecting
	ModeDraggingGuide
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModeDragging:
		return "Dragging"
	case ModeResizing:
		return "Resizing"
	case ModeRotating:
		return "Rotating"
	case ModePanning:
		return "Panning"
	case ModeMarqueeSelecting:
		return "MarqueeSelecting"
	case ModeDraggingGuide:
		return "DraggingGuide"
	default:
		return unknownStr
	}
}

// Delta is a pointer displacement since a gesture's reference point.
type Delta struct {
	DX, DY float64
}

// ResizeDelta is a resize gesture's displacement plus the dragged handle.
type ResizeDelta struct {
	DX, DY float64
	Handle HandleType
}

// Controller is the modal interaction state machine. It owns exactly one
// gesture session at a time and never owns layer storage: Start methods
// deep-copy the relevant layers, Update methods return derived deltas, and
// Finish methods hand the originals back for diffing.
//
// Every Update and Finish method is total: called outside its mode it
// returns a zero value and changes nothing. Starting a gesture while
// another is active overwrites the session; well-behaved callers finish or
// reset first, but the controller stays consistent either way.
//
// Controller is not safe for concurrent use; it is built for a
// single-threaded event loop. Guard each instance with a single owner if
// the host is concurrent.
type Controller struct {
	cfg  controllerConfig
	mode Mode

	start     Point
	originals []*Layer

	handle       HandleType
	rotateCenter Point

	marqueeStart Point
	marqueeEnd   Point

	lastPan Point
	guide   Guide

	lastTouch   Point
	lastTouchAt int64 // UnixNano; zero means no touch recorded
}

// NewController returns an idle controller.
func NewController(opts ...ControllerOption) *Controller {
	cfg := defaultControllerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Controller{cfg: cfg}
}

// Mode returns the active gesture mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// IsManipulating reports whether a layer-changing gesture (drag, resize,
// rotate) is active.
func (c *Controller) IsManipulating() bool {
	return c.mode == ModeDragging || c.mode == ModeResizing || c.mode == ModeRotating
}

// IsInteracting reports whether any pointer gesture except guide dragging
// is active.
func (c *Controller) IsInteracting() bool {
	return c.IsManipulating() || c.mode == ModePanning || c.mode == ModeMarqueeSelecting
}

// enter replaces whatever session is active with a fresh one.
func (c *Controller) enter(m Mode) {
	if c.mode != ModeIdle && c.mode != m {
		Logger().Debug("interaction: session overwritten", "old", c.mode.String(), "new", m.String())
	}
	c.clearSession()
	c.mode = m
}

// clearSession zeroes all mode-scoped fields. Touch bookkeeping survives;
// it belongs to tap detection, not to a gesture session.
func (c *Controller) clearSession() {
	c.mode = ModeIdle
	c.start = Point{}
	c.originals = nil
	c.handle = 0
	c.rotateCenter = Point{}
	c.marqueeStart = Point{}
	c.marqueeEnd = Point{}
	c.lastPan = Point{}
	c.guide = Guide{}
}

// Reset unconditionally returns the controller to idle and clears every
// session and touch field. Hosts call it on tool switches and Escape.
func (c *Controller) Reset() {
	c.clearSession()
	c.lastTouch = Point{}
	c.lastTouchAt = 0
}

// StartDrag begins a move gesture at p over the given layers. The layers
// are deep-copied so the caller can mutate the originals during the drag.
func (c *Controller) StartDrag(p Point, selection []*Layer) {
	c.enter(ModeDragging)
	c.start = p
	c.originals = CloneLayers(selection)
}

// UpdateDrag returns the displacement from the drag start, or a zero delta
// when no drag is active.
func (c *Controller) UpdateDrag(p Point) Delta {
	if c.mode != ModeDragging {
		return Delta{}
	}
	return Delta{DX: p.X - c.start.X, DY: p.Y - c.start.Y}
}

// FinishDrag ends the drag and returns the pre-drag layer snapshots, or nil
// when no drag is active.
func (c *Controller) FinishDrag() []*Layer {
	if c.mode != ModeDragging {
		return nil
	}
	orig := c.originals
	c.clearSession()
	return orig
}

// StartResize begins a resize gesture at p on the given handle.
func (c *Controller) StartResize(p Point, handle HandleType, layer *Layer) {
	c.enter(ModeResizing)
	c.start = p
	c.handle = handle
	if layer != nil {
		c.originals = []*Layer{layer.Clone()}
	}
}

// UpdateResize returns the displacement from the resize start together with
// the session's handle. Outside a resize it returns the zero value.
func (c *Controller) UpdateResize(p Point) ResizeDelta {
	if c.mode != ModeResizing {
		return ResizeDelta{}
	}
	return ResizeDelta{DX: p.X - c.start.X, DY: p.Y - c.start.Y, Handle: c.handle}
}

// FinishResize ends the resize and returns the pre-resize layer snapshot,
// or nil when no resize is active.
func (c *Controller) FinishResize() *Layer {
	if c.mode != ModeResizing {
		return nil
	}
	var orig *Layer
	if len(c.originals) > 0 {
		orig = c.originals[0]
	}
	c.clearSession()
	return orig
}

// StartRotate begins a rotate gesture: angles are measured from the bearing
// of p as seen from center.
func (c *Controller) StartRotate(p, center Point, selection []*Layer) {
	c.enter(ModeRotating)
	c.start = p
	c.rotateCenter = center
	c.originals = CloneLayers(selection)
}

// UpdateRotate returns the signed rotation in degrees since the gesture
// start, wrapped to (-180, 180]. Returns 0 when no rotation is active.
func (c *Controller) UpdateRotate(p Point) float64 {
	if c.mode != ModeRotating {
		return 0
	}
	a := bearing(p, c.rotateCenter) - bearing(c.start, c.rotateCenter)
	for a > 180 {
		a -= 360
	}
	for a <= -180 {
		a += 360
	}
	return a
}

// FinishRotate ends the rotation and returns the pre-rotate snapshots, or
// nil when no rotation is active.
func (c *Controller) FinishRotate() []*Layer {
	if c.mode != ModeRotating {
		return nil
	}
	orig := c.originals
	c.clearSession()
	return orig
}

// StartPan begins a viewport pan at p.
func (c *Controller) StartPan(p Point) {
	c.enter(ModePanning)
	c.lastPan = p
}

// UpdatePan returns the displacement since the previous pan point and
// advances it, so each call yields the incremental step.
func (c *Controller) UpdatePan(p Point) Delta {
	if c.mode != ModePanning {
		return Delta{}
	}
	d := Delta{DX: p.X - c.lastPan.X, DY: p.Y - c.lastPan.Y}
	c.lastPan = p
	return d
}

// FinishPan ends the pan gesture.
func (c *Controller) FinishPan() {
	if c.mode != ModePanning {
		return
	}
	c.clearSession()
}

// StartMarquee begins a rubber-band selection at p.
func (c *Controller) StartMarquee(p Point) {
	c.enter(ModeMarqueeSelecting)
	c.marqueeStart = p
	c.marqueeEnd = p
}

// UpdateMarquee advances the marquee's end corner and returns it.
func (c *Controller) UpdateMarquee(p Point) Point {
	if c.mode != ModeMarqueeSelecting {
		return Point{}
	}
	c.marqueeEnd = p
	return p
}

// MarqueeRect returns the current marquee as a canonical rectangle,
// whatever direction the drag took. Zero outside a marquee session.
func (c *Controller) MarqueeRect() Rect {
	if c.mode != ModeMarqueeSelecting {
		return Rect{}
	}
	return RectFromPoints(c.marqueeStart, c.marqueeEnd)
}

// FinishMarquee ends the marquee and returns its final canonical rectangle.
func (c *Controller) FinishMarquee() Rect {
	if c.mode != ModeMarqueeSelecting {
		return Rect{}
	}
	r := RectFromPoints(c.marqueeStart, c.marqueeEnd)
	c.clearSession()
	return r
}

// StartGuideDrag begins dragging an alignment guide.
func (c *Controller) StartGuideDrag(g Guide) {
	c.enter(ModeDraggingGuide)
	c.guide = g
}

// UpdateGuideDrag moves the guide to the pointer's coordinate on the
// guide's axis and returns the new position.
func (c *Controller) UpdateGuideDrag(p Point) float64 {
	if c.mode != ModeDraggingGuide {
		return 0
	}
	if c.guide.Orientation == Vertical {
		c.guide.Position = p.X
	} else {
		c.guide.Position = p.Y
	}
	return c.guide.Position
}

// FinishGuideDrag ends the guide drag and returns the final guide. The
// second result is false when no guide drag is active.
func (c *Controller) FinishGuideDrag() (Guide, bool) {
	if c.mode != ModeDraggingGuide {
		return Guide{}, false
	}
	g := c.guide
	c.clearSession()
	return g, true
}

// RecordTouch stores p and the current time for double-tap detection.
func (c *Controller) RecordTouch(p Point) {
	c.lastTouch = p
	c.lastTouchAt = c.cfg.now().UnixNano()
}

// IsDoubleTap reports whether a touch at p, now, forms a double tap with
// the previously recorded touch: both the time window and the distance
// threshold must hold. It does not record p; callers decide whether the
// tap starts a new sequence.
func (c *Controller) IsDoubleTap(p Point) bool {
	if c.lastTouchAt == 0 {
		return false
	}
	elapsed := c.cfg.now().UnixNano() - c.lastTouchAt
	if elapsed < 0 || elapsed > c.cfg.doubleTapDelay.Nanoseconds() {
		return false
	}
	return p.Distance(c.lastTouch) <= c.cfg.doubleTapDistance
}

// ClearTouch forgets the recorded touch.
func (c *Controller) ClearTouch() {
	c.lastTouch = Point{}
	c.lastTouchAt = 0
}

// bearing returns the angle of p as seen from center, in degrees.
func bearing(p, center Point) float64 {
	return radToDeg(math.Atan2(p.Y-center.Y, p.X-center.X))
}
