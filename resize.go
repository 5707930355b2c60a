package layers

import "math"

// ResizeOptions selects the resize mode for rectangle-like shapes.
type ResizeOptions struct {
	// Proportional scales both dimensions together, driven by whichever
	// axis has the larger relative delta.
	Proportional bool

	// FromCenter anchors the shape's center: the size changes by twice the
	// pointer delta and the origin shifts to keep the center fixed.
	FromCenter bool
}

// Patch is a partial layer update. Nil field pointers leave the layer field
// untouched; a nil *Patch means "no change, do not snapshot history".
type Patch struct {
	X, Y       *float64
	X2, Y2     *float64
	Width      *float64
	Height     *float64
	Radius     *float64
	RadiusX    *float64
	RadiusY    *float64
	FontSize   *float64
	PathPoints []Point
}

// IsZero reports whether the patch changes nothing. Deliberate no-ops (an
// ellipse corner drag, for example) return a non-nil zero patch so callers
// can tell "nothing to do" from "unsupported".
func (p *Patch) IsZero() bool {
	if p == nil {
		return true
	}
	return p.X == nil && p.Y == nil && p.X2 == nil && p.Y2 == nil &&
		p.Width == nil && p.Height == nil && p.Radius == nil &&
		p.RadiusX == nil && p.RadiusY == nil && p.FontSize == nil &&
		p.PathPoints == nil
}

// Apply writes the patch onto the layer and sanitizes the result, so
// non-finite or negative sizes never survive an update.
func (p *Patch) Apply(l *Layer) {
	if p == nil || l == nil {
		return
	}
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&l.X, p.X)
	set(&l.Y, p.Y)
	set(&l.X2, p.X2)
	set(&l.Y2, p.Y2)
	set(&l.Width, p.Width)
	set(&l.Height, p.Height)
	set(&l.Radius, p.Radius)
	set(&l.RadiusX, p.RadiusX)
	set(&l.RadiusY, p.RadiusY)
	set(&l.FontSize, p.FontSize)
	if p.PathPoints != nil {
		l.PathPoints = make([]Point, len(p.PathPoints))
		copy(l.PathPoints, p.PathPoints)
	}
	l.Sanitize()
}

// MinCircleRadius is the smallest radius a circle resize will produce.
const MinCircleRadius = 5.0

// Resize converts a pointer delta into a partial update for the layer.
// Deltas are in the shape's unrotated local space; rotating screen deltas in
// and out is the caller's job (see [RotatedResizeCorrection]).
//
// Resize is total: unsupported layer types and degenerate geometry return
// nil, and no input panics. A non-nil zero patch means the combination is a
// deliberate no-op.
func Resize(l *Layer, handle HandleType, dx, dy float64, opts ResizeOptions) *Patch {
	if l == nil || math.IsNaN(dx) || math.IsNaN(dy) || math.IsInf(dx, 0) || math.IsInf(dy, 0) {
		return nil
	}
	switch l.Type {
	case TypeRectangle, TypeBlur:
		return resizeRect(l, handle, dx, dy, opts)
	case TypeCircle:
		return resizeRadial(l.Radius, handle, dx, dy, MinCircleRadius)
	case TypePolygon, TypeStar:
		// A star's InnerRadius scales with nothing here; only the outer
		// radius follows the handle.
		return resizeRadial(l.Radius, handle, dx, dy, 0)
	case TypeEllipse:
		return resizeEllipse(l, handle, dx, dy)
	case TypeLine, TypeArrow:
		return resizeLine(l, handle, dx, dy)
	case TypePath:
		return resizePath(l, handle, dx, dy)
	case TypeText:
		return resizeText(l, handle, dx, dy)
	default:
		return nil
	}
}

func resizeRect(l *Layer, handle HandleType, dx, dy float64, opts ResizeOptions) *Patch {
	sx, sy := handle.signs()
	if sx == 0 && sy == 0 {
		return &Patch{}
	}

	if opts.FromCenter {
		p := &Patch{}
		if sx != 0 {
			w := l.Width + 2*sx*dx
			p.Width = fptr(w)
			p.X = fptr(l.X - (w-l.Width)/2)
		}
		if sy != 0 {
			h := l.Height + 2*sy*dy
			p.Height = fptr(h)
			p.Y = fptr(l.Y - (h-l.Height)/2)
		}
		return p
	}

	if opts.Proportional && l.Width > 0 && l.Height > 0 {
		edx := sx * dx
		edy := sy * dy
		var scale float64
		if math.Abs(edx)/l.Width >= math.Abs(edy)/l.Height {
			scale = (l.Width + edx) / l.Width
		} else {
			scale = (l.Height + edy) / l.Height
		}
		w := l.Width * scale
		h := l.Height * scale
		p := &Patch{Width: fptr(w), Height: fptr(h)}
		if sx < 0 {
			p.X = fptr(l.X + (l.Width - w))
		}
		if sy < 0 {
			p.Y = fptr(l.Y + (l.Height - h))
		}
		return p
	}

	p := &Patch{}
	if sx != 0 {
		p.Width = fptr(l.Width + sx*dx)
		if sx < 0 {
			p.X = fptr(l.X + dx)
		}
	}
	if sy != 0 {
		p.Height = fptr(l.Height + sy*dy)
		if sy < 0 {
			p.Y = fptr(l.Y + dy)
		}
	}
	return p
}

// resizeRadial adjusts a single radius by the handle's growth direction:
// corner handles average both axes, edge handles use their own axis.
func resizeRadial(radius float64, handle HandleType, dx, dy, minRadius float64) *Patch {
	sx, sy := handle.signs()
	if sx == 0 && sy == 0 {
		return &Patch{}
	}
	var d float64
	switch {
	case sx != 0 && sy != 0:
		d = (sx*dx + sy*dy) / 2
	case sx != 0:
		d = sx * dx
	default:
		d = sy * dy
	}
	return &Patch{Radius: fptr(max(minRadius, radius+d))}
}

func resizeEllipse(l *Layer, handle HandleType, dx, dy float64) *Patch {
	switch handle {
	case HandleE:
		return &Patch{RadiusX: fptr(l.RadiusX + dx)}
	case HandleW:
		return &Patch{RadiusX: fptr(l.RadiusX - dx)}
	case HandleS:
		return &Patch{RadiusY: fptr(l.RadiusY + dy)}
	case HandleN:
		return &Patch{RadiusY: fptr(l.RadiusY - dy)}
	default:
		// Corner handles on ellipses are a deliberate no-op.
		return &Patch{}
	}
}

func resizeLine(l *Layer, handle HandleType, dx, dy float64) *Patch {
	if handle == HandleN || handle == HandleS {
		// Shift the whole segment perpendicular to its direction by the
		// projected pointer delta.
		perp := Point{X: -(l.Y2 - l.Y), Y: l.X2 - l.X}.Normalize()
		if perp == (Point{}) {
			perp = Pt(0, 1)
		}
		off := perp.Mul(dx*perp.X + dy*perp.Y)
		return &Patch{
			X:  fptr(l.X + off.X),
			Y:  fptr(l.Y + off.Y),
			X2: fptr(l.X2 + off.X),
			Y2: fptr(l.Y2 + off.Y),
		}
	}
	if sx, _ := handle.signs(); sx < 0 {
		// w-class handles move the start point.
		return &Patch{X: fptr(l.X + dx), Y: fptr(l.Y + dy)}
	}
	// e-class handles and anything unrecognized move the end point.
	return &Patch{X2: fptr(l.X2 + dx), Y2: fptr(l.Y2 + dy)}
}

func resizePath(l *Layer, handle HandleType, dx, dy float64) *Patch {
	pts := l.PathPoints
	if len(pts) < 2 {
		return nil
	}
	b := BoundsFromVertices(pts)
	if b.Width <= 0 && b.Height <= 0 {
		return nil
	}
	sx, sy := handle.signs()
	if sx == 0 && sy == 0 {
		return &Patch{}
	}

	// Anchor on the corner or edge opposite the dragged handle.
	anchorX := b.X
	if sx < 0 {
		anchorX = b.X + b.Width
	}
	anchorY := b.Y
	if sy < 0 {
		anchorY = b.Y + b.Height
	}
	scaleX, scaleY := 1.0, 1.0
	if sx != 0 && b.Width > 0 {
		scaleX = (b.Width + sx*dx) / b.Width
	}
	if sy != 0 && b.Height > 0 {
		scaleY = (b.Height + sy*dy) / b.Height
	}

	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{
			X: anchorX + (p.X-anchorX)*scaleX,
			Y: anchorY + (p.Y-anchorY)*scaleY,
		}
	}
	return &Patch{PathPoints: out}
}

// Text resize limits; font sizes outside this range render unusably.
const (
	minFontSize = 1.0
	maxFontSize = 1000.0
)

func resizeText(l *Layer, handle HandleType, dx, dy float64) *Patch {
	w, h := l.textExtent()
	diag := math.Hypot(w, h)
	if diag == 0 {
		return nil
	}
	sx, sy := handle.signs()
	if sx == 0 && sy == 0 {
		return &Patch{}
	}
	newDiag := math.Hypot(max(0, w+sx*dx), max(0, h+sy*dy))
	size := l.FontSize * newDiag / diag
	size = min(maxFontSize, max(minFontSize, size))
	return &Patch{FontSize: fptr(size)}
}

// RotatedResizeCorrection adjusts the patch position so that a resize of a
// rotated shape keeps its anchor point visually fixed. The naive resize
// shifts the local-frame center; that shift happens along the rotated axes
// on screen, so the difference between the rotated and unrotated shift is
// folded back into the new position.
//
// cx, cy and origW, origH describe the shape before the resize. The call is
// a no-op for nil patches, unrotated shapes, non-resize handle types, and
// patches that carry no Width or Height. The last case covers shapes whose
// X/Y is not a top-left corner (circles, lines, paths); their patches change
// radii, endpoints, or points instead of box dimensions, and the box shift
// below would mistake the bounds corner for their origin.
func RotatedResizeCorrection(p *Patch, cx, cy, rotationDeg float64, handle HandleType, origW, origH float64) {
	if p == nil || rotationDeg == 0 || !handle.isResizeHandle() {
		return
	}
	if p.Width == nil && p.Height == nil {
		return
	}
	origX := cx - origW/2
	origY := cy - origH/2
	newX, newY := origX, origY
	newW, newH := origW, origH
	if p.X != nil {
		newX = *p.X
	}
	if p.Y != nil {
		newY = *p.Y
	}
	if p.Width != nil {
		newW = *p.Width
	}
	if p.Height != nil {
		newH = *p.Height
	}

	shift := Point{X: newX + newW/2 - cx, Y: newY + newH/2 - cy}
	rotated := shift.Rotate(degToRad(rotationDeg))
	p.X = fptr(newX + rotated.X - shift.X)
	p.Y = fptr(newY + rotated.Y - shift.Y)
}

func fptr(v float64) *float64 { return &v }
