package layers

import "math"

// Orientation says which way an alignment guide runs.
type Orientation uint8

// Guide orientations.
const (
	Horizontal Orientation = iota
	Vertical
)

// String returns "horizontal" or "vertical".
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Guide is one alignment guide: a horizontal guide at a y position or a
// vertical guide at an x position.
type Guide struct {
	Orientation Orientation
	Position    float64
}

// DefaultSnapThreshold is the distance within which dragged bounds snap to
// a guide.
const DefaultSnapThreshold = 6.0

// SnapToGuides returns the displacement that aligns bounds with the nearest
// guides within threshold, considering each side and the center per axis.
// Axes snap independently; an axis with no guide in range contributes zero.
// Apply the result on top of a drag delta before committing the move.
func SnapToGuides(bounds Rect, guides []Guide, threshold float64) Delta {
	if threshold <= 0 {
		threshold = DefaultSnapThreshold
	}
	bestX := threshold + 1
	bestY := threshold + 1
	var d Delta
	for _, g := range guides {
		if g.Orientation == Vertical {
			for _, edge := range [3]float64{bounds.X, bounds.X + bounds.Width/2, bounds.X + bounds.Width} {
				if dist := g.Position - edge; math.Abs(dist) <= threshold && math.Abs(dist) < bestX {
					bestX = math.Abs(dist)
					d.DX = dist
				}
			}
		} else {
			for _, edge := range [3]float64{bounds.Y, bounds.Y + bounds.Height/2, bounds.Y + bounds.Height} {
				if dist := g.Position - edge; math.Abs(dist) <= threshold && math.Abs(dist) < bestY {
					bestY = math.Abs(dist)
					d.DY = dist
				}
			}
		}
	}
	return d
}
