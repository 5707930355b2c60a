package layers

import "time"

// Defaults for handle geometry and touch gestures.
const (
	// DefaultHandleSize is the hit-box side for mouse pointers, in canvas
	// units.
	DefaultHandleSize = 8.0

	// TouchHandleSize is the hit-box side used when touch input is enabled.
	TouchHandleSize = 14.0

	// DefaultRotationOffset is how far above the top edge the rotation
	// handle floats.
	DefaultRotationOffset = 20.0

	// DefaultDoubleTapDelay is the maximum time between taps counted as a
	// double tap.
	DefaultDoubleTapDelay = 300 * time.Millisecond

	// DefaultDoubleTapDistance is the maximum distance between taps counted
	// as a double tap, in canvas units.
	DefaultDoubleTapDistance = 30.0
)

type handleConfig struct {
	handleSize      float64
	rotationOffset  float64
	includeEdges    bool
	includeRotation bool
}

func defaultHandleConfig() handleConfig {
	return handleConfig{
		handleSize:      DefaultHandleSize,
		rotationOffset:  DefaultRotationOffset,
		includeEdges:    true,
		includeRotation: true,
	}
}

// HandleOption configures selection handle construction.
type HandleOption func(*handleConfig)

// WithHandleSize overrides the square hit-box side of every handle.
func WithHandleSize(px float64) HandleOption {
	return func(c *handleConfig) {
		if px > 0 {
			c.handleSize = px
		}
	}
}

// WithTouch switches to the larger touch hit-boxes. A later explicit
// WithHandleSize still wins.
func WithTouch(touch bool) HandleOption {
	return func(c *handleConfig) {
		if touch {
			c.handleSize = TouchHandleSize
		} else {
			c.handleSize = DefaultHandleSize
		}
	}
}

// WithRotationOffset overrides the gap between the top edge and the
// rotation handle.
func WithRotationOffset(px float64) HandleOption {
	return func(c *handleConfig) {
		c.rotationOffset = px
	}
}

// WithEdges toggles the four edge handles on single selections.
func WithEdges(include bool) HandleOption {
	return func(c *handleConfig) {
		c.includeEdges = include
	}
}

// WithRotation toggles the rotation handle.
func WithRotation(include bool) HandleOption {
	return func(c *handleConfig) {
		c.includeRotation = include
	}
}

type controllerConfig struct {
	doubleTapDelay    time.Duration
	doubleTapDistance float64
	now               func() time.Time
}

func defaultControllerConfig() controllerConfig {
	return controllerConfig{
		doubleTapDelay:    DefaultDoubleTapDelay,
		doubleTapDistance: DefaultDoubleTapDistance,
		now:               time.Now,
	}
}

// ControllerOption configures a Controller at construction.
type ControllerOption func(*controllerConfig)

// WithDoubleTapDelay overrides the double-tap time window.
func WithDoubleTapDelay(d time.Duration) ControllerOption {
	return func(c *controllerConfig) {
		if d > 0 {
			c.doubleTapDelay = d
		}
	}
}

// WithDoubleTapDistance overrides the double-tap distance threshold.
func WithDoubleTapDistance(px float64) ControllerOption {
	return func(c *controllerConfig) {
		if px > 0 {
			c.doubleTapDistance = px
		}
	}
}

// withClock injects a clock for tests.
func withClock(now func() time.Time) ControllerOption {
	return func(c *controllerConfig) {
		c.now = now
	}
}

// DefaultHistoryDepth is the snapshot count kept before the oldest undo
// entries are dropped.
const DefaultHistoryDepth = 100

type historyConfig struct {
	maxDepth int
}

// HistoryOption configures a History at construction.
type HistoryOption func(*historyConfig)

// WithMaxDepth overrides how many undo snapshots are retained. Zero or
// negative means unlimited.
func WithMaxDepth(n int) HistoryOption {
	return func(c *historyConfig) {
		c.maxDepth = n
	}
}
