// Package layers implements the geometry and interaction core of a vector
// shape layer editor.
//
// # Overview
//
// The package turns raw pointer and touch deltas into shape-space updates for
// a collection of vector layers (rectangles, circles, ellipses, polygons,
// stars, lines, arrows, freehand paths, text), with full support for
// rotation, proportional and center-anchored resizing, marquee selection,
// alignment guides, and undo/redo.
//
// It deliberately does not paint. Shapes expose their outlines as replayable
// path instructions ([Path]); rendering, persistence, and UI chrome are the
// host's job. The raster subpackage ships one reference consumer that fills
// layer outlines into an image for previews.
//
// # Quick Start
//
//	ctrl := layers.NewController()
//	hist := layers.NewHistory()
//
//	// Pointer pressed a selection handle: snapshot the collection that the
//	// gesture will replace, then begin a resize session.
//	hist.Record(all, "resize")
//	ctrl.StartResize(down, handle.Type, layer)
//
//	// Pointer moved: convert the delta into a partial layer update.
//	d := ctrl.UpdateResize(move)
//	patch := layers.Resize(layer, d.Handle, d.DX, d.DY, layers.ResizeOptions{})
//	if patch != nil {
//		patch.Apply(layer)
//	}
//
//	// Pointer released: close the session.
//	ctrl.FinishResize()
//
// # Architecture
//
// The core is organized leaf-first:
//   - Geometry: Point, Matrix, Rect, polygon/star vertex generation, path
//     instructions
//   - Resize: per-shape resize calculators with rotation correction
//   - Handles: selection handle placement and hit-testing
//   - Controller: the modal interaction state machine
//   - History: snapshot-based undo/redo
//
// Every exported function is total over its documented domain: unsupported
// shapes, degenerate geometry, and out-of-mode updates yield nil or zero
// values rather than panics.
package layers
