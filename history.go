package layers

// Snapshot is one history entry: a deep copy of the layer collection plus
// an optional label. Labels exist for coalescing and debugging only; the
// restore path ignores them.
type Snapshot struct {
	Layers []*Layer
	Label  string
}

// History is the undo/redo stack pair over layer collection snapshots.
// It is the sole writer of its two stacks. Restoring a snapshot is the
// caller's one trigger to re-render; a false return from Undo or Redo means
// nothing changed and nothing should repaint.
type History struct {
	cfg  historyConfig
	undo []Snapshot
	redo []Snapshot
}

// NewHistory returns an empty history.
func NewHistory(opts ...HistoryOption) *History {
	cfg := historyConfig{maxDepth: DefaultHistoryDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &History{cfg: cfg}
}

// Record pushes a deep copy of the given collection onto the undo stack and
// clears the redo stack. Call it with the state a mutation is about to
// replace; the Finish methods of [Controller] return exactly that state.
func (h *History) Record(current []*Layer, label string) {
	if h.cfg.maxDepth > 0 && len(h.undo) >= h.cfg.maxDepth {
		n := len(h.undo) - h.cfg.maxDepth + 1
		Logger().Debug("history: trimming oldest snapshots", "n", n)
		h.undo = append(h.undo[:0], h.undo[n:]...)
	}
	h.undo = append(h.undo, Snapshot{Layers: CloneLayers(current), Label: label})
	h.redo = h.redo[:0]
}

// Undo pops the most recent snapshot and returns its layers. The current
// collection is pushed onto the redo stack first. Returns (nil, false) when
// there is nothing to undo.
func (h *History) Undo(current []*Layer) ([]*Layer, bool) {
	if len(h.undo) == 0 {
		return nil, false
	}
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, Snapshot{Layers: CloneLayers(current), Label: top.Label})
	return top.Layers, true
}

// Redo pops the most recent redone snapshot and returns its layers, pushing
// the current collection back onto the undo stack. Returns (nil, false)
// when there is nothing to redo.
func (h *History) Redo(current []*Layer) ([]*Layer, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, Snapshot{Layers: CloneLayers(current), Label: top.Label})
	return top.Layers, true
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Clear drops both stacks.
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}
