// Command layersdemo is an interactive terminal canvas for the layers
// package. The mouse drives the same gestures a browser host would: drag
// shapes, pull resize handles, rotate, rubber-band select. Every mutation
// goes through the interaction controller and the undo history, so the demo
// doubles as an end-to-end exercise of the core.
package main

import (
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/slickdexic/layers"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Debug {
		f, err := os.Create("layersdemo.log")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		layers.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	p := tea.NewProgram(
		initialModel(cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

type tool int

const (
	toolSelect tool = iota
	toolRect
	toolCircle
	toolStar
	toolArrow
)

func (t tool) String() string {
	switch t {
	case toolRect:
		return "rect"
	case toolCircle:
		return "circle"
	case toolStar:
		return "star"
	case toolArrow:
		return "arrow"
	default:
		return "select"
	}
}

type model struct {
	cfg    *Config
	width  int
	height int

	layers    []*layers.Layer
	selection []string

	ctrl *layers.Controller
	hist *layers.History

	// gesture-start clones of the selected layers, keyed by slice position
	// matching selectedLayers() at start time
	origins []*layers.Layer

	// viewport offset: canvas coordinate at the terminal's top-left cell
	panX, panY float64

	tool   tool
	status string
}

func initialModel(cfg *Config) model {
	return model{
		cfg:    cfg,
		ctrl:   layers.NewController(),
		hist:   layers.NewHistory(layers.WithMaxDepth(cfg.HistoryDepth)),
		status: "1-5 tools | drag to move, handles to resize | u undo | e export | q quit",
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.ctrl.Reset()
		m.origins = nil
		m.selection = nil
		m.tool = toolSelect
	case "1":
		m.tool = toolSelect
	case "2":
		m.tool = toolRect
	case "3":
		m.tool = toolCircle
	case "4":
		m.tool = toolStar
	case "5":
		m.tool = toolArrow
	case "u":
		if ls, ok := m.hist.Undo(m.layers); ok {
			m.layers = ls
			m.selection = nil
			m.status = "undo"
		} else {
			m.status = "nothing to undo"
		}
	case "ctrl+r":
		if ls, ok := m.hist.Redo(m.layers); ok {
			m.layers = ls
			m.selection = nil
			m.status = "redo"
		} else {
			m.status = "nothing to redo"
		}
	case "c":
		m.status = m.copySelection()
	case "v":
		m.status = m.paste()
	case "x", "delete":
		m.deleteSelection()
	case "e":
		m.status = m.export()
	case "up", "down", "left", "right":
		m.nudgeSelection(msg.String())
	}
	return m, nil
}

func (m *model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	screen := layers.Pt(float64(msg.X), float64(msg.Y))
	p := screen.Add(layers.Pt(m.panX, m.panY))
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.press(p)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight:
		// The pan session runs on screen coordinates so the reference
		// point does not drift with the viewport it moves.
		m.ctrl.StartPan(screen)
	case msg.Action == tea.MouseActionMotion && m.ctrl.Mode() == layers.ModePanning:
		d := m.ctrl.UpdatePan(screen)
		m.panX -= d.DX
		m.panY -= d.DY
	case msg.Action == tea.MouseActionMotion:
		m.move(p)
	case msg.Action == tea.MouseActionRelease && m.ctrl.Mode() == layers.ModePanning:
		m.ctrl.FinishPan()
	case msg.Action == tea.MouseActionRelease:
		m.release()
	}
	return *m, nil
}

func (m *model) press(p layers.Point) {
	if m.tool != toolSelect {
		m.createShape(p)
		return
	}

	sel := m.selectedLayers()
	if len(sel) > 0 {
		if h, ok := m.selectionHandles().HitTest(p); ok {
			m.hist.Record(m.layers, "resize")
			m.origins = layers.CloneLayers(sel)
			if h.Type == layers.HandleRotate {
				m.ctrl.StartRotate(p, m.selectionBounds().Center(), sel)
			} else {
				m.ctrl.StartResize(p, h.Type, sel[0])
			}
			return
		}
	}

	if l := m.topLayerAt(p); l != nil {
		if !m.isSelected(l.ID) {
			m.selection = []string{l.ID}
		}
		sel := m.selectedLayers()
		m.hist.Record(m.layers, "move")
		m.origins = layers.CloneLayers(sel)
		m.ctrl.StartDrag(p, sel)
		return
	}

	m.selection = nil
	m.ctrl.StartMarquee(p)
}

func (m *model) move(p layers.Point) {
	sel := m.selectedLayers()
	switch m.ctrl.Mode() {
	case layers.ModeDragging:
		d := m.ctrl.UpdateDrag(p)
		for i, l := range sel {
			if i >= len(m.origins) || l.Locked {
				continue
			}
			restore(l, m.origins[i])
			l.Nudge(d.DX, d.DY)
		}
	case layers.ModeResizing:
		if len(sel) == 0 || len(m.origins) == 0 {
			return
		}
		l, orig := sel[0], m.origins[0]
		rd := m.ctrl.UpdateResize(p)
		patch := layers.Resize(orig, rd.Handle, rd.DX, rd.DY, layers.ResizeOptions{})
		if patch == nil {
			return
		}
		c := orig.Center()
		b := orig.Bounds()
		layers.RotatedResizeCorrection(patch, c.X, c.Y, orig.Rotation, rd.Handle, b.Width, b.Height)
		restore(l, orig)
		patch.Apply(l)
	case layers.ModeRotating:
		a := m.ctrl.UpdateRotate(p)
		for i, l := range sel {
			if i >= len(m.origins) || l.Locked {
				continue
			}
			l.Rotation = m.origins[i].Rotation + a
		}
	case layers.ModeMarqueeSelecting:
		m.ctrl.UpdateMarquee(p)
	}
}

func (m *model) release() {
	switch m.ctrl.Mode() {
	case layers.ModeDragging:
		m.ctrl.FinishDrag()
		m.origins = nil
	case layers.ModeResizing:
		m.ctrl.FinishResize()
		m.origins = nil
	case layers.ModeRotating:
		m.ctrl.FinishRotate()
		m.origins = nil
	case layers.ModeMarqueeSelecting:
		r := m.ctrl.FinishMarquee()
		m.selection = nil
		for _, l := range layers.LayersInRect(m.layers, r) {
			m.selection = append(m.selection, l.ID)
		}
	}
}

func (m *model) createShape(p layers.Point) {
	m.hist.Record(m.layers, "create")
	l := layers.NewLayer(shapeType(m.tool))
	switch l.Type {
	case layers.TypeRectangle:
		l.X, l.Y = p.X-6, p.Y-3
		l.Width, l.Height = 12, 6
	case layers.TypeCircle:
		l.X, l.Y = p.X, p.Y
		l.Radius = 5
	case layers.TypeStar:
		l.X, l.Y = p.X, p.Y
		l.Radius = 6
		l.InnerRadius = 2.5
		l.Points = 5
	case layers.TypeArrow:
		l.X, l.Y = p.X, p.Y
		l.X2, l.Y2 = p.X+10, p.Y
	}
	m.layers = append(m.layers, l)
	m.selection = []string{l.ID}
	m.tool = toolSelect
	m.status = "created " + l.Type.String()
}

func shapeType(t tool) layers.LayerType {
	switch t {
	case toolCircle:
		return layers.TypeCircle
	case toolStar:
		return layers.TypeStar
	case toolArrow:
		return layers.TypeArrow
	default:
		return layers.TypeRectangle
	}
}

func (m *model) deleteSelection() {
	if len(m.selection) == 0 {
		return
	}
	m.hist.Record(m.layers, "delete")
	kept := m.layers[:0]
	for _, l := range m.layers {
		if !m.isSelected(l.ID) {
			kept = append(kept, l)
		}
	}
	m.layers = kept
	m.selection = nil
	m.status = "deleted"
}

func (m *model) nudgeSelection(key string) {
	sel := m.selectedLayers()
	if len(sel) == 0 {
		return
	}
	var dx, dy float64
	switch key {
	case "up":
		dy = -1
	case "down":
		dy = 1
	case "left":
		dx = -1
	case "right":
		dx = 1
	}
	m.hist.Record(m.layers, "nudge")
	for _, l := range sel {
		if !l.Locked {
			l.Nudge(dx, dy)
		}
	}
}

func (m *model) selectedLayers() []*layers.Layer {
	var out []*layers.Layer
	for _, l := range m.layers {
		if m.isSelected(l.ID) {
			out = append(out, l)
		}
	}
	return out
}

func (m *model) isSelected(id string) bool {
	for _, s := range m.selection {
		if s == id {
			return true
		}
	}
	return false
}

// topLayerAt returns the topmost visible unlocked layer under p.
func (m *model) topLayerAt(p layers.Point) *layers.Layer {
	for i := len(m.layers) - 1; i >= 0; i-- {
		l := m.layers[i]
		if l.Visible && !l.Locked && l.HitTest(p.X, p.Y) {
			return l
		}
	}
	return nil
}

func (m *model) selectionBounds() layers.Rect {
	sel := m.selectedLayers()
	if len(sel) == 0 {
		return layers.Rect{}
	}
	b := sel[0].Bounds()
	for _, l := range sel[1:] {
		b = b.Union(l.Bounds())
	}
	return b
}

func (m *model) selectionHandles() layers.HandleSet {
	opts := []layers.HandleOption{
		layers.WithHandleSize(3),
		layers.WithRotationOffset(2),
	}
	if m.cfg.Touch {
		opts = append(opts, layers.WithTouch(true))
	}
	if len(m.selection) > 1 {
		return layers.MultiSelectionHandles(m.selectionBounds(), opts...)
	}
	return layers.SingleSelectionHandles(m.selectionBounds(), opts...)
}

// restore copies the geometry of orig back onto l before re-applying a
// gesture's cumulative delta.
func restore(l, orig *layers.Layer) {
	id := l.ID
	*l = *orig.Clone()
	l.ID = id
}
