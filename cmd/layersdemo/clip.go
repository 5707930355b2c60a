package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"github.com/atotto/clipboard"

	"github.com/slickdexic/layers"
	"github.com/slickdexic/layers/raster"
)

// copySelection serializes the selected layers to the system clipboard as
// JSON and returns a status line.
func (m *model) copySelection() string {
	sel := m.selectedLayers()
	if len(sel) == 0 {
		return "nothing selected"
	}
	data, err := json.Marshal(sel)
	if err != nil {
		return "copy failed: " + err.Error()
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		return "copy failed: " + err.Error()
	}
	return fmt.Sprintf("copied %d layer(s)", len(sel))
}

// paste reads layers back from the clipboard, assigns fresh IDs, offsets
// them slightly and selects the result.
func (m *model) paste() string {
	data, err := clipboard.ReadAll()
	if err != nil {
		return "paste failed: " + err.Error()
	}
	var pasted []*layers.Layer
	if err := json.Unmarshal([]byte(data), &pasted); err != nil {
		return "clipboard has no layers"
	}
	if len(pasted) == 0 {
		return "clipboard has no layers"
	}

	m.hist.Record(m.layers, "paste")
	m.selection = nil
	for _, l := range pasted {
		l.ID = layers.NewLayerID()
		l.Sanitize()
		l.Nudge(2, 2)
		m.layers = append(m.layers, l)
		m.selection = append(m.selection, l.ID)
	}
	return fmt.Sprintf("pasted %d layer(s)", len(pasted))
}

// export rasterizes the canvas to the configured PNG path.
func (m *model) export() string {
	scale := 1.0
	if m.width > 0 {
		scale = float64(m.cfg.CanvasWidth) / float64(m.width)
	}
	r, err := raster.NewRenderer(
		m.cfg.CanvasWidth, m.cfg.CanvasHeight,
		raster.WithScale(scale),
		raster.WithBackground(color.White),
	)
	if err != nil {
		return "export failed: " + err.Error()
	}
	f, err := os.Create(m.cfg.ExportPath)
	if err != nil {
		return "export failed: " + err.Error()
	}
	defer f.Close()
	if err := r.WritePNG(f, m.layers); err != nil {
		return "export failed: " + err.Error()
	}
	return "exported " + m.cfg.ExportPath
}
