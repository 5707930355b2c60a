package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/slickdexic/layers"
)

var (
	shapeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	handleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	marqueeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)
)

const statusRows = 2

func (m model) View() string {
	if m.width == 0 || m.height <= statusRows {
		return "loading..."
	}
	rows := m.height - statusRows

	type cell struct {
		r     rune
		style lipgloss.Style
	}
	grid := make([][]cell, rows)
	for y := range grid {
		grid[y] = make([]cell, m.width)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' '}
		}
	}
	// put takes canvas coordinates and maps them through the viewport.
	put := func(cx, cy int, r rune, st lipgloss.Style) {
		x := cx - int(m.panX)
		y := cy - int(m.panY)
		if x >= 0 && x < m.width && y >= 0 && y < rows {
			grid[y][x] = cell{r: r, style: st}
		}
	}

	// Layers, bottom to top. A cell is painted when its center hits the
	// layer, which reuses the exact hit-testing the gestures run on.
	for _, l := range m.layers {
		if !l.Visible {
			continue
		}
		st := shapeStyle
		glyph := '#'
		if m.isSelected(l.ID) {
			st = selectedStyle
		}
		if l.Locked {
			glyph = '%'
		}
		b := l.Bounds()
		for y := int(b.Y) - 1; y <= int(b.Y+b.Height)+1; y++ {
			for x := int(b.X) - 1; x <= int(b.X+b.Width)+1; x++ {
				if l.HitTest(float64(x), float64(y)) {
					put(x, y, glyph, st)
				}
			}
		}
	}

	// Marquee outline.
	if m.ctrl.Mode() == layers.ModeMarqueeSelecting {
		r := m.ctrl.MarqueeRect()
		x0, y0 := int(r.X), int(r.Y)
		x1, y1 := int(r.X+r.Width), int(r.Y+r.Height)
		for x := x0; x <= x1; x++ {
			put(x, y0, '·', marqueeStyle)
			put(x, y1, '·', marqueeStyle)
		}
		for y := y0; y <= y1; y++ {
			put(x0, y, '·', marqueeStyle)
			put(x1, y, '·', marqueeStyle)
		}
	}

	// Selection handles on top.
	if len(m.selection) > 0 {
		for _, h := range m.selectionHandles() {
			glyph := '■'
			if h.Type == layers.HandleRotate {
				glyph = '●'
			}
			put(int(h.X), int(h.Y), glyph, handleStyle)
		}
	}

	var sb strings.Builder
	for _, row := range grid {
		for _, c := range row {
			if c.r == ' ' {
				sb.WriteByte(' ')
			} else {
				sb.WriteString(c.style.Render(string(c.r)))
			}
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(statusStyle.Width(m.width).Render(fmt.Sprintf(
		"tool:%s  layers:%d  selected:%d  mode:%s",
		m.tool, len(m.layers), len(m.selection), m.ctrl.Mode(),
	)))
	sb.WriteByte('\n')
	sb.WriteString(statusStyle.Width(m.width).Render(m.status))
	return sb.String()
}
