package main

import (
	"fmt"
	"image"
	"log"
	"time"
)

// cellCenter maps a terminal cell to the canvas pixel at its centre.
func (m *model) cellCenter(cx, cy int) Point {
	w, h := m.config.CellWidth, m.config.CellHeight
	return Point{
		X: float64(cx*w + w/2),
		Y: float64(cy*h + h/2),
	}
}

// resizeSurface re-creates the raster to cover the canvas rows of the
// terminal. The editor state is untouched.
func (m *model) resizeSurface() {
	cols := m.width
	rows := m.height - statusRows
	if cols <= 0 || rows <= 0 {
		m.surface = nil
		m.frame = nil
		return
	}
	m.surface = newRasterSurface(cols*m.config.CellWidth, rows*m.config.CellHeight, m.palette.Background, m.config.StrokeWidth)
	log.Printf("surface resized to %dx%d cells", cols, rows)
}

// renderFrame runs one frame tick and folds the raster into terminal rows.
func (m *model) renderFrame(now time.Time) {
	if m.surface == nil {
		return
	}
	m.renderer.Tick(m.state, m.surface, now)
	var cursor *image.Point
	if m.keyboard {
		cursor = &image.Point{X: m.cursorX, Y: m.cursorY}
	}
	grid := foldCells(m.surface.Image(), m.config.CellWidth, m.config.CellHeight, m.palette.Background)
	m.frame = paintCells(grid, m.palette, cursor)
}

func formatPoint(p *Point) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%.0f,%.0f", p.X, p.Y)
}

func formatDelta(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
}
