package main

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// halfCell is the upper or lower half of a terminal cell.
type halfCell struct {
	ink   color.NRGBA
	inked bool
}

type cell struct {
	top, bottom halfCell
}

// foldCells reduces the raster to terminal cells. Each cell covers a
// cellWidth x cellHeight block and is split into two half cells; a half cell
// takes the colour of its pixel furthest from the background, if any pixel
// is far enough to count as ink.
func foldCells(im *image.RGBA, cellWidth, cellHeight int, background color.Color) [][]cell {
	b := im.Bounds()
	cols := b.Dx() / cellWidth
	rows := b.Dy() / cellHeight
	half := cellHeight / 2
	bg := color.NRGBAModel.Convert(background).(color.NRGBA)

	grid := make([][]cell, rows)
	for cy := 0; cy < rows; cy++ {
		grid[cy] = make([]cell, cols)
		for cx := 0; cx < cols; cx++ {
			x0 := b.Min.X + cx*cellWidth
			y0 := b.Min.Y + cy*cellHeight
			grid[cy][cx] = cell{
				top:    strongestInk(im, image.Rect(x0, y0, x0+cellWidth, y0+half), bg),
				bottom: strongestInk(im, image.Rect(x0, y0+half, x0+cellWidth, y0+cellHeight), bg),
			}
		}
	}
	return grid
}

func strongestInk(im *image.RGBA, r image.Rectangle, bg color.NRGBA) halfCell {
	var best halfCell
	bestDist := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			i := im.PixOffset(x, y)
			px := color.NRGBA{R: im.Pix[i], G: im.Pix[i+1], B: im.Pix[i+2], A: 255}
			d := channelDist(px.R, bg.R) + channelDist(px.G, bg.G) + channelDist(px.B, bg.B)
			if d > bestDist {
				bestDist = d
				best.ink = px
			}
		}
	}
	best.inked = bestDist >= inkThreshold
	return best
}

func channelDist(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

type cellStyle struct {
	fg, bg string
}

// paintCells renders the folded grid as one string per terminal row using
// half-block glyphs. Runs of cells sharing a style are rendered together.
// When cursor is set, that cell shows the keyboard pointer.
func paintCells(grid [][]cell, p palette, cursor *image.Point) []string {
	bgHex := colorHex(p.Background)
	styles := make(map[cellStyle]lipgloss.Style)
	render := func(key cellStyle, text string) string {
		st, ok := styles[key]
		if !ok {
			st = lipgloss.NewStyle().Background(lipgloss.Color(key.bg))
			if key.fg != "" {
				st = st.Foreground(lipgloss.Color(key.fg))
			}
			styles[key] = st
		}
		return st.Render(text)
	}

	rows := make([]string, len(grid))
	for y, row := range grid {
		var line, run strings.Builder
		var runKey cellStyle
		for x, c := range row {
			glyph, key := cellGlyph(c, bgHex)
			if cursor != nil && cursor.X == x && cursor.Y == y {
				glyph, key.fg = pointerGlyph, colorHex(p.Hover)
			}
			if run.Len() > 0 && key != runKey {
				line.WriteString(render(runKey, run.String()))
				run.Reset()
			}
			runKey = key
			run.WriteString(glyph)
		}
		if run.Len() > 0 {
			line.WriteString(render(runKey, run.String()))
		}
		rows[y] = line.String()
	}
	return rows
}

func cellGlyph(c cell, bgHex string) (string, cellStyle) {
	switch {
	case c.top.inked && c.bottom.inked:
		return upperHalfBlock, cellStyle{fg: colorHex(c.top.ink), bg: colorHex(c.bottom.ink)}
	case c.top.inked:
		return upperHalfBlock, cellStyle{fg: colorHex(c.top.ink), bg: bgHex}
	case c.bottom.inked:
		return lowerHalfBlock, cellStyle{fg: colorHex(c.bottom.ink), bg: bgHex}
	}
	return " ", cellStyle{bg: bgHex}
}

func colorHex(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
