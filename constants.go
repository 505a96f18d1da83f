package main

import "time"

type Mode int

const (
	ModeReady Mode = iota
	ModeConnecting
)

const (
	defaultCellWidth      = 8
	defaultCellHeight     = 16
	defaultCornerRadius   = 8.0
	defaultHoverTolerance = 8.0
	defaultStrokeWidth    = 2.0
	defaultFrameInterval  = time.Second / 30

	defaultLineColor       = "#9CA3AF"
	defaultHoverColor      = "#EC4899"
	defaultBackgroundColor = "#111827"

	statusRows = 1
)

// inkThreshold is the minimum summed RGB distance from the background for a
// raster pixel to count as stroked when folding the frame into cells.
const inkThreshold = 96

const (
	upperHalfBlock = "▀"
	lowerHalfBlock = "▄"
	pointerGlyph   = "+"
)
