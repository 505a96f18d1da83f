package main

import (
	"math"
	"sort"
)

// HighlightSet holds the uids of the lines under the pointer for one frame.
type HighlightSet map[string]struct{}

func (h HighlightSet) Has(uid string) bool {
	_, ok := h[uid]
	return ok
}

func (h HighlightSet) Len() int {
	return len(h)
}

// IDs returns the members sorted, for stable display and comparison.
func (h HighlightSet) IDs() []string {
	ids := make([]string, 0, len(h))
	for id := range h {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// HoverTest returns every line whose drawn route passes near pointer. The
// result is built from scratch on each call; overlapping lines are all
// included.
func HoverTest(pointer Point, lines []Line, g Geometry) HighlightSet {
	set := make(HighlightSet)
	for _, line := range lines {
		if hovers(pointer, line, g) {
			set[line.UID] = struct{}{}
		}
	}
	return set
}

// hovers checks pointer against the three regions Route draws: the vertical
// spine at the horizontal midpoint, the run along start.Y on the start side of
// the spine, and the run along end.Y on the end side.
func hovers(pointer Point, line Line, g Geometry) bool {
	start, end := line.Start, line.End
	aX, bX := math.Min(start.X, end.X), math.Max(start.X, end.X)
	aY, bY := math.Min(start.Y, end.Y), math.Max(start.Y, end.Y)
	if pointer.X < aX || pointer.X > bX || pointer.Y < aY || pointer.Y > bY {
		return false
	}

	centerX := (start.X + end.X) / 2
	tol := g.HoverTolerance
	if within(pointer.X, centerX, tol) {
		return true
	}

	direction := 1
	if start.X <= end.X {
		direction = -1
	}
	if within(pointer.Y, start.Y, tol) && onSide(pointer.X, centerX, direction) {
		return true
	}
	if within(pointer.Y, end.Y, tol) && onSide(pointer.X, centerX, -direction) {
		return true
	}
	return false
}

func onSide(x, centerX float64, direction int) bool {
	if direction == -1 {
		return x <= centerX
	}
	return x >= centerX
}

func within(v, target, tol float64) bool {
	return v >= target-tol && v <= target+tol
}
