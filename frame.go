package main

import (
	"image/color"
	"time"
)

// FrameRenderer draws one frame of the editor per Tick. It holds no per-frame
// state of its own; everything it derives lands on the EditorState.
type FrameRenderer struct {
	Geometry   Geometry
	LineColor  color.Color
	HoverColor color.Color
}

func newFrameRenderer(g Geometry, p palette) *FrameRenderer {
	return &FrameRenderer{
		Geometry:   g,
		LineColor:  p.Line,
		HoverColor: p.Hover,
	}
}

// Tick clears surface, draws the connection being dragged, recomputes the
// highlight set and draws every committed line in store order. Scheduling the
// next tick is left to the caller.
func (r *FrameRenderer) Tick(s *EditorState, surface Surface, now time.Time) {
	if !s.LastTick.IsZero() {
		s.LastDelta = now.Sub(s.LastTick)
	}
	s.LastTick = now

	width, height := surface.Size()
	surface.ClearRect(0, 0, width, height)

	if s.Pending != nil && s.Pointer != nil {
		surface.SetStrokeColor(r.LineColor)
		Route(*s.Pending, *s.Pointer, r.Geometry).Stroke(surface)
	}

	s.Highlight = r.HoverSet(s)

	for _, line := range s.Lines.Lines() {
		if s.Highlight.Has(line.UID) {
			surface.SetStrokeColor(r.HoverColor)
		} else {
			surface.SetStrokeColor(r.LineColor)
		}
		Route(line.Start, line.End, r.Geometry).Stroke(surface)
	}
}

// HoverSet computes the highlight set for the current pointer. With no
// pointer observed yet nothing is hovered.
func (r *FrameRenderer) HoverSet(s *EditorState) HighlightSet {
	if s.Pointer == nil {
		return HighlightSet{}
	}
	return HoverTest(*s.Pointer, s.Lines.Lines(), r.Geometry)
}
