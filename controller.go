package main

import (
	"fmt"
	"log"
)

func (s *EditorState) PointerMove(p Point) {
	s.Pointer = &p
}

// PointerDown opens a connection at p, replacing any connection already
// pending.
func (s *EditorState) PointerDown(p Point) {
	s.Pending = &p
}

// PointerUp commits the pending connection as a line ending at p. It reports
// false, and does nothing, when no connection is pending.
func (s *EditorState) PointerUp(p Point) (Line, bool, error) {
	if s.Pending == nil {
		return Line{}, false, nil
	}
	line := NewLine(*s.Pending, p, s.ids)
	if err := s.Lines.Append(line); err != nil {
		return Line{}, false, fmt.Errorf("commit line: %w", err)
	}
	s.Pending = nil
	log.Printf("committed line %s (%.0f,%.0f) -> (%.0f,%.0f)", line.UID, line.Start.X, line.Start.Y, line.End.X, line.End.Y)
	return line, true, nil
}
