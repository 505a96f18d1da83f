package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrMissingUID   = errors.New("line has no uid")
	ErrDuplicateUID = errors.New("line uid already stored")
)

// IDSource hands out identifiers that are unique for the process lifetime.
type IDSource func() string

func newUID() string {
	return uuid.NewString()
}

// NewLine builds a connector from copies of start and end.
func NewLine(start, end Point, ids IDSource) Line {
	if ids == nil {
		ids = newUID
	}
	return Line{Start: start, End: end, UID: ids()}
}

// LineStore keeps committed lines in insertion order. Lines are only ever
// appended; the uid index is there so identity lookups stay cheap once
// removal exists.
type LineStore struct {
	lines []Line
	index map[string]int
}

func NewLineStore() *LineStore {
	return &LineStore{
		lines: make([]Line, 0),
		index: make(map[string]int),
	}
}

func (s *LineStore) Append(l Line) error {
	if l.UID == "" {
		return ErrMissingUID
	}
	if _, exists := s.index[l.UID]; exists {
		return fmt.Errorf("append %s: %w", l.UID, ErrDuplicateUID)
	}
	s.index[l.UID] = len(s.lines)
	s.lines = append(s.lines, l)
	return nil
}

// Lines returns the stored lines in insertion order. The slice is a copy.
func (s *LineStore) Lines() []Line {
	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)
	return lines
}

func (s *LineStore) Len() int {
	return len(s.lines)
}

func (s *LineStore) Get(uid string) (Line, bool) {
	i, ok := s.index[uid]
	if !ok {
		return Line{}, false
	}
	return s.lines[i], true
}
