package main

import "time"

// Point is a coordinate in canvas pixel space.
type Point struct {
	X, Y float64
}

// Line is a committed connector. Start and End never change after creation
// and UID is never reused.
type Line struct {
	Start Point
	End   Point
	UID   string
}

// EditorState is everything pointer events write and frame ticks read.
// It is owned by a single goroutine: the bubbletea update loop.
type EditorState struct {
	Pointer   *Point // nil until the first pointer event
	Pending   *Point // start of the connection being dragged
	Lines     *LineStore
	Highlight HighlightSet
	LastTick  time.Time
	LastDelta time.Duration

	ids IDSource
}

func NewEditorState(ids IDSource) *EditorState {
	if ids == nil {
		ids = newUID
	}
	return &EditorState{
		Lines:     NewLineStore(),
		Highlight: HighlightSet{},
		ids:       ids,
	}
}

func (s *EditorState) mode() Mode {
	if s.Pending != nil {
		return ModeConnecting
	}
	return ModeReady
}

type model struct {
	width        int
	height       int
	cursorX      int
	cursorY      int
	keyboard     bool
	help         bool
	config       *Config
	palette      palette
	state        *EditorState
	renderer     *FrameRenderer
	surface      *rasterSurface
	frame        []string
	errorMessage string
}

type frameMsg time.Time
