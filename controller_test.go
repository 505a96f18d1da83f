package main

import (
	"errors"
	"testing"
)

func TestPointerDragCommitsLine(t *testing.T) {
	s := NewEditorState(sequentialIDs("L"))

	s.PointerDown(Point{10, 10})
	if s.mode() != ModeConnecting {
		t.Fatal("expected a pending connection after pointer down")
	}
	s.PointerMove(Point{50, 50})
	line, committed, err := s.PointerUp(Point{90, 90})
	if err != nil {
		t.Fatal(err)
	}
	if !committed {
		t.Fatal("expected pointer up to commit a line")
	}

	if s.Lines.Len() != 1 {
		t.Fatalf("expected exactly one line, got %d", s.Lines.Len())
	}
	stored := s.Lines.Lines()[0]
	if stored != line {
		t.Errorf("returned line %+v differs from stored %+v", line, stored)
	}
	if stored.Start != (Point{10, 10}) || stored.End != (Point{90, 90}) {
		t.Errorf("expected (10,10) -> (90,90), got %+v -> %+v", stored.Start, stored.End)
	}
	if stored.UID != "L1" {
		t.Errorf("expected uid L1, got %s", stored.UID)
	}
	if s.Pending != nil {
		t.Error("pending connection should be cleared")
	}
	if s.mode() != ModeReady {
		t.Error("expected ready mode after commit")
	}
}

func TestPointerUpWithoutPendingIsNoop(t *testing.T) {
	s := NewEditorState(sequentialIDs("L"))
	s.PointerMove(Point{5, 5})

	_, committed, err := s.PointerUp(Point{90, 90})
	if err != nil || committed {
		t.Errorf("expected silent no-op, got committed=%v err=%v", committed, err)
	}
	if s.Lines.Len() != 0 {
		t.Errorf("expected no lines, got %d", s.Lines.Len())
	}
}

func TestPointerDownReplacesPendingStart(t *testing.T) {
	s := NewEditorState(sequentialIDs("L"))
	s.PointerDown(Point{1, 1})
	s.PointerDown(Point{2, 2})
	if _, _, err := s.PointerUp(Point{3, 3}); err != nil {
		t.Fatal(err)
	}
	if got := s.Lines.Lines()[0].Start; got != (Point{2, 2}) {
		t.Errorf("expected the later press to win, got start %+v", got)
	}
}

func TestLinePointsAreCopied(t *testing.T) {
	s := NewEditorState(sequentialIDs("L"))
	s.PointerMove(Point{10, 10})
	s.PointerDown(*s.Pointer)
	if _, _, err := s.PointerUp(Point{40, 40}); err != nil {
		t.Fatal(err)
	}

	s.PointerMove(Point{70, 70})
	if got := s.Lines.Lines()[0].Start; got != (Point{10, 10}) {
		t.Errorf("line start followed the pointer: %+v", got)
	}
}

func TestPointerUpKeepsPendingOnStoreError(t *testing.T) {
	s := NewEditorState(func() string { return "same" })
	s.PointerDown(Point{0, 0})
	if _, _, err := s.PointerUp(Point{10, 10}); err != nil {
		t.Fatal(err)
	}

	s.PointerDown(Point{20, 20})
	_, committed, err := s.PointerUp(Point{30, 30})
	if !errors.Is(err, ErrDuplicateUID) {
		t.Fatalf("expected duplicate uid error, got %v", err)
	}
	if committed {
		t.Error("a rejected line must not report as committed")
	}
	if s.Pending == nil {
		t.Error("pending connection should survive a failed commit")
	}
}
