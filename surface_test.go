package main

import (
	"fmt"
	"image/color"
	"math"
	"testing"
)

// recordingSurface logs every call as text so tests can assert on the exact
// drawing sequence.
type recordingSurface struct {
	width, height float64
	ops           []string
	strokes       []recordedStroke
	color         color.Color
	pending       []string
}

type recordedStroke struct {
	color color.Color
	ops   []string
}

func newRecordingSurface(width, height float64) *recordingSurface {
	return &recordingSurface{width: width, height: height}
}

func (s *recordingSurface) record(op string) {
	s.ops = append(s.ops, op)
}

func (s *recordingSurface) Size() (float64, float64) {
	return s.width, s.height
}

func (s *recordingSurface) ClearRect(x, y, width, height float64) {
	s.record(fmt.Sprintf("clear %g %g %g %g", x, y, width, height))
}

func (s *recordingSurface) SetStrokeColor(c color.Color) {
	s.color = c
	s.record("color " + colorHex(c))
}

func (s *recordingSurface) BeginPath() {
	s.pending = nil
	s.record("begin")
}

func (s *recordingSurface) MoveTo(x, y float64) {
	op := fmt.Sprintf("move %g %g", x, y)
	s.pending = append(s.pending, op)
	s.record(op)
}

func (s *recordingSurface) LineTo(x, y float64) {
	op := fmt.Sprintf("line %g %g", x, y)
	s.pending = append(s.pending, op)
	s.record(op)
}

func (s *recordingSurface) ArcTo(x1, y1, x2, y2, radius float64) {
	op := fmt.Sprintf("arc %g %g %g %g %g", x1, y1, x2, y2, radius)
	s.pending = append(s.pending, op)
	s.record(op)
}

func (s *recordingSurface) Stroke() {
	s.strokes = append(s.strokes, recordedStroke{color: s.color, ops: s.pending})
	s.pending = nil
	s.record("stroke")
}

func almostEqual(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestArcGeometryRightAngle(t *testing.T) {
	a, ok := arcGeometry(Point{42, 0}, Point{50, 0}, Point{50, 8}, 8)
	if !ok {
		t.Fatal("expected an arc for a right-angle corner")
	}
	if !almostEqual(a.From, Point{42, 0}) {
		t.Errorf("from: expected (42,0), got %+v", a.From)
	}
	if !almostEqual(a.To, Point{50, 8}) {
		t.Errorf("to: expected (50,8), got %+v", a.To)
	}
	if !almostEqual(a.Center, Point{42, 8}) {
		t.Errorf("center: expected (42,8), got %+v", a.Center)
	}
	if sweep := math.Abs(a.EndAngle - a.StartAngle); math.Abs(sweep-math.Pi/2) > 1e-9 {
		t.Errorf("expected quarter sweep, got %v", sweep)
	}

	mid := a.pointAt(0.5)
	if d := math.Hypot(mid.X-a.Center.X, mid.Y-a.Center.Y); math.Abs(d-8) > 1e-9 {
		t.Errorf("midpoint should lie on the radius, distance %v", d)
	}
}

func TestArcGeometryDegenerate(t *testing.T) {
	tests := []struct {
		name       string
		p0, p1, p2 Point
		r          float64
	}{
		{"zero radius", Point{0, 0}, Point{10, 0}, Point{10, 10}, 0},
		{"current point on corner", Point{10, 0}, Point{10, 0}, Point{10, 10}, 8},
		{"target on corner", Point{0, 0}, Point{10, 0}, Point{10, 0}, 8},
		{"collinear", Point{0, 0}, Point{10, 0}, Point{20, 0}, 8},
		{"reversal", Point{0, 0}, Point{10, 0}, Point{5, 0}, 8},
	}
	for _, tt := range tests {
		if _, ok := arcGeometry(tt.p0, tt.p1, tt.p2, tt.r); ok {
			t.Errorf("%s: expected no arc", tt.name)
		}
	}
}

func inkAround(t *testing.T, s *rasterSurface, p Point) bool {
	t.Helper()
	bg := s.background.(color.NRGBA)
	im := s.Image()
	for y := int(p.Y) - 1; y <= int(p.Y)+1; y++ {
		for x := int(p.X) - 1; x <= int(p.X)+1; x++ {
			if x < 0 || y < 0 || x >= im.Bounds().Dx() || y >= im.Bounds().Dy() {
				continue
			}
			c := color.NRGBAModel.Convert(im.At(x, y)).(color.NRGBA)
			if channelDist(c.R, bg.R)+channelDist(c.G, bg.G)+channelDist(c.B, bg.B) >= inkThreshold {
				return true
			}
		}
	}
	return false
}

func TestRasterSurfaceStrokesRoute(t *testing.T) {
	pal, err := defaultConfig().palette()
	if err != nil {
		t.Fatal(err)
	}
	s := newRasterSurface(140, 140, pal.Background, 2)
	start, end := Point{20, 20}, Point{120, 120}
	path := Route(start, end, defaultConfig().Geometry())

	s.SetStrokeColor(pal.Hover)
	path.Stroke(s)

	a, ok := arcGeometry(path.Segments[0].To, path.Segments[1].Corner, path.Segments[1].To, 8)
	if !ok {
		t.Fatal("expected first bend to be an arc")
	}
	for _, p := range []Point{{30, 20}, a.pointAt(0.5), {70, 70}, {110, 120}} {
		if !inkAround(t, s, p) {
			t.Errorf("expected ink near %+v", p)
		}
	}
	for _, p := range []Point{{20, 120}, {120, 20}, {100, 50}} {
		if inkAround(t, s, p) {
			t.Errorf("expected background near %+v", p)
		}
	}

	s.ClearRect(0, 0, 140, 140)
	if inkAround(t, s, Point{70, 70}) {
		t.Error("ClearRect should reset the surface to the background")
	}
}

func TestRasterSurfaceArcWithoutCurrentPoint(t *testing.T) {
	s := newRasterSurface(20, 20, color.NRGBA{A: 255}, 2)
	s.BeginPath()
	s.ArcTo(10, 10, 15, 10, 4)
	s.LineTo(15, 10)
	s.Stroke()
	if s.hasCurrent {
		t.Error("stroke should end the current path")
	}
}
