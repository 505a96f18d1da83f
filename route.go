package main

import "math"

// Geometry holds the pixel metrics shared by the router and the hover
// detector. Both must read the same values or the highlighted regions drift
// away from what is drawn.
type Geometry struct {
	CornerRadius   float64
	HoverTolerance float64
}

// roundThreshold is the minimum separation on both axes before corners get
// rounded.
func (g Geometry) roundThreshold() float64 {
	return 2 * g.CornerRadius
}

type SegmentKind int

const (
	SegmentLine SegmentKind = iota
	SegmentArc
)

// Segment is one drawable step of a Path. For SegmentLine, To is the end of
// the straight run. For SegmentArc, Corner and To are the two control points
// of a canvas-style arcTo and Radius is the corner radius.
type Segment struct {
	Kind   SegmentKind
	Corner Point
	To     Point
	Radius float64
}

// Path is a routed connector: a start point followed by segments.
type Path struct {
	Start    Point
	Segments []Segment
}

func (p *Path) lineTo(to Point) {
	p.Segments = append(p.Segments, Segment{Kind: SegmentLine, To: to})
}

func (p *Path) arcTo(corner, to Point, radius float64) {
	p.Segments = append(p.Segments, Segment{Kind: SegmentArc, Corner: corner, To: to, Radius: radius})
}

// End returns the point the path finishes on.
func (p Path) End() Point {
	for i := len(p.Segments) - 1; i >= 0; i-- {
		if p.Segments[i].Kind == SegmentLine {
			return p.Segments[i].To
		}
	}
	return p.Start
}

// Corners returns the corner control points of every rounded bend.
func (p Path) Corners() []Point {
	var corners []Point
	for _, seg := range p.Segments {
		if seg.Kind == SegmentArc {
			corners = append(corners, seg.Corner)
		}
	}
	return corners
}

// Stroke replays the path onto s using the current stroke colour.
func (p Path) Stroke(s Surface) {
	s.BeginPath()
	s.MoveTo(p.Start.X, p.Start.Y)
	for _, seg := range p.Segments {
		switch seg.Kind {
		case SegmentLine:
			s.LineTo(seg.To.X, seg.To.Y)
		case SegmentArc:
			s.ArcTo(seg.Corner.X, seg.Corner.Y, seg.To.X, seg.To.Y, seg.Radius)
		}
	}
	s.Stroke()
}

// Route connects start and end with an orthogonal path whose vertical spine
// sits halfway between them. When both axes are separated by at least twice
// the corner radius the two bends are rounded; otherwise the path is three
// plain straight runs, which may have zero length.
func Route(start, end Point, g Geometry) Path {
	centerX := (start.X + end.X) / 2
	path := Path{Start: start}

	threshold := g.roundThreshold()
	if math.Abs(start.Y-end.Y) >= threshold && math.Abs(start.X-end.X) >= threshold {
		r := g.CornerRadius
		offsetY := r
		if end.Y >= start.Y {
			offsetY = -r
		}
		offsetX := -r
		if end.X <= start.X {
			offsetX = r
		}

		path.lineTo(Point{X: centerX + offsetX, Y: start.Y})
		path.arcTo(Point{X: centerX, Y: start.Y}, Point{X: centerX, Y: start.Y - offsetY}, r)
		path.lineTo(Point{X: centerX, Y: end.Y + offsetY})
		path.arcTo(Point{X: centerX, Y: end.Y}, Point{X: centerX - offsetX, Y: end.Y}, r)
		path.lineTo(end)
		return path
	}

	path.lineTo(Point{X: centerX, Y: start.Y})
	path.lineTo(Point{X: centerX, Y: end.Y})
	path.lineTo(end)
	return path
}

// arc is the circle piece a canvas arcTo produces from the current point p0
// through the corner p1 toward p2.
type arc struct {
	Center     Point
	From, To   Point
	StartAngle float64
	EndAngle   float64
}

// arcGeometry resolves arcTo(p1, p2, r) issued with current point p0. It
// reports false when the points are coincident or collinear, in which case
// arcTo degrades to a straight line to p1.
func arcGeometry(p0, p1, p2 Point, r float64) (arc, bool) {
	if r <= 0 {
		return arc{}, false
	}
	ux, uy, l1 := unit(p0.X-p1.X, p0.Y-p1.Y)
	vx, vy, l2 := unit(p2.X-p1.X, p2.Y-p1.Y)
	if l1 == 0 || l2 == 0 {
		return arc{}, false
	}
	cos := ux*vx + uy*vy
	if math.Abs(cos) > 1-1e-9 {
		return arc{}, false
	}

	theta := math.Acos(cos)
	tangent := r / math.Tan(theta/2)
	bx, by, _ := unit(ux+vx, uy+vy)
	dist := r / math.Sin(theta/2)

	a := arc{
		Center: Point{X: p1.X + bx*dist, Y: p1.Y + by*dist},
		From:   Point{X: p1.X + ux*tangent, Y: p1.Y + uy*tangent},
		To:     Point{X: p1.X + vx*tangent, Y: p1.Y + vy*tangent},
	}
	a.StartAngle = math.Atan2(a.From.Y-a.Center.Y, a.From.X-a.Center.X)
	end := math.Atan2(a.To.Y-a.Center.Y, a.To.X-a.Center.X)
	sweep := end - a.StartAngle
	for sweep > math.Pi {
		sweep -= 2 * math.Pi
	}
	for sweep < -math.Pi {
		sweep += 2 * math.Pi
	}
	a.EndAngle = a.StartAngle + sweep
	return a, true
}

// pointAt returns the point on the arc at fraction t of its sweep.
func (a arc) pointAt(t float64) Point {
	r := math.Hypot(a.From.X-a.Center.X, a.From.Y-a.Center.Y)
	angle := a.StartAngle + (a.EndAngle-a.StartAngle)*t
	return Point{X: a.Center.X + r*math.Cos(angle), Y: a.Center.Y + r*math.Sin(angle)}
}

func unit(x, y float64) (float64, float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0, 0
	}
	return x / l, y / l, l
}
