package main

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

// Surface is the drawing context the router and frame renderer paint on.
// Coordinates are canvas pixels, the same space pointer events arrive in.
type Surface interface {
	Size() (width, height float64)
	ClearRect(x, y, width, height float64)
	SetStrokeColor(c color.Color)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ArcTo(x1, y1, x2, y2, radius float64)
	Stroke()
}

// rasterSurface paints into an RGBA image through gg.
type rasterSurface struct {
	im         *image.RGBA
	dc         *gg.Context
	background color.Color
	current    Point
	hasCurrent bool
}

func newRasterSurface(width, height int, background color.Color, strokeWidth float64) *rasterSurface {
	im := image.NewRGBA(image.Rect(0, 0, width, height))
	dc := gg.NewContextForRGBA(im)
	dc.SetLineWidth(strokeWidth)
	dc.SetLineCap(gg.LineCapSquare)
	dc.SetLineJoin(gg.LineJoinRound)
	s := &rasterSurface{im: im, dc: dc, background: background}
	s.ClearRect(0, 0, float64(width), float64(height))
	return s
}

func (s *rasterSurface) Image() *image.RGBA {
	return s.im
}

func (s *rasterSurface) Size() (float64, float64) {
	return float64(s.dc.Width()), float64(s.dc.Height())
}

func (s *rasterSurface) ClearRect(x, y, width, height float64) {
	r := image.Rect(int(x), int(y), int(x+width), int(y+height)).Intersect(s.im.Bounds())
	xdraw.Draw(s.im, r, image.NewUniform(s.background), image.Point{}, xdraw.Src)
}

func (s *rasterSurface) SetStrokeColor(c color.Color) {
	s.dc.SetColor(c)
}

func (s *rasterSurface) BeginPath() {
	s.dc.ClearPath()
	s.hasCurrent = false
}

func (s *rasterSurface) MoveTo(x, y float64) {
	s.dc.MoveTo(x, y)
	s.current = Point{X: x, Y: y}
	s.hasCurrent = true
}

func (s *rasterSurface) LineTo(x, y float64) {
	if !s.hasCurrent {
		s.MoveTo(x, y)
		return
	}
	s.dc.LineTo(x, y)
	s.current = Point{X: x, Y: y}
}

// ArcTo follows the canvas arcTo contract: a straight run from the current
// point to the first tangent point, then the arc of the given radius that is
// tangent to both the current-point→(x1,y1) and (x1,y1)→(x2,y2) lines.
func (s *rasterSurface) ArcTo(x1, y1, x2, y2, radius float64) {
	corner := Point{X: x1, Y: y1}
	if !s.hasCurrent {
		s.MoveTo(x1, y1)
		return
	}
	a, ok := arcGeometry(s.current, corner, Point{X: x2, Y: y2}, radius)
	if !ok {
		s.LineTo(x1, y1)
		return
	}
	s.dc.DrawArc(a.Center.X, a.Center.Y, radius, a.StartAngle, a.EndAngle)
	s.current = a.To
}

func (s *rasterSurface) Stroke() {
	s.dc.Stroke()
	s.hasCurrent = false
}
