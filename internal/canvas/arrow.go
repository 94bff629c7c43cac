package canvas

import (
	"image"
	"image/color"
	"math"
)

const (
	DefaultThickness = 4.0
	DefaultHeadSize  = 12.0
)

// ArrowStyle describes how a growing arrow is stroked.
type ArrowStyle struct {
	Color     color.Color
	Thickness float64
	HeadSize  float64
}

func (st ArrowStyle) withDefaults() ArrowStyle {
	if st.Color == nil {
		st.Color = White
	}
	if st.Thickness <= 0 {
		st.Thickness = DefaultThickness
	}
	if st.HeadSize <= 0 {
		st.HeadSize = DefaultHeadSize
	}
	return st
}

// Arrow is the visible part of a growing arrow for a given progress.
type Arrow struct {
	Start, End image.Point
	Tip        [2]float64
	Length     float64
	Drawn      float64
	Head       bool
}

// ArrowGeometry computes how much of start->end is visible after progress
// pixels of growth. The head is shown once progress reaches the full length.
func ArrowGeometry(start, end image.Point, progress float64) Arrow {
	dx := float64(end.X - start.X)
	dy := float64(end.Y - start.Y)
	length := math.Hypot(dx, dy)
	a := Arrow{Start: start, End: end, Length: length}
	if length == 0 || progress <= 0 {
		a.Tip = [2]float64{float64(start.X), float64(start.Y)}
		return a
	}

	a.Drawn = math.Min(progress, length)
	a.Tip = [2]float64{
		float64(start.X) + dx/length*a.Drawn,
		float64(start.Y) + dy/length*a.Drawn,
	}
	a.Head = progress >= length
	return a
}

// DrawGrowingArrow strokes the visible part of start->end and, once fully
// grown, a filled triangular head at end. It returns the drawn geometry.
func (s *Surface) DrawGrowingArrow(start, end image.Point, progress float64, style ArrowStyle) Arrow {
	a := ArrowGeometry(start, end, progress)
	if a.Drawn <= 0 {
		return a
	}
	style = style.withDefaults()

	s.dc.SetColor(style.Color)
	s.dc.SetLineWidth(style.Thickness)
	s.dc.DrawLine(float64(start.X), float64(start.Y), a.Tip[0], a.Tip[1])
	s.dc.Stroke()

	if a.Head {
		s.arrowHead(start, end, a.Length, style.HeadSize)
	}
	return a
}

func (s *Surface) arrowHead(start, end image.Point, length, size float64) {
	ux := float64(end.X-start.X) / length
	uy := float64(end.Y-start.Y) / length
	tx, ty := float64(end.X), float64(end.Y)
	half := size * 0.5

	s.dc.MoveTo(tx, ty)
	s.dc.LineTo(tx-size*ux+half*uy, ty-size*uy-half*ux)
	s.dc.LineTo(tx-size*ux-half*uy, ty-size*uy+half*ux)
	s.dc.ClosePath()
	s.dc.Fill()
}
