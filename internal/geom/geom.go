// Package geom holds the layout math shared by every diagram: scale factors
// against the design resolution, anchor points, integer movement helpers and
// image resampling.
package geom

import (
	"image"
)

// Design resolution every literal pixel offset in a choreography is authored against.
const (
	DesignWidth  = 1280
	DesignHeight = 720
)

// ScaleFactor returns the componentwise ratio between the viewport and the
// design resolution.
func ScaleFactor(w, h int) (sx, sy float64) {
	return float64(w) / DesignWidth, float64(h) / DesignHeight
}

// Stage is a viewport size together with its scale factors.
type Stage struct {
	W, H   int
	Sx, Sy float64
}

// NewStage builds a Stage for a w x h viewport.
func NewStage(w, h int) Stage {
	sx, sy := ScaleFactor(w, h)
	return Stage{W: w, H: h, Sx: sx, Sy: sy}
}

// Valid reports whether the stage has a drawable area.
func (s Stage) Valid() bool {
	return s.W > 0 && s.H > 0
}

// X returns int(W*frac + px*Sx).
func (s Stage) X(frac, px float64) int {
	return int(float64(s.W)*frac + px*s.Sx)
}

// Y returns int(H*frac + py*Sy).
func (s Stage) Y(frac, py float64) int {
	return int(float64(s.H)*frac + py*s.Sy)
}

// At is shorthand for image.Pt(s.X(fx, px), s.Y(fy, py)).
func (s Stage) At(fx, px, fy, py float64) image.Point {
	return image.Pt(s.X(fx, px), s.Y(fy, py))
}

// Size scales a logical size, never returning less than 1x1.
func (s Stage) Size(lw, lh int) image.Point {
	return ScaledSize(lw, lh, s.Sx, s.Sy)
}

// Len scales a horizontal design length.
func (s Stage) Len(px int) int {
	return int(float64(px) * s.Sx)
}

// LenY scales a vertical design length.
func (s Stage) LenY(py int) int {
	return int(float64(py) * s.Sy)
}

// Bounds returns the stage as a rectangle anchored at the origin.
func (s Stage) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.W, s.H)
}

// ScaledSize applies scale factors to a logical size.
func ScaledSize(lw, lh int, sx, sy float64) image.Point {
	w := int(float64(lw) * sx)
	h := int(float64(lh) * sy)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return image.Pt(w, h)
}

// Lerp performs linear interpolation between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
