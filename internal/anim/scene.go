package anim

import (
	"image"
	"image/color"
	"time"

	"github.com/ivlev/patternviz/internal/canvas"
	"github.com/ivlev/patternviz/internal/geom"
)

// ArrowGrowth is how many pixels an arrow grows per frame.
const ArrowGrowth = 15

// Scene is the drawing context handed to a choreography for one tick.
type Scene struct {
	geom.Stage
	Frame int
	Phase int

	anim  *Animation
	s     *canvas.Surface
	pause time.Duration
}

// Surface exposes the underlying canvas for drawing not covered by Scene.
func (sc *Scene) Surface() *canvas.Surface {
	return sc.s
}

// Rect returns the on-screen rectangle of an element with logical size lw x lh at pt.
func (sc *Scene) Rect(lw, lh int, pt image.Point) image.Rectangle {
	return image.Rectangle{Min: pt, Max: pt.Add(sc.Size(lw, lh))}
}

// Blit draws sprite name scaled to lw x lh at pt and returns its rectangle.
// A name missing from the asset set draws nothing.
func (sc *Scene) Blit(name string, lw, lh int, pt image.Point) image.Rectangle {
	return sc.BlitSized(name, sc.Size(lw, lh), pt)
}

// BlitSized is Blit with an already scaled size.
func (sc *Scene) BlitSized(name string, size image.Point, pt image.Point) image.Rectangle {
	r := image.Rectangle{Min: pt, Max: pt.Add(size)}
	if img, ok := sc.anim.sprite(name, size); ok {
		sc.s.Blit(img, pt)
	}
	return r
}

// Offset scales a design-pixel displacement to the stage.
func (sc *Scene) Offset(dx, dy int) image.Point {
	return image.Pt(sc.Len(dx), sc.LenY(dy))
}

// Arrow draws a growing arrow that has grown for frames frames.
func (sc *Scene) Arrow(start, end image.Point, frames int, c color.Color) canvas.Arrow {
	return sc.s.DrawGrowingArrow(start, end, float64(frames*ArrowGrowth), canvas.ArrowStyle{Color: c})
}

func (sc *Scene) Label(text string, pt image.Point, c color.Color) {
	sc.s.Label(text, pt, c)
}

func (sc *Scene) LabelCentered(text string, pt image.Point, c color.Color) {
	sc.s.LabelCentered(text, pt, c)
}

// Lines draws a multi-line label with the standard line spacing.
func (sc *Scene) Lines(lines []string, pt image.Point, c color.Color) {
	sc.s.Lines(lines, pt, sc.LenY(canvas.LineHeight), c)
}

// Message draws a status line under r.
func (sc *Scene) Message(text string, c color.Color, r image.Rectangle) {
	sc.s.Message(text, c, r)
}

// RequestPause pauses the animation after this frame and resumes it with a
// reset once d has elapsed.
func (sc *Scene) RequestPause(d time.Duration) {
	sc.pause = d
}

func anchor(r image.Rectangle, a geom.Anchor) image.Point {
	return geom.AnchorPoint(r, a)
}
