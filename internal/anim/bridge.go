package anim

import (
	"image"

	"github.com/ivlev/patternviz/internal/assets"
	"github.com/ivlev/patternviz/internal/canvas"
	"github.com/ivlev/patternviz/internal/geom"
)

// bridge: shapes and paints vary independently; each phase pairs them differently.
type bridge struct {
	circle, square image.Point
	blue, red      image.Point
}

func (c *bridge) Spec() Spec {
	return Spec{
		Pattern:  Bridge,
		AssetDir: "structural/bridge",
		Assets: []assets.Spec{
			{Name: "circle", File: "circle.png"},
			{Name: "square", File: "square.png"},
			{Name: "blue", File: "blue_paint.png"},
			{Name: "red", File: "red_paint.png"},
		},
		LoopLength: 200,
		Phases:     2,
	}
}

func (c *bridge) Layout(st geom.Stage) {
	c.circle = image.Pt(st.X(0.25, 0), st.Y(0.2, 0))
	c.square = image.Pt(st.X(0.65, 0), st.Y(0.2, 0))
	c.blue = image.Pt(st.X(0.25, 0), st.Y(0.65, 0))
	c.red = image.Pt(st.X(0.65, 0), st.Y(0.65, 0))
}

func (c *bridge) Draw(sc *Scene) {
	circle := sc.Blit("circle", 150, 150, c.circle)
	square := sc.Blit("square", 150, 150, c.square)
	blue := sc.Blit("blue", 80, 120, c.blue)
	red := sc.Blit("red", 80, 120, c.red)

	blueTo, redTo := circle, square
	circleLabel, squareLabel := "Circle.paint(Blue)", "Square.paint(Red)"
	if sc.Phase == 1 {
		blueTo, redTo = square, circle
		circleLabel, squareLabel = "Circle.paint(Red)", "Square.paint(Blue)"
	}

	sc.Arrow(anchor(blue, geom.Center), anchor(blueTo, geom.Center), sc.Frame, canvas.Blue)
	sc.Arrow(anchor(red, geom.Center), anchor(redTo, geom.Center), sc.Frame, canvas.Red)

	sc.Label(circleLabel, image.Pt(circle.Min.X, circle.Max.Y+sc.LenY(10)), canvas.White)
	sc.Label(squareLabel, image.Pt(square.Min.X, square.Max.Y+sc.LenY(10)), canvas.White)
}
