package anim

import (
	"image"
	"strings"

	"github.com/ivlev/patternviz/internal/assets"
	"github.com/ivlev/patternviz/internal/canvas"
	"github.com/ivlev/patternviz/internal/geom"
)

// factoryMethod: a drawing app creates the tool it needs.
type factoryMethod struct {
	drawing image.Point
	tools   [3]tool
}

type tool struct {
	name   string
	sprite string
	w, h   int
	pos    image.Point
}

func (c *factoryMethod) Spec() Spec {
	return Spec{
		Pattern:  FactoryMethod,
		AssetDir: "creational/factory_method",
		Assets: []assets.Spec{
			{Name: "drawing", File: "drawing.png"},
			{Name: "pen", File: "pen.png"},
			{Name: "pencil", File: "pencil.png"},
			{Name: "brush", File: "paint_brush.png"},
		},
		LoopLength: 480,
		Phases:     1,
	}
}

func (c *factoryMethod) Layout(st geom.Stage) {
	c.drawing = image.Pt(st.X(0.5, -100), st.Y(0, 50))
	c.tools = [3]tool{
		{name: "Pen", sprite: "pen", w: 60, h: 120, pos: image.Pt(st.X(0, 150), st.Y(1, -200))},
		{name: "Pencil", sprite: "pencil", w: 60, h: 120, pos: image.Pt(st.X(0.5, -60), st.Y(1, -200))},
		{name: "Brush", sprite: "brush", w: 80, h: 120, pos: image.Pt(st.X(1, -250), st.Y(1, -200))},
	}
}

func (c *factoryMethod) Draw(sc *Scene) {
	canvasRect := sc.Blit("drawing", 200, 150, c.drawing)
	source := anchor(canvasRect, geom.Bottom)

	for _, t := range c.tools {
		sc.Arrow(source, anchor(sc.Rect(t.w, t.h, t.pos), geom.Top), sc.Frame, canvas.White)
	}
	if sc.Frame < 20 {
		return
	}

	for _, t := range c.tools {
		r := sc.Blit(t.sprite, t.w, t.h, t.pos)
		if sc.Frame >= 50 {
			sc.Lines([]string{
				"DrawingApp uses:",
				strings.ToLower(t.name) + ".draw()",
			}, image.Pt(r.Min.X, r.Max.Y+sc.LenY(15)), canvas.White)
		}
	}
}
