package anim

import (
	"image"

	"github.com/ivlev/patternviz/internal/assets"
	"github.com/ivlev/patternviz/internal/canvas"
	"github.com/ivlev/patternviz/internal/geom"
)

// abstractFactory: one factory produces two matching furniture families.
type abstractFactory struct {
	factory image.Point
	classic image.Point
	modern  image.Point
	sofaDX  int
}

func (c *abstractFactory) Spec() Spec {
	return Spec{
		Pattern:  AbstractFactory,
		AssetDir: "creational/abstract_factory",
		Assets: []assets.Spec{
			{Name: "factory", File: "factory.png"},
			{Name: "classic_chair", File: "classic_chair.png"},
			{Name: "classic_sofa", File: "classic_sofa.png"},
			{Name: "modern_chair", File: "modern_chair.png"},
			{Name: "modern_sofa", File: "modern_sofa.png"},
		},
		LoopLength: 300,
		Phases:     1,
	}
}

func (c *abstractFactory) Layout(st geom.Stage) {
	c.factory = image.Pt(st.X(0.5, -90), st.Y(0, 40))
	c.classic = image.Pt(st.X(0.25, -120), st.Y(0.45, 0))
	c.modern = image.Pt(st.X(0.65, -120), st.Y(0.45, 0))
	c.sofaDX = st.Len(120)
}

func (c *abstractFactory) Draw(sc *Scene) {
	fr := sc.Blit("factory", 180, 120, c.factory)
	source := anchor(fr, geom.Bottom)

	groupTip := sc.Offset(100, -20)
	sc.Arrow(source, c.classic.Add(groupTip), sc.Frame, canvas.White)
	sc.Arrow(source, c.modern.Add(groupTip), sc.Frame, canvas.White)

	if sc.Frame > 20 {
		sc.Blit("classic_chair", 90, 90, c.classic)
		sc.Blit("classic_sofa", 120, 90, c.classic.Add(image.Pt(c.sofaDX, 0)))
		sc.Blit("modern_chair", 90, 90, c.modern)
		sc.Blit("modern_sofa", 120, 90, c.modern.Add(image.Pt(c.sofaDX, 0)))
	}
	if sc.Frame > 40 {
		sc.Label("Creates Victorian Furniture", c.classic.Add(sc.Offset(0, 120)), canvas.White)
		sc.Label("Creates Modern Furniture", c.modern.Add(image.Pt(c.sofaDX, sc.LenY(120))), canvas.White)
	}
}
