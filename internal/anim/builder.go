package anim

import (
	"image"

	"github.com/ivlev/patternviz/internal/assets"
	"github.com/ivlev/patternviz/internal/canvas"
	"github.com/ivlev/patternviz/internal/geom"
)

// builder: an architect directs a builder that produces two house variants.
type builder struct {
	architect image.Point
	house     image.Point
	classic   image.Point
	modern    image.Point
}

func (c *builder) Spec() Spec {
	return Spec{
		Pattern:  Builder,
		AssetDir: "creational/builder",
		Assets: []assets.Spec{
			{Name: "architect", File: "architect.png"},
			{Name: "house", File: "house.png"},
			{Name: "classic_house", File: "classic_house.png"},
			{Name: "modern_house", File: "modern_house.png"},
		},
		LoopLength: 480,
		Phases:     1,
	}
}

func (c *builder) Layout(st geom.Stage) {
	c.architect = image.Pt(st.X(0.5, -60), st.Y(0, 40))
	c.house = image.Pt(st.X(0.5, -80), st.Y(0.4, 0))
	c.classic = image.Pt(st.X(0.3, -100), st.Y(0.7, 0))
	c.modern = image.Pt(st.X(0.7, -100), st.Y(0.7, 0))
}

func (c *builder) Draw(sc *Scene) {
	ar := sc.Blit("architect", 120, 120, c.architect)
	hr := sc.Rect(160, 140, c.house)
	cr := sc.Rect(180, 140, c.classic)
	mr := sc.Rect(180, 140, c.modern)

	sc.Arrow(anchor(ar, geom.Bottom), anchor(hr, geom.Top), sc.Frame, canvas.White)
	if sc.Frame > 20 {
		sc.Blit("house", 160, 140, c.house)
	}
	if sc.Frame > 40 {
		sc.Arrow(anchor(hr, geom.Bottom), anchor(cr, geom.Top), sc.Frame-40, canvas.White)
		sc.Arrow(anchor(hr, geom.Bottom), anchor(mr, geom.Top), sc.Frame-40, canvas.White)
	}
	if sc.Frame > 60 {
		sc.Blit("classic_house", 180, 140, c.classic)
		sc.Blit("modern_house", 180, 140, c.modern)
	}
	if sc.Frame > 80 {
		above := func(r image.Rectangle) image.Point { return image.Pt(anchor(r, geom.Top).X, r.Min.Y-sc.LenY(30)) }
		below := func(r image.Rectangle) image.Point { return image.Pt(anchor(r, geom.Bottom).X, r.Max.Y+sc.LenY(5)) }
		sc.LabelCentered("Director (Architect)", above(ar), canvas.White)
		sc.LabelCentered("Builder constructs House", above(hr), canvas.White)
		sc.LabelCentered("Classic House", below(cr), canvas.White)
		sc.LabelCentered("Modern House", below(mr), canvas.White)
	}
}
