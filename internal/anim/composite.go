package anim

import (
	"image"
	"strings"

	"github.com/ivlev/patternviz/internal/assets"
	"github.com/ivlev/patternviz/internal/canvas"
	"github.com/ivlev/patternviz/internal/geom"
)

// composite: an order is priced as the sum of the items it contains.
type composite struct {
	pkg   image.Point
	items [3]leaf
}

type leaf struct {
	sprite string
	label  string
	w, h   int
	pos    image.Point
}

func (c *composite) Spec() Spec {
	return Spec{
		Pattern:  Composite,
		AssetDir: "structural/composite",
		Assets: []assets.Spec{
			{Name: "package", File: "package.png"},
			{Name: "headphones", File: "headphones.png"},
			{Name: "laptop", File: "laptop.png"},
			{Name: "smartphone", File: "smartphone.png"},
		},
		LoopLength: 200,
		Phases:     1,
	}
}

func (c *composite) Layout(st geom.Stage) {
	c.pkg = image.Pt(st.X(0.5, -80), st.Y(0, 50))
	c.items = [3]leaf{
		{sprite: "headphones", label: "Headphones\n120$", w: 120, h: 120, pos: image.Pt(st.X(0.2, 0), st.Y(0.55, 0))},
		{sprite: "laptop", label: "Laptop\n1600$", w: 150, h: 120, pos: image.Pt(st.X(0.45, 0), st.Y(0.55, 0))},
		{sprite: "smartphone", label: "Smartphone\n800$", w: 100, h: 120, pos: image.Pt(st.X(0.7, 0), st.Y(0.55, 0))},
	}
}

func (c *composite) Draw(sc *Scene) {
	pr := sc.Blit("package", 160, 140, c.pkg)
	source := anchor(pr, geom.Bottom)

	for _, it := range c.items {
		r := sc.Blit(it.sprite, it.w, it.h, it.pos)
		sc.Arrow(source, anchor(r, geom.Top), sc.Frame, canvas.White)
		sc.Lines(strings.Split(it.label, "\n"), image.Pt(r.Min.X, r.Max.Y+sc.LenY(10)), canvas.White)
	}
	sc.Lines([]string{"Order", "2520$"}, c.pkg.Sub(sc.Offset(0, 60)), canvas.Yellow)
}
