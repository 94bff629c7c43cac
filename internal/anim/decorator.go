package anim

import (
	"image"

	"github.com/ivlev/patternviz/internal/assets"
	"github.com/ivlev/patternviz/internal/canvas"
	"github.com/ivlev/patternviz/internal/geom"
)

// decorator: toppings wrap a plain ice cream into decorated ones.
type decorator struct {
	plain            image.Point
	choco, nuts      image.Point
	chocoIce, nutIce image.Point
}

func (c *decorator) Spec() Spec {
	return Spec{
		Pattern:  Decorator,
		AssetDir: "structural/decorator",
		Assets: []assets.Spec{
			{Name: "plain", File: "plain_ice_cream.png"},
			{Name: "chocolate", File: "chocolate.png"},
			{Name: "nuts", File: "nuts.png"},
			{Name: "nut_ice", File: "nut_ice_cream.png"},
			{Name: "choco_ice", File: "choco_ice_cream.png"},
		},
		LoopLength: 200,
		Phases:     1,
	}
}

func (c *decorator) Layout(st geom.Stage) {
	c.plain = image.Pt(st.X(0.4, 0), st.Y(0.15, 0))
	c.choco = image.Pt(st.X(0.2, 0), st.Y(0.55, 0))
	c.nuts = image.Pt(st.X(0.65, 0), st.Y(0.55, 0))
	c.chocoIce = image.Pt(st.X(0.2, 0), st.Y(0.8, 0))
	c.nutIce = image.Pt(st.X(0.65, 0), st.Y(0.8, 0))
}

func (c *decorator) Draw(sc *Scene) {
	plain := anchor(sc.Blit("plain", 120, 180, c.plain), geom.Center)
	choco := anchor(sc.Blit("chocolate", 100, 100, c.choco), geom.Center)
	nuts := anchor(sc.Blit("nuts", 100, 100, c.nuts), geom.Center)

	if sc.Frame > 30 {
		sc.Arrow(choco, plain, sc.Frame-30, canvas.White)
		sc.Blit("choco_ice", 120, 180, c.chocoIce)
		sc.Label("Plain + Chocolate", c.chocoIce.Sub(sc.Offset(0, 25)), canvas.White)
	}
	if sc.Frame > 60 {
		sc.Arrow(nuts, plain, sc.Frame-60, canvas.White)
		sc.Blit("nut_ice", 120, 180, c.nutIce)
		sc.Label("Plain + Nuts", c.nutIce.Sub(sc.Offset(0, 25)), canvas.White)
	}
}
