package anim

import (
	"fmt"
	"image"

	"github.com/ivlev/patternviz/internal/assets"
	"github.com/ivlev/patternviz/internal/canvas"
	"github.com/ivlev/patternviz/internal/geom"
)

// prototype: a key is cloned into copies.
type prototype struct {
	original image.Point
	clones   []image.Point
}

func (c *prototype) Spec() Spec {
	return Spec{
		Pattern:    Prototype,
		AssetDir:   "creational/prototype",
		Assets:     []assets.Spec{{Name: "key", File: "key.png"}},
		LoopLength: 360,
		Phases:     1,
	}
}

func (c *prototype) Layout(st geom.Stage) {
	c.original = image.Pt(st.X(0.5, -50), st.Y(0, 80))
	c.clones = []image.Point{
		image.Pt(st.X(0.35, -50), st.Y(0.55, 0)),
		image.Pt(st.X(0.65, -50), st.Y(0.55, 0)),
	}
}

func (c *prototype) Draw(sc *Scene) {
	orig := sc.Blit("key", 100, 100, c.original)
	source := anchor(orig, geom.Bottom)

	for _, p := range c.clones {
		sc.Arrow(source, anchor(sc.Rect(100, 100, p), geom.Top), sc.Frame, canvas.White)
	}
	if sc.Frame > 20 {
		for _, p := range c.clones {
			sc.Blit("key", 100, 100, p)
		}
	}
	if sc.Frame > 40 {
		sc.LabelCentered("Original", image.Pt(anchor(orig, geom.Top).X, orig.Min.Y-sc.LenY(30)), canvas.White)
		for i, p := range c.clones {
			r := sc.Rect(100, 100, p)
			sc.LabelCentered(fmt.Sprintf("Copy %d", i+1), image.Pt(anchor(r, geom.Bottom).X, r.Max.Y+sc.LenY(5)), canvas.White)
		}
	}
}
