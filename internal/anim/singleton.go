package anim

import (
	"image"
	"time"

	"github.com/ivlev/patternviz/internal/assets"
	"github.com/ivlev/patternviz/internal/canvas"
	"github.com/ivlev/patternviz/internal/geom"
)

const (
	singletonStep  = 5
	singletonPause = 2 * time.Second
)

// singleton: two people send documents to the same printer.
type singleton struct {
	stage               geom.Stage
	printer, man, woman image.Point
	doc1, doc2          image.Point
	step                int
}

func (c *singleton) Spec() Spec {
	return Spec{
		Pattern:  Singleton,
		AssetDir: "creational/singleton",
		Assets: []assets.Spec{
			{Name: "printer", File: "printer.png"},
			{Name: "man", File: "man.png"},
			{Name: "woman", File: "woman.png"},
			{Name: "document", File: "document.png"},
		},
		Phases: 1,
	}
}

func (c *singleton) Layout(st geom.Stage) {
	old := c.stage
	c.stage = st
	c.printer = image.Pt(st.X(0.5, -75), st.Y(0, 50))
	c.man = image.Pt(st.X(0, 150), st.Y(1, -250))
	c.woman = image.Pt(st.X(1, -270), st.Y(1, -250))
	c.step = max(1, st.Len(singletonStep))

	// Documents in flight keep their relative progress.
	if old.Valid() {
		c.doc1 = rescale(c.doc1, old, st)
		c.doc2 = rescale(c.doc2, old, st)
	}
}

func rescale(p image.Point, from, to geom.Stage) image.Point {
	return image.Pt(p.X*to.W/from.W, p.Y*to.H/from.H)
}

func (c *singleton) Reset(st geom.Stage) {
	c.doc1 = c.man.Add(image.Pt(st.Len(80), st.LenY(40)))
	c.doc2 = c.woman.Add(image.Pt(st.Len(50), st.LenY(40)))
}

// target centers a document on the printer.
func (c *singleton) target(st geom.Stage) image.Point {
	pr := st.Size(150, 150)
	doc := st.Size(60, 80)
	return c.printer.Add(image.Pt(pr.X/2-doc.X/2, pr.Y/2-doc.Y/2))
}

func (c *singleton) Draw(sc *Scene) {
	sc.Blit("man", 150, 200, c.man)
	sc.Blit("woman", 120, 150, c.woman)
	pr := sc.Blit("printer", 150, 150, c.printer)

	target := c.target(sc.Stage)
	c.doc1 = geom.MovePointTowards(c.doc1, target, c.step)
	c.doc2 = geom.MovePointTowards(c.doc2, target, c.step)
	sc.Blit("document", 60, 80, c.doc1)
	sc.Blit("document", 60, 80, c.doc2)

	if c.doc1 == target && c.doc2 == target {
		sc.Message("Both docs sent to the same printer (Singleton)", canvas.Green, pr)
		sc.RequestPause(singletonPause)
	}
}
