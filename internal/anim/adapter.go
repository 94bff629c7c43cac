package anim

import (
	"image"

	"github.com/ivlev/patternviz/internal/assets"
	"github.com/ivlev/patternviz/internal/canvas"
	"github.com/ivlev/patternviz/internal/geom"
)

const (
	adapterDirect = iota
	adapterAdapted
)

// adapter: a US plug fails in an EU socket until an adapter sits between them.
type adapter struct {
	us, adapter, eu image.Point
	plugV, adaptV   image.Point
}

func (c *adapter) Spec() Spec {
	return Spec{
		Pattern:  Adapter,
		AssetDir: "structural/adapter",
		Assets: []assets.Spec{
			{Name: "adapter", File: "adapter.png"},
			{Name: "socket", File: "eu_socket.png"},
			{Name: "plug", File: "us_plug.png"},
		},
		LoopLength: 200,
		Phases:     2,
	}
}

func (c *adapter) Layout(st geom.Stage) {
	c.us = image.Pt(st.X(0.15, 0), st.Y(0.5, -50))
	c.adapter = image.Pt(st.X(0.45, 0), st.Y(0.5, -60))
	c.eu = image.Pt(st.X(0.75, 0), st.Y(0.5, -60))
	c.plugV = image.Pt(max(1, st.Len(4)), 0)
	c.adaptV = image.Pt(max(1, st.Len(3)), 0)
}

func (c *adapter) Draw(sc *Scene) {
	socket := sc.Blit("socket", 140, 120, c.eu)
	plugW := sc.Size(120, 100).X
	above := func(p image.Point) image.Point { return p.Sub(sc.Offset(0, 30)) }

	if sc.Phase == adapterDirect {
		plug := geom.MoveLinear(c.us, c.plugV, sc.Frame, 60, image.Pt(c.eu.X-c.us.X-plugW+sc.Len(15), 0))
		sc.Blit("plug", 120, 100, plug)
		sc.Label("US Plug", above(plug), canvas.White)
		sc.Label("EU Socket", above(c.eu), canvas.White)
		if sc.Frame > 100 {
			sc.Message("Connection not recognized!", canvas.Red, socket)
		}
		return
	}

	adapterW := sc.Size(140, 120).X
	ad := geom.MoveLinear(c.adapter, c.adaptV, sc.Frame, 40, image.Pt(c.eu.X-c.adapter.X-adapterW+sc.Len(30), 0))
	sc.Blit("adapter", 140, 120, ad)
	sc.Label("Adapter", above(ad), canvas.White)
	sc.Label("EU Socket", above(c.eu), canvas.White)

	if sc.Frame > 40 {
		plug := geom.MoveLinear(c.us, c.plugV, sc.Frame-40, 60, image.Pt(ad.X-c.us.X-plugW+sc.Len(15), 0))
		sc.Blit("plug", 120, 100, plug)
		sc.Label("US Plug", above(plug), canvas.White)
		if sc.Frame > 120 {
			sc.Message("Power Connected!", canvas.Green, socket)
		}
	}
}
