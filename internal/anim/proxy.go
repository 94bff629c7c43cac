package anim

import (
	"image"

	"github.com/ivlev/patternviz/internal/assets"
	"github.com/ivlev/patternviz/internal/canvas"
	"github.com/ivlev/patternviz/internal/geom"
)

const (
	proxyDenied = iota
	proxyGranted
)

// proxy: a password check guards access to the data.
type proxy struct {
	scientist, password, data image.Point
}

func (c *proxy) Spec() Spec {
	return Spec{
		Pattern:  Proxy,
		AssetDir: "structural/proxy",
		Assets: []assets.Spec{
			{Name: "scientist", File: "data_scientist.png"},
			{Name: "password", File: "password.png"},
			{Name: "data", File: "data.png"},
		},
		LoopLength: 200,
		Phases:     2,
	}
}

func (c *proxy) Layout(st geom.Stage) {
	c.scientist = image.Pt(st.X(0.05, 0), st.Y(0.4, 0))
	c.password = image.Pt(st.X(0.4, 0), st.Y(0.35, 0))
	c.data = image.Pt(st.X(0.75, 0), st.Y(0.35, 0))
}

func (c *proxy) Draw(sc *Scene) {
	scientist := sc.Blit("scientist", 120, 140, c.scientist)
	password := sc.Blit("password", 120, 120, c.password)
	data := sc.Blit("data", 140, 120, c.data)

	if sc.Phase == proxyDenied {
		sc.Arrow(anchor(scientist, geom.MidRight), anchor(password, geom.MidLeft), sc.Frame, canvas.Red)
		if sc.Frame > 80 {
			sc.Message("Access Denied", canvas.Red, password)
		}
		return
	}

	sc.Arrow(anchor(scientist, geom.MidRight), anchor(password, geom.MidLeft), sc.Frame, canvas.Green)
	if sc.Frame > 40 {
		sc.Arrow(anchor(password, geom.MidRight), anchor(data, geom.MidLeft), sc.Frame-40, canvas.Green)
	}
	if sc.Frame > 100 {
		sc.Message("Access Granted", canvas.Green, data)
	}
}
