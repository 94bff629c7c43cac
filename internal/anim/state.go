package anim

import (
	"image"

	"github.com/ivlev/patternviz/internal/assets"
	"github.com/ivlev/patternviz/internal/canvas"
	"github.com/ivlev/patternviz/internal/geom"
)

// lightDuration is how many frames each traffic light stays on.
const lightDuration = 120

var lights = [3]struct {
	sprite, label string
}{
	{"red", "Red → Stop"},
	{"yellow", "Yellow → Caution"},
	{"green", "Green → Go"},
}

// trafficLight: the light's behavior depends on its current state, which
// rotates Red -> Yellow -> Green. The phase is the state.
type trafficLight struct {
	pos  image.Point
	size image.Point
}

func (c *trafficLight) Spec() Spec {
	return Spec{
		Pattern:  State,
		AssetDir: "behavioral/state",
		Assets: []assets.Spec{
			{Name: "red", File: "red_light.png"},
			{Name: "yellow", File: "yellow_light.png"},
			{Name: "green", File: "green_light.png"},
		},
		LoopLength: lightDuration - 1,
		Phases:     len(lights),
	}
}

func (c *trafficLight) Layout(st geom.Stage) {
	c.pos = image.Pt(st.X(0.5, -60), st.Y(0.3, 0))
	side := max(1, int(min(float64(st.W)*0.25, float64(st.H)*0.25)))
	c.size = image.Pt(side, side)
}

func (c *trafficLight) Draw(sc *Scene) {
	l := lights[sc.Phase%len(lights)]
	r := sc.BlitSized(l.sprite, c.size, c.pos)
	sc.LabelCentered(l.label, image.Pt(anchor(r, geom.Bottom).X, r.Max.Y+sc.LenY(10)), canvas.White)
}
