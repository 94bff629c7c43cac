package anim

import (
	"image"

	"github.com/ivlev/patternviz/internal/assets"
	"github.com/ivlev/patternviz/internal/canvas"
	"github.com/ivlev/patternviz/internal/geom"
)

// flyweight: every letter the editor renders shares one font object.
type flyweight struct {
	editor, font image.Point
	letters      [3]subsystem
}

func (c *flyweight) Spec() Spec {
	return Spec{
		Pattern:  Flyweight,
		AssetDir: "structural/flyweight",
		Assets: []assets.Spec{
			{Name: "editor", File: "text_editor.png"},
			{Name: "font", File: "font.png"},
			{Name: "h", File: "letter_h.png"},
			{Name: "i", File: "letter_i.png"},
			{Name: "exclamation", File: "exclamation.png"},
		},
		LoopLength: 200,
		Phases:     1,
	}
}

func (c *flyweight) Layout(st geom.Stage) {
	c.editor = image.Pt(st.X(0.4, 0), st.Y(0.05, 0))
	c.font = image.Pt(st.X(0.45, 0), st.Y(0.4, 0))
	c.letters = [3]subsystem{
		{sprite: "h", label: "Letter H", pos: image.Pt(st.X(0.3, 0), st.Y(0.75, 0)), start: 30},
		{sprite: "i", label: "Letter I", pos: image.Pt(st.X(0.5, 0), st.Y(0.75, 0)), start: 60},
		{sprite: "exclamation", label: "Letter !", pos: image.Pt(st.X(0.7, 0), st.Y(0.75, 0)), start: 90},
	}
}

func (c *flyweight) Draw(sc *Scene) {
	editor := sc.Blit("editor", 180, 120, c.editor)
	font := sc.Blit("font", 120, 100, c.font)

	sc.Arrow(anchor(editor, geom.Bottom), anchor(font, geom.Top), sc.Frame, canvas.Yellow)
	for _, l := range c.letters {
		r := sc.Blit(l.sprite, 80, 100, l.pos)
		if sc.Frame > l.start {
			sc.Arrow(anchor(font, geom.Bottom), anchor(r, geom.Top), sc.Frame-l.start, canvas.Cyan)
		}
		sc.Label(l.label, image.Pt(r.Min.X, r.Max.Y+sc.LenY(5)), canvas.White)
	}

	sc.Label("TextEditor", c.editor.Sub(sc.Offset(0, 30)), canvas.Yellow)
	sc.Label("Font (shared)", c.font.Sub(sc.Offset(0, 30)), canvas.White)
}
