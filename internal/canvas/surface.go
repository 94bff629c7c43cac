// Package canvas is the off-screen drawing surface a diagram frame is
// composed on: sprites, growing arrows, labels and status messages.
package canvas

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/ivlev/patternviz/internal/system"
)

// Common label and arrow colors.
var (
	White  = color.RGBA{255, 255, 255, 255}
	Red    = color.RGBA{255, 0, 0, 255}
	Green  = color.RGBA{0, 255, 0, 255}
	Yellow = color.RGBA{255, 255, 0, 255}
	Cyan   = color.RGBA{0, 255, 255, 255}
	Blue   = color.RGBA{0, 150, 255, 255}
)

// Surface is one transparent frame buffer with a gg context bound to it.
type Surface struct {
	img   *image.RGBA
	dc    *gg.Context
	fonts *Fonts
	scale float64
}

// NewSurface takes a cleared w x h buffer from the frame pool. Text is drawn
// with faces from fonts at scale times the base size.
func NewSurface(w, h int, fonts *Fonts, scale float64) *Surface {
	img := system.GetFrame(w, h)
	if fonts == nil {
		fonts = NewFonts()
	}
	if scale <= 0 {
		scale = 1
	}
	return &Surface{
		img:   img,
		dc:    gg.NewContextForRGBA(img),
		fonts: fonts,
		scale: scale,
	}
}

func (s *Surface) Image() *image.RGBA {
	return s.img
}

func (s *Surface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// Release returns the buffer to the pool. The surface must not be used afterwards.
func (s *Surface) Release() {
	if s.img != nil {
		system.PutFrame(s.img)
		s.img = nil
		s.dc = nil
	}
}

// Detach hands ownership of the buffer to the caller.
func (s *Surface) Detach() *image.RGBA {
	img := s.img
	s.img = nil
	s.dc = nil
	return img
}

// Blit draws img with its top-left corner at pt and returns the covered rectangle.
func (s *Surface) Blit(img image.Image, pt image.Point) image.Rectangle {
	s.dc.DrawImage(img, pt.X, pt.Y)
	return img.Bounds().Sub(img.Bounds().Min).Add(pt)
}

// FillRect paints r with c.
func (s *Surface) FillRect(r image.Rectangle, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	s.dc.Fill()
}
