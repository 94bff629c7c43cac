package canvas

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	BaseFontSize = 22.0
	MinFontSize  = 11.0
	// LineHeight is the design-pixel distance between lines of a multi-line label.
	LineHeight = 28.0
)

var (
	parseOnce           sync.Once
	regularTTF, monoTTF *truetype.Font
	parseErr            error
)

func parsedFonts() (*truetype.Font, *truetype.Font, error) {
	parseOnce.Do(func() {
		regularTTF, parseErr = truetype.Parse(goregular.TTF)
		if parseErr != nil {
			return
		}
		monoTTF, parseErr = truetype.Parse(gomono.TTF)
	})
	return regularTTF, monoTTF, parseErr
}

// Fonts caches font faces by size. A face is not safe for concurrent use, so
// every animation owns its own Fonts.
type Fonts struct {
	regular map[float64]font.Face
	mono    map[float64]font.Face
}

func NewFonts() *Fonts {
	return &Fonts{
		regular: make(map[float64]font.Face),
		mono:    make(map[float64]font.Face),
	}
}

// Face returns the proportional face for size points.
func (f *Fonts) Face(size float64) font.Face {
	return f.face(f.regular, size, false)
}

// Mono returns the monospaced face for size points.
func (f *Fonts) Mono(size float64) font.Face {
	return f.face(f.mono, size, true)
}

func (f *Fonts) face(cache map[float64]font.Face, size float64, mono bool) font.Face {
	size = math.Round(size*2) / 2
	if fc, ok := cache[size]; ok {
		return fc
	}
	regular, monospace, err := parsedFonts()
	if err != nil {
		// Встроенные шрифты Go всегда парсятся; сюда попасть нельзя
		panic(err)
	}
	ttf := regular
	if mono {
		ttf = monospace
	}
	fc := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	cache[size] = fc
	return fc
}

// FontSize returns the label size for a surface scale.
func FontSize(scale float64) float64 {
	return math.Max(MinFontSize, BaseFontSize*scale)
}

func (s *Surface) useFont() {
	s.dc.SetFontFace(s.fonts.Face(FontSize(s.scale)))
}

// MeasureString returns the rendered width and height of text in the label font.
func (s *Surface) MeasureString(text string) (float64, float64) {
	s.useFont()
	return s.dc.MeasureString(text)
}

// Label draws text with its top-left corner at pt.
func (s *Surface) Label(text string, pt image.Point, c color.Color) {
	s.useFont()
	s.dc.SetColor(c)
	s.dc.DrawStringAnchored(text, float64(pt.X), float64(pt.Y), 0, 1)
}

// LabelCentered draws text horizontally centered on pt.X with its top at pt.Y.
func (s *Surface) LabelCentered(text string, pt image.Point, c color.Color) {
	s.useFont()
	s.dc.SetColor(c)
	s.dc.DrawStringAnchored(text, float64(pt.X), float64(pt.Y), 0.5, 1)
}

// Lines draws each line lineHeight pixels below the previous one.
func (s *Surface) Lines(lines []string, pt image.Point, lineHeight int, c color.Color) {
	for i, line := range lines {
		s.Label(line, image.Pt(pt.X, pt.Y+i*lineHeight), c)
	}
}

// Message draws a status line centered under r on a dark translucent plate.
func (s *Surface) Message(text string, c color.Color, r image.Rectangle) {
	s.useFont()
	w, h := s.dc.MeasureString(text)
	pad := 6.0
	cx := float64(r.Min.X + r.Dx()/2)
	top := float64(r.Max.Y) + 10

	s.dc.SetRGBA255(0, 0, 0, 170)
	s.dc.DrawRoundedRectangle(cx-w/2-pad, top-pad, w+2*pad, h+2*pad, 4)
	s.dc.Fill()

	s.dc.SetColor(c)
	s.dc.DrawStringAnchored(text, cx, top, 0.5, 1)
}
