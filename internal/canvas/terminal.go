package canvas

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ivlev/patternviz/internal/geom"
)

const halfBlock = "▀"

// TerminalImage renders img as rows lines of cols half-block cells: the
// foreground paints the upper pixel and the background the lower one, so each
// cell covers two vertical pixels. Transparent pixels are composited over bg.
func TerminalImage(img image.Image, cols, rows int, bg color.Color) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}
	small := geom.Resize(img, cols, rows*2, geom.Linear)
	base := color.RGBAModel.Convert(bg).(color.RGBA)

	styles := make(map[[2]color.RGBA]lipgloss.Style)
	var b strings.Builder
	for y := 0; y < rows; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < cols; x++ {
			key := [2]color.RGBA{
				over(small.RGBAAt(x, 2*y), base),
				over(small.RGBAAt(x, 2*y+1), base),
			}
			st, ok := styles[key]
			if !ok {
				st = lipgloss.NewStyle().
					Foreground(lipgloss.Color(hex(key[0]))).
					Background(lipgloss.Color(hex(key[1])))
				styles[key] = st
			}
			b.WriteString(st.Render(halfBlock))
		}
	}
	return b.String()
}

// over composites the premultiplied pixel c onto the opaque color bg.
func over(c, bg color.RGBA) color.RGBA {
	inv := 255 - uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) + uint32(bg.R)*inv/255),
		G: uint8(uint32(c.G) + uint32(bg.G)*inv/255),
		B: uint8(uint32(c.B) + uint32(bg.B)*inv/255),
		A: 255,
	}
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
