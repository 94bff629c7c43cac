package video

import (
	"image"
	"image/color/palette"
	"image/gif"
	"os"

	"golang.org/x/image/draw"
)

// GIFWriter buffers paletted frames and encodes them on Close.
type GIFWriter struct {
	path  string
	delay int
	anim  gif.GIF
}

func NewGIFWriter(path string, p Params) *GIFWriter {
	// Задержка GIF задается в сотых долях секунды
	delay := 100 / p.FPS
	if delay < 2 {
		delay = 2
	}
	return &GIFWriter{path: path, delay: delay}
}

func (w *GIFWriter) WriteFrame(img *image.RGBA) error {
	b := img.Bounds()
	pal := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(pal, b, img, b.Min)
	w.anim.Image = append(w.anim.Image, pal)
	w.anim.Delay = append(w.anim.Delay, w.delay)
	w.anim.Disposal = append(w.anim.Disposal, gif.DisposalBackground)
	return nil
}

// Frames returns how many frames have been buffered.
func (w *GIFWriter) Frames() int {
	return len(w.anim.Image)
}

func (w *GIFWriter) Close() error {
	f, err := os.Create(w.path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, &w.anim); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
