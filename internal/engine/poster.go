package engine

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	"github.com/skip2/go-qrcode"

	"github.com/ivlev/patternviz/internal/anim"
	"github.com/ivlev/patternviz/internal/canvas"
	"github.com/ivlev/patternviz/internal/catalog"
)

const (
	posterBand   = 200
	posterMargin = 24
	posterQR     = 160
)

var posterBackground = color.RGBA{30, 30, 36, 255}

// Poster renders the last of Export.Frames frames of pattern pat with a caption
// band holding its name, category and a QR code of its reference link.
func (p *Project) Poster(ctx context.Context, pat catalog.Pattern) (image.Image, error) {
	id, ok := anim.Lookup(pat.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, pat.Name)
	}

	w, h := p.Config.Export.Width, p.Config.Export.Height
	last := image.NewRGBA(image.Rect(0, 0, w, h))
	_, err := p.Record(ctx, id, p.Config.Export.Frames, func(f *image.RGBA) error {
		draw.Draw(last, last.Bounds(), f, f.Bounds().Min, draw.Src)
		return nil
	})
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(w, h+posterBand)
	dc.SetColor(posterBackground)
	dc.Clear()
	dc.DrawImage(last, 0, 0)

	fonts := canvas.NewFonts()
	dc.SetFontFace(fonts.Face(canvas.BaseFontSize * 1.6))
	dc.SetColor(canvas.White)
	dc.DrawStringAnchored(pat.Name, posterMargin, float64(h+posterMargin), 0, 1)

	dc.SetFontFace(fonts.Face(canvas.BaseFontSize))
	dc.SetColor(canvas.Cyan)
	dc.DrawStringAnchored(string(pat.Category), posterMargin, float64(h+posterMargin+60), 0, 1)
	if pat.Summary != "" {
		dc.SetColor(canvas.White)
		dc.DrawStringWrapped(pat.Summary, posterMargin, float64(h+posterMargin+100), 0, 0,
			float64(w-posterQR-3*posterMargin), 1.3, gg.AlignLeft)
	}

	if pat.Reference != "" {
		qr, err := qrcode.New(pat.Reference, qrcode.Medium)
		if err != nil {
			return nil, fmt.Errorf("qr code: %w", err)
		}
		dc.DrawImage(qr.Image(posterQR), w-posterQR-posterMargin, h+(posterBand-posterQR)/2)
	}
	return dc.Image(), nil
}

// SavePoster renders the poster for pat and writes it as PNG.
func (p *Project) SavePoster(ctx context.Context, pat catalog.Pattern, path string) error {
	img, err := p.Poster(ctx, pat)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return err
	}
	p.printf("[+++] Успех! Постер сохранен: %s\n", path)
	return nil
}
