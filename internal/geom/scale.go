package geom

import (
	"image"

	"golang.org/x/image/draw"
)

// Quality selects the resampling kernel used by ScaleImage.
type Quality int

const (
	Linear Quality = iota
	Nearest
)

func (q Quality) interpolator() draw.Interpolator {
	if q == Nearest {
		return draw.NearestNeighbor
	}
	return draw.BiLinear
}

// ScaleImage resizes src to the scaled logical size. No aspect-ratio
// correction is applied beyond the explicit width/height pair.
func ScaleImage(src image.Image, lw, lh int, sx, sy float64, q Quality) *image.RGBA {
	size := ScaledSize(lw, lh, sx, sy)
	return Resize(src, size.X, size.Y, q)
}

// Resize resamples src into a new w x h RGBA image.
func Resize(src image.Image, w, h int, q Quality) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	q.interpolator().Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
