package geom

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

var ErrUnknownAnchor = errors.New("unknown anchor")

// Anchor names a point on a rectangle.
type Anchor int

const (
	Center Anchor = iota
	Top
	Bottom
	MidLeft
	MidRight
	TopLeft
)

// Aliases used by choreographies that name the edge midpoints explicitly.
const (
	MidTop    = Top
	MidBottom = Bottom
)

var anchorNames = map[string]Anchor{
	"center":    Center,
	"top":       Top,
	"midtop":    Top,
	"bottom":    Bottom,
	"midbottom": Bottom,
	"midleft":   MidLeft,
	"midright":  MidRight,
	"topleft":   TopLeft,
}

func (a Anchor) String() string {
	switch a {
	case Center:
		return "center"
	case Top:
		return "midtop"
	case Bottom:
		return "midbottom"
	case MidLeft:
		return "midleft"
	case MidRight:
		return "midright"
	case TopLeft:
		return "topleft"
	}
	return fmt.Sprintf("Anchor(%d)", int(a))
}

// ParseAnchor resolves an anchor name case-insensitively.
func ParseAnchor(name string) (Anchor, error) {
	a, ok := anchorNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAnchor, name)
	}
	return a, nil
}

// AnchorPoint resolves a on r. It panics on a value outside the declared set:
// callers only ever pass constants.
func AnchorPoint(r image.Rectangle, a Anchor) image.Point {
	cx := r.Min.X + r.Dx()/2
	cy := r.Min.Y + r.Dy()/2
	switch a {
	case Center:
		return image.Pt(cx, cy)
	case Top:
		return image.Pt(cx, r.Min.Y)
	case Bottom:
		return image.Pt(cx, r.Max.Y)
	case MidLeft:
		return image.Pt(r.Min.X, cy)
	case MidRight:
		return image.Pt(r.Max.X, cy)
	case TopLeft:
		return r.Min
	}
	panic(fmt.Sprintf("geom: %v", a))
}

// AnchorByName is AnchorPoint for a textual anchor.
func AnchorByName(r image.Rectangle, name string) (image.Point, error) {
	a, err := ParseAnchor(name)
	if err != nil {
		return image.Point{}, err
	}
	return AnchorPoint(r, a), nil
}
