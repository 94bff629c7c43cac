package video

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// PNGSequence writes every frame to its own numbered PNG file.
type PNGSequence struct {
	dir    string
	prefix string
	n      int
	enc    png.Encoder
}

// NewPNGSequence writes into path when it is a directory, or next to it using
// the file's base name as prefix when it ends in .png.
func NewPNGSequence(path string) (*PNGSequence, error) {
	dir, prefix := path, "frame"
	if strings.EqualFold(filepath.Ext(path), ".png") {
		dir = filepath.Dir(path)
		prefix = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &PNGSequence{dir: dir, prefix: prefix, enc: png.Encoder{CompressionLevel: png.BestSpeed}}, nil
}

// Path returns the file name of frame i.
func (s *PNGSequence) Path(i int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_%05d.png", s.prefix, i))
}

func (s *PNGSequence) WriteFrame(img *image.RGBA) error {
	f, err := os.Create(s.Path(s.n))
	if err != nil {
		return err
	}
	if err := s.enc.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	s.n++
	return f.Close()
}

func (s *PNGSequence) Close() error {
	return nil
}
