// Package video writes sequences of rendered frames to GIF, PNG or, through
// ffmpeg, to compressed video.
package video

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"strings"
)

// FrameWriter consumes frames of a fixed size in order.
type FrameWriter interface {
	WriteFrame(img *image.RGBA) error
	Close() error
}

// Params describe the stream being written.
type Params struct {
	Width, Height int
	FPS           int

	// Encoder and Quality only apply to ffmpeg output.
	Encoder string
	Quality int
}

// Format is the container chosen from an output path.
type Format int

const (
	FormatGIF Format = iota
	FormatPNG
	FormatFFmpeg
)

func (f Format) String() string {
	switch f {
	case FormatGIF:
		return "gif"
	case FormatPNG:
		return "png"
	case FormatFFmpeg:
		return "ffmpeg"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFor picks a format from the file extension. Paths without an
// extension are treated as PNG sequence directories.
func FormatFor(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".gif":
		return FormatGIF, nil
	case ".png", "":
		return FormatPNG, nil
	case ".mp4", ".mov", ".mkv", ".webm":
		return FormatFFmpeg, nil
	default:
		return 0, fmt.Errorf("unsupported output format %q", ext)
	}
}

// Open creates the writer matching path's extension.
func Open(ctx context.Context, path string, p Params) (FrameWriter, error) {
	if p.Width <= 0 || p.Height <= 0 || p.FPS <= 0 {
		return nil, fmt.Errorf("invalid stream %dx%d@%d", p.Width, p.Height, p.FPS)
	}
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	switch f {
	case FormatGIF:
		return NewGIFWriter(path, p), nil
	case FormatPNG:
		return NewPNGSequence(path)
	default:
		return NewFFmpegWriter(ctx, path, p)
	}
}
