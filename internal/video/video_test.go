package video

import (
	"context"
	"image"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func solid(w, h int, v byte) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"out.gif", FormatGIF, false},
		{"OUT.GIF", FormatGIF, false},
		{"frames/", FormatPNG, false},
		{"poster.png", FormatPNG, false},
		{"demo.mp4", FormatFFmpeg, false},
		{"demo.webm", FormatFFmpeg, false},
		{"demo.avi", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFor(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v", err)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGIFWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	w, err := Open(context.Background(), path, Params{Width: 32, Height: 18, FPS: 60})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := w.WriteFrame(solid(32, 18, byte(i*80))); err != nil {
			t.Fatalf("WriteFrame: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(g.Image) != 3 {
		t.Errorf("got %d frames, want 3", len(g.Image))
	}
	if g.Delay[0] != 2 {
		t.Errorf("delay = %d, want 2", g.Delay[0])
	}
}

func TestPNGSequence(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	w, err := Open(context.Background(), dir, Params{Width: 4, Height: 4, FPS: 30})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	seq := w.(*PNGSequence)
	for i := 0; i < 2; i++ {
		if err := w.WriteFrame(solid(4, 4, 0xff)); err != nil {
			t.Fatal(err)
		}
	}
	w.Close()

	for i := 0; i < 2; i++ {
		if _, err := os.Stat(seq.Path(i)); err != nil {
			t.Errorf("frame %d missing: %v", i, err)
		}
	}
	if !strings.HasSuffix(seq.Path(1), "frame_00001.png") {
		t.Errorf("path = %s", seq.Path(1))
	}
}

func TestBuildFFmpegArgs(t *testing.T) {
	tests := []struct {
		path    string
		encoder string
		want    string
	}{
		{"out.mp4", "libx264", "-c:v libx264 -crf 23 -preset medium"},
		{"out.mp4", "", "-c:v libx264 -crf 23"},
		{"out.mp4", "h264_nvenc", "-cq 23"},
		{"out.mov", "h264_videotoolbox", "-b:v 2300k"},
		{"out.webm", "libx264", "-c:v libvpx-vp9 -crf 23 -b:v 0"},
		{"out.webm", "h264_nvenc", "-c:v libvpx-vp9"},
		{"out.webm", "libaom-av1", "-c:v libaom-av1"},
	}

	for _, tt := range tests {
		t.Run(tt.path+"/"+tt.encoder, func(t *testing.T) {
			args := BuildFFmpegArgs(tt.path, Params{Width: 640, Height: 360, FPS: 60, Encoder: tt.encoder, Quality: 23})
			line := strings.Join(args, " ")
			if !strings.Contains(line, tt.want) {
				t.Errorf("args %q missing %q", line, tt.want)
			}
			if !strings.Contains(line, "-video_size 640x360") || args[len(args)-1] != tt.path {
				t.Errorf("unexpected args: %q", line)
			}
		})
	}
}

func TestOpenRejectsBadParams(t *testing.T) {
	if _, err := Open(context.Background(), "x.gif", Params{Width: 0, Height: 10, FPS: 60}); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestNeedsProbe(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"out.gif", false},
		{"frames", false},
		{"out.png", false},
		{"out.mp4", true},
		{"out.mkv", true},
		{"out.mov", true},
		{"out.webm", false},
	}
	for _, tt := range tests {
		if got := NeedsProbe(tt.path); got != tt.want {
			t.Errorf("NeedsProbe(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
