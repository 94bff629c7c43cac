package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
)

// FFmpegWriter streams raw RGBA frames into an ffmpeg process.
type FFmpegWriter struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr bytes.Buffer
	w, h   int
}

func NewFFmpegWriter(ctx context.Context, path string, p Params) (*FFmpegWriter, error) {
	fw := &FFmpegWriter{w: p.Width, h: p.Height}
	fw.cmd = exec.CommandContext(ctx, "ffmpeg", BuildFFmpegArgs(path, p)...)
	fw.cmd.Stderr = &fw.stderr

	stdin, err := fw.cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe error: %w", err)
	}
	fw.stdin = stdin
	if err := fw.cmd.Start(); err != nil {
		return nil, fmt.Errorf("ffmpeg start error: %w", err)
	}
	return fw, nil
}

// BuildFFmpegArgs returns the ffmpeg command line for a rawvideo stdin stream.
func BuildFFmpegArgs(path string, p Params) []string {
	p.Encoder = EncoderFor(path, p.Encoder)
	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", p.Width, p.Height),
		"-framerate", fmt.Sprintf("%d", p.FPS),
		"-i", "-",
		// Прозрачные области кладем на черный фон, yuv420p требует четных размеров
		"-vf", "format=rgba,pad=ceil(iw/2)*2:ceil(ih/2)*2",
		"-pix_fmt", "yuv420p",
		"-c:v", p.Encoder,
	}

	// Качество в зависимости от энкодера
	switch p.Encoder {
	case "h264_videotoolbox":
		args = append(args, "-b:v", fmt.Sprintf("%dk", p.Quality*100))
	case "h264_nvenc":
		args = append(args, "-cq", fmt.Sprintf("%d", p.Quality))
	case "libvpx-vp9":
		// Режим постоянного качества VP9 требует нулевого битрейта
		args = append(args, "-crf", fmt.Sprintf("%d", p.Quality), "-b:v", "0")
	default: // libx264
		args = append(args, "-crf", fmt.Sprintf("%d", p.Quality), "-preset", "medium")
	}
	return append(args, path)
}

// EncoderFor returns the codec ffmpeg should use for path. WebM only carries
// VP8, VP9 or AV1, so any other requested encoder is replaced with VP9 there.
// An empty request elsewhere means libx264.
func EncoderFor(path, requested string) string {
	if strings.EqualFold(filepath.Ext(path), ".webm") {
		for _, prefix := range []string{"libvpx", "libaom", "libsvtav1"} {
			if strings.HasPrefix(requested, prefix) {
				return requested
			}
		}
		return "libvpx-vp9"
	}
	if requested == "" {
		return "libx264"
	}
	return requested
}

// NeedsProbe reports whether the encoder for path depends on what the local
// ffmpeg build offers.
func NeedsProbe(path string) bool {
	f, err := FormatFor(path)
	return err == nil && f == FormatFFmpeg && !strings.EqualFold(filepath.Ext(path), ".webm")
}

func (fw *FFmpegWriter) WriteFrame(img *image.RGBA) error {
	if b := img.Bounds(); b.Dx() != fw.w || b.Dy() != fw.h {
		return fmt.Errorf("frame %v does not match stream %dx%d", b, fw.w, fw.h)
	}
	rgba := img
	if img.Stride != fw.w*4 || img.Rect.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, fw.w, fw.h))
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	}
	if _, err := fw.stdin.Write(rgba.Pix); err != nil {
		return fmt.Errorf("write raw error: %w", err)
	}
	return nil
}

func (fw *FFmpegWriter) Close() error {
	fw.stdin.Close()
	if err := fw.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg wait error: %v, output: %s", err, fw.stderr.String())
	}
	return nil
}
