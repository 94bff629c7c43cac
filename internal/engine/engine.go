// Package engine renders pattern animations headlessly into files.
package engine

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/patternviz/internal/anim"
	"github.com/ivlev/patternviz/internal/assets"
	"github.com/ivlev/patternviz/internal/config"
	"github.com/ivlev/patternviz/internal/diagram"
	"github.com/ivlev/patternviz/internal/system"
	"github.com/ivlev/patternviz/internal/video"
)

var ErrUnknownPattern = errors.New("unknown pattern")

// Project exports one file per requested pattern.
type Project struct {
	Config *config.Config
	Loader assets.Loader

	// Out receives progress lines; nil silences them.
	Out io.Writer
	// Probe names the best local H.264 encoder. Run calls it at most once,
	// and only for outputs that go through ffmpeg.
	Probe func() string

	frames atomic.Int64
}

func NewProject(cfg *config.Config, loader assets.Loader) *Project {
	return &Project{Config: cfg, Loader: loader, Out: os.Stdout, Probe: system.GetBestH264Encoder}
}

// Result describes one exported file.
type Result struct {
	Pattern anim.PatternID
	Path    string
	Frames  int
}

func (p *Project) printf(format string, args ...any) {
	if p.Out != nil {
		fmt.Fprintf(p.Out, format, args...)
	}
}

// ResolvePatterns maps names to registered patterns. An empty list selects
// every pattern.
func ResolvePatterns(names []string) ([]anim.PatternID, error) {
	if len(names) == 0 {
		return anim.Patterns(), nil
	}
	ids := make([]anim.PatternID, 0, len(names))
	seen := make(map[anim.PatternID]bool)
	for _, n := range names {
		id, ok := anim.Lookup(strings.ReplaceAll(n, "_", " "))
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, n)
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// OutputPath returns where pattern id is written. With more than one pattern
// the slug is appended to the base name.
func OutputPath(base string, id anim.PatternID, multi bool) string {
	if !multi {
		return base
	}
	ext := filepath.Ext(base)
	if ext == "" {
		return filepath.Join(base, id.Slug())
	}
	return strings.TrimSuffix(base, ext) + "_" + id.Slug() + ext
}

// Run exports every configured pattern in parallel, at most Workers at a time.
func (p *Project) Run(ctx context.Context) ([]Result, error) {
	cfg := p.Config
	if err := cfg.ValidateExport(); err != nil {
		return nil, err
	}
	ids, err := ResolvePatterns(cfg.Export.Patterns)
	if err != nil {
		return nil, err
	}
	if _, err := video.FormatFor(cfg.Export.Output); err != nil {
		return nil, err
	}

	startTime := time.Now()
	p.frames.Store(0)

	fmt.Fprintln(p.outOrDiscard(), "--- [PATTERNVIZ: EXPORT] ---")
	p.printf("[*] Паттернов: %d | Кадров на паттерн: %d\n", len(ids), cfg.Export.Frames)
	p.printf("[*] Разрешение: %dx%d @ %d FPS | Воркеров: %d\n", cfg.Export.Width, cfg.Export.Height, cfg.FPS, cfg.Export.Workers)
	fmt.Fprintln(p.outOrDiscard(), "-----------------------------")

	encoder := p.resolveEncoder(cfg.Export.Output)
	results := make([]Result, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Export.Workers)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			path := OutputPath(cfg.Export.Output, id, len(ids) > 1)
			n, err := p.export(ctx, id, path, encoder)
			if err != nil {
				return fmt.Errorf("%s: %w", id, err)
			}
			results[i] = Result{Pattern: id, Path: path, Frames: n}
			p.printf("[>] Ready: %s -> %s\n", id, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if cfg.ShowStats {
		p.report(time.Since(startTime))
	}
	return results, nil
}

func (p *Project) outOrDiscard() io.Writer {
	if p.Out == nil {
		return io.Discard
	}
	return p.Out
}

func (p *Project) export(ctx context.Context, id anim.PatternID, path, encoder string) (int, error) {
	cfg := p.Config
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, err
		}
	}
	w, err := video.Open(ctx, path, video.Params{
		Width:   cfg.Export.Width,
		Height:  cfg.Export.Height,
		FPS:     cfg.FPS,
		Encoder: encoder,
		Quality: cfg.Export.Quality,
	})
	if err != nil {
		return 0, err
	}

	n, err := p.Record(ctx, id, cfg.Export.Frames, w.WriteFrame)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return n, err
}

// resolveEncoder picks the ffmpeg encoder for output. "" leaves the choice
// to the video package.
func (p *Project) resolveEncoder(output string) string {
	if enc := p.Config.Export.VideoEncoder; enc != "" {
		return enc
	}
	if p.Probe == nil || !video.NeedsProbe(output) {
		return ""
	}
	enc := p.Probe()
	if enc != "libx264" {
		p.printf("[*] Обнаружено аппаратное ускорение: %s\n", enc)
	}
	return enc
}

// Record plays pattern id for frames ticks of virtual time and hands every
// displayed frame to sink. Frames held during a pause are repeated.
func (p *Project) Record(ctx context.Context, id anim.PatternID, frames int, sink func(*image.RGBA) error) (int, error) {
	cfg := p.Config
	sched := anim.NewManualScheduler()
	host := diagram.NewHost(sched, p.Loader, diagram.WithFPS(cfg.FPS))
	defer host.Close()

	host.OnHostResize(cfg.Export.Width, cfg.Export.Height)
	host.SelectName(id.String())
	if !host.Active() {
		return 0, errors.New(host.Placeholder())
	}

	period := time.Second / time.Duration(cfg.FPS)
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		sched.Advance(period)
		frame := host.Frame()
		if frame == nil {
			return i, fmt.Errorf("no frame after tick %d", i)
		}
		if err := sink(frame); err != nil {
			return i, err
		}
		p.frames.Add(1)
	}
	return frames, nil
}

func (p *Project) report(total time.Duration) {
	frames := p.frames.Load()
	fps := float64(frames) / total.Seconds()

	stats, err := system.CurrentStats()
	if err != nil {
		p.printf("[!] Не удалось получить статистику процесса: %v\n", err)
	}
	p.printf("--- [PERFORMANCE REPORT] ---\n"+
		"Build: %s\n"+
		"Total Time: %.2fs\n"+
		"Frames: %d\n"+
		"Effective FPS: %.2f\n"+
		"Process: %s\n"+
		"----------------------------\n",
		p.Config.BuildVersion, total.Seconds(), frames, fps, stats)
}
