// Package anim is the frame-driven animation engine behind every pattern
// diagram. An Animation owns one Choreography, drives it from a periodic
// timer and publishes each finished frame to a Viewport.
package anim

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/ivlev/patternviz/internal/assets"
	"github.com/ivlev/patternviz/internal/canvas"
	"github.com/ivlev/patternviz/internal/geom"
)

const DefaultFPS = 60

// Viewport is the drawable region an animation renders into.
type Viewport interface {
	Size() (w, h int)
	// Publish hands a finished frame to the viewport, which owns it from then on.
	Publish(frame *image.RGBA)
}

// Status is the mutable progress of a running animation.
type Status struct {
	Frame  int
	Phase  int
	Paused bool
	// Held is a pause requested by the viewer, independent of Paused.
	Held bool
}

// Spec is the fixed configuration of a choreography.
type Spec struct {
	Pattern  PatternID
	AssetDir string
	Assets   []assets.Spec
	// LoopLength is the last frame index before the counter wraps to 0.
	// Zero disables wrapping.
	LoopLength int
	// Phases is the number of alternating phases rotated on every wrap.
	Phases int
}

// Choreography draws one pattern's frames.
type Choreography interface {
	Spec() Spec
	// Layout recomputes absolute positions for a new stage.
	Layout(st geom.Stage)
	// Draw renders the scene for its Frame and Phase.
	Draw(sc *Scene)
}

// Resetter is implemented by choreographies with movable elements. Reset
// puts them back at their starting positions; it runs on loop wrap and when
// the animation resumes with a reset.
type Resetter interface {
	Reset(st geom.Stage)
}

// Option configures an Animation.
type Option func(*Animation)

// WithFPS sets the tick rate.
func WithFPS(fps int) Option {
	return func(a *Animation) {
		if fps > 0 {
			a.fps = fps
		}
	}
}

type spriteKey struct {
	name string
	size image.Point
}

// Animation is the lifecycle shared by every pattern diagram.
type Animation struct {
	vp    Viewport
	sched Scheduler
	ch    Choreography
	spec  Spec
	set   assets.Set
	fonts *canvas.Fonts

	fps    int
	stage  geom.Stage
	status Status

	ticker  Timer
	resumer Timer
	sprites map[spriteKey]*image.RGBA

	// resetOnRelease records an automatic pause interrupted by Hold.
	resetOnRelease bool

	destroyed bool
}

// New loads the choreography's sprites, lays it out for the viewport's
// current size and starts ticking. Asset failures abort construction.
func New(vp Viewport, sched Scheduler, loader assets.Loader, ch Choreography, opts ...Option) (*Animation, error) {
	spec := ch.Spec()
	set, err := loader.Load(spec.AssetDir, spec.Assets)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", spec.Pattern, err)
	}

	a := &Animation{
		vp:      vp,
		sched:   sched,
		ch:      ch,
		spec:    spec,
		set:     set,
		fonts:   canvas.NewFonts(),
		fps:     DefaultFPS,
		sprites: make(map[spriteKey]*image.RGBA),
	}
	for _, opt := range opts {
		opt(a)
	}

	if w, h := vp.Size(); w > 0 && h > 0 {
		a.stage = geom.NewStage(w, h)
		ch.Layout(a.stage)
		if r, ok := ch.(Resetter); ok {
			r.Reset(a.stage)
		}
	}
	a.start()
	return a, nil
}

func (a *Animation) period() time.Duration {
	return time.Second / time.Duration(a.fps)
}

func (a *Animation) start() {
	a.ticker = a.sched.Every(a.period(), a.Tick)
}

func (a *Animation) Pattern() PatternID {
	return a.spec.Pattern
}

func (a *Animation) Status() Status {
	return a.status
}

func (a *Animation) Stage() geom.Stage {
	return a.stage
}

// Choreography returns the pattern-specific part of the animation.
func (a *Animation) Choreography() Choreography {
	return a.ch
}

// Tick renders one frame: draw, advance the counter, apply a pending pause
// or the loop wrap, then publish.
func (a *Animation) Tick() {
	if a.destroyed || a.status.Paused || a.status.Held || !a.stage.Valid() {
		return
	}

	surface := canvas.NewSurface(a.stage.W, a.stage.H, a.fonts, math.Min(a.stage.Sx, a.stage.Sy))
	sc := &Scene{
		Stage: a.stage,
		Frame: a.status.Frame,
		Phase: a.status.Phase,
		anim:  a,
		s:     surface,
	}
	a.ch.Draw(sc)

	a.status.Frame++
	switch {
	case sc.pause > 0:
		a.Pause()
		a.resumer = a.sched.After(sc.pause, func() {
			a.resumer = nil
			a.Resume(true)
		})
	case a.spec.LoopLength > 0 && a.status.Frame > a.spec.LoopLength:
		a.wrap()
	}

	a.vp.Publish(surface.Detach())
}

func (a *Animation) wrap() {
	a.status.Frame = 0
	if a.spec.Phases > 1 {
		a.status.Phase = (a.status.Phase + 1) % a.spec.Phases
	}
	if r, ok := a.ch.(Resetter); ok {
		r.Reset(a.stage)
	}
}

// Resize re-lays the choreography out for the viewport's current size.
// Degenerate sizes are ignored; frame, phase and pause state never change.
func (a *Animation) Resize() {
	if a.destroyed {
		return
	}
	w, h := a.vp.Size()
	if w <= 0 || h <= 0 {
		return
	}
	first := !a.stage.Valid()
	a.stage = geom.NewStage(w, h)
	clear(a.sprites)
	a.ch.Layout(a.stage)
	if first {
		if r, ok := a.ch.(Resetter); ok {
			r.Reset(a.stage)
		}
	}
}

// Pause suspends ticking without tearing the animation down.
func (a *Animation) Pause() {
	if a.destroyed || a.status.Paused {
		return
	}
	a.status.Paused = true
	if a.ticker != nil {
		a.ticker.Stop()
		a.ticker = nil
	}
}

// Resume restarts ticking. With reset the frame counter goes back to 0 and
// movable elements return to their starting positions.
func (a *Animation) Resume(reset bool) {
	if a.destroyed {
		return
	}
	if a.resumer != nil {
		a.resumer.Stop()
		a.resumer = nil
	}
	if reset {
		a.status.Frame = 0
		if r, ok := a.ch.(Resetter); ok && a.stage.Valid() {
			r.Reset(a.stage)
		}
	}
	if !a.status.Paused {
		return
	}
	a.status.Paused = false
	if !a.status.Held {
		a.start()
	}
}

// Hold freezes the animation on the viewer's request. An automatic pause in
// progress is suspended and finishes, with its reset, on Release.
func (a *Animation) Hold() {
	if a.destroyed || a.status.Held {
		return
	}
	a.status.Held = true
	if a.ticker != nil {
		a.ticker.Stop()
		a.ticker = nil
	}
	if a.resumer != nil {
		a.resumer.Stop()
		a.resumer = nil
		a.resetOnRelease = true
	}
}

// Release ends a Hold.
func (a *Animation) Release() {
	if a.destroyed || !a.status.Held {
		return
	}
	a.status.Held = false
	if a.resetOnRelease {
		a.resetOnRelease = false
		a.Resume(true)
		return
	}
	if !a.status.Paused && a.ticker == nil {
		a.start()
	}
}

// Destroy stops every timer the animation holds. It is safe to call more than once.
func (a *Animation) Destroy() {
	if a == nil || a.destroyed {
		return
	}
	a.destroyed = true
	if a.ticker != nil {
		a.ticker.Stop()
		a.ticker = nil
	}
	if a.resumer != nil {
		a.resumer.Stop()
		a.resumer = nil
	}
	clear(a.sprites)
}

// Destroyed reports whether Destroy has run.
func (a *Animation) Destroyed() bool {
	return a.destroyed
}

func (a *Animation) sprite(name string, size image.Point) (*image.RGBA, bool) {
	key := spriteKey{name, size}
	if img, ok := a.sprites[key]; ok {
		return img, true
	}
	src, ok := a.set.Get(name)
	if !ok {
		return nil, false
	}
	img := geom.Resize(src, size.X, size.Y, geom.Linear)
	a.sprites[key] = img
	return img, true
}
