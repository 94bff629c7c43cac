// Package diagram hosts the single animation currently shown for a selected
// pattern and falls back to a placeholder when none can be shown.
package diagram

import (
	"fmt"
	"image"
	"io"
	"log"

	"github.com/ivlev/patternviz/internal/anim"
	"github.com/ivlev/patternviz/internal/assets"
	"github.com/ivlev/patternviz/internal/catalog"
	"github.com/ivlev/patternviz/internal/system"
)

// Option configures a Host.
type Option func(*Host)

// WithFPS sets the tick rate of hosted animations.
func WithFPS(fps int) Option {
	return func(h *Host) { h.fps = fps }
}

// WithLogger routes construction failures to l.
func WithLogger(l *log.Logger) Option {
	return func(h *Host) { h.logger = l }
}

// Host owns at most one live animation and the frame it last published.
type Host struct {
	sched  anim.Scheduler
	loader assets.Loader
	fps    int
	logger *log.Logger

	w, h        int
	current     *anim.Animation
	initial     anim.Timer
	frame       *image.RGBA
	placeholder string
}

func NewHost(sched anim.Scheduler, loader assets.Loader, opts ...Option) *Host {
	h := &Host{
		sched:  sched,
		loader: loader,
		fps:    anim.DefaultFPS,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Size implements anim.Viewport.
func (h *Host) Size() (int, int) {
	return h.w, h.h
}

// Publish implements anim.Viewport. The previous frame goes back to the pool.
func (h *Host) Publish(frame *image.RGBA) {
	if h.frame != nil && h.frame != frame {
		system.PutFrame(h.frame)
	}
	h.frame = frame
}

// SelectPattern shows the animation registered for p.Name.
func (h *Host) SelectPattern(p catalog.Pattern) {
	h.SelectName(p.Name)
}

// SelectName tears down the current animation before anything else, then
// builds the one registered for name. Unknown names and construction
// failures leave the placeholder text instead.
func (h *Host) SelectName(name string) {
	h.clear()

	id, ok := anim.Lookup(name)
	if !ok {
		h.placeholder = notFound(name)
		return
	}

	ch, err := anim.NewChoreography(id)
	if err == nil {
		var a *anim.Animation
		a, err = anim.New(h, h.sched, h.loader, ch, anim.WithFPS(h.fps))
		if err == nil {
			h.current = a
			h.initial = h.sched.After(0, func() {
				h.initial = nil
				if h.current == a {
					a.Resize()
				}
			})
			return
		}
	}
	h.logger.Printf("[!] diagram: %v", err)
	h.placeholder = notFound(name)
}

func notFound(name string) string {
	return fmt.Sprintf("Diagram for %s not found", anim.Key(name))
}

func (h *Host) clear() {
	if h.initial != nil {
		h.initial.Stop()
		h.initial = nil
	}
	if h.current != nil {
		h.current.Destroy()
		h.current = nil
	}
	if h.frame != nil {
		system.PutFrame(h.frame)
		h.frame = nil
	}
	h.placeholder = ""
}

// OnHostResize records the new drawable size and re-lays the live animation
// out. Degenerate sizes are ignored.
func (h *Host) OnHostResize(w, hh int) {
	if w <= 0 || hh <= 0 {
		return
	}
	h.w, h.h = w, hh
	if h.current != nil {
		h.current.Resize()
	}
}

// Close destroys the live animation and drops the last frame.
func (h *Host) Close() {
	h.clear()
}

// Active reports whether an animation is live.
func (h *Host) Active() bool {
	return h.current != nil
}

func (h *Host) Animation() *anim.Animation {
	return h.current
}

// Frame is the last published frame, or nil.
func (h *Host) Frame() *image.RGBA {
	return h.frame
}

// Placeholder is the text shown instead of a diagram, or "".
func (h *Host) Placeholder() string {
	return h.placeholder
}

// TogglePause holds or releases the live animation on the viewer's behalf.
// It reports whether the animation is now held. An automatic pause is not
// affected by holding; it completes when the hold is released.
func (h *Host) TogglePause() bool {
	if h.current == nil {
		return false
	}
	if h.current.Status().Held {
		h.current.Release()
		return false
	}
	h.current.Hold()
	return true
}
