package anim

import (
	"bytes"
	"errors"
	"image"
	"testing"
	"testing/fstest"
	"time"

	"github.com/ivlev/patternviz/internal/assets"
	"github.com/ivlev/patternviz/internal/canvas"
	"github.com/ivlev/patternviz/internal/geom"
	"github.com/ivlev/patternviz/internal/system"
)

type testViewport struct {
	w, h      int
	published int
	last      *image.RGBA
}

func (v *testViewport) Size() (int, int) { return v.w, v.h }

func (v *testViewport) Publish(img *image.RGBA) {
	if v.last != nil {
		system.PutFrame(v.last)
	}
	v.last = img
	v.published++
}

func newTestAnimation(t *testing.T, id PatternID, w, h int) (*Animation, *ManualScheduler, *testViewport) {
	t.Helper()
	vp := &testViewport{w: w, h: h}
	sched := NewManualScheduler()
	ch, err := NewChoreography(id)
	if err != nil {
		t.Fatalf("NewChoreography(%v): %v", id, err)
	}
	a, err := New(vp, sched, assets.Default(), ch)
	if err != nil {
		t.Fatalf("New(%v): %v", id, err)
	}
	t.Cleanup(a.Destroy)
	return a, sched, vp
}

func steps(t *testing.T, sched *ManualScheduler, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if !sched.Step() {
			t.Fatalf("scheduler ran dry after %d of %d steps", i, n)
		}
	}
}

func TestRegistryLookup(t *testing.T) {
	tests := []struct {
		name string
		want PatternID
		ok   bool
	}{
		{"Singleton", Singleton, true},
		{"factory method", FactoryMethod, true},
		{"  Abstract Factory ", AbstractFactory, true},
		{"STATE", State, true},
		{"Flyweight", Flyweight, true},
		{"Visitor", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.name)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("Lookup(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}

	if len(Patterns()) != 13 {
		t.Errorf("registry has %d patterns, want 13", len(Patterns()))
	}
	if _, err := NewChoreography(PatternID(42)); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestEveryPatternRendersAFrame(t *testing.T) {
	for _, id := range Patterns() {
		t.Run(id.String(), func(t *testing.T) {
			a, sched, vp := newTestAnimation(t, id, 640, 360)
			if a.Pattern() != id {
				t.Errorf("Pattern() = %v", a.Pattern())
			}
			if got := a.Choreography().Spec().Pattern; got != id {
				t.Errorf("Spec().Pattern = %v", got)
			}
			steps(t, sched, 3)
			if vp.published != 3 {
				t.Fatalf("published %d frames, want 3", vp.published)
			}
			if vp.last.Bounds() != image.Rect(0, 0, 640, 360) {
				t.Errorf("frame bounds = %v", vp.last.Bounds())
			}
		})
	}
}

func TestLoopWrap(t *testing.T) {
	for _, id := range Patterns() {
		ch, _ := NewChoreography(id)
		spec := ch.Spec()
		if spec.LoopLength == 0 {
			continue
		}
		t.Run(id.String(), func(t *testing.T) {
			a, sched, _ := newTestAnimation(t, id, 160, 90)

			steps(t, sched, spec.LoopLength)
			if st := a.Status(); st.Frame != spec.LoopLength || st.Phase != 0 {
				t.Fatalf("before wrap: %+v", st)
			}

			steps(t, sched, 1)
			wantPhase := 0
			if spec.Phases > 1 {
				wantPhase = 1
			}
			if st := a.Status(); st.Frame != 0 || st.Phase != wantPhase {
				t.Errorf("after wrap: %+v, want frame 0 phase %d", st, wantPhase)
			}
		})
	}
}

func TestStatePhaseRotation(t *testing.T) {
	a, sched, _ := newTestAnimation(t, State, 160, 90)
	for want := 1; want <= 4; want++ {
		steps(t, sched, lightDuration)
		if got := a.Status().Phase; got != want%3 {
			t.Fatalf("after %d lights: phase %d, want %d", want, got, want%3)
		}
	}
}

func TestResizeKeepsStatus(t *testing.T) {
	a, sched, vp := newTestAnimation(t, Proxy, 640, 360)
	steps(t, sched, 57)
	before := a.Status()

	for _, sz := range [][2]int{{800, 600}, {0, 0}, {-4, 100}, {100, 0}, {1280, 720}, {33, 17}} {
		vp.w, vp.h = sz[0], sz[1]
		a.Resize()
		if got := a.Status(); got != before {
			t.Fatalf("resize %v changed status: %+v -> %+v", sz, before, got)
		}
	}
	if st := a.Stage(); st.W != 33 || st.H != 17 {
		t.Errorf("stage = %dx%d, want 33x17", st.W, st.H)
	}

	vp.w, vp.h = 0, 0
	a.Resize()
	if st := a.Stage(); st.W != 33 {
		t.Errorf("degenerate resize replaced the stage: %+v", st)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() ([]Status, []byte) {
		a, sched, vp := newTestAnimation(t, Bridge, 320, 180)
		var trace []Status
		for i := 0; i < 260; i++ {
			steps(t, sched, 1)
			trace = append(trace, a.Status())
		}
		return trace, bytes.Clone(vp.last.Pix)
	}

	t1, px1 := run()
	t2, px2 := run()
	for i := range t1 {
		if t1[i] != t2[i] {
			t.Fatalf("tick %d: %+v != %+v", i, t1[i], t2[i])
		}
	}
	if !bytes.Equal(px1, px2) {
		t.Error("final frames differ between runs")
	}
}

func TestSingletonConvergesPausesAndResets(t *testing.T) {
	a, sched, _ := newTestAnimation(t, Singleton, 1280, 720)
	c := a.Choreography().(*singleton)

	target := c.target(a.Stage())
	c.doc1 = target.Sub(image.Pt(200, 0))
	c.doc2 = target.Add(image.Pt(0, 200))

	steps(t, sched, 39)
	if a.Status().Paused {
		t.Fatal("paused before arrival")
	}
	if c.doc1 == target || c.doc2 == target {
		t.Fatalf("arrived early: %v %v", c.doc1, c.doc2)
	}

	steps(t, sched, 1)
	if c.doc1 != target || c.doc2 != target {
		t.Fatalf("tick 40: docs at %v %v, want %v", c.doc1, c.doc2, target)
	}
	st := a.Status()
	if !st.Paused || st.Frame != 40 {
		t.Fatalf("tick 40: status %+v, want paused at frame 40", st)
	}

	pausedAt := sched.Now()
	steps(t, sched, 1)
	if got := sched.Now() - pausedAt; got != singletonPause {
		t.Errorf("resumed after %v, want %v", got, singletonPause)
	}
	st = a.Status()
	if st.Paused || st.Frame != 0 {
		t.Errorf("after resume: %+v", st)
	}
	if want := c.man.Add(image.Pt(80, 40)); c.doc1 != want {
		t.Errorf("doc1 reset to %v, want %v", c.doc1, want)
	}

	// Back to normal ticking.
	steps(t, sched, 5)
	if a.Status().Frame != 5 {
		t.Errorf("frame = %d after 5 ticks", a.Status().Frame)
	}
}

func TestSingletonUsesExactArrival(t *testing.T) {
	a, sched, _ := newTestAnimation(t, Singleton, 1280, 720)
	c := a.Choreography().(*singleton)
	target := c.target(a.Stage())

	c.doc1 = target.Sub(image.Pt(2, 0))
	c.doc2 = target.Sub(image.Pt(200, 0))
	steps(t, sched, 1)
	if a.Status().Paused {
		t.Error("paused while one document is still travelling")
	}
}

func TestAdapterPhases(t *testing.T) {
	a, sched, _ := newTestAnimation(t, Adapter, 640, 360)

	for i := 1; i <= 200; i++ {
		steps(t, sched, 1)
		if st := a.Status(); st.Phase != adapterDirect || st.Frame != i {
			t.Fatalf("tick %d: %+v", i, st)
		}
	}
	steps(t, sched, 1)
	if st := a.Status(); st.Frame != 0 || st.Phase != adapterAdapted {
		t.Fatalf("tick 201: %+v, want frame 0 phase 1", st)
	}
	steps(t, sched, 201)
	if st := a.Status(); st.Phase != adapterDirect {
		t.Errorf("second wrap: %+v", st)
	}
}

// plateInk counts painted, red and green pixels of img inside r.
func plateInk(img *image.RGBA, r image.Rectangle) (painted, red, green int) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.A == 0 {
				continue
			}
			painted++
			switch {
			case c.R > 150 && c.G < 80:
				red++
			case c.G > 150 && c.R < 80:
				green++
			}
		}
	}
	return painted, red, green
}

func TestAdapterMessages(t *testing.T) {
	a, sched, vp := newTestAnimation(t, Adapter, 640, 360)
	c := a.Choreography().(*adapter)
	socket := image.Rectangle{Min: c.eu, Max: c.eu.Add(a.Stage().Size(140, 120))}
	below := image.Rect(socket.Min.X, socket.Max.Y+2, socket.Max.X, socket.Max.Y+40)

	// Tick n publishes the frame drawn with counter n-1.
	tests := []struct {
		tick  int
		phase int
		frame int
		red   bool
		green bool
	}{
		{101, adapterDirect, 100, false, false},
		{102, adapterDirect, 101, true, false},
		{201, adapterDirect, 200, true, false},
		{322, adapterAdapted, 120, false, false},
		{323, adapterAdapted, 121, false, true},
	}

	ticks := 0
	for _, tt := range tests {
		steps(t, sched, tt.tick-ticks)
		ticks = tt.tick

		painted, red, green := plateInk(vp.last, below)
		if got := painted > 0; got != (tt.red || tt.green) {
			t.Errorf("phase %d frame %d: painted=%d under the socket", tt.phase, tt.frame, painted)
		}
		if (red > 0) != tt.red || (green > 0) != tt.green {
			t.Errorf("phase %d frame %d: red=%d green=%d, want red=%v green=%v",
				tt.phase, tt.frame, red, green, tt.red, tt.green)
		}
	}
}

func TestPauseResume(t *testing.T) {
	a, sched, vp := newTestAnimation(t, Composite, 320, 180)
	steps(t, sched, 10)

	a.Pause()
	if !a.Status().Paused || sched.Pending() != 0 {
		t.Fatalf("pause left %d timers, status %+v", sched.Pending(), a.Status())
	}
	a.Tick()
	if vp.published != 10 {
		t.Errorf("paused animation published a frame")
	}

	a.Resume(false)
	steps(t, sched, 1)
	if got := a.Status().Frame; got != 11 {
		t.Errorf("frame after resume = %d, want 11", got)
	}

	a.Pause()
	a.Resume(true)
	if got := a.Status().Frame; got != 0 {
		t.Errorf("frame after reset resume = %d, want 0", got)
	}
}

func TestDestroy(t *testing.T) {
	a, sched, vp := newTestAnimation(t, Facade, 320, 180)
	steps(t, sched, 2)

	a.Destroy()
	a.Destroy()
	if sched.Pending() != 0 {
		t.Errorf("%d timers alive after Destroy", sched.Pending())
	}
	a.Tick()
	a.Resume(true)
	if vp.published != 2 || sched.Pending() != 0 {
		t.Errorf("destroyed animation kept running")
	}

	var nilAnim *Animation
	nilAnim.Destroy()
}

func TestMissingAssetFailsConstruction(t *testing.T) {
	sched := NewManualScheduler()
	ch, _ := NewChoreography(Singleton)
	_, err := New(&testViewport{w: 100, h: 100}, sched, assets.Loader{FS: fstest.MapFS{}}, ch)
	if !errors.Is(err, assets.ErrMissingAsset) {
		t.Fatalf("got %v, want ErrMissingAsset", err)
	}
	if sched.Pending() != 0 {
		t.Error("failed construction started a timer")
	}
}

// ghost draws a sprite that is not part of its asset set and counts resets.
type ghost struct {
	resets int
	drew   bool
}

func (g *ghost) Spec() Spec {
	return Spec{
		Pattern:    Prototype,
		AssetDir:   "creational/prototype",
		Assets:     []assets.Spec{{Name: "key", File: "key.png"}},
		LoopLength: 3,
		Phases:     1,
	}
}

func (g *ghost) Layout(geom.Stage) {}

func (g *ghost) Reset(geom.Stage) { g.resets++ }

func (g *ghost) Draw(sc *Scene) {
	r := sc.Blit("phantom", 50, 50, image.Pt(0, 0))
	g.drew = r.Dx() == 50
	sc.Arrow(image.Pt(0, 0), image.Pt(0, 0), sc.Frame, canvas.White)
}

func TestAbsentSpriteIsSkippedAndResetHookRuns(t *testing.T) {
	vp := &testViewport{w: 100, h: 100}
	sched := NewManualScheduler()
	g := &ghost{}
	a, err := New(vp, sched, assets.Default(), g)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Destroy()

	if g.resets != 1 {
		t.Errorf("resets after construction = %d, want 1", g.resets)
	}
	steps(t, sched, 4)
	if !g.drew {
		t.Error("Blit did not report the element rectangle")
	}
	for _, b := range vp.last.Pix {
		if b != 0 {
			t.Fatal("absent sprite was drawn")
		}
	}
	if g.resets != 2 {
		t.Errorf("resets after wrap = %d, want 2", g.resets)
	}
}

func TestWithFPS(t *testing.T) {
	vp := &testViewport{w: 64, h: 36}
	sched := NewManualScheduler()
	ch, _ := NewChoreography(Bridge)
	a, err := New(vp, sched, assets.Default(), ch, WithFPS(10))
	if err != nil {
		t.Fatal(err)
	}
	defer a.Destroy()

	if n := sched.Advance(time.Second); n != 10 {
		t.Errorf("10 fps fired %d ticks in one second", n)
	}
}

func TestSceneOffsetScales(t *testing.T) {
	tests := []struct {
		w, h   int
		dx, dy int
		want   image.Point
	}{
		{1280, 720, 100, -20, image.Pt(100, -20)},
		{640, 360, 100, -20, image.Pt(50, -10)},
		{2560, 720, 0, 30, image.Pt(0, 30)},
		{2560, 1440, 15, 30, image.Pt(30, 60)},
	}
	for _, tt := range tests {
		sc := &Scene{Stage: geom.NewStage(tt.w, tt.h)}
		if got := sc.Offset(tt.dx, tt.dy); got != tt.want {
			t.Errorf("%dx%d Offset(%d, %d) = %v, want %v", tt.w, tt.h, tt.dx, tt.dy, got, tt.want)
		}
	}
}
