package geom

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestMoveTowardsConverges(t *testing.T) {
	tests := []struct {
		cur, target, step int
	}{
		{0, 200, 5},
		{200, 0, 5},
		{0, 7, 3},
		{-10, 13, 4},
		{5, 5, 1},
		{0, 1, 100},
	}

	for _, tt := range tests {
		dist := tt.target - tt.cur
		if dist < 0 {
			dist = -dist
		}
		want := (dist + tt.step - 1) / tt.step

		cur := tt.cur
		calls := 0
		for cur != tt.target {
			next := MoveTowards(cur, tt.target, tt.step)
			if tt.cur < tt.target && next > tt.target || tt.cur > tt.target && next < tt.target {
				t.Fatalf("overshoot: %d -> %d (target %d)", cur, next, tt.target)
			}
			cur = next
			calls++
			if calls > dist+1 {
				t.Fatalf("no convergence from %d to %d", tt.cur, tt.target)
			}
		}
		if calls != want {
			t.Errorf("MoveTowards(%d -> %d, step %d): %d calls, want %d", tt.cur, tt.target, tt.step, calls, want)
		}
	}
}

func TestMoveTowardsNonPositiveStep(t *testing.T) {
	if got := MoveTowards(3, 10, 0); got != 3 {
		t.Errorf("step 0: got %d, want 3", got)
	}
	if got := MoveTowards(3, 10, -2); got != 3 {
		t.Errorf("step -2: got %d, want 3", got)
	}
}

func TestMoveLinear(t *testing.T) {
	start := image.Pt(100, 50)
	vel := image.Pt(4, 0)
	offset := image.Pt(300, 0)

	if got := MoveLinear(start, vel, 0, 60, offset); got != start {
		t.Errorf("frame 0: got %v", got)
	}
	if got := MoveLinear(start, vel, 10, 60, offset); got != image.Pt(140, 50) {
		t.Errorf("frame 10: got %v", got)
	}
	if got := MoveLinear(start, vel, 59, 60, offset); got != image.Pt(336, 50) {
		t.Errorf("frame 59: got %v", got)
	}
	for _, f := range []int{60, 61, 500} {
		if got := MoveLinear(start, vel, f, 60, offset); got != image.Pt(400, 50) {
			t.Errorf("frame %d: got %v, want snapped (400,50)", f, got)
		}
	}
}

func TestAnchorPoint(t *testing.T) {
	r := image.Rect(10, 20, 110, 80)
	tests := []struct {
		name string
		want image.Point
	}{
		{"center", image.Pt(60, 50)},
		{"top", image.Pt(60, 20)},
		{"midtop", image.Pt(60, 20)},
		{"bottom", image.Pt(60, 80)},
		{"MidBottom", image.Pt(60, 80)},
		{"midleft", image.Pt(10, 50)},
		{"midright", image.Pt(110, 50)},
		{"topleft", image.Pt(10, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AnchorByName(r, tt.name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnchorUnknown(t *testing.T) {
	_, err := ParseAnchor("northwest")
	if !errors.Is(err, ErrUnknownAnchor) {
		t.Fatalf("expected ErrUnknownAnchor, got %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range anchor")
		}
	}()
	AnchorPoint(image.Rect(0, 0, 10, 10), Anchor(99))
}

func TestStage(t *testing.T) {
	s := NewStage(640, 360)
	if s.Sx != 0.5 || s.Sy != 0.5 {
		t.Fatalf("scale = %v,%v, want 0.5,0.5", s.Sx, s.Sy)
	}
	if got := s.X(0.5, -75); got != 282 {
		t.Errorf("X = %d, want 282", got)
	}
	if got := s.Y(1, -250); got != 235 {
		t.Errorf("Y = %d, want 235", got)
	}
	if got := s.Size(150, 200); got != image.Pt(75, 100) {
		t.Errorf("Size = %v", got)
	}
	if got := NewStage(1, 1).Size(60, 80); got != image.Pt(1, 1) {
		t.Errorf("tiny stage Size = %v, want 1x1", got)
	}
	if (Stage{}).Valid() {
		t.Error("zero stage reported valid")
	}
}

func TestScaleImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}

	dst := ScaleImage(src, 60, 80, 0.5, 0.25, Linear)
	if dst.Bounds().Dx() != 30 || dst.Bounds().Dy() != 20 {
		t.Fatalf("scaled bounds = %v, want 30x20", dst.Bounds())
	}
	if c := dst.RGBAAt(15, 10); c != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("center pixel = %v", c)
	}

	nn := ScaleImage(src, 8, 8, 1, 1, Nearest)
	if nn.Bounds().Dx() != 8 {
		t.Errorf("nearest bounds = %v", nn.Bounds())
	}
}
