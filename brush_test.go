package ink

import (
	"errors"
	"strings"
	"testing"
)

func TestBrushStroke_PressureWidth(t *testing.T) {
	samples := []Sample{
		{Pos: Pt(0, 0), Pressure: 1},
		{Pos: Pt(10, 0), Pressure: 0.5},
	}
	b := NewBrushStroke(samples, 4, RGB(0, 0, 0))

	got, err := b.SVGFragment(Pt(0, 0))
	if err != nil {
		t.Fatalf("SVGFragment() error = %v", err)
	}
	// Mean pressure 0.75 scales the base width 4 down to 3.
	if !strings.Contains(got, `stroke-width="3"`) {
		t.Errorf("SVGFragment() = %s, want stroke-width=\"3\"", got)
	}
}

func TestBrushStroke_SVGFragment_Smoothed(t *testing.T) {
	samples := []Sample{
		{Pos: Pt(0, 0), Pressure: 1},
		{Pos: Pt(10, 10), Pressure: 1},
		{Pos: Pt(20, 0), Pressure: 1},
	}
	b := NewBrushStroke(samples, 2, RGB(1, 0, 0))

	got, err := b.SVGFragment(Pt(0, 0))
	if err != nil {
		t.Fatalf("SVGFragment() error = %v", err)
	}
	want := `<path d="M 0 0 Q 10 10 15 5 L 20 0" fill="none" stroke="#ff0000" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"/>`
	if got != want {
		t.Errorf("SVGFragment() =\n%s\nwant\n%s", got, want)
	}
}

func TestBrushStroke_SVGFragment_Dot(t *testing.T) {
	samples := []Sample{{Pos: Pt(5, 5), Pressure: 0.5}}
	b := NewBrushStroke(samples, 4, RGB(1, 0, 0))

	got, err := b.SVGFragment(Pt(0, 0))
	if err != nil {
		t.Fatalf("SVGFragment() error = %v", err)
	}
	// Base width 4 at pressure 0.5 gives radius 1.
	want := `<circle cx="5" cy="5" r="1" fill="#ff0000"/>`
	if got != want {
		t.Errorf("SVGFragment() = %s, want %s", got, want)
	}
}

func TestBrushStroke_SVGFragment_Offset(t *testing.T) {
	samples := []Sample{
		{Pos: Pt(10, 10), Pressure: 1},
		{Pos: Pt(20, 20), Pressure: 1},
	}
	b := NewBrushStroke(samples, 2, RGB(0, 0, 0))

	got, err := b.SVGFragment(Pt(-10, -10))
	if err != nil {
		t.Fatalf("SVGFragment() error = %v", err)
	}
	if !strings.Contains(got, `d="M 0 0 L 10 10"`) {
		t.Errorf("SVGFragment() = %s, want path shifted to origin", got)
	}
}

func TestBrushStroke_SVGFragment_Empty(t *testing.T) {
	b := NewBrushStroke(nil, 2, RGB(0, 0, 0))
	_, err := b.SVGFragment(Pt(0, 0))
	if !errors.Is(err, ErrEmptyStroke) {
		t.Errorf("SVGFragment() error = %v, want ErrEmptyStroke", err)
	}
}

func TestBrushStroke_HitboxesAndBounds(t *testing.T) {
	samples := []Sample{
		{Pos: Pt(0, 0), Pressure: 1},
		{Pos: Pt(10, 5), Pressure: 0.8},
		{Pos: Pt(20, 0), Pressure: 0.6},
	}
	b := NewBrushStroke(samples, 2, RGB(0, 0, 0))

	if !b.HasHitboxes() {
		t.Fatal("HasHitboxes() = false, want true")
	}
	if got := b.Hitboxes(); len(got) != 2 {
		t.Fatalf("len(Hitboxes()) = %d, want 2", len(got))
	}
	if !rectsEqual(b.Bounds(), R(0, 0, 20, 5)) {
		t.Errorf("Bounds() = %+v, want %+v", b.Bounds(), R(0, 0, 20, 5))
	}
}

func TestBrushStroke_ResizeKeepsPressure(t *testing.T) {
	samples := []Sample{
		{Pos: Pt(0, 0), Pressure: 0.3},
		{Pos: Pt(10, 10), Pressure: 0.9},
	}
	b := NewBrushStroke(samples, 2, RGB(0, 0, 0))

	target := R(0, 0, 20, 20)
	b.Resize(target)

	if !rectsEqual(b.Bounds(), target) {
		t.Errorf("Bounds() = %+v, want %+v", b.Bounds(), target)
	}
	got := b.Samples()
	if got[0].Pressure != 0.3 || got[1].Pressure != 0.9 {
		t.Errorf("pressures = %v, %v; want 0.3, 0.9", got[0].Pressure, got[1].Pressure)
	}
	if !pointsEqual(got[1].Pos, Pt(20, 20)) {
		t.Errorf("samples[1] = %+v, want (20,20)", got[1].Pos)
	}
}

func TestBrushStroke_Clone(t *testing.T) {
	samples := []Sample{
		{Pos: Pt(0, 0), Pressure: 1},
		{Pos: Pt(10, 10), Pressure: 1},
	}
	orig := NewBrushStroke(samples, 2, RGB(0, 0, 0))
	clone := orig.Clone()

	orig.Resize(R(0, 0, 100, 100))

	if !rectsEqual(clone.Bounds(), R(0, 0, 10, 10)) {
		t.Errorf("clone bounds = %+v, want untouched %+v", clone.Bounds(), R(0, 0, 10, 10))
	}
}
