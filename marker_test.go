package ink

import (
	"errors"
	"testing"
)

func markerSamples(points ...Point) []Sample {
	samples := make([]Sample, len(points))
	for i, p := range points {
		samples[i] = Sample{Pos: p, Pressure: 1}
	}
	return samples
}

func TestMarkerStroke_Bounds(t *testing.T) {
	m := NewMarkerStroke(markerSamples(Pt(10, 20), Pt(30, 5), Pt(25, 40)), 2, RGB(0, 0, 0))
	want := R(10, 5, 30, 40)
	if !rectsEqual(m.Bounds(), want) {
		t.Errorf("Bounds() = %+v, want %+v", m.Bounds(), want)
	}
}

func TestMarkerStroke_Hitboxes(t *testing.T) {
	m := NewMarkerStroke(markerSamples(Pt(0, 0), Pt(10, 10), Pt(20, 0)), 2, RGB(0, 0, 0))

	if !m.HasHitboxes() {
		t.Fatal("HasHitboxes() = false, want true")
	}
	boxes := m.Hitboxes()
	if len(boxes) != 2 {
		t.Fatalf("len(Hitboxes()) = %d, want 2", len(boxes))
	}
	if !rectsEqual(boxes[0], R(0, 0, 10, 10)) {
		t.Errorf("boxes[0] = %+v, want %+v", boxes[0], R(0, 0, 10, 10))
	}
	if !rectsEqual(boxes[1], R(10, 0, 20, 10)) {
		t.Errorf("boxes[1] = %+v, want %+v", boxes[1], R(10, 0, 20, 10))
	}
}

func TestMarkerStroke_SingleSample(t *testing.T) {
	m := NewMarkerStroke(markerSamples(Pt(5, 5)), 2, RGB(0, 0, 0))

	// Hitboxes are a property of the kind, not the instance.
	if !m.HasHitboxes() {
		t.Error("HasHitboxes() = false, want true")
	}
	if boxes := m.Hitboxes(); len(boxes) != 0 {
		t.Errorf("len(Hitboxes()) = %d, want 0", len(boxes))
	}
	if !rectsEqual(m.Bounds(), R(5, 5, 5, 5)) {
		t.Errorf("Bounds() = %+v, want zero-extent box at (5,5)", m.Bounds())
	}
}

func TestMarkerStroke_Translate(t *testing.T) {
	m := NewMarkerStroke(markerSamples(Pt(0, 0), Pt(10, 10)), 2, RGB(0, 0, 0))
	m.Translate(Pt(5, -5))

	if !rectsEqual(m.Bounds(), R(5, -5, 15, 5)) {
		t.Errorf("Bounds() = %+v, want %+v", m.Bounds(), R(5, -5, 15, 5))
	}
	samples := m.Samples()
	if !pointsEqual(samples[0].Pos, Pt(5, -5)) || !pointsEqual(samples[1].Pos, Pt(15, 5)) {
		t.Errorf("samples = %+v, want shifted by (5,-5)", samples)
	}
	if boxes := m.Hitboxes(); !rectsEqual(boxes[0], R(5, -5, 15, 5)) {
		t.Errorf("hitbox = %+v, want %+v", boxes[0], R(5, -5, 15, 5))
	}
}

func TestMarkerStroke_Resize(t *testing.T) {
	m := NewMarkerStroke(markerSamples(Pt(0, 0), Pt(5, 10), Pt(10, 0)), 3, RGB(0, 0, 0))

	target := R(100, 100, 120, 140)
	m.Resize(target)

	if !rectsEqual(m.Bounds(), target) {
		t.Errorf("Bounds() = %+v, want %+v", m.Bounds(), target)
	}
	samples := m.Samples()
	if !pointsEqual(samples[0].Pos, Pt(100, 100)) {
		t.Errorf("samples[0] = %+v, want (100,100)", samples[0].Pos)
	}
	if !pointsEqual(samples[1].Pos, Pt(110, 140)) {
		t.Errorf("samples[1] = %+v, want (110,140)", samples[1].Pos)
	}
	if !pointsEqual(samples[2].Pos, Pt(120, 100)) {
		t.Errorf("samples[2] = %+v, want (120,100)", samples[2].Pos)
	}
	// Width is a render attribute, not geometry.
	if m.Width() != 3 {
		t.Errorf("Width() = %v, want 3 after resize", m.Width())
	}
}

func TestMarkerStroke_SVGFragment(t *testing.T) {
	tests := []struct {
		name   string
		stroke *MarkerStroke
		offset Point
		expect string
	}{
		{
			name:   "basic path",
			stroke: NewMarkerStroke(markerSamples(Pt(1, 2), Pt(3, 4)), 2, RGB(1, 0, 0)),
			offset: Pt(0, 0),
			expect: `<path d="M 1 2 L 3 4" fill="none" stroke="#ff0000" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"/>`,
		},
		{
			name:   "offset applied",
			stroke: NewMarkerStroke(markerSamples(Pt(10, 10), Pt(20, 10)), 1, RGB(0, 0, 0)),
			offset: Pt(-10, -10),
			expect: `<path d="M 0 0 L 10 0" fill="none" stroke="#000000" stroke-width="1" stroke-linecap="round" stroke-linejoin="round"/>`,
		},
		{
			name:   "translucent stroke",
			stroke: NewMarkerStroke(markerSamples(Pt(0, 0), Pt(1, 1)), 2, RGBA{R: 1, A: 0.5}),
			offset: Pt(0, 0),
			expect: `<path d="M 0 0 L 1 1" fill="none" stroke="#ff0000" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" stroke-opacity="0.5"/>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.stroke.SVGFragment(tt.offset)
			if err != nil {
				t.Fatalf("SVGFragment() error = %v", err)
			}
			if got != tt.expect {
				t.Errorf("SVGFragment() =\n%s\nwant\n%s", got, tt.expect)
			}
		})
	}
}

func TestMarkerStroke_SVGFragment_Empty(t *testing.T) {
	m := NewMarkerStroke(nil, 2, RGB(0, 0, 0))
	_, err := m.SVGFragment(Pt(0, 0))
	if !errors.Is(err, ErrEmptyStroke) {
		t.Errorf("SVGFragment() error = %v, want ErrEmptyStroke", err)
	}
}

func TestMarkerStroke_Clone(t *testing.T) {
	orig := NewMarkerStroke(markerSamples(Pt(0, 0), Pt(10, 10)), 2, RGB(1, 0, 0))
	clone := orig.Clone()

	orig.Translate(Pt(100, 100))

	if !rectsEqual(clone.Bounds(), R(0, 0, 10, 10)) {
		t.Errorf("clone bounds = %+v, want untouched %+v", clone.Bounds(), R(0, 0, 10, 10))
	}
	if !rectsEqual(orig.Bounds(), R(100, 100, 110, 110)) {
		t.Errorf("original bounds = %+v, want %+v", orig.Bounds(), R(100, 100, 110, 110))
	}
}

func TestMarkerStroke_SamplesCopied(t *testing.T) {
	input := markerSamples(Pt(0, 0), Pt(10, 10))
	m := NewMarkerStroke(input, 2, RGB(0, 0, 0))

	input[0].Pos = Pt(999, 999)

	if got := m.Samples(); !pointsEqual(got[0].Pos, Pt(0, 0)) {
		t.Errorf("samples[0] = %+v, caller mutation leaked in", got[0].Pos)
	}
}
