package ink

import "strings"

// MarkerStroke is a free-form stroke rendered at constant width.
//
// The geometry is the recorded sequence of pen samples; pressure is ignored.
// Marker strokes carry per-segment hitboxes so a concave path does not get
// selected just because a selector overlaps its bounding box.
type MarkerStroke struct {
	samples  []Sample
	width    float64
	color    RGBA
	bounds   Rect
	hitboxes []Rect
}

// NewMarkerStroke creates a marker stroke from pen samples.
// The samples are copied; the caller keeps ownership of its slice.
func NewMarkerStroke(samples []Sample, width float64, color RGBA) *MarkerStroke {
	m := &MarkerStroke{
		samples: cloneSamples(samples),
		width:   width,
		color:   color,
	}
	m.regenerate()
	return m
}

// regenerate recomputes the cached bounds and hitboxes from the samples.
func (m *MarkerStroke) regenerate() {
	m.bounds = sampleBounds(m.samples)
	m.hitboxes = segmentHitboxes(m.samples)
}

// strokeMarker implements the sealed Stroke interface.
func (*MarkerStroke) strokeMarker() {}

// Bounds returns the extent of the centerline samples.
func (m *MarkerStroke) Bounds() Rect { return m.bounds }

// HasHitboxes reports true: marker strokes are hit-tested per segment.
func (*MarkerStroke) HasHitboxes() bool { return true }

// Hitboxes returns one box per consecutive sample pair.
func (m *MarkerStroke) Hitboxes() []Rect { return m.hitboxes }

// Width returns the constant stroke width.
func (m *MarkerStroke) Width() float64 { return m.width }

// Color returns the stroke color.
func (m *MarkerStroke) Color() RGBA { return m.color }

// Samples returns a copy of the recorded pen samples.
func (m *MarkerStroke) Samples() []Sample { return cloneSamples(m.samples) }

// Resize re-fits the samples into newBounds, scaling each axis
// independently. The stroke width is a render attribute and stays fixed.
func (m *MarkerStroke) Resize(newBounds Rect) {
	remapSamples(m.samples, m.bounds, newBounds)
	m.regenerate()
}

// Translate shifts the samples and the cached boxes rigidly.
func (m *MarkerStroke) Translate(offset Point) {
	translateSamples(m.samples, offset)
	m.bounds = m.bounds.Translate(offset)
	for i := range m.hitboxes {
		m.hitboxes[i] = m.hitboxes[i].Translate(offset)
	}
}

// SVGFragment renders the centerline as a single polyline path.
func (m *MarkerStroke) SVGFragment(offset Point) (string, error) {
	if len(m.samples) == 0 {
		return "", ErrEmptyStroke
	}

	var b strings.Builder
	b.WriteString(`<path d="`)
	for i, s := range m.samples {
		p := s.Pos.Add(offset)
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(fmtFloat(p.X))
		b.WriteByte(' ')
		b.WriteString(fmtFloat(p.Y))
	}
	b.WriteString(`" fill="none" stroke="`)
	b.WriteString(m.color.HexString())
	b.WriteString(`" stroke-width="`)
	b.WriteString(fmtFloat(m.width))
	b.WriteString(`" stroke-linecap="round" stroke-linejoin="round"`)
	if m.color.A < 1 {
		b.WriteString(` stroke-opacity="`)
		b.WriteString(fmtFloat(m.color.A))
		b.WriteString(`"`)
	}
	b.WriteString("/>")
	return b.String(), nil
}

// Clone returns a deep copy of the stroke.
func (m *MarkerStroke) Clone() Stroke {
	c := *m
	c.samples = cloneSamples(m.samples)
	c.hitboxes = append([]Rect(nil), m.hitboxes...)
	return &c
}
