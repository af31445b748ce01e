package ink

import "strings"

// BrushStroke is a free-form stroke whose rendered width follows pen
// pressure.
//
// The centerline is smoothed through segment midpoints when serialized, so
// jittery input produces a continuous curve. Like MarkerStroke it carries
// per-segment hitboxes.
type BrushStroke struct {
	samples  []Sample
	width    float64
	color    RGBA
	bounds   Rect
	hitboxes []Rect
}

// NewBrushStroke creates a brush stroke from pen samples.
// width is the base width; the serialized width is scaled by the mean
// sample pressure.
func NewBrushStroke(samples []Sample, width float64, color RGBA) *BrushStroke {
	b := &BrushStroke{
		samples: cloneSamples(samples),
		width:   width,
		color:   color,
	}
	b.regenerate()
	return b
}

// regenerate recomputes the cached bounds and hitboxes from the samples.
func (b *BrushStroke) regenerate() {
	b.bounds = sampleBounds(b.samples)
	b.hitboxes = segmentHitboxes(b.samples)
}

// strokeMarker implements the sealed Stroke interface.
func (*BrushStroke) strokeMarker() {}

// Bounds returns the extent of the centerline samples.
func (b *BrushStroke) Bounds() Rect { return b.bounds }

// HasHitboxes reports true: brush strokes are hit-tested per segment.
func (*BrushStroke) HasHitboxes() bool { return true }

// Hitboxes returns one box per consecutive sample pair.
func (b *BrushStroke) Hitboxes() []Rect { return b.hitboxes }

// Width returns the base stroke width before pressure scaling.
func (b *BrushStroke) Width() float64 { return b.width }

// Color returns the stroke color.
func (b *BrushStroke) Color() RGBA { return b.color }

// Samples returns a copy of the recorded pen samples.
func (b *BrushStroke) Samples() []Sample { return cloneSamples(b.samples) }

// Resize re-fits the samples into newBounds, scaling each axis
// independently. Pressure values are untouched.
func (b *BrushStroke) Resize(newBounds Rect) {
	remapSamples(b.samples, b.bounds, newBounds)
	b.regenerate()
}

// Translate shifts the samples and the cached boxes rigidly.
func (b *BrushStroke) Translate(offset Point) {
	translateSamples(b.samples, offset)
	b.bounds = b.bounds.Translate(offset)
	for i := range b.hitboxes {
		b.hitboxes[i] = b.hitboxes[i].Translate(offset)
	}
}

// meanPressure averages the sample pressures. Zero samples yield zero.
func (b *BrushStroke) meanPressure() float64 {
	if len(b.samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range b.samples {
		sum += s.Pressure
	}
	return sum / float64(len(b.samples))
}

// SVGFragment renders the stroke as a quadratic path smoothed through the
// segment midpoints. A single sample degenerates to a dot.
func (b *BrushStroke) SVGFragment(offset Point) (string, error) {
	if len(b.samples) == 0 {
		return "", ErrEmptyStroke
	}

	width := b.width * b.meanPressure()

	if len(b.samples) == 1 {
		p := b.samples[0].Pos.Add(offset)
		var sb strings.Builder
		sb.WriteString(`<circle cx="`)
		sb.WriteString(fmtFloat(p.X))
		sb.WriteString(`" cy="`)
		sb.WriteString(fmtFloat(p.Y))
		sb.WriteString(`" r="`)
		sb.WriteString(fmtFloat(width / 2))
		sb.WriteString(`" fill="`)
		sb.WriteString(b.color.HexString())
		sb.WriteString(`"`)
		if b.color.A < 1 {
			sb.WriteString(` fill-opacity="`)
			sb.WriteString(fmtFloat(b.color.A))
			sb.WriteString(`"`)
		}
		sb.WriteString("/>")
		return sb.String(), nil
	}

	var sb strings.Builder
	sb.WriteString(`<path d="`)
	first := b.samples[0].Pos.Add(offset)
	sb.WriteString("M ")
	sb.WriteString(fmtFloat(first.X))
	sb.WriteByte(' ')
	sb.WriteString(fmtFloat(first.Y))
	for i := 1; i < len(b.samples)-1; i++ {
		ctrl := b.samples[i].Pos.Add(offset)
		mid := b.samples[i].Pos.Lerp(b.samples[i+1].Pos, 0.5).Add(offset)
		sb.WriteString(" Q ")
		sb.WriteString(fmtFloat(ctrl.X))
		sb.WriteByte(' ')
		sb.WriteString(fmtFloat(ctrl.Y))
		sb.WriteString(" ")
		sb.WriteString(fmtFloat(mid.X))
		sb.WriteByte(' ')
		sb.WriteString(fmtFloat(mid.Y))
	}
	last := b.samples[len(b.samples)-1].Pos.Add(offset)
	sb.WriteString(" L ")
	sb.WriteString(fmtFloat(last.X))
	sb.WriteByte(' ')
	sb.WriteString(fmtFloat(last.Y))
	sb.WriteString(`" fill="none" stroke="`)
	sb.WriteString(b.color.HexString())
	sb.WriteString(`" stroke-width="`)
	sb.WriteString(fmtFloat(width))
	sb.WriteString(`" stroke-linecap="round" stroke-linejoin="round"`)
	if b.color.A < 1 {
		sb.WriteString(` stroke-opacity="`)
		sb.WriteString(fmtFloat(b.color.A))
		sb.WriteString(`"`)
	}
	sb.WriteString("/>")
	return sb.String(), nil
}

// Clone returns a deep copy of the stroke.
func (b *BrushStroke) Clone() Stroke {
	c := *b
	c.samples = cloneSamples(b.samples)
	c.hitboxes = append([]Rect(nil), b.hitboxes...)
	return &c
}
