package ink

import "errors"

// ErrEmptyStroke reports an attempt to serialize a stroke with no geometry.
var ErrEmptyStroke = errors.New("ink: stroke has no geometry")

// Sample is a single pen input sample: a position plus the normalized
// pressure in [0, 1] reported by the input device.
type Sample struct {
	Pos      Point
	Pressure float64
}

// Stroke is the contract every stroke kind exposes to the selection,
// transform, duplication and export engines.
//
// The set of kinds is closed: MarkerStroke, BrushStroke, ShapeStroke,
// VectorImage and BitmapImage. Adding a kind means deciding its hitbox
// capability and serialization, so the interface cannot be implemented
// outside this package.
type Stroke interface {
	// Bounds returns the current axis-aligned bounding box. It is kept
	// consistent with the internal geometry across Resize and Translate.
	Bounds() Rect

	// HasHitboxes reports whether the kind carries fine-grained hitboxes.
	// This is a property of the kind, not of the instance: a free-form
	// stroke degenerated to zero segments still answers true.
	HasHitboxes() bool

	// Hitboxes returns per-segment sub-boxes approximating the stroke
	// outline, or nil for kinds without them.
	Hitboxes() []Rect

	// Resize re-fits the geometry into newBounds, scaling each axis
	// independently. Afterwards Bounds() equals newBounds.
	Resize(newBounds Rect)

	// Translate shifts the geometry rigidly by offset.
	Translate(offset Point)

	// SVGFragment renders the stroke as an SVG fragment with every
	// coordinate shifted by offset.
	SVGFragment(offset Point) (string, error)

	// Clone returns a deep copy sharing no mutable data with the original.
	Clone() Stroke

	// strokeMarker is an unexported method that seals this interface.
	// Only types in this package can implement Stroke.
	strokeMarker()
}

// sampleBounds returns the exact extent of the sample positions.
// Empty input yields the zero Rect.
func sampleBounds(samples []Sample) Rect {
	if len(samples) == 0 {
		return Rect{}
	}
	b := Rect{Min: samples[0].Pos, Max: samples[0].Pos}
	for _, s := range samples[1:] {
		b = b.UnionPoint(s.Pos)
	}
	return b
}

// segmentHitboxes builds one box per consecutive sample pair.
// Fewer than two samples yield no boxes.
func segmentHitboxes(samples []Sample) []Rect {
	if len(samples) < 2 {
		return nil
	}
	boxes := make([]Rect, 0, len(samples)-1)
	for i := 1; i < len(samples); i++ {
		boxes = append(boxes, NewRect(samples[i-1].Pos, samples[i].Pos))
	}
	return boxes
}

// remapSamples maps every sample position from one frame to another in place.
func remapSamples(samples []Sample, from, to Rect) {
	for i := range samples {
		samples[i].Pos = remapPoint(samples[i].Pos, from, to)
	}
}

// translateSamples shifts every sample position in place.
func translateSamples(samples []Sample, offset Point) {
	for i := range samples {
		samples[i].Pos = samples[i].Pos.Add(offset)
	}
}

// cloneSamples returns an independent copy of samples.
func cloneSamples(samples []Sample) []Sample {
	if samples == nil {
		return nil
	}
	out := make([]Sample, len(samples))
	copy(out, samples)
	return out
}
