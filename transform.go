package ink

import "errors"

// ErrDegenerateSelection reports a resize against selection bounds with
// zero width or height. Re-fitting would divide by the vanished extent.
var ErrDegenerateSelection = errors.New("ink: selection bounds have zero extent")

// ResizeSelection re-fits every selected stroke into newBounds.
//
// Each stroke's box is mapped through the anisotropic affine taking the
// current aggregate bounds onto newBounds, and the stroke re-fits its
// geometry into the image. newBounds must be well-formed (Min <= Max).
//
// Without a selection the call is a no-op. When the current aggregate
// bounds have zero width or height the call returns ErrDegenerateSelection
// and mutates nothing; a single horizontal line selected on its own is
// enough to get there.
func (s *StrokesState) ResizeSelection(newBounds Rect) error {
	if s.selectionBounds == nil {
		return nil
	}
	old := *s.selectionBounds
	if old.Width() == 0 || old.Height() == 0 {
		return ErrDegenerateSelection
	}

	for _, key := range s.SelectionKeys() {
		stroke, ok := s.Stroke(key)
		if !ok {
			continue
		}
		stroke.Resize(remapRect(stroke.Bounds(), old, newBounds))
		s.refreshStroke(key)
	}

	nb := newBounds
	s.selectionBounds = &nb
	return nil
}

// TranslateSelection shifts every selected stroke and the cached aggregate
// bounds by offset. Without a selection the call is a no-op.
func (s *StrokesState) TranslateSelection(offset Point) {
	for _, key := range s.SelectionKeys() {
		stroke, ok := s.Stroke(key)
		if !ok {
			continue
		}
		stroke.Translate(offset)
		s.refreshStroke(key)
	}
	if s.selectionBounds != nil {
		*s.selectionBounds = s.selectionBounds.Translate(offset)
	}
}
