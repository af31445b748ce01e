package ink

import (
	"fmt"
	"io"
	"strings"
)

// SVGData renders every renderable, not-trashed stroke as SVG fragments in
// paint order, joined by newlines. The fragments are emitted in board
// coordinates (zero offset); wrap them with WrapSVG for a standalone
// document.
//
// Serialization is partial-success: a stroke that fails to serialize is
// logged at error level and skipped while the rest still export. A missing
// trash component counts as trashed.
func (s *StrokesState) SVGData() (string, error) {
	var frags []string
	for _, key := range s.keysSortedChrono(s.Keys()) {
		if rc, ok := s.render[key]; !ok || !rc.Render {
			continue
		}
		if tc, ok := s.trash[key]; !ok || tc.Trashed {
			continue
		}
		stroke, ok := s.Stroke(key)
		if !ok {
			continue
		}
		frag, err := stroke.SVGFragment(Pt(0, 0))
		if err != nil {
			Logger().Error("stroke dropped from export", "key", key, "err", err)
			continue
		}
		frags = append(frags, frag)
	}
	return strings.Join(frags, "\n"), nil
}

// ExportSelectionSVG writes the current selection as a standalone SVG
// document to dst. The content is normalized so the selection's top-left
// corner sits at the origin, and the document is sized to the selection
// bounds.
//
// dst is closed on every path, including the trivial one: without a
// selection nothing is written and the call succeeds. A stroke that fails
// to serialize is logged and skipped. A write failure, or a close failure
// when nothing else failed first, is returned to the caller.
func (s *StrokesState) ExportSelectionSVG(dst io.WriteCloser) (err error) {
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("ink: close export destination: %w", cerr)
		}
	}()

	bounds, ok := s.SelectionBounds()
	if !ok {
		return nil
	}
	offset := bounds.Min.Neg()

	var frags []string
	for _, key := range s.keysSortedChrono(s.SelectionKeys()) {
		stroke, ok := s.Stroke(key)
		if !ok {
			continue
		}
		frag, serr := stroke.SVGFragment(offset)
		if serr != nil {
			Logger().Error("stroke dropped from selection export", "key", key, "err", serr)
			continue
		}
		frags = append(frags, frag)
	}

	data := WrapSVG(strings.Join(frags, "\n"), R(0, 0, bounds.Width(), bounds.Height()))
	if _, werr := io.WriteString(dst, data); werr != nil {
		return fmt.Errorf("ink: write selection export: %w", werr)
	}

	Logger().Debug("selection exported", "strokes", len(frags), "bytes", len(data))
	return nil
}
