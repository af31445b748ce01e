package ink

// DuplicateSelection replaces the selection with translated copies.
//
// For every selected stroke the original is deselected and a deep copy is
// inserted as a fresh entity with default components and the next chrono
// ordinal. The copy is selected and shifted by the duplication offset
// (Pt(20, 20) unless configured otherwise), so k selected strokes yield k
// new selected entities sitting beside their originals. Returns the keys
// of the copies.
func (s *StrokesState) DuplicateSelection() []StrokeKey {
	originals := s.SelectionKeys()
	dups := make([]StrokeKey, 0, len(originals))

	for _, key := range originals {
		stroke, ok := s.Stroke(key)
		if !ok {
			continue
		}
		if comp, ok := s.selection[key]; ok {
			comp.Selected = false
		}

		dupKey := s.InsertStroke(stroke.Clone())
		s.selection[dupKey].Selected = true

		dup, _ := s.Stroke(dupKey)
		dup.Translate(s.dupOffset)
		s.refreshStroke(dupKey)
		dups = append(dups, dupKey)
	}

	s.UpdateSelectionBounds()
	return dups
}
