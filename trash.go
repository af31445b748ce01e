package ink

// TrashComponent marks a stroke as moved to the trash. Trashed strokes stay
// registered so the move can be undone, but selector passes, exports and
// the aggregate selection bounds all ignore them.
type TrashComponent struct {
	Trashed bool
}

// Trashed reports the trash flag for key. ok is false when the key has no
// trash component.
func (s *StrokesState) Trashed(key StrokeKey) (trashed, ok bool) {
	comp, ok := s.trash[key]
	if !ok {
		return false, false
	}
	return comp.Trashed, true
}

// SetTrashed sets the trash flag for key. Trash state feeds the aggregate
// selection bounds, so the cache is refreshed. Unknown keys are logged and
// ignored.
func (s *StrokesState) SetTrashed(key StrokeKey, trashed bool) {
	comp, ok := s.trash[key]
	if !ok {
		Logger().Warn("trash flag set for unknown key", "key", key)
		return
	}
	comp.Trashed = trashed
	s.UpdateSelectionBounds()
}

// TrashSelection moves every selected stroke to the trash and clears the
// selection.
func (s *StrokesState) TrashSelection() {
	for key, comp := range s.selection {
		if !comp.Selected {
			continue
		}
		comp.Selected = false
		if tc, ok := s.trash[key]; ok {
			tc.Trashed = true
		}
	}
	s.selectionBounds = nil
	s.refreshSelection()
}
