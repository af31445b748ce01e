package ink

import "testing"

func TestTrashSelection(t *testing.T) {
	s := NewStrokesState()
	k1 := s.InsertStroke(lineStroke(R(0, 0, 10, 10)))
	k2 := s.InsertStroke(lineStroke(R(20, 20, 30, 30)))
	k3 := s.InsertStroke(lineStroke(R(40, 40, 50, 50)))
	s.SetSelected(k1, true)
	s.SetSelected(k2, true)

	s.TrashSelection()

	for _, k := range []StrokeKey{k1, k2} {
		if trashed, ok := s.Trashed(k); !ok || !trashed {
			t.Errorf("Trashed(%v) = (%v, %v), want (true, true)", k, trashed, ok)
		}
		if mustSelected(t, s, k) {
			t.Errorf("stroke %v still selected after trashing", k)
		}
	}
	if trashed, _ := s.Trashed(k3); trashed {
		t.Error("unselected stroke got trashed")
	}
	if _, ok := s.SelectionBounds(); ok {
		t.Error("SelectionBounds() = ok after TrashSelection, want miss")
	}
	// Trashed strokes stay registered so the move can be undone.
	if s.StrokeCount() != 3 {
		t.Errorf("StrokeCount() = %d, want 3", s.StrokeCount())
	}
}

func TestTrashSelection_FiresHook(t *testing.T) {
	hook := &recordingHook{}
	s := NewStrokesState(WithRenderHook(hook))
	k := s.InsertStroke(lineStroke(R(0, 0, 10, 10)))
	s.SetSelected(k, true)

	s.TrashSelection()

	if len(hook.selections) != 1 {
		t.Fatalf("RefreshSelection calls = %d, want 1", len(hook.selections))
	}
	if len(hook.selections[0]) != 0 {
		t.Errorf("post-trash selection = %v, want empty", hook.selections[0])
	}
}

func TestSetTrashed_Restore(t *testing.T) {
	s := NewStrokesState()
	k := s.InsertStroke(lineStroke(R(0, 0, 10, 10)))
	s.SetSelected(k, true)
	s.SetTrashed(k, true)

	if _, ok := s.SelectionBounds(); ok {
		t.Fatal("SelectionBounds() includes a trashed stroke")
	}

	// Restoring from the trash brings the still-set flag back into the
	// aggregate bounds.
	s.SetTrashed(k, false)
	if got, ok := s.SelectionBounds(); !ok || !rectsEqual(got, R(0, 0, 10, 10)) {
		t.Errorf("SelectionBounds() = (%+v, %v), want restored box", got, ok)
	}
}

func TestUpdateSelection_FiresHookOnCountChange(t *testing.T) {
	hook := &recordingHook{}
	s := NewStrokesState(WithRenderHook(hook))
	k := s.InsertStroke(lineStroke(R(0, 0, 10, 10)))

	selector := R(-1, -1, 11, 11)
	s.UpdateSelection(&selector, nil)

	if len(hook.selections) != 1 {
		t.Fatalf("RefreshSelection calls = %d, want 1", len(hook.selections))
	}
	if len(hook.selections[0]) != 1 || hook.selections[0][0] != k {
		t.Errorf("selection notification = %v, want [%v]", hook.selections[0], k)
	}

	// An identical pass changes nothing and stays silent.
	s.UpdateSelection(&selector, nil)
	if len(hook.selections) != 1 {
		t.Errorf("RefreshSelection calls = %d after no-op pass, want 1", len(hook.selections))
	}
}
