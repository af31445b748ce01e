package ink

import "testing"

func TestNewStrokesStateDefaults(t *testing.T) {
	s := NewStrokesState()
	if s == nil {
		t.Fatal("NewStrokesState returned nil")
	}
	if !pointsEqual(s.dupOffset, Pt(20, 20)) {
		t.Errorf("duplication offset = %+v, want default (20,20)", s.dupOffset)
	}
	if s.hook != nil {
		t.Error("hook is set, want nil by default")
	}
}

func TestWithDuplicationOffset(t *testing.T) {
	s := NewStrokesState(WithDuplicationOffset(Pt(32, 0)))
	if !pointsEqual(s.dupOffset, Pt(32, 0)) {
		t.Errorf("duplication offset = %+v, want (32,0)", s.dupOffset)
	}
}

func TestWithRenderHook(t *testing.T) {
	hook := &recordingHook{}
	s := NewStrokesState(WithRenderHook(hook))
	if s.hook != RenderHook(hook) {
		t.Error("hook is not the injected recorder")
	}
}

func TestOptionsCombined(t *testing.T) {
	hook := &recordingHook{}
	s := NewStrokesState(
		WithRenderHook(hook),
		WithDuplicationOffset(Pt(-8, 4)),
	)
	if s.hook == nil {
		t.Error("hook not wired")
	}
	if !pointsEqual(s.dupOffset, Pt(-8, 4)) {
		t.Errorf("duplication offset = %+v, want (-8,4)", s.dupOffset)
	}
}
