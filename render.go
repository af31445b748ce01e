package ink

// RenderComponent tracks whether a stroke takes part in rendering.
// Invisible strokes are skipped by selector passes and exports.
type RenderComponent struct {
	Render bool
}

// RenderHook receives fire-and-forget notifications when strokes need
// their cached visuals regenerated. The state calls it synchronously from
// the mutating operation; implementations that do real work should hand it
// off to their own goroutine.
type RenderHook interface {
	// RefreshStroke is invoked after a single stroke's geometry changed.
	RefreshStroke(key StrokeKey)

	// RefreshSelection is invoked after a batch operation changed the
	// selection; keys is the post-operation selection.
	RefreshSelection(keys []StrokeKey)
}

// Renderable reports the render flag for key. ok is false when the key has
// no render component.
func (s *StrokesState) Renderable(key StrokeKey) (renderable, ok bool) {
	comp, ok := s.render[key]
	if !ok {
		return false, false
	}
	return comp.Render, true
}

// SetRenderable sets the render flag for key. Unknown keys are logged and
// ignored.
func (s *StrokesState) SetRenderable(key StrokeKey, renderable bool) {
	comp, ok := s.render[key]
	if !ok {
		Logger().Warn("render flag set for unknown key", "key", key)
		return
	}
	comp.Render = renderable
}

// refreshStroke notifies the hook that one stroke's visuals are stale.
func (s *StrokesState) refreshStroke(key StrokeKey) {
	if s.hook != nil {
		s.hook.RefreshStroke(key)
	}
}

// refreshSelection notifies the hook that the selection changed.
func (s *StrokesState) refreshSelection() {
	if s.hook != nil {
		s.hook.RefreshSelection(s.SelectionKeys())
	}
}
