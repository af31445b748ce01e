package ink

import "fmt"

// StrokeKey identifies a stroke inside a StrokesState.
//
// Keys are generational: removing a stroke invalidates its key even when the
// underlying slot is later reused. The zero value never names a stroke.
type StrokeKey struct {
	index      uint32
	generation uint32
}

// String implements fmt.Stringer for log output.
func (k StrokeKey) String() string {
	return fmt.Sprintf("stroke(%d.%d)", k.index, k.generation)
}

// strokeSlot is one cell of the registry's slot map.
type strokeSlot struct {
	stroke     Stroke
	generation uint32
	occupied   bool
}

// StrokesState owns every stroke on the board together with the sparse
// component maps attached to them.
//
// Strokes live in a generational slot map; selection, render, trash and
// chrono state live in per-concern maps keyed by StrokeKey, where a missing
// entry means the entity does not support that capability. The aggregate
// selection bounds are cached and refreshed by every operation that can
// change selection membership or selected-stroke geometry.
//
// Mutating operations are not safe for concurrent use. Read-only queries
// fan out across an internal worker pool on large boards.
type StrokesState struct {
	slots []strokeSlot
	free  []uint32

	selection map[StrokeKey]*SelectionComponent
	render    map[StrokeKey]*RenderComponent
	trash     map[StrokeKey]*TrashComponent
	chrono    map[StrokeKey]*ChronoComponent

	// chronoCounter is the last z-order ordinal handed out.
	chronoCounter uint32

	// selectionBounds caches the union of bounds of all strokes that are
	// simultaneously selected and not trashed. nil means no selection.
	selectionBounds *Rect

	hook      RenderHook
	dupOffset Point
}

// NewStrokesState creates an empty state.
func NewStrokesState(opts ...StateOption) *StrokesState {
	o := defaultStateOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &StrokesState{
		selection: make(map[StrokeKey]*SelectionComponent),
		render:    make(map[StrokeKey]*RenderComponent),
		trash:     make(map[StrokeKey]*TrashComponent),
		chrono:    make(map[StrokeKey]*ChronoComponent),
		hook:      o.hook,
		dupOffset: o.duplicationOffset,
	}
}

// nextChrono hands out the next z-order ordinal.
func (s *StrokesState) nextChrono() uint32 {
	s.chronoCounter++
	return s.chronoCounter
}

// InsertStroke adds stroke to the registry and attaches the default
// component set: deselected, renderable, not trashed, next chrono ordinal.
func (s *StrokesState) InsertStroke(stroke Stroke) StrokeKey {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.slots = append(s.slots, strokeSlot{})
		idx = uint32(len(s.slots) - 1)
	}

	slot := &s.slots[idx]
	if slot.generation == 0 {
		slot.generation = 1
	}
	slot.stroke = stroke
	slot.occupied = true

	key := StrokeKey{index: idx, generation: slot.generation}
	s.selection[key] = &SelectionComponent{}
	s.render[key] = &RenderComponent{Render: true}
	s.trash[key] = &TrashComponent{}
	s.chrono[key] = &ChronoComponent{T: s.nextChrono()}
	return key
}

// slot resolves key to its slot, or nil when the key is stale or unknown.
func (s *StrokesState) slot(key StrokeKey) *strokeSlot {
	if key.index >= uint32(len(s.slots)) {
		return nil
	}
	sl := &s.slots[key.index]
	if !sl.occupied || sl.generation != key.generation {
		return nil
	}
	return sl
}

// Stroke resolves key to its stroke.
func (s *StrokesState) Stroke(key StrokeKey) (Stroke, bool) {
	sl := s.slot(key)
	if sl == nil {
		return nil, false
	}
	return sl.stroke, true
}

// RemoveStroke detaches key's stroke and components from the state and
// returns the stroke. The key is invalidated; the freed slot may be reused
// by later inserts. Removing a selected stroke refreshes the aggregate
// selection bounds.
func (s *StrokesState) RemoveStroke(key StrokeKey) (Stroke, bool) {
	sl := s.slot(key)
	if sl == nil {
		return nil, false
	}

	wasSelected := false
	if comp, ok := s.selection[key]; ok {
		wasSelected = comp.Selected
	}

	stroke := sl.stroke
	sl.stroke = nil
	sl.occupied = false
	sl.generation++
	s.free = append(s.free, key.index)

	delete(s.selection, key)
	delete(s.render, key)
	delete(s.trash, key)
	delete(s.chrono, key)

	if wasSelected {
		s.UpdateSelectionBounds()
	}
	return stroke, true
}

// StrokeCount returns the number of registered strokes.
func (s *StrokesState) StrokeCount() int {
	return len(s.slots) - len(s.free)
}

// Keys returns the key of every registered stroke in slot order.
func (s *StrokesState) Keys() []StrokeKey {
	keys := make([]StrokeKey, 0, s.StrokeCount())
	for i := range s.slots {
		if s.slots[i].occupied {
			keys = append(keys, StrokeKey{index: uint32(i), generation: s.slots[i].generation})
		}
	}
	return keys
}

// StrokesBounds returns the union of every registered stroke's bounds.
func (s *StrokesState) StrokesBounds() (Rect, bool) {
	b := s.genBounds(s.Keys())
	if b == nil {
		return Rect{}, false
	}
	return *b, true
}

// genBounds unions the bounds of every resolvable key.
// Returns nil for an empty set.
func (s *StrokesState) genBounds(keys []StrokeKey) *Rect {
	var out *Rect
	for _, key := range keys {
		stroke, ok := s.Stroke(key)
		if !ok {
			continue
		}
		b := stroke.Bounds()
		if out == nil {
			r := b
			out = &r
		} else {
			*out = out.Union(b)
		}
	}
	return out
}
