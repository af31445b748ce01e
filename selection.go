package ink

import (
	"sync"

	"github.com/inkpad/ink/internal/parallel"
)

// SelectionComponent marks a stroke as part of the active selection.
type SelectionComponent struct {
	Selected bool
}

// parallelScanMin is the slot count above which read-only scans fan out
// across the worker pool. Below it the fixed cost of scheduling dominates.
const parallelScanMin = 512

// scanPool lazily creates the shared pool backing read-only scans.
// It lives for the rest of the process, like the logger seam.
var scanPool = sync.OnceValue(func() *parallel.WorkerPool {
	return parallel.NewWorkerPool(0)
})

// CanSelect reports whether key supports selection at all.
func (s *StrokesState) CanSelect(key StrokeKey) bool {
	_, ok := s.selection[key]
	return ok
}

// Selected reports the selection flag for key. ok is false when the key has
// no selection component.
func (s *StrokesState) Selected(key StrokeKey) (selected, ok bool) {
	comp, ok := s.selection[key]
	if !ok {
		Logger().Warn("selection flag queried for unknown key", "key", key)
		return false, false
	}
	return comp.Selected, true
}

// SetSelected sets the selection flag for key and refreshes the aggregate
// selection bounds. Unknown keys are logged and ignored.
func (s *StrokesState) SetSelected(key StrokeKey, selected bool) {
	comp, ok := s.selection[key]
	if !ok {
		Logger().Warn("selection flag set for unknown key", "key", key)
		return
	}
	comp.Selected = selected
	s.UpdateSelectionBounds()
}

// SelectionKeys returns the key of every stroke whose selection flag is
// set, regardless of trash or render state. Order is unspecified.
func (s *StrokesState) SelectionKeys() []StrokeKey {
	if len(s.slots) < parallelScanMin {
		return s.selectionKeysSeq()
	}
	return s.selectionKeysPar()
}

func (s *StrokesState) selectionKeysSeq() []StrokeKey {
	var keys []StrokeKey
	for i := range s.slots {
		sl := &s.slots[i]
		if !sl.occupied {
			continue
		}
		key := StrokeKey{index: uint32(i), generation: sl.generation}
		if comp, ok := s.selection[key]; ok && comp.Selected {
			keys = append(keys, key)
		}
	}
	return keys
}

// selectionKeysPar scans disjoint slot ranges on the worker pool.
// The component maps are only read, which is safe from many goroutines as
// long as no writer runs concurrently; writers are single-threaded by
// contract.
func (s *StrokesState) selectionKeysPar() []StrokeKey {
	pool := scanPool()
	workers := pool.Workers()
	chunk := (len(s.slots) + workers - 1) / workers

	parts := make([][]StrokeKey, workers)
	work := make([]func(), 0, workers)
	for w := 0; w < workers; w++ {
		w := w // per-iteration copy; the closure below outlives the loop
		lo := w * chunk
		hi := min(lo+chunk, len(s.slots))
		if lo >= hi {
			break
		}
		work = append(work, func() {
			var local []StrokeKey
			for i := lo; i < hi; i++ {
				sl := &s.slots[i]
				if !sl.occupied {
					continue
				}
				key := StrokeKey{index: uint32(i), generation: sl.generation}
				if comp, ok := s.selection[key]; ok && comp.Selected {
					local = append(local, key)
				}
			}
			parts[w] = local
		})
	}
	pool.ExecuteAll(work)

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	keys := make([]StrokeKey, 0, total)
	for _, p := range parts {
		keys = append(keys, p...)
	}
	return keys
}

// SelectionCount returns the number of selected strokes.
func (s *StrokesState) SelectionCount() int {
	n := 0
	for _, comp := range s.selection {
		if comp.Selected {
			n++
		}
	}
	return n
}

// lastCandidate is one partition's best (key, ordinal) pair.
type lastCandidate struct {
	key   StrokeKey
	t     uint32
	found bool
}

// better reports whether the candidate beats cur under the engine's total
// order: higher chrono ordinal wins, ties go to the smaller slot index.
func (c lastCandidate) better(cur lastCandidate) bool {
	if !c.found {
		return false
	}
	if !cur.found {
		return true
	}
	if c.t != cur.t {
		return c.t > cur.t
	}
	return c.key.index < cur.key.index
}

// LastSelectedKey returns the selected, not-trashed stroke with the highest
// chrono ordinal: the one drawn or touched most recently. Ordinal ties
// resolve to the smallest slot index, so the result is deterministic.
func (s *StrokesState) LastSelectedKey() (StrokeKey, bool) {
	var best lastCandidate
	if len(s.slots) < parallelScanMin {
		best = s.lastSelectedRange(0, len(s.slots))
	} else {
		best = s.lastSelectedPar()
	}
	return best.key, best.found
}

// lastSelectedRange reduces one contiguous slot range.
func (s *StrokesState) lastSelectedRange(lo, hi int) lastCandidate {
	var best lastCandidate
	for i := lo; i < hi; i++ {
		sl := &s.slots[i]
		if !sl.occupied {
			continue
		}
		key := StrokeKey{index: uint32(i), generation: sl.generation}
		comp, ok := s.selection[key]
		if !ok || !comp.Selected {
			continue
		}
		if tc, ok := s.trash[key]; !ok || tc.Trashed {
			continue
		}
		cc, ok := s.chrono[key]
		if !ok {
			continue
		}
		cand := lastCandidate{key: key, t: cc.T, found: true}
		if cand.better(best) {
			best = cand
		}
	}
	return best
}

// lastSelectedPar reduces per-worker ranges, then reduces the partials.
func (s *StrokesState) lastSelectedPar() lastCandidate {
	pool := scanPool()
	workers := pool.Workers()
	chunk := (len(s.slots) + workers - 1) / workers

	parts := make([]lastCandidate, workers)
	work := make([]func(), 0, workers)
	for w := 0; w < workers; w++ {
		w := w // per-iteration copy; the closure below outlives the loop
		lo := w * chunk
		hi := min(lo+chunk, len(s.slots))
		if lo >= hi {
			break
		}
		work = append(work, func() {
			parts[w] = s.lastSelectedRange(lo, hi)
		})
	}
	pool.ExecuteAll(work)

	var best lastCandidate
	for _, p := range parts {
		if p.better(best) {
			best = p
		}
	}
	return best
}

// strokeHit decides whether selector picks up stroke during a selector
// pass. Full containment of the bounds always selects. Kinds with hitboxes
// are additionally selected when the selector intersects the bounds and
// every hitbox sub-box is contained; a degenerate stroke with zero sub-
// boxes passes that check vacuously.
func strokeHit(stroke Stroke, selector, bounds Rect) bool {
	if selector.ContainsRect(bounds) {
		return true
	}
	if !stroke.HasHitboxes() {
		return false
	}
	if !selector.Intersects(bounds) {
		return false
	}
	for _, hb := range stroke.Hitboxes() {
		if !selector.ContainsRect(hb) {
			return false
		}
	}
	return true
}

// UpdateSelection recomputes selection membership from a selector region.
//
// selector is the bounds of the active selector; nil means no selector is
// active and the pass is a no-op. When viewport is non-nil, strokes whose
// bounds do not intersect it keep their current flags. Invisible and
// trashed strokes are never touched. Every other stroke is deselected and
// then re-selected according to strokeHit.
//
// Reports whether the number of selected strokes changed; membership
// changes that keep the count equal do not register. On a count change the
// aggregate bounds are refreshed and the selection render hook fires.
func (s *StrokesState) UpdateSelection(selector, viewport *Rect) bool {
	if selector == nil {
		return false
	}
	prev := s.SelectionCount()

	for i := range s.slots {
		sl := &s.slots[i]
		if !sl.occupied {
			continue
		}
		key := StrokeKey{index: uint32(i), generation: sl.generation}
		comp, ok := s.selection[key]
		if !ok {
			continue
		}
		if rc, ok := s.render[key]; !ok || !rc.Render {
			continue
		}
		if tc, ok := s.trash[key]; !ok || tc.Trashed {
			continue
		}

		bounds := sl.stroke.Bounds()
		if viewport != nil && !viewport.Intersects(bounds) {
			continue
		}
		comp.Selected = strokeHit(sl.stroke, *selector, bounds)
	}

	changed := s.SelectionCount() != prev
	if changed {
		s.UpdateSelectionBounds()
		s.refreshSelection()
	}
	return changed
}

// DeselectAll clears every selection flag and empties the aggregate bounds.
func (s *StrokesState) DeselectAll() {
	for _, comp := range s.selection {
		comp.Selected = false
	}
	s.selectionBounds = nil
	s.refreshSelection()
}

// UpdateSelectionBounds recomputes the aggregate selection bounds from
// scratch: the union of bounds of every stroke that is simultaneously
// selected and not trashed.
func (s *StrokesState) UpdateSelectionBounds() {
	keys := s.SelectionKeys()
	live := keys[:0]
	for _, key := range keys {
		if tc, ok := s.trash[key]; ok && !tc.Trashed {
			live = append(live, key)
		}
	}
	s.selectionBounds = s.genBounds(live)
}

// SelectionBounds returns the cached aggregate selection bounds.
func (s *StrokesState) SelectionBounds() (Rect, bool) {
	if s.selectionBounds == nil {
		return Rect{}, false
	}
	return *s.selectionBounds, true
}
