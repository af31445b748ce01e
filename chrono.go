package ink

import (
	"cmp"
	"slices"
)

// ChronoComponent orders strokes by drawing time. A higher ordinal sits
// higher in the stacking order and paints later.
type ChronoComponent struct {
	T uint32
}

// TouchStroke moves key to the top of the stacking order by assigning the
// next chrono ordinal. Unknown keys are logged and ignored.
func (s *StrokesState) TouchStroke(key StrokeKey) {
	comp, ok := s.chrono[key]
	if !ok {
		Logger().Warn("chrono touch for unknown key", "key", key)
		return
	}
	comp.T = s.nextChrono()
}

// keysSortedChrono orders keys by chrono ordinal ascending so iteration
// follows paint order. Keys without a chrono component sort first.
func (s *StrokesState) keysSortedChrono(keys []StrokeKey) []StrokeKey {
	sorted := slices.Clone(keys)
	slices.SortStableFunc(sorted, func(a, b StrokeKey) int {
		var ta, tb uint32
		if c, ok := s.chrono[a]; ok {
			ta = c.T
		}
		if c, ok := s.chrono[b]; ok {
			tb = c.T
		}
		return cmp.Compare(ta, tb)
	})
	return sorted
}
