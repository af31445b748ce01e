package ink

// StateOption configures a StrokesState during creation.
// Use functional options to customize state behavior.
//
// Example:
//
//	// Default configuration
//	state := ink.NewStrokesState()
//
//	// Custom duplication offset and a render refresh hook
//	state := ink.NewStrokesState(
//	    ink.WithDuplicationOffset(ink.Pt(32, 32)),
//	    ink.WithRenderHook(hook),
//	)
type StateOption func(*stateOptions)

// stateOptions holds optional configuration for StrokesState creation.
type stateOptions struct {
	hook              RenderHook
	duplicationOffset Point
}

// defaultStateOptions returns the default state options.
func defaultStateOptions() stateOptions {
	return stateOptions{
		duplicationOffset: Pt(20, 20),
	}
}

// WithRenderHook wires a render refresh hook into the state.
// The hook receives fire-and-forget notifications after operations that
// invalidate cached visuals (selection changes, transforms, duplication).
func WithRenderHook(h RenderHook) StateOption {
	return func(o *stateOptions) {
		o.hook = h
	}
}

// WithDuplicationOffset overrides the offset applied to duplicated strokes
// so copies do not sit exactly on their originals. The default is (20, 20).
func WithDuplicationOffset(offset Point) StateOption {
	return func(o *stateOptions) {
		o.duplicationOffset = offset
	}
}
