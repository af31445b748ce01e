// Package ink provides a spatial selection and transform engine for vector
// strokes.
//
// # Overview
//
// ink manages a board of five stroke kinds (marker, brush, shape, vector
// image, bitmap image) in an entity/component store. A StrokesState owns the
// strokes through generational keys and tracks selection, visibility, trash
// state and stacking order as sparse per-entity components. On top of the
// store it implements rectangular selector hit-testing, anisotropic selection
// resize, translation, duplication and SVG export.
//
// # Quick Start
//
//	import "github.com/inkpad/ink"
//
//	state := ink.NewStrokesState()
//	state.InsertStroke(ink.NewMarkerStroke(samples, 2, ink.Hex("#1a1a1a")))
//
//	// Select everything under a rectangular selector region.
//	region := ink.R(0, 0, 200, 200)
//	state.UpdateSelection(&region, nil)
//
//	// Move the selection and write it out as SVG.
//	state.TranslateSelection(ink.Pt(40, 0))
//	state.ExportSelectionSVG(dst)
//
// # Architecture
//
// The library is organized into:
//   - Stroke kinds: MarkerStroke, BrushStroke, ShapeStroke, VectorImage, BitmapImage
//   - Store: StrokesState (generational slot map + sparse component maps)
//   - Engines: selection (selector hit-testing), transform, duplication, export
//   - Internal: parallel (worker pool backing read-only component scans)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// All geometry is float64.
//
// # Concurrency
//
// Read-only queries (SelectionKeys, LastSelectedKey) fan out across an
// internal worker pool on large boards. Mutating operations are not safe for
// concurrent use; callers serialize writes the way a single editor loop does.
package ink

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
