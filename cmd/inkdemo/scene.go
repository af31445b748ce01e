package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/inkpad/ink"
)

// sceneFile is the on-disk scene format: a flat list of stroke records.
type sceneFile struct {
	Strokes []strokeRecord `json:"strokes"`
}

// strokeRecord describes one stroke. Kind selects the fields that matter:
//
//	marker/brush: points ([x, y] or [x, y, pressure]), width, color
//	shape:        shape (line|rectangle|ellipse), start, end, width, color
//	vector:       svg (inline markup), pos
//	bitmap:       file (image path, relative to the scene file), pos
type strokeRecord struct {
	Kind   string      `json:"kind"`
	Width  float64     `json:"width,omitempty"`
	Color  string      `json:"color,omitempty"`
	Points [][]float64 `json:"points,omitempty"`
	Shape  string      `json:"shape,omitempty"`
	Start  []float64   `json:"start,omitempty"`
	End    []float64   `json:"end,omitempty"`
	SVG    string      `json:"svg,omitempty"`
	File   string      `json:"file,omitempty"`
	Pos    []float64   `json:"pos,omitempty"`
}

// loadScene reads a scene file and inserts its strokes into a fresh state.
func loadScene(path string) (*ink.StrokesState, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var scene sceneFile
	if err := json.Unmarshal(raw, &scene); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}

	state := ink.NewStrokesState()
	for i, rec := range scene.Strokes {
		stroke, err := buildStroke(rec, filepath.Dir(path))
		if err != nil {
			return nil, fmt.Errorf("stroke %d: %w", i, err)
		}
		state.InsertStroke(stroke)
	}
	return state, nil
}

// buildStroke converts one record into a stroke. dir anchors relative
// bitmap paths.
func buildStroke(rec strokeRecord, dir string) (ink.Stroke, error) {
	color := ink.Hex(rec.Color)
	width := rec.Width
	if width == 0 {
		width = 2
	}

	switch rec.Kind {
	case "marker":
		return ink.NewMarkerStroke(recordSamples(rec.Points), width, color), nil
	case "brush":
		return ink.NewBrushStroke(recordSamples(rec.Points), width, color), nil
	case "shape":
		kind, err := shapeKind(rec.Shape)
		if err != nil {
			return nil, err
		}
		return ink.NewShapeStroke(kind, recordPoint(rec.Start), recordPoint(rec.End), width, color), nil
	case "vector":
		return ink.NewVectorImage(rec.SVG, recordPoint(rec.Pos))
	case "bitmap":
		data, err := os.ReadFile(filepath.Join(dir, rec.File))
		if err != nil {
			return nil, err
		}
		return ink.NewBitmapImage(data, recordPoint(rec.Pos))
	default:
		return nil, fmt.Errorf("unknown stroke kind %q", rec.Kind)
	}
}

// recordSamples converts [x, y] or [x, y, pressure] entries.
// Missing pressure defaults to 1.
func recordSamples(points [][]float64) []ink.Sample {
	samples := make([]ink.Sample, 0, len(points))
	for _, p := range points {
		s := ink.Sample{Pressure: 1}
		if len(p) >= 2 {
			s.Pos = ink.Pt(p[0], p[1])
		}
		if len(p) >= 3 {
			s.Pressure = p[2]
		}
		samples = append(samples, s)
	}
	return samples
}

// recordPoint converts an [x, y] pair, tolerating short input.
func recordPoint(p []float64) ink.Point {
	if len(p) < 2 {
		return ink.Point{}
	}
	return ink.Pt(p[0], p[1])
}

// shapeKind maps a record's shape name to the engine enum.
func shapeKind(name string) (ink.ShapeKind, error) {
	switch name {
	case "line", "":
		return ink.ShapeLine, nil
	case "rectangle", "rect":
		return ink.ShapeRectangle, nil
	case "ellipse":
		return ink.ShapeEllipse, nil
	default:
		return 0, fmt.Errorf("unknown shape %q", name)
	}
}
