package ink

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoVectorData reports an attempt to serialize a vector image without
// content.
var ErrNoVectorData = errors.New("ink: vector image has no content")

// VectorImage is an imported SVG placed on the board.
//
// The source document's inner markup is kept verbatim together with its
// intrinsic size; serialization re-projects that intrinsic space into the
// current bounds through a nested <svg> element, so resizing never touches
// the embedded markup. Vector images have no fine-grained hitboxes.
type VectorImage struct {
	inner     string
	viewBox   string
	intrinsic Point
	bounds    Rect
}

// svgRoot captures the attributes and raw content of an <svg> root element.
type svgRoot struct {
	XMLName xml.Name `xml:"svg"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	ViewBox string   `xml:"viewBox,attr"`
	Inner   string   `xml:",innerxml"`
}

// NewVectorImage parses an SVG document and places it with its top-left
// corner at pos, sized to its intrinsic dimensions.
func NewVectorImage(svgData string, pos Point) (*VectorImage, error) {
	var root svgRoot
	if err := xml.Unmarshal([]byte(svgData), &root); err != nil {
		return nil, fmt.Errorf("ink: parse vector image: %w", err)
	}

	w, h, err := intrinsicSize(root)
	if err != nil {
		return nil, err
	}

	viewBox := strings.TrimSpace(root.ViewBox)
	if viewBox == "" {
		viewBox = "0 0 " + fmtFloat(w) + " " + fmtFloat(h)
	}

	return &VectorImage{
		inner:     root.Inner,
		viewBox:   viewBox,
		intrinsic: Pt(w, h),
		bounds:    Rect{Min: pos, Max: pos.Add(Pt(w, h))},
	}, nil
}

// intrinsicSize resolves the document size from the width/height attributes,
// falling back to the viewBox extents.
func intrinsicSize(root svgRoot) (w, h float64, err error) {
	w = parseSVGLength(root.Width)
	h = parseSVGLength(root.Height)
	if w > 0 && h > 0 {
		return w, h, nil
	}

	fields := strings.Fields(root.ViewBox)
	if len(fields) == 4 {
		vw, errW := strconv.ParseFloat(fields[2], 64)
		vh, errH := strconv.ParseFloat(fields[3], 64)
		if errW == nil && errH == nil && vw > 0 && vh > 0 {
			return vw, vh, nil
		}
	}
	return 0, 0, errors.New("ink: vector image has no usable intrinsic size")
}

// parseSVGLength parses a length attribute, tolerating a unit suffix.
// Returns 0 when the value is missing or not numeric.
func parseSVGLength(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "abcdefghijklmnopqrstuvwxyz%")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// strokeMarker implements the sealed Stroke interface.
func (*VectorImage) strokeMarker() {}

// Bounds returns the placement box on the board.
func (v *VectorImage) Bounds() Rect { return v.bounds }

// HasHitboxes reports false: images are hit-tested by bounds alone.
func (*VectorImage) HasHitboxes() bool { return false }

// Hitboxes returns nil.
func (*VectorImage) Hitboxes() []Rect { return nil }

// IntrinsicSize returns the document's native width and height.
func (v *VectorImage) IntrinsicSize() Point { return v.intrinsic }

// Resize moves the placement box; the embedded markup is re-projected at
// serialization time.
func (v *VectorImage) Resize(newBounds Rect) {
	v.bounds = newBounds
}

// Translate shifts the placement box rigidly.
func (v *VectorImage) Translate(offset Point) {
	v.bounds = v.bounds.Translate(offset)
}

// SVGFragment renders the image as a nested <svg> element mapping the
// intrinsic viewBox onto the placement box.
func (v *VectorImage) SVGFragment(offset Point) (string, error) {
	if strings.TrimSpace(v.inner) == "" {
		return "", ErrNoVectorData
	}

	b := v.bounds.Translate(offset)
	var sb strings.Builder
	sb.WriteString(`<svg x="`)
	sb.WriteString(fmtFloat(b.Min.X))
	sb.WriteString(`" y="`)
	sb.WriteString(fmtFloat(b.Min.Y))
	sb.WriteString(`" width="`)
	sb.WriteString(fmtFloat(b.Width()))
	sb.WriteString(`" height="`)
	sb.WriteString(fmtFloat(b.Height()))
	sb.WriteString(`" viewBox="`)
	sb.WriteString(v.viewBox)
	sb.WriteString(`" preserveAspectRatio="none">`)
	sb.WriteString(v.inner)
	sb.WriteString(`</svg>`)
	return sb.String(), nil
}

// Clone returns a copy of the image.
func (v *VectorImage) Clone() Stroke {
	c := *v
	return &c
}
