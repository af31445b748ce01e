package ink

import "strings"

// ShapeKind enumerates the geometric primitives a ShapeStroke can carry.
type ShapeKind int

const (
	// ShapeLine is a straight segment from start to end.
	ShapeLine ShapeKind = iota
	// ShapeRectangle spans the box between start and end.
	ShapeRectangle
	// ShapeEllipse is inscribed in the box between start and end.
	ShapeEllipse
)

// String returns the kind name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeLine:
		return "line"
	case ShapeRectangle:
		return "rectangle"
	case ShapeEllipse:
		return "ellipse"
	default:
		return "unknown"
	}
}

// ShapeStroke is a geometric primitive defined by a drag gesture.
//
// start and end are the anchor points of the gesture; for rectangles and
// ellipses they are opposite corners of the framing box. Shape strokes have
// no fine-grained hitboxes: their bounds describe them well enough, so a
// selector must contain the whole shape to pick it up.
type ShapeStroke struct {
	kind   ShapeKind
	start  Point
	end    Point
	width  float64
	color  RGBA
	bounds Rect
}

// NewShapeStroke creates a shape stroke from the gesture anchor points.
func NewShapeStroke(kind ShapeKind, start, end Point, width float64, color RGBA) *ShapeStroke {
	return &ShapeStroke{
		kind:   kind,
		start:  start,
		end:    end,
		width:  width,
		color:  color,
		bounds: NewRect(start, end),
	}
}

// strokeMarker implements the sealed Stroke interface.
func (*ShapeStroke) strokeMarker() {}

// Kind returns the geometric primitive this stroke draws.
func (s *ShapeStroke) Kind() ShapeKind { return s.kind }

// Bounds returns the framing box spanned by the anchor points.
func (s *ShapeStroke) Bounds() Rect { return s.bounds }

// HasHitboxes reports false: shapes are hit-tested by bounds alone.
func (*ShapeStroke) HasHitboxes() bool { return false }

// Hitboxes returns nil.
func (*ShapeStroke) Hitboxes() []Rect { return nil }

// Width returns the outline width.
func (s *ShapeStroke) Width() float64 { return s.width }

// Color returns the outline color.
func (s *ShapeStroke) Color() RGBA { return s.color }

// Resize re-fits the anchor points into newBounds.
func (s *ShapeStroke) Resize(newBounds Rect) {
	s.start = remapPoint(s.start, s.bounds, newBounds)
	s.end = remapPoint(s.end, s.bounds, newBounds)
	s.bounds = NewRect(s.start, s.end)
}

// Translate shifts the anchor points and bounds rigidly.
func (s *ShapeStroke) Translate(offset Point) {
	s.start = s.start.Add(offset)
	s.end = s.end.Add(offset)
	s.bounds = s.bounds.Translate(offset)
}

// SVGFragment renders the shape outline as its native SVG element.
func (s *ShapeStroke) SVGFragment(offset Point) (string, error) {
	var sb strings.Builder
	switch s.kind {
	case ShapeRectangle:
		b := s.bounds.Translate(offset)
		sb.WriteString(`<rect x="`)
		sb.WriteString(fmtFloat(b.Min.X))
		sb.WriteString(`" y="`)
		sb.WriteString(fmtFloat(b.Min.Y))
		sb.WriteString(`" width="`)
		sb.WriteString(fmtFloat(b.Width()))
		sb.WriteString(`" height="`)
		sb.WriteString(fmtFloat(b.Height()))
		sb.WriteString(`"`)
	case ShapeEllipse:
		b := s.bounds.Translate(offset)
		c := b.Center()
		sb.WriteString(`<ellipse cx="`)
		sb.WriteString(fmtFloat(c.X))
		sb.WriteString(`" cy="`)
		sb.WriteString(fmtFloat(c.Y))
		sb.WriteString(`" rx="`)
		sb.WriteString(fmtFloat(b.Width() / 2))
		sb.WriteString(`" ry="`)
		sb.WriteString(fmtFloat(b.Height() / 2))
		sb.WriteString(`"`)
	default: // ShapeLine
		p1 := s.start.Add(offset)
		p2 := s.end.Add(offset)
		sb.WriteString(`<line x1="`)
		sb.WriteString(fmtFloat(p1.X))
		sb.WriteString(`" y1="`)
		sb.WriteString(fmtFloat(p1.Y))
		sb.WriteString(`" x2="`)
		sb.WriteString(fmtFloat(p2.X))
		sb.WriteString(`" y2="`)
		sb.WriteString(fmtFloat(p2.Y))
		sb.WriteString(`"`)
	}
	sb.WriteString(` fill="none" stroke="`)
	sb.WriteString(s.color.HexString())
	sb.WriteString(`" stroke-width="`)
	sb.WriteString(fmtFloat(s.width))
	sb.WriteString(`"`)
	if s.color.A < 1 {
		sb.WriteString(` stroke-opacity="`)
		sb.WriteString(fmtFloat(s.color.A))
		sb.WriteString(`"`)
	}
	sb.WriteString("/>")
	return sb.String(), nil
}

// Clone returns a copy of the stroke.
func (s *ShapeStroke) Clone() Stroke {
	c := *s
	return &c
}
