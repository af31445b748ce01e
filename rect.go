package ink

// Rect represents an axis-aligned rectangle (AABB).
//
// Min is the top-left corner, Max the bottom-right. A well-formed Rect has
// Min.X <= Max.X and Min.Y <= Max.Y; use NewRect or R to normalize arbitrary
// corner pairs.
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points may be in any order; the result is normalized.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: min(p1.X, p2.X), Y: min(p1.Y, p2.Y)},
		Max: Point{X: max(p1.X, p2.X), Y: max(p1.Y, p2.Y)},
	}
}

// R is a convenience function to create a normalized Rect from coordinates.
func R(x0, y0, x1, y1 float64) Rect {
	return NewRect(Pt(x0, y0), Pt(x1, y1))
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Size returns the extents as a Point (Width, Height).
func (r Rect) Size() Point {
	return Point{X: r.Max.X - r.Min.X, Y: r.Max.Y - r.Min.Y}
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: min(r.Min.X, other.Min.X), Y: min(r.Min.Y, other.Min.Y)},
		Max: Point{X: max(r.Max.X, other.Max.X), Y: max(r.Max.Y, other.Max.Y)},
	}
}

// UnionPoint returns the smallest rectangle containing r and p.
func (r Rect) UnionPoint(p Point) Rect {
	return Rect{
		Min: Point{X: min(r.Min.X, p.X), Y: min(r.Min.Y, p.Y)},
		Max: Point{X: max(r.Max.X, p.X), Y: max(r.Max.Y, p.Y)},
	}
}

// Contains reports whether p lies inside r. Edges are inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ContainsRect reports whether other lies entirely inside r.
// Edges are inclusive, so a rectangle contains itself.
func (r Rect) ContainsRect(other Rect) bool {
	return other.Min.X >= r.Min.X && other.Max.X <= r.Max.X &&
		other.Min.Y >= r.Min.Y && other.Max.Y <= r.Max.Y
}

// Intersects reports whether r and other overlap.
// Touching edges count as an intersection.
func (r Rect) Intersects(other Rect) bool {
	return r.Min.X <= other.Max.X && r.Max.X >= other.Min.X &&
		r.Min.Y <= other.Max.Y && r.Max.Y >= other.Min.Y
}

// Translate returns r shifted by offset.
func (r Rect) Translate(offset Point) Rect {
	return Rect{Min: r.Min.Add(offset), Max: r.Max.Add(offset)}
}

// remapPoint maps p from the coordinate frame of the rectangle from into the
// frame of to, scaling each axis independently. A zero-extent source axis
// maps onto to.Min for that axis, so degenerate geometry stays finite.
func remapPoint(p Point, from, to Rect) Point {
	var x, y float64
	if w := from.Width(); w != 0 {
		x = (p.X-from.Min.X)/w*to.Width() + to.Min.X
	} else {
		x = to.Min.X
	}
	if h := from.Height(); h != 0 {
		y = (p.Y-from.Min.Y)/h*to.Height() + to.Min.Y
	} else {
		y = to.Min.Y
	}
	return Point{X: x, Y: y}
}

// remapRect maps b through the anisotropic affine taking from onto to.
func remapRect(b, from, to Rect) Rect {
	return Rect{
		Min: remapPoint(b.Min, from, to),
		Max: remapPoint(b.Max, from, to),
	}
}
