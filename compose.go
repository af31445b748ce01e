package ink

import (
	"strconv"
	"strings"
)

// svgNamespace is the XML namespace emitted on exported documents.
const svgNamespace = "http://www.w3.org/2000/svg"

// fmtFloat formats a coordinate with the fewest digits that round-trip.
func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WrapSVG wraps inner markup in a standalone <svg> document sized to
// bounds. The viewBox spans the bounds, so fragments generated with an
// offset normalizing them into bounds render at their intended position.
func WrapSVG(inner string, bounds Rect) string {
	w := fmtFloat(bounds.Width())
	h := fmtFloat(bounds.Height())

	var b strings.Builder
	b.Grow(len(inner) + 256)
	b.WriteString(`<svg xmlns="`)
	b.WriteString(svgNamespace)
	b.WriteString(`" width="`)
	b.WriteString(w)
	b.WriteString(`" height="`)
	b.WriteString(h)
	b.WriteString(`" viewBox="`)
	b.WriteString(fmtFloat(bounds.Min.X))
	b.WriteByte(' ')
	b.WriteString(fmtFloat(bounds.Min.Y))
	b.WriteByte(' ')
	b.WriteString(w)
	b.WriteByte(' ')
	b.WriteString(h)
	b.WriteString(`">`)
	b.WriteString("\n")
	b.WriteString(inner)
	b.WriteString("\n</svg>\n")
	return b.String()
}
