package ink

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"strings"

	// Register the decoders bitmap images are built from.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// ErrNoBitmapData reports an attempt to serialize a bitmap image without
// pixel data.
var ErrNoBitmapData = errors.New("ink: bitmap image has no data")

// BitmapImage is an imported raster image placed on the board.
//
// The encoded bytes are kept as imported (PNG, JPEG, GIF or BMP) and
// embedded verbatim into exports as a data URI; resizing only moves the
// placement box. Bitmap images have no fine-grained hitboxes.
type BitmapImage struct {
	data      []byte
	format    string
	intrinsic Point
	bounds    Rect
}

// NewBitmapImage decodes the image header and places the image with its
// top-left corner at pos, sized to its pixel dimensions.
func NewBitmapImage(data []byte, pos Point) (*BitmapImage, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("ink: decode bitmap image: %w", err)
	}

	size := Pt(float64(cfg.Width), float64(cfg.Height))
	return &BitmapImage{
		data:      bytes.Clone(data),
		format:    format,
		intrinsic: size,
		bounds:    Rect{Min: pos, Max: pos.Add(size)},
	}, nil
}

// strokeMarker implements the sealed Stroke interface.
func (*BitmapImage) strokeMarker() {}

// Bounds returns the placement box on the board.
func (b *BitmapImage) Bounds() Rect { return b.bounds }

// HasHitboxes reports false: images are hit-tested by bounds alone.
func (*BitmapImage) HasHitboxes() bool { return false }

// Hitboxes returns nil.
func (*BitmapImage) Hitboxes() []Rect { return nil }

// Format returns the registered name of the decoded format ("png", "jpeg",
// "gif", "bmp").
func (b *BitmapImage) Format() string { return b.format }

// IntrinsicSize returns the pixel dimensions of the decoded image.
func (b *BitmapImage) IntrinsicSize() Point { return b.intrinsic }

// Resize moves the placement box; the pixel data is untouched.
func (b *BitmapImage) Resize(newBounds Rect) {
	b.bounds = newBounds
}

// Translate shifts the placement box rigidly.
func (b *BitmapImage) Translate(offset Point) {
	b.bounds = b.bounds.Translate(offset)
}

// SVGFragment renders the image as an <image> element with the encoded
// bytes inlined as a base64 data URI.
func (b *BitmapImage) SVGFragment(offset Point) (string, error) {
	if len(b.data) == 0 {
		return "", ErrNoBitmapData
	}

	r := b.bounds.Translate(offset)
	var sb strings.Builder
	sb.WriteString(`<image x="`)
	sb.WriteString(fmtFloat(r.Min.X))
	sb.WriteString(`" y="`)
	sb.WriteString(fmtFloat(r.Min.Y))
	sb.WriteString(`" width="`)
	sb.WriteString(fmtFloat(r.Width()))
	sb.WriteString(`" height="`)
	sb.WriteString(fmtFloat(r.Height()))
	sb.WriteString(`" preserveAspectRatio="none" href="data:image/`)
	sb.WriteString(b.format)
	sb.WriteString(`;base64,`)
	sb.WriteString(base64.StdEncoding.EncodeToString(b.data))
	sb.WriteString(`"/>`)
	return sb.String(), nil
}

// Clone returns a deep copy of the image.
func (b *BitmapImage) Clone() Stroke {
	c := *b
	c.data = bytes.Clone(b.data)
	return &c
}
