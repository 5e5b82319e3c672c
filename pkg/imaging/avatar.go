package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	"image/png"

	"golang.org/x/image/draw"
)

// AvatarSize is the edge length in pixels of a normalized avatar.
const AvatarSize = 250

var ErrUnsupportedImage = errors.New("unsupported image")

// NormalizeAvatar decodes a JPEG or PNG payload and re-encodes it as a
// AvatarSize x AvatarSize PNG. The source is scaled to cover the square and the
// overflow is cropped around the centre.
func NormalizeAvatar(data []byte) ([]byte, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	if format != "jpeg" && format != "png" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, format)
	}

	dst := image.NewRGBA(image.Rect(0, 0, AvatarSize, AvatarSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, coverCrop(src.Bounds()), draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// coverCrop returns the largest centred square inside b.
func coverCrop(b image.Rectangle) image.Rectangle {
	w, h := b.Dx(), b.Dy()
	side := min(w, h)
	x0 := b.Min.X + (w-side)/2
	y0 := b.Min.Y + (h-side)/2
	return image.Rect(x0, y0, x0+side, y0+side)
}
