package helper

import (
	"bytes"
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	ThumbMinWidth     = 64
	ThumbMaxWidth     = 1600
	ThumbDefaultWidth = 480
	thumbQuality      = 80
)

// ClampThumbWidth maps a requested width into [ThumbMinWidth, ThumbMaxWidth]; 0 means default.
func ClampThumbWidth(w int) int {
	switch {
	case w <= 0:
		return ThumbDefaultWidth
	case w < ThumbMinWidth:
		return ThumbMinWidth
	case w > ThumbMaxWidth:
		return ThumbMaxWidth
	}
	return w
}

// ThumbnailWebP decodes a jpeg/png/webp image, resizes it to width keeping the
// aspect ratio (never upscaling) and encodes it as lossy WebP.
func ThumbnailWebP(r io.Reader, width int) ([]byte, error) {
	src, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	width = ClampThumbWidth(width)
	if b := src.Bounds(); b.Dx() < width {
		width = b.Dx()
	}
	thumb := imaging.Resize(src, width, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, thumb, &webp.Options{Quality: thumbQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}
