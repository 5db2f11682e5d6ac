package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// Resize scales an image to exactly width x height pixels using Lanczos
// resampling. Requested dimensions below one pixel are raised to one, since
// a zero dimension would otherwise switch the resampler into
// aspect-preserving mode.
func Resize(img image.Image, width, height int) *image.NRGBA {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// Composite alpha-blends the design over the template at the given offset,
// using the design's own alpha channel as the blend mask.
//
// The template is never mutated; the result is a new image with the
// template's dimensions. Offsets may place the design partially or entirely
// outside the canvas, in which case the out-of-canvas portion clips silently.
func Composite(template, design image.Image, at image.Point) *image.NRGBA {
	return imaging.Overlay(template, design, at, 1.0)
}

// EncodePNG serializes an image as lossless PNG with alpha preserved.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
