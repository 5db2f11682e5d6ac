// Package placement computes where a design goes on a shirt template.
//
// Given the detected printable region (or its absence), the design
// dimensions, and a parameter pair selected by template classification,
// Compute produces the rectangle at which the compositor pastes the design.
// The math is a pure function with no hidden state.
package placement

import (
	"errors"
	"math"

	"github.com/teepress/mockup-tools/internal/detection"
)

// ErrZeroSizeDesign reports a design with zero width or height. The scale
// computation divides by the design dimensions, so this input is rejected
// up front rather than left undefined.
var ErrZeroSizeDesign = errors.New("design has zero width or height")

// Params are the tunable placement knobs for one template class.
type Params struct {
	// PaddingRatio is the fraction of the detected region the design
	// should occupy after scaling, in (0, 1].
	PaddingRatio float64 `json:"padding_ratio"`

	// VerticalOffsetPct shifts the design's top edge down from the
	// region's top edge, as a percentage of the region height. Negative
	// values shift up. Large or negative values may push the design
	// outside the region or canvas; that is allowed and never clamped.
	VerticalOffsetPct float64 `json:"vertical_offset_pct"`
}

// Placement is the computed paste rectangle in template pixel coordinates.
//
// X and Y may be negative or exceed the canvas; compositing clips silently.
type Placement struct {
	X      int  `json:"x"`
	Y      int  `json:"y"`
	Width  int  `json:"width"`  // Design width after scaling
	Height int  `json:"height"` // Design height after scaling
	Scaled bool `json:"scaled"` // False on the canvas-centering fallback
}

// Compute determines the placement of a designW x designH design on a
// templateW x templateH template.
//
// With a detected region, the design is scaled by
//
//	scale = min(region.Width/designW, region.Height/designH, 1.0) * p.PaddingRatio
//
// which guarantees it fits inside the region after padding and never
// upscales beyond its original resolution. Scaled dimensions are floored,
// then clamped to a minimum of 1 pixel so the reported rectangle always
// matches what the resizer can actually produce. The design is centered
// horizontally within the region; vertically its top edge sits at region.Y
// plus floor(region.Height * VerticalOffsetPct / 100).
//
// Without a region, the design is centered unscaled on the full canvas.
// Coordinates go negative when the design is larger than the template; the
// compositor clips the overflow.
func Compute(designW, designH int, region *detection.Region, templateW, templateH int, p Params) (Placement, error) {
	if designW <= 0 || designH <= 0 {
		return Placement{}, ErrZeroSizeDesign
	}

	if region == nil {
		return Placement{
			X:      floorDiv(templateW-designW, 2),
			Y:      floorDiv(templateH-designH, 2),
			Width:  designW,
			Height: designH,
		}, nil
	}

	scale := math.Min(float64(region.Width)/float64(designW), float64(region.Height)/float64(designH))
	scale = math.Min(scale, 1.0) * p.PaddingRatio

	w := int(float64(designW) * scale)
	h := int(float64(designH) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	yOffset := int(math.Floor(float64(region.Height) * p.VerticalOffsetPct / 100))

	return Placement{
		X:      region.X + floorDiv(region.Width-w, 2),
		Y:      region.Y + yOffset,
		Width:  w,
		Height: h,
		Scaled: true,
	}, nil
}

// floorDiv divides rounding toward negative infinity, matching the centering
// arithmetic of the reference pipeline for negative numerators.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
