package detection

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
)

// Region is an axis-aligned bounding rectangle in template pixel coordinates.
//
// X and Y identify the top-left corner; Width and Height are inclusive pixel
// extents (X+Width-1 is the rightmost foreground column).
type Region struct {
	X      int `json:"x"`      // Left edge (0-based)
	Y      int `json:"y"`      // Top edge (0-based)
	Width  int `json:"width"`  // Horizontal extent in pixels
	Height int `json:"height"` // Vertical extent in pixels
}

// Options tunes the region detection pipeline.
type Options struct {
	// BrightnessThreshold is the inverted-threshold cutoff (0-255).
	// Blurred grayscale pixels at or below this value are foreground.
	// The default of 240 assumes a near-white studio background.
	BrightnessThreshold uint8 `json:"brightness_threshold"`

	// BlurRadius is the Gaussian blur radius applied before thresholding.
	// A radius of 0 or less skips the blur entirely.
	BlurRadius float64 `json:"blur_radius"`

	// MinComponentSize is the minimum pixel count for a foreground
	// component to be considered. Smaller components are treated as noise.
	MinComponentSize int `json:"min_component_size"`
}

// DefaultOptions returns the detection settings used by the reference
// pipeline: threshold 240, a 5x5-equivalent Gaussian blur, and a small
// noise floor.
func DefaultOptions() Options {
	return Options{
		BrightnessThreshold: 240,
		BlurRadius:          1.4,
		MinComponentSize:    16,
	}
}

// DetectRegion finds the printable region of a template image.
//
// It returns the bounding rectangle of the largest dark foreground component
// and true, or nil and false when the image contains no foreground at all
// (for example an all-white template). Absence is a defined fallback path,
// not an error; callers center the design on the full canvas instead.
//
// Ties on component area are broken by row-major scan order: the component
// whose first pixel appears earliest wins. Identical inputs always produce
// identical results.
func DetectRegion(img image.Image, opts Options) (*Region, bool) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil, false
	}

	raw, mask := foregroundMasks(img, opts)

	visited := make([][]bool, height)
	for y := 0; y < height; y++ {
		visited[y] = make([]bool, width)
	}

	var best *Region
	bestArea := 0

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !mask[y][x] || visited[y][x] {
				continue
			}
			area, r := traceComponent(mask, visited, x, y, width, height)
			if area < opts.MinComponentSize {
				continue
			}
			// Strict comparison keeps the first-encountered maximum on ties.
			if area > bestArea {
				bestArea = area
				best = r
			}
		}
	}

	if best == nil {
		return nil, false
	}
	return refineRegion(best, raw, blurReach(opts.BlurRadius), width, height), true
}

// foregroundMasks binarizes the image with an inverted threshold, returning
// the mask of the raw grayscale raster and the mask of the blurred raster.
// Components are traced on the blurred mask so isolated noise pixels never
// form a region; the raw mask keeps the true silhouette edges for the final
// bounding box. With blurring disabled the two masks are identical.
func foregroundMasks(img image.Image, opts Options) (raw, smoothed [][]bool) {
	gray := effect.Grayscale(img)
	raw = thresholdMask(gray, opts.BrightnessThreshold)
	if opts.BlurRadius <= 0 {
		return raw, raw
	}
	smoothed = thresholdMask(blur.Gaussian(gray, opts.BlurRadius), opts.BrightnessThreshold)
	return raw, smoothed
}

// thresholdMask marks pixels at or below the brightness threshold as
// foreground.
func thresholdMask(gray *image.RGBA, threshold uint8) [][]bool {
	b := gray.Bounds()
	width := b.Dx()
	height := b.Dy()

	mask := make([][]bool, height)
	for y := 0; y < height; y++ {
		mask[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			// Grayscale image: R carries the luminance.
			v := gray.RGBAAt(x+b.Min.X, y+b.Min.Y).R
			mask[y][x] = v <= threshold
		}
	}
	return mask
}

// blurReach is the number of pixels the Gaussian kernel can smear foreground
// past the true silhouette edge.
func blurReach(radius float64) int {
	if radius <= 0 {
		return 0
	}
	return int(math.Ceil(radius))
}

// refineRegion tightens a component's bounding box against the raw mask.
//
// The blur smears dark foreground up to its kernel reach beyond the true
// silhouette, so the box found on the blurred mask can run a couple of
// pixels wide. The box is recomputed from raw foreground pixels inside the
// smeared box padded by the reach, which restores the true edges. If the
// window holds no raw foreground (foreground existed only after blurring),
// the component's own box is kept.
func refineRegion(r *Region, raw [][]bool, reach, width, height int) *Region {
	x1 := clampInt(r.X-reach, 0, width-1)
	y1 := clampInt(r.Y-reach, 0, height-1)
	x2 := clampInt(r.X+r.Width-1+reach, 0, width-1)
	y2 := clampInt(r.Y+r.Height-1+reach, 0, height-1)

	minX, minY := width, height
	maxX, maxY := -1, -1
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			if !raw[y][x] {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < 0 {
		return r
	}
	return &Region{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX + 1,
		Height: maxY - minY + 1,
	}
}

// clampInt constrains an integer value to the range [min, max].
func clampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// traceComponent flood-fills the foreground component containing (startX,
// startY), marking its pixels visited. It returns the component's pixel
// count and bounding rectangle.
//
// The fill is iterative (stack-based) to avoid call-stack overflow on large
// silhouettes and uses 8-connectivity, including diagonal neighbors.
func traceComponent(mask, visited [][]bool, startX, startY, width, height int) (int, *Region) {
	type point struct{ x, y int }

	stack := []point{{startX, startY}}
	area := 0
	minX, minY := startX, startY
	maxX, maxY := startX, startY

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.x < 0 || p.x >= width || p.y < 0 || p.y >= height {
			continue
		}
		if visited[p.y][p.x] || !mask[p.y][p.x] {
			continue
		}

		visited[p.y][p.x] = true
		area++
		if p.x < minX {
			minX = p.x
		}
		if p.x > maxX {
			maxX = p.x
		}
		if p.y < minY {
			minY = p.y
		}
		if p.y > maxY {
			maxY = p.y
		}

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, point{p.x + dx, p.y + dy})
			}
		}
	}

	return area, &Region{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX + 1,
		Height: maxY - minY + 1,
	}
}

// Rect converts the region to a standard image.Rectangle.
func (r *Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}
