package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ShirtColor describes the dominant color of a template's printable region.
//
// The color is reported both as a quantized hex value and as the nearest
// named color from a small garment palette, so generated manifests stay
// human-readable.
type ShirtColor struct {
	Hex        string  `json:"hex"`        // Quantized hex "#RRGGBB"
	Name       string  `json:"name"`       // Nearest palette name ("heather gray", ...)
	Percentage float64 `json:"percentage"` // Share of region pixels with this color (0-100)
}

// palette maps garment color names to reference values. Matching uses
// perceptual (CIE Lab) distance rather than raw RGB distance.
var palette = []struct {
	name string
	c    color.RGBA
}{
	{"white", color.RGBA{255, 255, 255, 255}},
	{"black", color.RGBA{20, 20, 20, 255}},
	{"heather gray", color.RGBA{160, 160, 160, 255}},
	{"charcoal", color.RGBA{70, 70, 70, 255}},
	{"red", color.RGBA{200, 30, 40, 255}},
	{"maroon", color.RGBA{110, 30, 45, 255}},
	{"orange", color.RGBA{240, 125, 30, 255}},
	{"yellow", color.RGBA{250, 220, 60, 255}},
	{"green", color.RGBA{40, 140, 70, 255}},
	{"forest", color.RGBA{30, 75, 50, 255}},
	{"blue", color.RGBA{40, 90, 190, 255}},
	{"navy", color.RGBA{30, 40, 80, 255}},
	{"purple", color.RGBA{110, 60, 160, 255}},
	{"pink", color.RGBA{240, 150, 185, 255}},
	{"brown", color.RGBA{105, 75, 55, 255}},
	{"sand", color.RGBA{215, 200, 170, 255}},
}

// DominantColor finds the most frequent color inside a region of the image.
//
// Similar colors are grouped by quantizing each RGB component to multiples
// of 16, so minor shading and compression noise collapse into one bucket.
// Fully transparent pixels are skipped. Returns nil when the region contains
// no opaque pixels.
func DominantColor(img image.Image, region image.Rectangle) *ShirtColor {
	bounds := region.Intersect(img.Bounds())
	if bounds.Empty() {
		return nil
	}

	counts := make(map[color.RGBA]int)
	total := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			// Quantize to reduce color space (group similar colors)
			key := color.RGBA{
				R: uint8((r >> 8) / 16 * 16),
				G: uint8((g >> 8) / 16 * 16),
				B: uint8((b >> 8) / 16 * 16),
				A: 255,
			}
			counts[key]++
			total++
		}
	}

	if total == 0 {
		return nil
	}

	var top color.RGBA
	topCount := 0
	for key, cnt := range counts {
		if cnt > topCount || (cnt == topCount && lessRGBA(key, top)) {
			top = key
			topCount = cnt
		}
	}

	return &ShirtColor{
		Hex:        fmt.Sprintf("#%02X%02X%02X", top.R, top.G, top.B),
		Name:       nearestName(top),
		Percentage: float64(topCount) / float64(total) * 100,
	}
}

// nearestName returns the palette entry perceptually closest to c.
func nearestName(c color.RGBA) string {
	sample, ok := colorful.MakeColor(c)
	if !ok {
		return ""
	}

	best := ""
	bestDist := 0.0
	for i, entry := range palette {
		ref, ok := colorful.MakeColor(entry.c)
		if !ok {
			continue
		}
		d := sample.DistanceLab(ref)
		if i == 0 || d < bestDist {
			best = entry.name
			bestDist = d
		}
	}
	return best
}

// lessRGBA imposes a total order on colors so frequency ties resolve
// deterministically regardless of map iteration order.
func lessRGBA(a, b color.RGBA) bool {
	if a.R != b.R {
		return a.R < b.R
	}
	if a.G != b.G {
		return a.G < b.G
	}
	return a.B < b.B
}
