package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Decode parses uploaded image bytes into a decoded raster.
//
// Supported formats are PNG, JPEG, GIF, BMP, and WebP; the returned string
// names the detected format. A decode failure is local to the single upload
// being processed and must never abort a batch; callers report it per item.
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// Info contains metadata about a decoded upload.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the detected image format ("png", "jpeg", "gif", "bmp",
	// "webp"). Detection is based on file contents, not file extension.
	Format string `json:"format"`

	// HasAlpha indicates whether the decoded image carries an alpha
	// (transparency) channel.
	HasAlpha bool `json:"has_alpha"`
}

// Describe returns metadata for a decoded image.
func Describe(img image.Image, format string) Info {
	bounds := img.Bounds()

	hasAlpha := false
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
	}

	return Info{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Format:   format,
		HasAlpha: hasAlpha,
	}
}
