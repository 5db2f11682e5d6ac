package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
)

func encodePNGBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	data, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	return data
}

func TestDecode_PNG(t *testing.T) {
	src := createInMemoryImage(32, 24, color.RGBA{50, 100, 150, 255})
	data := encodePNGBytes(t, src)

	img, format, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if format != "png" {
		t.Errorf("format: got %s, want png", format)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 24 {
		t.Errorf("dimensions: got %dx%d, want 32x24",
			img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestDecode_JPEG(t *testing.T) {
	src := createInMemoryImage(40, 40, color.RGBA{200, 10, 10, 255})
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, nil); err != nil {
		t.Fatalf("jpeg.Encode failed: %v", err)
	}

	img, format, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("format: got %s, want jpeg", format)
	}
	if img.Bounds().Dx() != 40 {
		t.Errorf("width: got %d, want 40", img.Bounds().Dx())
	}
}

func TestDecode_InvalidBytes(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"garbage", []byte("not an image at all")},
		{"truncated png header", []byte{0x89, 'P', 'N', 'G'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Decode(tt.data); err == nil {
				t.Error("Decode should fail for invalid bytes")
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	rgba := createInMemoryImage(10, 20, color.RGBA{0, 0, 0, 255})
	info := Describe(rgba, "png")

	if info.Width != 10 || info.Height != 20 {
		t.Errorf("dimensions: got %dx%d, want 10x20", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %s, want png", info.Format)
	}
	if !info.HasAlpha {
		t.Error("RGBA image should report HasAlpha")
	}

	gray := image.NewGray(image.Rect(0, 0, 5, 5))
	if Describe(gray, "jpeg").HasAlpha {
		t.Error("grayscale image should not report HasAlpha")
	}
}
