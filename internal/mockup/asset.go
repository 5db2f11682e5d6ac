// Package mockup runs the designs x templates batch: each pair is detected,
// placed, composited, and encoded independently, then the results are
// packaged into per-design zips inside a master archive.
package mockup

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/teepress/mockup-tools/internal/imaging"
)

// Asset is a decoded upload held in memory for the duration of a session.
type Asset struct {
	// Name is the original upload file name (e.g. "Gray-Model.png").
	Name string `json:"name"`

	// DisplayName is the user-chosen name for a design, used in output
	// file names. Empty means fall back to the file name stem.
	DisplayName string `json:"display_name,omitempty"`

	// Image is the decoded raster.
	Image image.Image `json:"-"`
}

// DecodeAsset decodes uploaded bytes into an Asset. A failure is a per-item
// decode error; the caller reports it and moves on to the next upload.
func DecodeAsset(name string, data []byte) (*Asset, error) {
	img, _, err := imaging.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &Asset{Name: name, Image: img}, nil
}

// Title returns the name used for this asset in output file names: the
// display name when set, otherwise the file name stem.
func (a *Asset) Title() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return Stem(a.Name)
}

// Stem strips the directory and extension from a file name.
func Stem(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputName builds the mockup file name for a design/template pair,
// following the {design}_{template}_tee.png convention consumed by
// downstream tooling.
func OutputName(designTitle, templateName string) string {
	return fmt.Sprintf("%s_%s_tee.png", designTitle, Stem(templateName))
}
