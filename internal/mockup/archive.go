package mockup

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
)

// MasterArchiveName is the download file name for a full batch.
const MasterArchiveName = "all_mockups_by_design.zip"

// Manifest summarizes a generation run. It is embedded in the master
// archive as manifest.json.
type Manifest struct {
	Designs   int           `json:"designs"`
	Templates int           `json:"templates"`
	Groups    []DesignGroup `json:"groups"`
	Failures  []Failure     `json:"failures,omitempty"`
}

// Package builds the master archive: one deflated inner zip per design
// ({design}.zip, holding that design's mockup PNGs) plus manifest.json at
// the archive root.
func Package(groups []DesignGroup, failures []Failure, templates int) ([]byte, error) {
	var master bytes.Buffer
	zw := zip.NewWriter(&master)

	for _, group := range groups {
		inner, err := packageGroup(group)
		if err != nil {
			return nil, err
		}
		w, err := zw.Create(group.Name + ".zip")
		if err != nil {
			return nil, fmt.Errorf("create inner zip entry for %s: %w", group.Name, err)
		}
		if _, err := w.Write(inner); err != nil {
			return nil, fmt.Errorf("write inner zip for %s: %w", group.Name, err)
		}
	}

	manifest := Manifest{
		Designs:   len(groups),
		Templates: templates,
		Groups:    groups,
		Failures:  failures,
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	w, err := zw.Create("manifest.json")
	if err != nil {
		return nil, fmt.Errorf("create manifest entry: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize master archive: %w", err)
	}
	return master.Bytes(), nil
}

// packageGroup zips one design's mockups.
func packageGroup(group DesignGroup) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, m := range group.Mockups {
		w, err := zw.Create(m.FileName)
		if err != nil {
			return nil, fmt.Errorf("create entry %s: %w", m.FileName, err)
		}
		if _, err := w.Write(m.PNG); err != nil {
			return nil, fmt.Errorf("write entry %s: %w", m.FileName, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize zip for %s: %w", group.Name, err)
	}
	return buf.Bytes(), nil
}
