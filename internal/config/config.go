// Package config holds the service configuration: defaults, optional JSON
// file loading, environment overrides, and validation.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/teepress/mockup-tools/internal/detection"
	"github.com/teepress/mockup-tools/internal/placement"
)

// Config is the full service configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port int `json:"port"`

	// MaxUploadBytes caps the size of a single uploaded file.
	MaxUploadBytes int64 `json:"max_upload_bytes"`

	// Workers bounds the generation worker pool. Zero means GOMAXPROCS.
	Workers int `json:"workers"`

	// Detection tunes the template region detector.
	Detection detection.Options `json:"detection"`

	// Placement holds the default plain/model placement parameters.
	// Requests may override them per call.
	Placement placement.ParamSet `json:"placement"`
}

// Default returns the reference configuration.
func Default() *Config {
	return &Config{
		Port:           8080,
		MaxUploadBytes: 32 << 20, // 32 MiB per file
		Workers:        0,
		Detection:      detection.DefaultOptions(),
		Placement:      placement.DefaultParamSet(),
	}
}

// Load builds the effective configuration: defaults, then the JSON file
// named by MOCKUP_CONFIG (if set), then individual environment overrides.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("MOCKUP_CONFIG"); path != "" {
		loaded, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if port := os.Getenv("MOCKUP_PORT"); port != "" {
		v, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid MOCKUP_PORT %q: %w", port, err)
		}
		cfg.Port = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a JSON file. Fields absent from the
// file keep their default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}

	if c.MaxUploadBytes < 1 {
		return fmt.Errorf("max_upload_bytes must be positive")
	}

	if c.Detection.MinComponentSize < 0 {
		return fmt.Errorf("detection.min_component_size must not be negative")
	}

	for _, p := range []struct {
		name   string
		params placement.Params
	}{
		{"placement.plain", c.Placement.Plain},
		{"placement.model", c.Placement.Model},
	} {
		if p.params.PaddingRatio <= 0 || p.params.PaddingRatio > 1 {
			return fmt.Errorf("%s.padding_ratio must be in (0, 1]", p.name)
		}
	}

	return nil
}
