package config

import (
	"testing"

	"github.com/ivlev/citycam/internal/camera"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}

	opts, err := cfg.PathOptions()
	if err != nil {
		t.Fatalf("PathOptions failed: %v", err)
	}
	if opts.Mapping != camera.Weighted || opts.Curve != camera.Linear {
		t.Errorf("Unexpected defaults: %+v", opts)
	}
	if opts.MinSegmentDistance != 5 || opts.AngularScale != 10 || opts.LookAheadDistance != 10 {
		t.Errorf("Unexpected distances: %+v", opts)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"frames", func(c *Config) { c.Frames = 0 }},
		{"smoothing zero", func(c *Config) { c.SmoothingFactor = 0 }},
		{"smoothing above one", func(c *Config) { c.SmoothingFactor = 1.2 }},
		{"filter", func(c *Config) { c.FilterFactor = -1 }},
		{"scroll range", func(c *Config) { c.ScrollRange = 0 }},
		{"scroll mode", func(c *Config) { c.ScrollMode = "wheel" }},
		{"mapping", func(c *Config) { c.Mapping = "random" }},
		{"curve", func(c *Config) { c.Curve = "bezier" }},
		{"easing", func(c *Config) { c.Easing = "elastic" }},
		{"preview size", func(c *Config) { c.PreviewOutput = "p.png"; c.PreviewWidth = 10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Expected validation error")
			}
		})
	}
}
