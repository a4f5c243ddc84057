package config

import (
	"fmt"
	"math"

	"github.com/ivlev/citycam/internal/camera"
	"github.com/ivlev/citycam/internal/easing"
)

type Config struct {
	PathInput          string
	TourForm           string
	Mapping            string
	Curve              string
	Easing             string
	SmoothingFactor    float64
	LookAheadDistance  float64
	AngularScale       float64
	MinSegmentDistance float64
	FilterFactor       float64
	Frames             int
	ScrollMode         string
	ScrollRange        float64
	TrackOutput        string
	PreviewOutput      string
	PreviewWidth       int
	PreviewHeight      int
	ShowStats          bool
}

// Default returns the settings the portfolio page ships with
func Default() *Config {
	return &Config{
		TourForm:           "yawpitch",
		Mapping:            "weighted",
		Curve:              "linear",
		Easing:             "smootherstep",
		SmoothingFactor:    camera.DefaultSmoothing,
		LookAheadDistance:  10,
		AngularScale:       10,
		MinSegmentDistance: 5,
		FilterFactor:       0.1,
		Frames:             600,
		ScrollMode:         "linear",
		ScrollRange:        8000,
		PreviewWidth:       1024,
		PreviewHeight:      768,
	}
}

// Validate checks ranges the controller cannot clamp on its own
func (c *Config) Validate() error {
	if c.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", c.Frames)
	}
	if !unit(c.SmoothingFactor) {
		return fmt.Errorf("smoothing must be in (0, 1], got %v", c.SmoothingFactor)
	}
	if !unit(c.FilterFactor) {
		return fmt.Errorf("filter must be in (0, 1], got %v", c.FilterFactor)
	}
	if c.ScrollRange <= 0 {
		return fmt.Errorf("scroll range must be positive, got %v", c.ScrollRange)
	}
	if c.PreviewOutput != "" && (c.PreviewWidth < 64 || c.PreviewHeight < 64) {
		return fmt.Errorf("preview must be at least 64x64, got %dx%d", c.PreviewWidth, c.PreviewHeight)
	}
	switch c.ScrollMode {
	case "linear", "jump":
	default:
		return fmt.Errorf("unknown scroll mode: %s", c.ScrollMode)
	}
	_, err := c.PathOptions()
	return err
}

// PathOptions translates the string settings into camera options
func (c *Config) PathOptions() (camera.Options, error) {
	opts := camera.DefaultOptions()

	mapping, err := camera.ParseMapping(c.Mapping)
	if err != nil {
		return opts, err
	}
	curve, err := camera.ParseCurve(c.Curve)
	if err != nil {
		return opts, err
	}
	ease, err := easing.New(c.Easing)
	if err != nil {
		return opts, err
	}

	opts.Mapping = mapping
	opts.Curve = curve
	opts.Easing = ease
	opts.LookAheadDistance = c.LookAheadDistance
	opts.AngularScale = c.AngularScale
	opts.MinSegmentDistance = c.MinSegmentDistance
	return opts, nil
}

func unit(v float64) bool {
	return !math.IsNaN(v) && v > 0 && v <= 1
}
