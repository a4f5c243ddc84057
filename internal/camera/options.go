package camera

import (
	"fmt"

	"github.com/ivlev/citycam/internal/easing"
)

// Mapping selects how global progress is spread over the segments.
type Mapping int

const (
	// Weighted gives each segment scroll distance proportional to its
	// positional plus angular travel.
	Weighted Mapping = iota
	// Uniform gives every segment the same share of progress.
	Uniform
)

func (m Mapping) String() string {
	if m == Uniform {
		return "uniform"
	}
	return "weighted"
}

// ParseMapping accepts "weighted" (or "") and "uniform".
func ParseMapping(s string) (Mapping, error) {
	switch s {
	case "weighted", "":
		return Weighted, nil
	case "uniform":
		return Uniform, nil
	default:
		return Weighted, fmt.Errorf("unknown mapping: %s", s)
	}
}

// Curve selects the interpolation between keyframes.
type Curve int

const (
	// Linear interpolates straight between the two bracketing keyframes.
	Linear Curve = iota
	// CatmullRom runs a closed Catmull-Rom spline through all keyframes.
	CatmullRom
)

func (c Curve) String() string {
	if c == CatmullRom {
		return "catmullrom"
	}
	return "linear"
}

// ParseCurve accepts "linear" (or "") and "catmullrom".
func ParseCurve(s string) (Curve, error) {
	switch s {
	case "linear", "":
		return Linear, nil
	case "catmullrom", "catmull-rom", "spline":
		return CatmullRom, nil
	default:
		return Linear, fmt.Errorf("unknown curve: %s", s)
	}
}

// Options configure a Path.
type Options struct {
	Mapping Mapping
	Curve   Curve
	Easing  easing.Func // applied to local-t; nil means smootherstep

	LookAheadDistance  float64 // yaw/pitch only: distance of the synthesized look target
	AngularScale       float64 // world units per radian when weighting segments
	MinSegmentDistance float64 // floor on every segment weight
}

// DefaultOptions returns weighted mapping, linear curve, smootherstep easing,
// look-ahead 10, angular scale 10 and a segment floor of 5.
func DefaultOptions() Options {
	return Options{
		Mapping:            Weighted,
		Curve:              Linear,
		Easing:             easing.Smootherstep,
		LookAheadDistance:  10,
		AngularScale:       10,
		MinSegmentDistance: 5,
	}
}
