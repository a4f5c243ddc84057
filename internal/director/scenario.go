package director

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ivlev/citycam/internal/camera"
)

var (
	ErrMissingOrientation   = errors.New("keyframe has neither look_at nor yaw/pitch")
	ErrAmbiguousOrientation = errors.New("keyframe has both look_at and yaw/pitch")
)

// PathFile is the on-disk form of a camera path
type PathFile struct {
	Version   string        `yaml:"version"`
	Name      string        `yaml:"name,omitempty"`
	Mapping   string        `yaml:"mapping,omitempty"` // weighted | uniform
	Curve     string        `yaml:"curve,omitempty"`   // linear | catmullrom
	Easing    string        `yaml:"easing,omitempty"`
	Keyframes []KeyframeDoc `yaml:"keyframes"`
}

// KeyframeDoc is one waypoint as authored. Orientation is given either as
// look_at or as yaw/pitch; angles may be written in radians or degrees.
type KeyframeDoc struct {
	Section  string   `yaml:"section"`
	Position Vec3     `yaml:"position,flow"`
	LookAt   *Vec3    `yaml:"look_at,flow,omitempty"`
	Yaw      *float64 `yaml:"yaw,omitempty"`   // radians
	Pitch    *float64 `yaml:"pitch,omitempty"` // radians
	YawDeg   *float64 `yaml:"yaw_deg,omitempty"`
	PitchDeg *float64 `yaml:"pitch_deg,omitempty"`
}

// Vec3 is written as a flow sequence [x, y, z]
type Vec3 [3]float64

func (v Vec3) mgl() mgl64.Vec3 { return mgl64.Vec3(v) }

// Resolve turns the documents into camera keyframes. Each keyframe must
// carry exactly one orientation form.
func (f *PathFile) Resolve() ([]camera.Keyframe, error) {
	out := make([]camera.Keyframe, 0, len(f.Keyframes))
	for i, doc := range f.Keyframes {
		kf, err := doc.resolve()
		if err != nil {
			return nil, fmt.Errorf("keyframe %d (%s): %w", i, doc.Section, err)
		}
		out = append(out, kf)
	}
	return out, nil
}

func (d KeyframeDoc) resolve() (camera.Keyframe, error) {
	kf := camera.Keyframe{Position: d.Position.mgl(), Section: d.Section}

	hasAngles := d.Yaw != nil || d.Pitch != nil || d.YawDeg != nil || d.PitchDeg != nil
	switch {
	case d.LookAt != nil && hasAngles:
		return kf, ErrAmbiguousOrientation
	case d.LookAt != nil:
		kf.Orientation = camera.LookAtPoint(d.LookAt.mgl())
		return kf, nil
	case !hasAngles:
		return kf, ErrMissingOrientation
	}

	yaw, err := angle(d.Yaw, d.YawDeg, "yaw")
	if err != nil {
		return kf, err
	}
	pitch, err := angle(d.Pitch, d.PitchDeg, "pitch")
	if err != nil {
		return kf, err
	}
	kf.Orientation = camera.YawPitchAngles(yaw, pitch)
	return kf, nil
}

// angle picks the radian or degree field. Both yaw and pitch are required.
func angle(rad, deg *float64, name string) (float64, error) {
	switch {
	case rad != nil && deg != nil:
		return 0, fmt.Errorf("%w: %s given in both radians and degrees", ErrAmbiguousOrientation, name)
	case rad != nil:
		return *rad, nil
	case deg != nil:
		return *deg * math.Pi / 180, nil
	default:
		return 0, fmt.Errorf("%w: %s missing", ErrMissingOrientation, name)
	}
}

// FromKeyframes builds a document from camera keyframes
func FromKeyframes(name string, kfs []camera.Keyframe) *PathFile {
	f := &PathFile{Version: "1.0", Name: name}
	for _, kf := range kfs {
		doc := KeyframeDoc{Section: kf.Section, Position: Vec3(kf.Position)}
		if kf.Orientation.Kind == camera.LookAt {
			target := Vec3(kf.Orientation.Target)
			doc.LookAt = &target
		} else {
			yaw, pitch := kf.Orientation.Yaw, kf.Orientation.Pitch
			doc.Yaw, doc.Pitch = &yaw, &pitch
		}
		f.Keyframes = append(f.Keyframes, doc)
	}
	return f
}

// Track is a sampled camera run, one entry per frame
type Track struct {
	Version string   `yaml:"version"`
	Path    string   `yaml:"path"`
	Frames  []Sample `yaml:"frames"`
}

// Sample is the camera state after one host frame
type Sample struct {
	Frame    int     `yaml:"frame"`
	Progress float64 `yaml:"progress"`
	Section  string  `yaml:"section"`
	Segment  int     `yaml:"segment"`
	Position Vec3    `yaml:"position,flow"`
	Target   Vec3    `yaml:"target,flow"`
	Yaw      float64 `yaml:"yaw,omitempty"`
	Pitch    float64 `yaml:"pitch,omitempty"`
}
