package camera

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// OrientationKind discriminates how a keyframe says where the camera faces.
type OrientationKind int

const (
	// LookAt keyframes name a world-space point the camera faces.
	LookAt OrientationKind = iota
	// YawPitch keyframes carry yaw and pitch angles in radians.
	YawPitch
)

func (k OrientationKind) String() string {
	switch k {
	case LookAt:
		return "look_at"
	case YawPitch:
		return "yaw_pitch"
	default:
		return fmt.Sprintf("OrientationKind(%d)", int(k))
	}
}

// Orientation is a tagged variant: Target is meaningful for LookAt,
// Yaw and Pitch for YawPitch.
type Orientation struct {
	Kind   OrientationKind
	Target mgl64.Vec3
	Yaw    float64
	Pitch  float64
}

// LookAtPoint builds a LookAt orientation.
func LookAtPoint(target mgl64.Vec3) Orientation {
	return Orientation{Kind: LookAt, Target: target}
}

// YawPitchAngles builds a YawPitch orientation (radians).
func YawPitchAngles(yaw, pitch float64) Orientation {
	return Orientation{Kind: YawPitch, Yaw: yaw, Pitch: pitch}
}

// Keyframe is an authored waypoint on the camera path.
type Keyframe struct {
	Position    mgl64.Vec3
	Orientation Orientation
	Section     string // content section this waypoint belongs to
}

// direction returns the unit view direction of the keyframe.
func (k Keyframe) direction() mgl64.Vec3 {
	switch k.Orientation.Kind {
	case YawPitch:
		return Forward(k.Orientation.Yaw, k.Orientation.Pitch).Normalize()
	default:
		d := k.Orientation.Target.Sub(k.Position)
		if d.LenSqr() == 0 {
			return mgl64.Vec3{}
		}
		return d.Normalize()
	}
}

func (k Keyframe) finite() bool {
	vals := []float64{
		k.Position[0], k.Position[1], k.Position[2],
		k.Orientation.Target[0], k.Orientation.Target[1], k.Orientation.Target[2],
		k.Orientation.Yaw, k.Orientation.Pitch,
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
