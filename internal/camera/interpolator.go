package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ivlev/citycam/internal/easing"
)

// Pose is the camera placement the path asks for at some progress.
type Pose struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3 // point the camera faces
	Forward  mgl64.Vec3 // yaw/pitch only, not renormalized
	Yaw      float64
	Pitch    float64
	Kind     OrientationKind
}

// Lerp performs linear interpolation between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec interpolates component-wise between a and b.
func LerpVec(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Clamp01 clamps t to [0,1]; NaN becomes 0.
func Clamp01(t float64) float64 {
	if math.IsNaN(t) {
		return 0
	}
	return mgl64.Clamp(t, 0, 1)
}

// WrapAngle maps a onto (-π, π].
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// ShortestAngle returns the signed delta from a to b with the smallest
// magnitude, possibly crossing the ±π seam.
func ShortestAngle(a, b float64) float64 {
	return WrapAngle(b - a)
}

// LerpAngle interpolates between angles a and b along the shorter arc.
// The result is wrapped to (-π, π].
func LerpAngle(a, b, t float64) float64 {
	return WrapAngle(a + ShortestAngle(a, b)*t)
}

// Forward derives the view direction for a yaw/pitch pair. At yaw 0 the
// camera looks down -Z. The vector is not renormalized.
func Forward(yaw, pitch float64) mgl64.Vec3 {
	return mgl64.Vec3{-math.Sin(yaw), math.Sin(pitch), -math.Cos(yaw)}
}

// catmullRom evaluates a uniform Catmull-Rom segment between p1 and p2.
func catmullRom(p0, p1, p2, p3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * (2*p1 +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}

// CatmullRomVec evaluates a uniform Catmull-Rom segment per component.
func CatmullRomVec(p0, p1, p2, p3 mgl64.Vec3, t float64) mgl64.Vec3 {
	return mgl64.Vec3{
		catmullRom(p0[0], p1[0], p2[0], p3[0], t),
		catmullRom(p0[1], p1[1], p2[1], p3[1], t),
		catmullRom(p0[2], p1[2], p2[2], p3[2], t),
	}
}

// InterpolatePose blends two keyframes in a straight line. localT is clamped
// and eased with opts.Easing first. Both keyframes must share an
// orientation kind; NewPath enforces that for whole paths.
func InterpolatePose(from, to Keyframe, localT float64, opts Options) Pose {
	t := ease(opts, localT)
	pos := LerpVec(from.Position, to.Position, t)
	target := LerpVec(from.Orientation.Target, to.Orientation.Target, t)
	return orient(pos, target, from, to, t, opts)
}

// orient fills in the orientation half of a pose. target is the already
// interpolated look-at point and is ignored for yaw/pitch keyframes.
func orient(pos, target mgl64.Vec3, from, to Keyframe, t float64, opts Options) Pose {
	if from.Orientation.Kind == YawPitch {
		yaw := LerpAngle(from.Orientation.Yaw, to.Orientation.Yaw, t)
		pitch := Lerp(from.Orientation.Pitch, to.Orientation.Pitch, t)
		fwd := Forward(yaw, pitch)
		return Pose{
			Position: pos,
			Target:   pos.Add(fwd.Mul(opts.LookAheadDistance)),
			Forward:  fwd,
			Yaw:      yaw,
			Pitch:    pitch,
			Kind:     YawPitch,
		}
	}

	return Pose{
		Position: pos,
		Target:   target,
		Kind:     LookAt,
	}
}

func ease(opts Options, t float64) float64 {
	t = Clamp01(t)
	if opts.Easing == nil {
		return easing.Smootherstep(t)
	}
	return Clamp01(opts.Easing(t))
}
