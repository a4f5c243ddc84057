package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultSmoothing is the fraction of the remaining distance the live camera
// covers each frame.
const DefaultSmoothing = 0.08

var (
	worldUp = mgl64.Vec3{0, 1, 0}
	altUp   = mgl64.Vec3{0, 0, -1} // for views looking straight up or down
)

// State is the live camera owned by the render host. The controller only
// moves it toward the path pose; it never keeps a reference between frames.
type State struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3 // cached look-at point
	Yaw      float64
	Pitch    float64

	initialized bool
}

// Initialized reports whether the state has received at least one pose.
func (s *State) Initialized() bool { return s.initialized }

// Snap places the camera exactly on pose.
func (s *State) Snap(pose Pose) {
	s.Position = pose.Position
	s.Target = pose.Target
	s.Yaw = pose.Yaw
	s.Pitch = pose.Pitch
	s.initialized = true
}

// View returns a right-handed view matrix for the current camera.
func (s *State) View() mgl64.Mat4 {
	target := s.Target
	dir := target.Sub(s.Position)
	if dir.LenSqr() == 0 {
		dir = Forward(s.Yaw, s.Pitch)
		target = s.Position.Add(dir)
	}
	up := worldUp
	if math.Abs(dir.Normalize().Dot(worldUp)) > 1-1e-9 {
		up = altUp
	}
	return mgl64.LookAtV(s.Position, target, up)
}

// Frame is what Update hands back to the host for content sync.
type Frame struct {
	Section  string
	Progress float64
	Segment  Segment
	Pose     Pose // unsmoothed target pose
}

// Controller turns per-frame progress into camera motion along a Path.
type Controller struct {
	path      *Path
	smoothing float64
}

// NewController binds a path with a smoothing factor. Factors outside (0,1]
// fall back to DefaultSmoothing.
func NewController(path *Path, smoothing float64) *Controller {
	if math.IsNaN(smoothing) || smoothing <= 0 || smoothing > 1 {
		smoothing = DefaultSmoothing
	}
	return &Controller{path: path, smoothing: smoothing}
}

// Path returns the controller's path.
func (c *Controller) Path() *Path { return c.path }

// Smoothing returns the per-frame smoothing factor.
func (c *Controller) Smoothing() float64 { return c.smoothing }

// Update computes the path pose for progress and eases state toward it.
// The first call on a fresh state snaps instead of easing from the origin.
func (c *Controller) Update(state *State, progress float64) Frame {
	progress = Clamp01(progress)
	pose, seg := c.path.Sample(progress)

	if !state.initialized {
		state.Snap(pose)
	} else {
		s := c.smoothing
		state.Position = approach(state.Position, pose.Position, s)

		if pose.Kind == YawPitch {
			state.Yaw = pose.Yaw
			state.Pitch = pose.Pitch
			state.Target = state.Position.Add(pose.Forward.Mul(c.path.opts.LookAheadDistance))
		} else {
			state.Target = approach(state.Target, pose.Target, s)
		}
	}

	return Frame{
		Section:  seg.Section(),
		Progress: progress,
		Segment:  seg,
		Pose:     pose,
	}
}

// approach moves current a fraction s of the way toward target.
func approach(current, target mgl64.Vec3, s float64) mgl64.Vec3 {
	return current.Add(target.Sub(current).Mul(s))
}
